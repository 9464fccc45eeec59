package symbols

import (
	"strings"
	"testing"
)

// countingResolver records how many times each address was resolved.
type countingResolver struct {
	calls map[uint64]int
}

func (r *countingResolver) Resolve(addr uint64) string {
	if r.calls == nil {
		r.calls = make(map[uint64]int)
	}
	r.calls[addr]++
	return "sym"
}

func TestInternResolvesEachAddressOnce(t *testing.T) {
	c := NewCache()
	r := &countingResolver{}

	stack := []uint64{0x1000, 0x2000, 0x3000}

	// N traced calls sharing the same K addresses.
	var totalDefs int
	for i := 0; i < 50; i++ {
		totalDefs += len(c.Intern(stack, r))
	}

	if totalDefs != len(stack) {
		t.Errorf("definitions emitted = %d, want %d", totalDefs, len(stack))
	}
	for _, addr := range stack {
		if r.calls[addr] != 1 {
			t.Errorf("addr 0x%x resolved %d times, want 1", addr, r.calls[addr])
		}
	}
	if c.Len() != len(stack) {
		t.Errorf("cache size = %d, want %d", c.Len(), len(stack))
	}
}

func TestInternPreservesInputOrder(t *testing.T) {
	c := NewCache()
	r := &countingResolver{}

	defs := c.Intern([]uint64{0x30, 0x10, 0x20}, r)
	want := []uint64{0x30, 0x10, 0x20}
	if len(defs) != len(want) {
		t.Fatalf("defs = %d, want %d", len(defs), len(want))
	}
	for i, d := range defs {
		if d.Addr != want[i] {
			t.Errorf("defs[%d].Addr = 0x%x, want 0x%x", i, d.Addr, want[i])
		}
	}
}

func TestLookupAfterAdd(t *testing.T) {
	c := NewCache()
	if _, ok := c.Lookup(0x42); ok {
		t.Error("unexpected hit on empty cache")
	}
	c.Add(0x42, "main.play")
	got, ok := c.Lookup(0x42)
	if !ok || got != "main.play" {
		t.Errorf("Lookup = (%q, %v)", got, ok)
	}
}

func TestCaptureReturnsFrames(t *testing.T) {
	addrs := Capture(0, 16)
	if len(addrs) == 0 {
		t.Fatal("no frames captured")
	}
	for i, a := range addrs {
		if a == 0 {
			t.Errorf("frame %d is zero", i)
		}
	}
}

func TestRuntimeResolverKnownPC(t *testing.T) {
	addrs := Capture(0, 4)
	if len(addrs) == 0 {
		t.Fatal("no frames captured")
	}
	sym := RuntimeResolver{}.Resolve(addrs[0])
	if !strings.Contains(sym, "symbols") {
		t.Errorf("resolved symbol %q does not mention this package", sym)
	}
}

func TestRuntimeResolverUnknownPC(t *testing.T) {
	sym := RuntimeResolver{}.Resolve(0xdead)
	if !strings.HasPrefix(sym, "0x") {
		t.Errorf("unknown PC resolved to %q, want hex fallback", sym)
	}
}
