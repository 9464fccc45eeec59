package symbols

import (
	"fmt"
	"runtime"
)

// Def pairs a raw call-stack address with its resolved symbol text.
type Def struct {
	Addr uint64
	Sym  string
}

// Resolver turns a raw instruction-pointer value into symbol text. The
// writer resolves each unique address exactly once per session; the reader
// never resolves at all, it only consumes text recorded in the stream.
type Resolver interface {
	Resolve(addr uint64) string
}

// RuntimeResolver resolves addresses against the current process's own
// symbol table. It is the default on the recording side.
type RuntimeResolver struct{}

// Resolve formats "func file:line" for a known PC and a hex fallback for
// addresses the runtime cannot place.
func (RuntimeResolver) Resolve(addr uint64) string {
	fn := runtime.FuncForPC(uintptr(addr))
	if fn == nil {
		return fmt.Sprintf("0x%016x", addr)
	}
	file, line := fn.FileLine(uintptr(addr))
	return fmt.Sprintf("%s %s:%d", fn.Name(), file, line)
}

// Cache maps raw call-stack addresses to resolved symbol text. Entries are
// append-only for the life of a session: never evicted, never invalidated.
// It is not safe for concurrent use; the recorder touches it only under
// the serialization lock and the reader is single-threaded.
type Cache struct {
	syms map[uint64]string
}

// NewCache creates an empty symbol cache.
func NewCache() *Cache {
	return &Cache{syms: make(map[uint64]string)}
}

// Lookup returns the cached symbol for addr.
func (c *Cache) Lookup(addr uint64) (string, bool) {
	s, ok := c.syms[addr]
	return s, ok
}

// Add records a resolved symbol. Later Adds for the same address win,
// though a well-formed stream never repeats one.
func (c *Cache) Add(addr uint64, sym string) {
	c.syms[addr] = sym
}

// Len returns the number of cached addresses.
func (c *Cache) Len() int {
	return len(c.syms)
}

// Intern resolves any addresses not yet cached and returns their
// definitions in input order. Addresses already present cost one map
// lookup and produce no definition, which is what amortizes the expensive
// resolver across recurring call sites.
func (c *Cache) Intern(addrs []uint64, r Resolver) []Def {
	var defs []Def
	for _, addr := range addrs {
		if _, ok := c.syms[addr]; ok {
			continue
		}
		sym := r.Resolve(addr)
		c.syms[addr] = sym
		defs = append(defs, Def{Addr: addr, Sym: sym})
	}
	return defs
}

// Capture walks the current call stack and returns up to max raw program
// counters, skipping skip frames beyond Capture itself so the
// instrumentation's own frames stay out of the trace.
func Capture(skip, max int) []uint64 {
	pcs := make([]uintptr, max)
	n := runtime.Callers(skip+2, pcs)
	addrs := make([]uint64, n)
	for i := 0; i < n; i++ {
		addrs[i] = uint64(pcs[i])
	}
	return addrs
}
