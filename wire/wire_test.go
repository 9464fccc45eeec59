package wire

import (
	"bytes"
	stderrors "errors"
	"math"
	"testing"

	traceerr "github.com/wavetap/wavetap/errors"
)

func strptr(s string) *string { return &s }

func TestRoundTripPrimitives(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)

	w.U32(0xDEADBEEF)
	w.U64(0x0123456789ABCDEF)
	w.I32(-42)
	w.I64(-1)
	w.F32(1.5)
	w.F64(-2.25)
	w.Bool(true)
	w.Bool(false)
	w.Handle(0xFFFF0000FFFF0000)
	if err := w.Err(); err != nil {
		t.Fatalf("write: %v", err)
	}

	r := NewReader(bytes.NewReader(buf.Bytes()))
	if got := r.U32(); got != 0xDEADBEEF {
		t.Errorf("U32 = 0x%X", got)
	}
	if got := r.U64(); got != 0x0123456789ABCDEF {
		t.Errorf("U64 = 0x%X", got)
	}
	if got := r.I32(); got != -42 {
		t.Errorf("I32 = %d", got)
	}
	if got := r.I64(); got != -1 {
		t.Errorf("I64 = %d", got)
	}
	if got := r.F32(); got != 1.5 {
		t.Errorf("F32 = %v", got)
	}
	if got := r.F64(); got != -2.25 {
		t.Errorf("F64 = %v", got)
	}
	if got := r.Bool(); got != true {
		t.Errorf("Bool = %v", got)
	}
	if got := r.Bool(); got != false {
		t.Errorf("Bool = %v", got)
	}
	if got := r.Handle(); got != 0xFFFF0000FFFF0000 {
		t.Errorf("Handle = 0x%X", got)
	}
	if err := r.Err(); err != nil {
		t.Fatalf("read: %v", err)
	}
}

func TestFloatBitPatterns(t *testing.T) {
	// NaN payloads and denormals must survive exactly.
	nan32 := math.Float32frombits(0x7FC00001)
	denorm32 := math.Float32frombits(0x00000001)
	nan64 := math.Float64frombits(0x7FF8000000000001)

	var buf bytes.Buffer
	w := NewWriter(&buf)
	w.F32(nan32)
	w.F32(denorm32)
	w.F64(nan64)

	r := NewReader(bytes.NewReader(buf.Bytes()))
	if got := math.Float32bits(r.F32()); got != 0x7FC00001 {
		t.Errorf("NaN32 bits = 0x%X", got)
	}
	if got := math.Float32bits(r.F32()); got != 0x00000001 {
		t.Errorf("denormal bits = 0x%X", got)
	}
	if got := math.Float64bits(r.F64()); got != 0x7FF8000000000001 {
		t.Errorf("NaN64 bits = 0x%X", got)
	}
	if err := r.Err(); err != nil {
		t.Fatalf("read: %v", err)
	}
}

func TestStringAbsentVsEmpty(t *testing.T) {
	tests := []struct {
		name string
		in   *string
	}{
		{"absent", nil},
		{"empty", strptr("")},
		{"value", strptr("OpenAL Soft")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			w := NewWriter(&buf)
			w.String(tt.in)

			r := NewReader(bytes.NewReader(buf.Bytes()))
			got := r.String()
			if err := r.Err(); err != nil {
				t.Fatalf("read: %v", err)
			}
			switch {
			case tt.in == nil && got != nil:
				t.Errorf("want nil, got %q", *got)
			case tt.in != nil && got == nil:
				t.Errorf("want %q, got nil", *tt.in)
			case tt.in != nil && *got != *tt.in:
				t.Errorf("want %q, got %q", *tt.in, *got)
			}
		})
	}
}

func TestStringAbsentWireForm(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	w.String(nil)

	want := []byte{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF}
	if !bytes.Equal(buf.Bytes(), want) {
		t.Errorf("absent string encoded as % X, want % X", buf.Bytes(), want)
	}
}

func TestBlobAbsentVsEmpty(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	w.Blob(nil)
	w.Blob([]byte{})
	w.Blob([]byte{1, 2, 3})

	r := NewReader(bytes.NewReader(buf.Bytes()))
	if got := r.Blob(); got != nil {
		t.Errorf("absent blob = %v, want nil", got)
	}
	if got := r.Blob(); got == nil || len(got) != 0 {
		t.Errorf("empty blob = %v, want non-nil empty", got)
	}
	if got := r.Blob(); !bytes.Equal(got, []byte{1, 2, 3}) {
		t.Errorf("blob = %v", got)
	}
	if err := r.Err(); err != nil {
		t.Fatalf("read: %v", err)
	}
}

func TestReaderTruncation(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	w.U64(99)

	r := NewReader(bytes.NewReader(buf.Bytes()[:5]))
	_ = r.U64()
	err := r.Err()
	if err == nil {
		t.Fatal("expected truncation error")
	}
	if !stderrors.Is(err, &traceerr.Error{Phase: traceerr.PhaseDecode, Kind: traceerr.KindTruncated}) {
		t.Errorf("error = %v, want truncated", err)
	}

	// The latch holds: later reads keep returning the first error.
	_ = r.U32()
	if r.Err() != err {
		t.Error("latched error changed after further reads")
	}
}

func TestReaderBlobLengthGuard(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	w.U64(1 << 40) // absurd length, then no payload

	r := NewReader(bytes.NewReader(buf.Bytes()))
	if got := r.Blob(); got != nil {
		t.Errorf("blob = %v, want nil", got)
	}
	if !stderrors.Is(r.Err(), &traceerr.Error{Phase: traceerr.PhaseDecode, Kind: traceerr.KindInvalidData}) {
		t.Errorf("error = %v, want invalid_data", r.Err())
	}
}

type failingWriter struct{ after int }

func (f *failingWriter) Write(p []byte) (int, error) {
	if f.after <= 0 {
		return 0, stderrors.New("disk full")
	}
	f.after--
	return len(p), nil
}

func TestWriterLatchesFirstFailure(t *testing.T) {
	w := NewWriter(&failingWriter{after: 1})
	w.U32(1) // succeeds
	w.U32(2) // fails
	first := w.Err()
	if first == nil {
		t.Fatal("expected write error")
	}
	w.U32(3) // no-op
	if w.Err() != first {
		t.Error("latched error changed after further writes")
	}
	if w.Offset() != 4 {
		t.Errorf("offset = %d, want 4", w.Offset())
	}
}
