package errors

import (
	stderrors "errors"
	"io"
	"strings"
	"testing"
)

func TestErrorMessage(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want []string
	}{
		{
			name: "phase and kind",
			err:  New(PhaseDecode, KindUnknownTag, "tag 0xDEAD"),
			want: []string{"[decode]", "unknown_tag", "tag 0xDEAD"},
		},
		{
			name: "offset included",
			err:  Truncated(42, io.ErrUnexpectedEOF),
			want: []string{"at offset 42", "short read", "unexpected EOF"},
		},
		{
			name: "cause included",
			err:  Wrap(PhaseRecord, KindIO, io.ErrClosedPipe, "append"),
			want: []string{"[record]", "io", "append", "caused by"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, want := range tt.want {
				if !strings.Contains(msg, want) {
					t.Errorf("message %q missing %q", msg, want)
				}
			}
		})
	}
}

func TestErrorIsMatchesPhaseAndKind(t *testing.T) {
	err := Truncated(100, io.ErrUnexpectedEOF)

	if !stderrors.Is(err, &Error{Phase: PhaseDecode, Kind: KindTruncated}) {
		t.Error("expected match on (decode, truncated)")
	}
	if stderrors.Is(err, &Error{Phase: PhaseDecode, Kind: KindUnknownTag}) {
		t.Error("unexpected match on different kind")
	}
	if stderrors.Is(err, &Error{Phase: PhaseRecord, Kind: KindTruncated}) {
		t.Error("unexpected match on different phase")
	}
}

func TestErrorUnwrap(t *testing.T) {
	err := IO(PhaseDecode, 7, io.EOF)
	if !stderrors.Is(err, io.EOF) {
		t.Error("expected unwrap to io.EOF")
	}
}

func TestBadMagicAndVersion(t *testing.T) {
	if got := BadMagic(0x12345678).Error(); !strings.Contains(got, "0x12345678") {
		t.Errorf("BadMagic message = %q", got)
	}
	if got := BadVersion(9).Error(); !strings.Contains(got, "version 9") {
		t.Errorf("BadVersion message = %q", got)
	}
}
