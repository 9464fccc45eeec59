package recorder

import (
	"io"
	"time"

	"go.uber.org/zap"

	"github.com/wavetap/wavetap/al"
	traceerr "github.com/wavetap/wavetap/errors"
	"github.com/wavetap/wavetap/symbols"
)

// DefaultStackDepth is how many call-stack frames each record carries
// unless the config says otherwise.
const DefaultStackDepth = 16

// Config assembles a Recorder. API and Output are required; everything
// else has a working default.
type Config struct {
	// API is the poll surface over the live implementation.
	API al.API

	// Output receives the log bytes. If it also implements io.Closer it
	// is closed by Recorder.Close.
	Output io.Writer

	// Logger receives the recorder's own diagnostics, never log records.
	// Defaults to a nop logger.
	Logger *zap.Logger

	// Now supplies timestamps. Defaults to time.Now.
	Now func() time.Time

	// Resolver turns stack addresses into symbol text. Defaults to the
	// process's own symbol table.
	Resolver symbols.Resolver

	// StackDepth caps captured stack frames per record. Zero means
	// DefaultStackDepth; negative disables stack capture entirely.
	StackDepth int

	// ExtensionOverrides forces extension probe answers regardless of
	// what the implementation reports. A nil map gets the default
	// policy, which denies ALC_EXT_EFX because the recorder cannot
	// shadow effect objects. Supply an empty map to pass every probe
	// through.
	ExtensionOverrides map[string]bool

	// OnWriteError runs once when the log writer fails. Recording a
	// truncated log would silently lie, so the default logs at Fatal,
	// which exits the process.
	OnWriteError func(error)
}

func (c *Config) validate() error {
	if c.API == nil {
		return traceerr.New(traceerr.PhaseOpen, traceerr.KindInvalidData, "config: API is required")
	}
	if c.Output == nil {
		return traceerr.New(traceerr.PhaseOpen, traceerr.KindInvalidData, "config: Output is required")
	}
	return nil
}

func (c *Config) withDefaults() Config {
	out := *c
	if out.Logger == nil {
		out.Logger = zap.NewNop()
	}
	if out.Now == nil {
		out.Now = time.Now
	}
	if out.Resolver == nil {
		out.Resolver = symbols.RuntimeResolver{}
	}
	if out.StackDepth == 0 {
		out.StackDepth = DefaultStackDepth
	}
	if out.ExtensionOverrides == nil {
		out.ExtensionOverrides = map[string]bool{al.ExtEFX: false}
	}
	return out
}
