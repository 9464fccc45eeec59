package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/wavetap/wavetap/player"
	"github.com/wavetap/wavetap/trace"
)

func main() {
	var (
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
		stacks      = flag.Bool("stacks", false, "Print the call stack under each call")
		noDerived   = flag.Bool("calls-only", false, "Hide derived state-change events")
		verbose     = flag.Bool("v", false, "Verbose diagnostics to stderr")
	)
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Usage: tracedump [-i] [-stacks] [-calls-only] <file.wavetap>")
		os.Exit(1)
	}
	logFile := flag.Arg(0)

	if *interactive {
		if err := runInteractive(logFile); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := dump(logFile, *stacks, *noDerived, *verbose); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var (
	threadStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#87CEEB"))
	derivedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#666666"))
	errStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B")).Bold(true)
	stackStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#444444"))
)

func dump(path string, stacks, noDerived, verbose bool) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	logger := zap.NewNop()
	if verbose {
		if l, err := zap.NewDevelopment(); err == nil {
			logger = l
			defer logger.Sync()
		}
	}

	color := term.IsTerminal(int(os.Stdout.Fd()))
	style := func(st lipgloss.Style, s string) string {
		if !color {
			return s
		}
		return st.Render(s)
	}

	var session *player.Session
	var calls, derived, errors int
	visitor := &player.Visitor{
		Default: func(c *player.CallInfo, ev trace.Event) {
			tag := ev.Tag()
			switch {
			case isError(tag):
				errors++
				derived++
			case isDerived(tag):
				derived++
			default:
				calls++
			}
			if noDerived && isDerived(tag) {
				return
			}

			indent := ""
			for i := 0; i < c.ScopeDepth; i++ {
				indent += "    "
			}
			line := formatEvent(session, ev)
			switch {
			case isError(tag):
				line = style(errStyle, line)
			case isDerived(tag):
				line = style(derivedStyle, line)
			}
			fmt.Printf("%8dms %s %s%s\n",
				c.Timestamp, style(threadStyle, fmt.Sprintf("(t%d)", c.ThreadID)), indent, line)

			if stacks {
				for _, fr := range c.Frames {
					sym := fr.Sym
					if sym == "" {
						sym = fmt.Sprintf("0x%016x", fr.Addr)
					}
					fmt.Printf("             %s\n", style(stackStyle, sym))
				}
			}
		},
	}

	var lastTS uint32
	var clean bool
	session, err = player.NewSession(player.Config{
		Input:   f,
		Visitor: visitor,
		Logger:  logger,
		OnEnd: func(ok bool, ts uint32) {
			clean, lastTS = ok, ts
		},
	})
	if err != nil {
		return err
	}

	runErr := session.Run(context.Background())

	fmt.Printf("\n%d calls, %d state events (%d errors) over %dms\n", calls, derived, errors, lastTS)
	if !clean {
		fmt.Printf("stream did not end cleanly (%s after %d records)\n", session.State(), session.Records())
	}
	return runErr
}
