package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"

	"github.com/objectwire/objectwire/internal/config"
	"github.com/objectwire/objectwire/internal/core"
	"github.com/objectwire/objectwire/internal/session"
	"github.com/objectwire/objectwire/pkg/log"
)

// ReadLine is the interactive front-end. Every input line is handed to the
// session controller; the loop itself only deals with terminal concerns
// (prompt, history, interrupts).
type ReadLine struct {
	cfg *config.AppConfig
	rl  *readline.Instance
}

func NewReadLine(cfg *config.AppConfig) (*ReadLine, error) {
	// Ensure runtime directory exists
	if err := os.MkdirAll(cfg.RuntimePath, 0755); err != nil {
		return nil, fmt.Errorf("failed to create runtime directory: %w", err)
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          ">>> ",
		HistoryFile:     cfg.GetHistoryPath(),
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return nil, err
	}

	return &ReadLine{
		cfg: cfg,
		rl:  rl,
	}, nil
}

// Stdout is where renderers should write so output interleaves correctly
// with the prompt.
func (r *ReadLine) Stdout() io.Writer {
	return r.rl.Stdout()
}

// Confirm asks a yes/no question on the same terminal. Only "y" and "yes"
// count as consent.
func (r *ReadLine) Confirm(prompt string) bool {
	r.rl.SetPrompt(prompt)
	defer r.rl.SetPrompt(">>> ")

	line, err := r.rl.Readline()
	if err != nil {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}

func (r *ReadLine) Run(ctx context.Context, ctrl *session.Controller) error {
	logger := log.FromCtx(ctx)
	logger.Debug().Str("history", r.cfg.GetHistoryPath()).Msg("session started")

	fmt.Fprintf(r.rl.Stdout(), "%s v%s\nPaste a URL or type 'help' to get started. 'exit' to quit.\n\n",
		core.AppName, core.AppVersion)

	for {
		// Check context before blocking read
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		line, err := r.rl.Readline()
		if err != nil {
			if err == readline.ErrInterrupt {
				if len(line) == 0 {
					return nil // Exit on Ctrl+C
				}
				continue
			} else if err == io.EOF {
				return nil
			}
			return err
		}

		if !ctrl.Handle(ctx, line) {
			return nil
		}
	}
}

func (r *ReadLine) Shutdown(_ context.Context) error {
	if r.rl != nil {
		return r.rl.Close()
	}
	return nil
}
