package gateway

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/pstuifzand/op.nvim/internal/logger"
	"github.com/pstuifzand/op.nvim/models"
)

// execInvoker runs the op binary through the host process machinery.
// Remote failures surface as error lines in the output envelope; only
// spawn-level problems become Go errors.
type execInvoker struct {
	binPath string
	account string
	logger  *logger.Logger
}

// NewExecInvoker returns an [Invoker] running binPath. account, when
// non-empty, is passed to every invocation so multi-account setups address
// the right one.
func NewExecInvoker(binPath, account string, log *logger.Logger) Invoker {
	if binPath == "" {
		binPath = "op"
	}
	return &execInvoker{binPath: binPath, account: account, logger: log}
}

func (e *execInvoker) Invoke(ctx context.Context, args ...string) (models.CommandOutput, error) {
	if e.account != "" {
		args = append(args, "--account", e.account)
	}

	cmd := exec.CommandContext(ctx, e.binPath, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	out := models.CommandOutput{
		ResultLines: splitOutput(stdout.String()),
		ErrorLines:  splitOutput(stderr.String()),
	}

	if err != nil {
		if ctx.Err() != nil {
			return models.CommandOutput{}, fmt.Errorf("invoke %s: %w", e.binPath, ctx.Err())
		}
		if _, ok := err.(*exec.ExitError); !ok {
			return models.CommandOutput{}, fmt.Errorf("invoke %s: %w", e.binPath, err)
		}
		// non-zero exit with no stderr still has to produce an error line
		if len(out.ErrorLines) == 0 {
			out.ErrorLines = []string{err.Error()}
		}
	}

	e.logger.Debug().
		Str("bin", e.binPath).
		Int("result_lines", len(out.ResultLines)).
		Int("error_lines", len(out.ErrorLines)).
		Msg("command invoked")

	return out, nil
}

func splitOutput(s string) []string {
	s = strings.TrimRight(strings.ReplaceAll(s, "\r\n", "\n"), "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}
