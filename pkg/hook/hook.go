package hook

import (
	"context"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/downcast/downcast/pkg/model"
)

// ExecHook is a command run after an episode has been placed.
// A single element command goes through /bin/sh, anything longer is exec'd as argv.
type ExecHook struct {
	Command []string `toml:"command"`
	Timeout int      `toml:"timeout"` // seconds
}

// Env builds the environment passed to hooks once an episode has been placed.
func Env(feedName, title, path string) []string {
	return []string{
		"FEED_NAME=" + feedName,
		"EPISODE_TITLE=" + title,
		"EPISODE_FILE=" + path,
	}
}

// Invoke runs the hook with env appended to the current process environment.
func (h *ExecHook) Invoke(ctx context.Context, env []string) error {
	if h == nil {
		return nil
	}
	if len(h.Command) == 0 {
		return errors.New("hook command is empty")
	}

	timeout := h.Timeout
	if timeout <= 0 {
		timeout = model.DefaultHookTimeout
	}

	ctx, cancel := context.WithTimeout(ctx, time.Duration(timeout)*time.Second)
	defer cancel()

	name, args := h.Command[0], h.Command[1:]
	if len(h.Command) == 1 {
		name, args = "/bin/sh", []string{"-c", h.Command[0]}
	}

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Env = append(os.Environ(), env...)

	output, err := cmd.CombinedOutput()
	if err != nil {
		return errors.Wrapf(err, "hook execution failed, output: %s", strings.TrimSpace(string(output)))
	}

	return nil
}
