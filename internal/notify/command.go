package notify

import (
	"context"
	"fmt"
	"os/exec"
	"runtime"
	"strconv"
)

// Command shells out to the platform notification tool: notify-send on
// Linux and the BSDs, osascript on macOS.
type Command struct {
	AppName string
	// goos overrides runtime.GOOS in tests.
	goos string
}

func (c Command) Notify(ctx context.Context, a Alert) error {
	name, args, err := c.argv(a)
	if err != nil {
		return err
	}
	if _, err := exec.LookPath(name); err != nil {
		return fmt.Errorf("%s not found in PATH", name)
	}
	if out, err := exec.CommandContext(ctx, name, args...).CombinedOutput(); err != nil {
		return fmt.Errorf("%s: %w: %s", name, err, out)
	}
	return nil
}

func (c Command) argv(a Alert) (string, []string, error) {
	goos := c.goos
	if goos == "" {
		goos = runtime.GOOS
	}

	switch goos {
	case "darwin":
		script := fmt.Sprintf("display notification %s with title %s",
			strconv.Quote(a.Body), strconv.Quote(a.Summary))
		return "osascript", []string{"-e", script}, nil
	case "windows":
		return "", nil, fmt.Errorf("no notification command for %s", goos)
	default:
		args := []string{a.Summary, a.Body}
		if c.AppName != "" {
			args = append([]string{"--app-name=" + c.AppName}, args...)
		}
		return "notify-send", args, nil
	}
}
