package util

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// RunWithStdin runs a command with the given string on stdin and returns its
// combined output. Failures include the trailing output to keep shell errors
// diagnosable.
func RunWithStdin(ctx context.Context, cwd, stdin, name string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	if cwd != "" {
		cmd.Dir = cwd
	}
	cmd.Stdin = strings.NewReader(stdin)

	out, err := cmd.CombinedOutput()
	if err != nil {
		return "", fmt.Errorf("command failed: %s %s: %w (%s)", name, strings.Join(args, " "), err, strings.TrimSpace(string(out)))
	}
	return string(out), nil
}
