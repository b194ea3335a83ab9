package source

import (
	"context"
	"fmt"
	"os"
	"strings"

	"tailorview/internal/util"
)

// Pair is the two raw texts the viewer compares.
type Pair struct {
	Original string
	Tailored string
}

// Loader produces the document pair. Implementations read files or invoke an
// external tailoring command; the core never sees where the texts came from.
type Loader interface {
	Load(ctx context.Context) (Pair, error)
}

// FileLoader reads both variants from disk.
type FileLoader struct {
	OriginalPath string
	TailoredPath string
}

func (l FileLoader) Load(ctx context.Context) (Pair, error) {
	orig, err := readText(l.OriginalPath)
	if err != nil {
		return Pair{}, err
	}
	tail, err := readText(l.TailoredPath)
	if err != nil {
		return Pair{}, err
	}
	return Pair{Original: orig, Tailored: tail}, nil
}

// CommandLoader reads the original from disk and produces the tailored
// variant by piping the original into an external generator command.
type CommandLoader struct {
	OriginalPath string
	Command      string

	runner func(ctx context.Context, stdin, command string) (string, error)
}

func NewCommandLoader(originalPath, command string) CommandLoader {
	return CommandLoader{
		OriginalPath: originalPath,
		Command:      command,
		runner:       runShell,
	}
}

func (l CommandLoader) Load(ctx context.Context) (Pair, error) {
	orig, err := readText(l.OriginalPath)
	if err != nil {
		return Pair{}, err
	}

	run := l.runner
	if run == nil {
		run = runShell
	}
	out, err := run(ctx, orig, l.Command)
	if err != nil {
		return Pair{}, fmt.Errorf("tailor command: %w", err)
	}
	return Pair{Original: orig, Tailored: normalize(out)}, nil
}

func runShell(ctx context.Context, stdin, command string) (string, error) {
	return util.RunWithStdin(ctx, "", stdin, "sh", "-c", command)
}

func readText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	return normalize(string(data)), nil
}

// normalize strips carriage returns so both the parser and the diff can
// split on bare newlines.
func normalize(s string) string {
	return strings.ReplaceAll(s, "\r\n", "\n")
}
