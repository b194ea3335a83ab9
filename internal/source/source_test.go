package source

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	return path
}

func TestFileLoaderReadsBothVariants(t *testing.T) {
	dir := t.TempDir()
	orig := writeFile(t, dir, "original.md", "# One\nbody")
	tail := writeFile(t, dir, "tailored.md", "# One\nchanged body")

	pair, err := FileLoader{OriginalPath: orig, TailoredPath: tail}.Load(context.Background())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if pair.Original != "# One\nbody" {
		t.Fatalf("Original = %q", pair.Original)
	}
	if pair.Tailored != "# One\nchanged body" {
		t.Fatalf("Tailored = %q", pair.Tailored)
	}
}

func TestFileLoaderNormalizesCRLF(t *testing.T) {
	dir := t.TempDir()
	orig := writeFile(t, dir, "original.md", "a\r\nb")
	tail := writeFile(t, dir, "tailored.md", "a\nb")

	pair, err := FileLoader{OriginalPath: orig, TailoredPath: tail}.Load(context.Background())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if pair.Original != "a\nb" {
		t.Fatalf("Original = %q, want CRLF stripped", pair.Original)
	}
}

func TestFileLoaderMissingFile(t *testing.T) {
	dir := t.TempDir()
	orig := writeFile(t, dir, "original.md", "x")

	_, err := FileLoader{
		OriginalPath: orig,
		TailoredPath: filepath.Join(dir, "absent.md"),
	}.Load(context.Background())
	if err == nil {
		t.Fatalf("expected error for missing tailored file")
	}
}

func TestCommandLoaderPipesOriginalThroughCommand(t *testing.T) {
	dir := t.TempDir()
	orig := writeFile(t, dir, "original.md", "# Base")

	loader := NewCommandLoader(orig, "generate-tailored")
	var gotStdin, gotCommand string
	loader.runner = func(ctx context.Context, stdin, command string) (string, error) {
		gotStdin = stdin
		gotCommand = command
		return "# Base\r\ntailored extra", nil
	}

	pair, err := loader.Load(context.Background())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if gotStdin != "# Base" || gotCommand != "generate-tailored" {
		t.Fatalf("runner got stdin=%q command=%q", gotStdin, gotCommand)
	}
	if pair.Tailored != "# Base\ntailored extra" {
		t.Fatalf("Tailored = %q, want command output with CRLF stripped", pair.Tailored)
	}
}

func TestCommandLoaderWrapsCommandFailure(t *testing.T) {
	dir := t.TempDir()
	orig := writeFile(t, dir, "original.md", "x")

	loader := NewCommandLoader(orig, "boom")
	wantErr := errors.New("exit status 1")
	loader.runner = func(ctx context.Context, stdin, command string) (string, error) {
		return "", wantErr
	}

	_, err := loader.Load(context.Background())
	if !errors.Is(err, wantErr) {
		t.Fatalf("Load() error = %v, want wrapped %v", err, wantErr)
	}
}
