package clipboard

import (
	"context"
	"runtime"

	"tailorview/internal/util"
)

// CopyText pipes text into the platform clipboard tool. Unknown platforms
// are a silent no-op.
func CopyText(ctx context.Context, text string) error {
	var name string
	var args []string
	switch runtime.GOOS {
	case "darwin":
		name = "pbcopy"
	case "linux":
		name, args = "xclip", []string{"-selection", "clipboard"}
	case "windows":
		name = "clip"
	default:
		return nil
	}

	_, err := util.RunWithStdin(ctx, "", text, name, args...)
	return err
}
