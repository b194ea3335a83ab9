package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"tailorview/internal/app"
	"tailorview/internal/config"
	"tailorview/internal/logging"
	"tailorview/internal/source"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var (
		mode      string
		tailorCmd string
	)

	cmd := &cobra.Command{
		Use:   "tailorview ORIGINAL [TAILORED]",
		Short: "Side-by-side viewer for an original document and its tailored variant",
		Long: "tailorview renders a constrained Markdown dialect and shows a positional\n" +
			"line diff between an original document and a tailored variant of it.\n" +
			"The tailored variant comes from a second file, or from a command that\n" +
			"receives the original on stdin and prints the tailored text.",
		Args:          cobra.RangeArgs(1, 2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(args, mode, tailorCmd)
		},
	}

	cmd.Flags().StringVarP(&mode, "mode", "m", "", "initial view mode: document, original or diff (default from config)")
	cmd.Flags().StringVar(&tailorCmd, "tailor-cmd", "", "shell command producing the tailored text from the original on stdin")
	return cmd
}

func run(args []string, mode, tailorCmd string) error {
	switch mode {
	case "", config.ModeDocument, config.ModeOriginal, config.ModeDiff:
	default:
		return fmt.Errorf("unknown mode %q: want document, original or diff", mode)
	}

	var loader source.Loader
	switch {
	case tailorCmd != "":
		if len(args) != 1 {
			return fmt.Errorf("--tailor-cmd takes a single ORIGINAL argument")
		}
		loader = source.NewCommandLoader(args[0], tailorCmd)
	case len(args) == 2:
		loader = source.FileLoader{OriginalPath: args[0], TailoredPath: args[1]}
	default:
		return fmt.Errorf("need a TAILORED file or --tailor-cmd")
	}

	cfg, path, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config %s: %w", path, err)
	}

	log := logging.Setup()
	log.Info().Str("mode", mode).Msg("starting")

	model := app.NewModel(cfg, loader, mode, log)
	program := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("application error: %w", err)
	}
	return nil
}
