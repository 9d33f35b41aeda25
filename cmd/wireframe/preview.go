package main

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/wireframe/internal/components"
	"github.com/alexisbeaulieu97/wireframe/internal/tui/preview"
)

const defaultPreviewWidth = 100

type previewOptions struct {
	interactive bool
	rows        int
	theme       string
	width       int
}

func newPreviewCmd(app *appContext) *cobra.Command {
	opts := &previewOptions{}

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Render a mock dashboard filled with generated data",
		Long: `Render a dashboard with a nav bar, stat cards, buttons and a records table.
With --interactive the dashboard stays open: r reshuffles the data, t toggles
the theme and q quits.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPreview(cmd, app, opts)
		},
	}

	cmd.Flags().BoolVarP(&opts.interactive, "interactive", "i", false, "Open the interactive preview")
	cmd.Flags().IntVar(&opts.rows, "rows", 0, "Number of table rows (default from config)")
	cmd.Flags().StringVar(&opts.theme, "theme", "light", "Theme: light, dark")
	cmd.Flags().IntVar(&opts.width, "width", 0, "Render width (default: terminal width)")

	return cmd
}

func runPreview(cmd *cobra.Command, app *appContext, opts *previewOptions) error {
	rows := opts.rows
	if rows == 0 {
		rows = app.cfg.Preview.Rows
	}
	if err := validateVar("rows", rows, "min=1,max=50"); err != nil {
		return newCommandError("render preview", "", err, "Pass --rows between 1 and 50.")
	}
	if err := validateVar("theme", opts.theme, "oneof=light dark"); err != nil {
		return newCommandError("render preview", "", err, "Use --theme light or --theme dark.")
	}

	data, err := preview.Generate(app.faker, rows)
	if err != nil {
		return newCommandError("render preview", "generating data", err, "Try a smaller --rows value.")
	}

	out := cmd.OutOrStdout()
	if opts.interactive {
		if !isTerminal(out) {
			return newCommandError("open interactive preview", "", fmt.Errorf("output is not a terminal"), "Run without --interactive to print a static preview.")
		}
		m := preview.NewModel(app.faker, data, rows, app.log.WithComponent("preview"))
		app.log.Debug("launching interactive preview")
		if _, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithOutput(out)).Run(); err != nil {
			app.log.Error(err, "interactive preview failed")
			return newCommandError("run interactive preview", "", err, "Check that your terminal supports full-screen programs.")
		}
		return nil
	}

	width := opts.width
	if width <= 0 {
		width = terminalWidth(out)
	}
	fmt.Fprintln(out, preview.Render(data, components.Mode(opts.theme), width))
	return nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func terminalWidth(w io.Writer) int {
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		if width, _, err := term.GetSize(int(f.Fd())); err == nil && width > 0 {
			return width
		}
	}
	return defaultPreviewWidth
}
