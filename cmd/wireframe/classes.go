package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/wireframe/internal/components"
)

type classesOptions struct {
	buttonType string
	size       string
	color      string
	theme      string
	disabled   bool
	loading    bool
	iconOnly   bool
	class      string
	render     string
}

func newClassesCmd(app *appContext) *cobra.Command {
	opts := &classesOptions{}

	cmd := &cobra.Command{
		Use:   "classes",
		Short: "Print the utility classes for a button variant",
		Example: `  wireframe classes --type outline --color danger
  wireframe classes --type text-action --class "mt-2" --render "Learn more"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runClasses(cmd, app, opts)
		},
	}

	cmd.Flags().StringVar(&opts.buttonType, "type", "", "Button type: default, outline, ghost, text-action")
	cmd.Flags().StringVar(&opts.size, "size", "", "Button size: sm, md, lg")
	cmd.Flags().StringVar(&opts.color, "color", "", "Button color: primary, secondary, danger, neutral")
	cmd.Flags().StringVar(&opts.theme, "theme", "", "Theme: light, dark")
	cmd.Flags().BoolVar(&opts.disabled, "disabled", false, "Disabled state")
	cmd.Flags().BoolVar(&opts.loading, "loading", false, "Loading state")
	cmd.Flags().BoolVar(&opts.iconOnly, "icon-only", false, "Square icon-only button")
	cmd.Flags().StringVar(&opts.class, "class", "", "Extra classes appended last")
	cmd.Flags().StringVar(&opts.render, "render", "", "Also render a terminal preview with this label")

	return cmd
}

func runClasses(cmd *cobra.Command, app *appContext, opts *classesOptions) error {
	checks := []struct {
		flag, value, tag string
	}{
		{"type", opts.buttonType, "omitempty,oneof=default outline ghost text-action"},
		{"size", opts.size, "omitempty,oneof=sm md lg"},
		{"color", opts.color, "omitempty,oneof=primary secondary danger neutral"},
		{"theme", opts.theme, "omitempty,oneof=light dark"},
	}
	for _, c := range checks {
		if err := validateVar(c.flag, c.value, c.tag); err != nil {
			return newCommandError("resolve classes", "--"+c.flag, err, "Run \"wireframe classes --help\" for accepted values.")
		}
	}

	props := components.ButtonProps{
		Type:     components.ButtonType(opts.buttonType),
		Size:     components.ButtonSize(opts.size),
		Color:    components.ButtonColor(opts.color),
		Theme:    components.Mode(opts.theme),
		Disabled: opts.disabled,
		Loading:  opts.loading,
		IconOnly: opts.iconOnly,
		Class:    opts.class,
	}
	classes := components.ButtonClasses(props)
	app.log.WithFields(map[string]any{"selection": props.Selection()}).Debug("button classes resolved")

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, classes)
	if opts.render != "" {
		fmt.Fprintln(out, components.NewButton(opts.render, props).View())
	}
	return nil
}
