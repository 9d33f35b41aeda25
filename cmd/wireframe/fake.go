package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/wireframe/internal/config"
	"github.com/alexisbeaulieu97/wireframe/internal/fakedata"
)

type fakeOptions struct {
	count  int
	args   map[string]string
	output string
}

func newFakeCmd(app *appContext) *cobra.Command {
	opts := &fakeOptions{}

	cmd := &cobra.Command{
		Use:   "fake <generator>",
		Short: "Generate placeholder values",
		Long: `Run a named generator such as user.email or chart.pie and print the result.
Use "wireframe fake list" to see every generator and its arguments.`,
		Example: `  wireframe fake user.name --count 3
  wireframe fake number.integer --arg min=10 --arg max=20
  wireframe fake list.items --arg count=2 --output json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFake(cmd, app, args[0], opts)
		},
	}

	cmd.Flags().IntVarP(&opts.count, "count", "n", 0, "Repeat the generator N times and print a list")
	cmd.Flags().StringToStringVar(&opts.args, "arg", nil, "Generator argument as key=value (repeatable)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Output format: json, yaml or text (default from config)")

	cmd.AddCommand(newFakeListCmd(app))
	return cmd
}

func runFake(cmd *cobra.Command, app *appContext, name string, opts *fakeOptions) error {
	log := app.log.WithFields(map[string]any{"generator": name})

	format, err := resolveOutput(opts.output, app.cfg)
	if err != nil {
		return newCommandError("generate", name, err, "Use --output json, yaml or text.")
	}
	if cmd.Flags().Changed("count") {
		if err := validateVar("count", opts.count, "min=1,max=1000"); err != nil {
			return newCommandError("generate", name, err, "Pass a --count between 1 and 1000.")
		}
	}

	entry, err := fakedata.Lookup(name)
	if err != nil {
		return newCommandError("generate", name, err, `Run "wireframe fake list" to see available generators.`)
	}

	args := fakedata.Args(opts.args)
	var value any
	if cmd.Flags().Changed("count") {
		var runErr error
		values, genErr := fakedata.Generate(opts.count, func() any {
			if runErr != nil {
				return nil
			}
			v, err := entry.Run(app.faker, args)
			if err != nil {
				runErr = err
			}
			return v
		})
		if genErr != nil {
			runErr = genErr
		}
		err, value = runErr, values
	} else {
		value, err = entry.Run(app.faker, args)
	}
	if err != nil {
		log.Error(err, "generator failed")
		return newCommandError("generate", name, err, "Check the --arg values; fake list shows the defaults.")
	}

	log.Debug("generator finished")
	return writeValue(cmd.OutOrStdout(), format, value)
}

func newFakeListCmd(app *appContext) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List available generators",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := resolveOutput(output, app.cfg)
			if err != nil {
				return newCommandError("list generators", "", err, "Use --output json, yaml or text.")
			}
			return renderGeneratorList(cmd, format)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Output format: json, yaml or text (default from config)")
	return cmd
}

type generatorInfo struct {
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
}

func renderGeneratorList(cmd *cobra.Command, format string) error {
	names := fakedata.Names()
	infos := make([]generatorInfo, 0, len(names))
	for _, name := range names {
		infos = append(infos, generatorInfo{Name: name, Description: fakedata.Registry[name].Description})
	}

	if format != config.OutputText {
		return writeValue(cmd.OutOrStdout(), format, infos)
	}

	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "GENERATOR\tDESCRIPTION")
	for _, info := range infos {
		fmt.Fprintf(tw, "%s\t%s\n", info.Name, info.Description)
	}
	return tw.Flush()
}

func resolveOutput(flag string, cfg *config.Config) (string, error) {
	format := flag
	if format == "" && cfg != nil {
		format = cfg.Output
	}
	if format == "" {
		format = config.OutputText
	}
	if err := validateVar("output", format, "oneof=json yaml text"); err != nil {
		return "", err
	}
	return format, nil
}
