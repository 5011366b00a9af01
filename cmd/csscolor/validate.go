package main

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/csscolor/pkg/csscolor"
)

type validateFlags struct {
	mode        string
	rule        string
	message     string
	normalizers []string
	json        bool
}

func newValidateCmd(a *app) *cobra.Command {
	var f validateFlags

	cmd := &cobra.Command{
		Use:   "validate [values...]",
		Short: "Validate CSS color values",
		Long: `Validate each argument as a CSS color. Without arguments, values are
read from standard input, one per line.

The exit status is 1 when any value is rejected and 2 on configuration errors.`,
		Example: `  csscolor validate '#C0FFEE' '#fab'
  csscolor validate --mode named_colors red redwood purple
  csscolor validate --normalizer trim,lower '  #ABCDEF '
  csscolor validate --rules-file colors.yaml --rule brand '#c0ffee'`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("json") {
				f.json = !stdoutIsTerminal()
			}

			values := args
			if len(values) == 0 {
				var err error
				if values, err = readLines(cmd.InOrStdin()); err != nil {
					return err
				}
			}

			return a.runValidate(cmd.OutOrStdout(), f, values)
		},
	}

	cmd.Flags().StringVarP(&f.mode, "mode", "m", "", "Mode: hex_long, hex_short or named_colors (default from CSSCOLOR_DEFAULT_MODE)")
	cmd.Flags().StringVarP(&f.rule, "rule", "r", "", "Named rule from the rules file")
	cmd.Flags().StringVar(&f.message, "message", "", "Violation message template; {{ value }} is replaced by the value")
	cmd.Flags().StringSliceVarP(&f.normalizers, "normalizer", "n", nil, "Normalizers applied before matching (see 'csscolor normalizers')")
	cmd.Flags().BoolVar(&f.json, "json", false, "Print results as JSON lines (default when stdout is not a terminal)")

	return cmd
}

func (a *app) runValidate(out io.Writer, f validateFlags, values []string) error {
	v, rules, err := a.validator()
	if err != nil {
		return err
	}

	c, err := rules.Select(f.rule, csscolor.Overrides{
		Mode:        f.mode,
		Message:     f.message,
		Normalizers: f.normalizers,
	})
	if err != nil {
		return err
	}

	var p printer = textPrinter{w: out}
	if f.json {
		p = newJSONPrinter(out)
	}

	failed := 0
	for _, value := range values {
		res, err := v.Validate(value, c)
		if err != nil {
			return err
		}
		if !res.Valid() {
			failed++
		}
		if err := p.Print(value, res); err != nil {
			return err
		}
	}

	a.log.Info("validation finished",
		slog.Int("total", len(values)),
		slog.Int("invalid", failed),
	)

	if failed > 0 {
		return errInvalidValues
	}
	return nil
}

func readLines(r io.Reader) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read values: %w", err)
	}
	return lines, nil
}
