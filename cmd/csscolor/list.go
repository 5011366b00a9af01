package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/csscolor/pkg/csscolor"
	"github.com/dmitrymomot/csscolor/pkg/sanitizer"
)

var modeExamples = map[csscolor.Mode]string{
	csscolor.HexLong:     "#C0FFEE, #C0FFEE80",
	csscolor.HexShort:    "#FAB, #FAB1",
	csscolor.NamedColors: "black red green yellow blue magenta cyan white",
}

func newModesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "modes",
		Short: "List validation modes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, m := range csscolor.Modes() {
				if _, err := fmt.Fprintf(out, "%s  %s\n", keyStyle.Render(fmt.Sprintf("%-12s", m)), modeExamples[m]); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func newRulesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "rules",
		Short: "List rules from the configured rules file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			v, rules, err := a.validator()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, name := range rules.Names() {
				c, _ := rules.Get(name)
				mode, err := v.Resolve(c)
				if err != nil {
					return fmt.Errorf("rule %q: %w", name, err)
				}
				if _, err := fmt.Fprintf(out, "%s  %s\n", keyStyle.Render(name), mode); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func newNormalizersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "normalizers",
		Short: "List normalizer names usable in tags, rule files and --normalizer",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range sanitizer.Names() {
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), name); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
