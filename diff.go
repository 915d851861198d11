/*
Copyright © 2026 Seednode <seednode@seedno.de>
*/

package main

import (
	"fmt"
	"strings"

	"github.com/Seednode/hanabi-variants/variants"
	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/spf13/cobra"
)

// catalogSummary renders one line per variant, in catalog order.
func catalogSummary(c *variants.Catalog) string {
	var b strings.Builder
	for _, v := range c.All() {
		b.WriteString(v.String())
		b.WriteByte('\n')
	}
	return b.String()
}

// diffCatalogs returns the changed summary lines between two catalogs,
// prefixed with "-" or "+". Suit reordering shows up here as changed
// abbreviations.
func diffCatalogs(before, after *variants.Catalog) []string {
	dmp := diffmatchpatch.New()

	a, b, lines := dmp.DiffLinesToChars(catalogSummary(before), catalogSummary(after))
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)

	var out []string
	for _, d := range diffs {
		var marker string
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			marker = "+ "
		case diffmatchpatch.DiffDelete:
			marker = "- "
		default:
			continue
		}

		for _, line := range strings.Split(strings.TrimSuffix(d.Text, "\n"), "\n") {
			out = append(out, marker+line)
		}
	}
	return out
}

func newDiffCmd(cfg *Config) *cobra.Command {
	return &cobra.Command{
		Use:   "diff OLD NEW",
		Short: "Compare the compiled output of two variants.json files.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var compiled [2]*Registry

			for i, path := range args {
				s, err := readSources(cfg, path)
				if err != nil {
					return err
				}

				compiled[i], err = compileSources(s)
				if err != nil {
					logValidations(err)
					return fmt.Errorf("%s: %w", path, err)
				}
			}

			changes := diffCatalogs(compiled[0].Catalog, compiled[1].Catalog)

			out := cmd.OutOrStdout()
			for _, line := range changes {
				fmt.Fprintln(out, line)
			}
			fmt.Fprintf(out, "%d lines changed\n", len(changes))

			return nil
		},
	}
}
