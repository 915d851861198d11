/*
Copyright © 2026 Seednode <seednode@seedno.de>
*/

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/Seednode/hanabi-variants/variants"
	"github.com/invopop/jsonschema"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func newCheckCmd(cfg *Config) *cobra.Command {
	var quiet bool

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Compile the catalog and report every problem found.",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := loadRegistry(cfg)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if !quiet {
				for _, v := range reg.Catalog.All() {
					fmt.Fprintln(out, v.String())
				}
			}
			fmt.Fprintf(out, "%d variants OK (compiled in %s)\n", reg.Catalog.Len(), reg.Duration)

			return nil
		},
	}

	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "only print the summary line")

	return cmd
}

func newShowCmd(cfg *Config) *cobra.Command {
	return &cobra.Command{
		Use:   "show NAME",
		Short: "Print one compiled variant as JSON.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := loadRegistry(cfg)
			if err != nil {
				return err
			}

			v, ok := reg.Catalog.Get(args[0])
			if !ok {
				return fmt.Errorf("no variant named %q", args[0])
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(v)
		},
	}
}

func buildSchema() *jsonschema.Schema {
	reflector := jsonschema.Reflector{
		RequiredFromJSONSchemaTags: true,
		DoNotReference:             true,
	}

	schema := reflector.Reflect(new(variants.VariantFile))
	schema.Title = "Hanabi Variant Catalog"
	schema.Description = "Validates the records of variants.json. Optional rule flags may only be written as true."

	return schema
}

func writeSchema(w io.Writer, outPath string) error {
	body, err := json.MarshalIndent(buildSchema(), "", "  ")
	if err != nil {
		return errors.Wrap(err, "marshal schema")
	}
	body = append(body, '\n')

	if outPath == "" {
		_, err = w.Write(body)
		return err
	}

	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return errors.Wrap(err, "create schema directory")
	}

	tmpPath := outPath + ".tmp"
	if err := os.WriteFile(tmpPath, body, 0o644); err != nil {
		return errors.Wrap(err, "write temp schema")
	}

	return errors.Wrap(os.Rename(tmpPath, outPath), "replace schema")
}

func newSchemaCmd() *cobra.Command {
	var outPath string

	cmd := &cobra.Command{
		Use:   "schema",
		Short: "Print the JSON Schema for variants.json.",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			return writeSchema(cmd.OutOrStdout(), outPath)
		},
	}

	cmd.Flags().StringVarP(&outPath, "out", "o", "", "write the schema to this path instead of stdout")

	return cmd
}
