package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	pk "github.com/TroutSoftware/parsekit/v3"
	"github.com/TroutSoftware/parsekit/v3/toml"
)

func newParseCmd(logger func() *zap.Logger) *cobra.Command {
	var (
		format string
		strict bool
	)

	cmd := &cobra.Command{
		Use:   "parse [file]",
		Short: "Parse a configuration file and print it",
		Long: `Parse a simplified TOML file, and print it as nested maps.

If no file is provided, reads the configuration from stdin.

Unless --strict is set, sections that cannot be parsed are reported
and skipped, and the rest of the file is still printed.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if format != "json" && format != "yaml" {
				return fmt.Errorf("unknown format %q, expected json or yaml", format)
			}

			name := "<stdin>"
			var (
				doc toml.Document
				err error
			)
			if len(args) == 0 {
				src, rerr := io.ReadAll(cmd.InOrStdin())
				if rerr != nil {
					return fmt.Errorf("read stdin: %w", rerr)
				}
				doc, err = parseSource(string(src), name, strict)
			} else {
				name = args[0]
				doc, err = parseFile(name, strict)
			}

			log := logger().With(zap.String("file", name))
			if err != nil {
				if strict || len(doc.Sections) == 0 {
					log.Error("cannot parse configuration", zap.Error(err))
					return fmt.Errorf("parse %s: %w", name, err)
				}
				log.Warn("skipped invalid sections", zap.Error(err))
			}
			log.Debug("parsed configuration", zap.Int("sections", len(doc.Sections)))

			if err := printDocument(cmd.OutOrStdout(), doc, format); err != nil {
				log.Error("cannot print configuration", zap.Error(err))
				return fmt.Errorf("print %s: %w", name, err)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "json", "output format: json or yaml")
	cmd.Flags().BoolVar(&strict, "strict", false, "stop at the first error")

	return cmd
}

func parseSource(src, name string, strict bool) (toml.Document, error) {
	if strict {
		return toml.ParseStrict(src, pk.Named(name))
	}
	return toml.Parse(src, pk.Named(name))
}

func parseFile(name string, strict bool) (toml.Document, error) {
	if strict {
		return pk.Run(toml.Grammar(), pk.ReadFile(name))
	}
	return toml.ParseFile(name)
}

func printDocument(w io.Writer, doc toml.Document, format string) error {
	m, err := doc.Map()
	if err != nil {
		return err
	}

	switch format {
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(m); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	default:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(m); err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		return nil
	}
}
