package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	pk "github.com/TroutSoftware/parsekit/v3"
)

// greeting upper-cases a leading "hello".
var greeting = pk.Map(pk.Literal("hello"), upper)

// a Caser is stateful, and cannot be shared between runs
func upper(s string) string { return cases.Upper(language.Und).String(s) }

func newDemoCmd(logger func() *zap.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "demo [text]",
		Short: "Upper-case a leading \"hello\" in text",
		Long: `Run a one-rule grammar over text (default "hello, world"),
and print the parsed value, the remaining input and the position reached.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text := "hello, world"
			if len(args) == 1 {
				text = args[0]
			}

			v, rest, err := greeting.Parse(pk.NewCursor(text))
			if err != nil {
				logger().Error("demo grammar failed", zap.String("text", text), zap.Error(err))
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "value: %q\nremaining: %q\nposition: %d\n", v, rest.Remaining(), rest.Pos())
			return err
		},
	}
}
