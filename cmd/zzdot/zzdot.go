// The zzdot command writes the automaton for an expression in GraphViz dot
// syntax. If text is given, the states active after reading it are
// highlighted.
//
// Example:
//
//	$ zzdot '(ab|c)*' abc | dot -Tsvg > automaton.svg
package main

import (
	"fmt"
	"os"

	"github.com/DrJosh9000/zzre"
	"github.com/spf13/cobra"
)

func main() {
	var dotLiteral bool

	cmd := &cobra.Command{
		Use:   "zzdot <expression> [text]",
		Short: "Write the automaton for an expression as a GraphViz digraph",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := zzre.Compile(args[0], zzre.TreatDotAsLiteral(dotLiteral))
			if err != nil {
				return fmt.Errorf("couldn't compile expression %q: %w", args[0], err)
			}

			var hilite map[int]struct{}
			if len(args) == 2 {
				hilite = make(map[int]struct{})
				for _, s := range a.ActiveStates(args[1]) {
					hilite[s] = struct{}{}
				}
			}

			if err := a.WriteDot(cmd.OutOrStdout(), hilite); err != nil {
				return fmt.Errorf("couldn't write dot output: %w", err)
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&dotLiteral, "dot-literal", "l", false, "treat . as a literal instead of the concatenation marker")

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
