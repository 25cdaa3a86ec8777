// The zzre command prints the lines of files that match an expression.
//
// Example:
//
//	$ zzre '(todo|fixme)?*' notes
//	"notes/plan.txt":3:TODO: write the tests
//	"notes/plan.txt":9:fixme later
//
// Each match is printed as "<file>":<line>:<text>. The exit status is 2 if
// the expression or arguments are invalid, 1 if some other error occurred,
// and 0 otherwise.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/DrJosh9000/zzre"
	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"
)

// usageError is an error caused by how the command was invoked.
type usageError struct{ err error }

func (e usageError) Error() string { return e.err.Error() }
func (e usageError) Unwrap() error { return e.err }

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the command and returns the exit status.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.ExecuteContext(ctx)
	if err == nil {
		return 0
	}
	fmt.Fprintf(stderr, "zzre: %v\n", err)

	var uerr usageError
	if errors.As(err, &uerr) || zzre.IsSyntaxError(err) {
		return 2
	}
	return 1
}

func newRootCmd() *cobra.Command {
	var (
		dotLiteral bool
		hidden     bool
		jobs       int
		verbose    int
	)

	cmd := &cobra.Command{
		Use:   "zzre <expression> <file|directory>...",
		Short: "Print lines of files that match an expression",
		Args: func(cmd *cobra.Command, args []string) error {
			if err := cobra.MinimumNArgs(2)(cmd, args); err != nil {
				return usageError{err}
			}
			return nil
		},
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			commonlog.Configure(verbose, nil)
			return runSearch(cmd.Context(), cmd.OutOrStdout(), args[0], args[1:], dotLiteral, hidden, jobs)
		},
	}
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageError{err}
	})

	cmd.Flags().BoolVarP(&dotLiteral, "dot-literal", "l", false, "treat . as a literal instead of the concatenation marker")
	cmd.Flags().BoolVar(&hidden, "hidden", false, "also search hidden files and directories")
	cmd.Flags().IntVarP(&jobs, "jobs", "j", 1, "number of files to search concurrently")
	cmd.Flags().CountVarP(&verbose, "verbose", "v", "log more (repeat for more detail)")

	return cmd
}

func runSearch(ctx context.Context, out io.Writer, expr string, roots []string, dotLiteral, hidden bool, jobs int) error {
	if jobs < 1 {
		return usageError{fmt.Errorf("--jobs must be at least 1, got %d", jobs)}
	}

	a, err := zzre.Compile(expr, zzre.TreatDotAsLiteral(dotLiteral))
	if err != nil {
		return fmt.Errorf("invalid expression %q: %w", expr, err)
	}

	var mu sync.Mutex
	return zzre.Search(ctx, a, roots, func(m zzre.Match) error {
		mu.Lock()
		defer mu.Unlock()
		_, err := fmt.Fprintln(out, zzre.FormatMatch(m))
		return err
	}, zzre.WithGoroutineLimit(jobs), zzre.SkipHidden(!hidden))
}
