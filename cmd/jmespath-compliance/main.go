// Command jmespath-compliance runs the compliance-test harness
// (internal/compliance) against a directory of JSON fixtures and reports
// pass/fail counts, exiting nonzero if any case failed. A thin cobra
// wrapper, grounded in the same CLI wiring as cmd/jmespath.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jmespath-go/jmespath/internal/compliance"
	"github.com/jmespath-go/jmespath/pkg/jmespath"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "jmespath-compliance DIR",
		Short: "Run the JMESPath compliance-test fixtures under DIR",
		Args:  cobra.ExactArgs(1),
		RunE:  runCompliance,
	}
}

func runCompliance(cmd *cobra.Command, args []string) error {
	results, err := compliance.RunDir(args[0], jmespath.Shared())
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()

	failed := 0

	for _, r := range results {
		if r.Passed {
			continue
		}

		failed++

		fmt.Fprintf(out, "FAIL %s (suite %d, case %d) %q: %s\n", r.File, r.SuiteIndex, r.CaseIndex, r.Expression, r.Message)
	}

	fmt.Fprintf(out, "%d cases, %d failed\n", len(results), failed)

	if failed > 0 {
		return fmt.Errorf("%d of %d compliance cases failed", failed, len(results))
	}

	return nil
}
