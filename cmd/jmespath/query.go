package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmespath-go/jmespath/internal/value"
	"github.com/jmespath-go/jmespath/pkg/eval"
	"github.com/jmespath-go/jmespath/pkg/jmespath"
)

func newQueryCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "query [EXPRESSION]",
		Short: "Evaluate a JMESPath expression against a JSON document read from stdin",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runQuery,
	}
}

func runQuery(cmd *cobra.Command, args []string) error {
	expression := defaultExpression
	if len(args) == 1 {
		expression = args[0]
	}

	verbose, _ := cmd.Flags().GetBool("verbose")

	log.WithField("expression", expression).Debug("evaluating expression")

	rt := jmespath.Shared()

	parsed, err := rt.Parse(expression)
	if err != nil {
		return fmt.Errorf("parsing %q: %w", expression, err)
	}

	if verbose {
		fmt.Fprintln(cmd.ErrOrStderr(), parsed.String())
	}

	root, err := eval.DecodeJSON(cmd.InOrStdin())
	if err != nil {
		log.WithError(err).Warn("failed to decode stdin as JSON")
		return fmt.Errorf("decoding stdin: %w", err)
	}

	result, err := parsed.Evaluate(root)
	if err != nil {
		return fmt.Errorf("evaluating %q: %w", expression, err)
	}

	out, err := value.MarshalJSONIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("rendering result: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), out)

	return nil
}
