package main

import (
	"github.com/spf13/cobra"
)

const defaultExpression = "outer.foo || outer.bar"

// newRootCommand builds the jmespath command tree. The root command itself
// behaves exactly like `jmespath query`, per spec.md §6's CLI surface: the
// query behavior is the default when no subcommand is named.
func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "jmespath [EXPRESSION]",
		Short: "Evaluate a JMESPath expression against a JSON document read from stdin",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runQuery,
	}

	root.PersistentFlags().BoolP("verbose", "v", false, "print the parsed AST to stderr before evaluating")

	root.AddCommand(newQueryCommand())
	root.AddCommand(newReplCommand())

	return root
}
