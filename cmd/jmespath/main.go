// Command jmespath is the query CLI: it reads a JSON document from stdin,
// evaluates a JMESPath expression against it, and prints the result.
//
// Grounded in a prior three-mode CLI (expression flag, REPL, file
// positional), rebuilt on github.com/spf13/cobra.
package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
)

// log is the CLI layer's package-level diagnostic logger. The core
// (pkg/eval, pkg/parser, pkg/registry, pkg/lexer) never logs; only this
// command does, for startup diagnostics.
var log = logrus.New()

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
