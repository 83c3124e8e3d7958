package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jmespath-go/jmespath/internal/value"
	"github.com/jmespath-go/jmespath/pkg/jmespath"
)

func newReplCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Start an interactive JMESPath evaluation loop",
		Args:  cobra.NoArgs,
		RunE:  runRepl,
	}
}

func runRepl(cmd *cobra.Command, args []string) error {
	log.Debug("starting repl")
	defer log.Debug("repl exited")

	out := cmd.OutOrStdout()
	rt := jmespath.Shared()

	fmt.Fprintln(out, "jmespath repl - Type :quit to exit, :help for help")
	fmt.Fprintln(out)

	scanner := bufio.NewScanner(cmd.InOrStdin())

	for {
		fmt.Fprint(out, "jmespath> ")

		if !scanner.Scan() {
			break
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		if line == ":quit" || line == ":q" {
			break
		}

		if strings.HasPrefix(line, ":") {
			handleReplCommand(out, line)

			continue
		}

		result, err := rt.Search(line, value.Null)
		if err != nil {
			fmt.Fprintf(out, "error: %v\n", err)

			continue
		}

		fmt.Fprintln(out, value.MarshalJSON(result))
	}

	return nil
}

func handleReplCommand(out io.Writer, cmd string) {
	switch cmd {
	case ":help", ":h":
		fmt.Fprintln(out, "Available commands:")
		fmt.Fprintln(out, "  :help, :h    Show this help")
		fmt.Fprintln(out, "  :quit, :q    Exit the REPL")
	default:
		fmt.Fprintf(out, "Unknown command: %s\n", cmd)
		fmt.Fprintln(out, "Type :help for available commands")
	}
}
