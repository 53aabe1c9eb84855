package main

import (
	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	"github.com/BTwiiin/Transpiler-CPP-to-Csharp/lsp"
)

func newLSPCmd() *cobra.Command {
	var debug bool
	var logFile string

	cmd := &cobra.Command{
		Use:   "lsp",
		Short: "Start the Language Server Protocol server",
		RunE: func(cmd *cobra.Command, args []string) error {
			verbosity := 1
			if debug {
				verbosity = 2
			}
			var path *string
			if logFile != "" {
				path = &logFile
			}
			commonlog.Configure(verbosity, path)

			server := lsp.NewServer(version, debug)
			return server.RunStdio()
		},
	}

	cmd.Flags().BoolVar(&debug, "debug", false, "enable debug logging")
	cmd.Flags().StringVar(&logFile, "log-file", "", "write logs to this file instead of stderr")

	return cmd
}
