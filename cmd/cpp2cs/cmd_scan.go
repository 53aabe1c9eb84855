package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/BTwiiin/Transpiler-CPP-to-Csharp/cpp"
	"github.com/BTwiiin/Transpiler-CPP-to-Csharp/scanner"
)

func newScanCmd() *cobra.Command {
	var timeout time.Duration

	cmd := &cobra.Command{
		Use:   "scan <path>",
		Short: "Scan a directory tree for C++ class declarations",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScan(args[0], timeout)
		},
	}

	cmd.Flags().DurationVarP(&timeout, "timeout", "t", 10*time.Second, "timeout per file")

	return cmd
}

func runScan(path string, timeout time.Duration) error {
	files, err := scanner.DiscoverSources(path)
	if err != nil {
		return err
	}
	fmt.Printf("Found %d files to scan\n", len(files))

	var classes []*cpp.Class
	var failures []string
	for i, file := range files {
		fmt.Printf("[%d/%d] ", i+1, len(files))
		fileClasses, err := scanner.ParseFileTimeout(file, timeout)
		switch {
		case errors.Is(err, scanner.ErrTimeout):
			fmt.Printf("[TIMEOUT] %s\n", file)
			failures = append(failures, err.Error())
		case err != nil:
			fmt.Printf("[ERROR] %s\n", err)
			failures = append(failures, err.Error())
		default:
			fmt.Printf("[OK] %s (%d classes)\n", file, len(fileClasses))
			classes = append(classes, fileClasses...)
		}
	}

	fmt.Printf("\n=== SCAN COMPLETE ===\n")
	fmt.Printf("Classes found: %d\n", len(classes))
	fmt.Printf("Errors: %d\n", len(failures))
	for _, e := range failures {
		fmt.Printf("  - %s\n", e)
	}
	return nil
}
