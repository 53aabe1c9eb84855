package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/BTwiiin/Transpiler-CPP-to-Csharp/cpp"
	"github.com/BTwiiin/Transpiler-CPP-to-Csharp/format"
	"github.com/BTwiiin/Transpiler-CPP-to-Csharp/scanner"
)

func newTranspileCmd() *cobra.Command {
	var outDir string
	var timeout time.Duration

	cmd := &cobra.Command{
		Use:   "transpile <path>",
		Short: "Transpile a C++ header or directory tree to C#",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTranspile(args[0], outDir, timeout)
		},
	}

	cmd.Flags().StringVarP(&outDir, "output", "o", "", "write one <ClassName>.cs per class into this directory (default stdout)")
	cmd.Flags().DurationVarP(&timeout, "timeout", "t", 10*time.Second, "timeout per file")

	return cmd
}

func runTranspile(path, outDir string, timeout time.Duration) error {
	s := scanner.New()
	result, ok := s.Wait(s.Submit(path, timeout))
	if !ok {
		return fmt.Errorf("scan %s: unknown scan", path)
	}
	if result.Status == scanner.StatusFailed {
		return fmt.Errorf("scan %s: %s", path, result.Error)
	}
	if len(result.Errors) > 0 {
		for _, e := range result.Errors {
			fmt.Fprintln(os.Stderr, e)
		}
		return fmt.Errorf("%d of %d files failed to parse", len(result.Errors), result.Total)
	}
	if result.Total == 0 {
		return fmt.Errorf("no C++ headers under %s", path)
	}

	if outDir == "" {
		return writeStdout(result.Classes)
	}
	return writeDirectory(result.Classes, outDir)
}

func writeStdout(classes []*cpp.Class) error {
	for i, class := range classes {
		if i > 0 {
			fmt.Println()
		}
		enc := format.NewCSharpEncoder(os.Stdout)
		if err := enc.Encode(class); err != nil {
			return fmt.Errorf("encode %s: %w", class.Name, err)
		}
	}
	return nil
}

func writeDirectory(classes []*cpp.Class, outDir string) error {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	for _, class := range classes {
		target := filepath.Join(outDir, class.Name+".cs")
		f, err := os.Create(target)
		if err != nil {
			return fmt.Errorf("create %s: %w", target, err)
		}
		enc := format.NewCSharpEncoder(f)
		if err := enc.Encode(class); err != nil {
			f.Close()
			return fmt.Errorf("encode %s: %w", class.Name, err)
		}
		if err := f.Close(); err != nil {
			return fmt.Errorf("write %s: %w", target, err)
		}
		fmt.Printf("wrote %s\n", target)
	}
	return nil
}
