package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/BTwiiin/Transpiler-CPP-to-Csharp/cpp"
	"github.com/BTwiiin/Transpiler-CPP-to-Csharp/format"
)

func newDumpCmd() *cobra.Command {
	var dumpFormat string
	var showTokens bool

	cmd := &cobra.Command{
		Use:   "dump <file>",
		Short: "Dump the class model from a C++ header",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filename := args[0]

			if showTokens {
				return dumpTokens(filename)
			}

			classes, err := cpp.ParseFile(filename)
			if err != nil {
				return err
			}

			for _, class := range classes {
				switch dumpFormat {
				case "json":
					enc := format.NewJSONEncoder(os.Stdout)
					if err := enc.Encode(class); err != nil {
						return fmt.Errorf("encode json: %w", err)
					}
					fmt.Println()
				case "csharp":
					enc := format.NewCSharpEncoder(os.Stdout)
					if err := enc.Encode(class); err != nil {
						return fmt.Errorf("encode csharp: %w", err)
					}
				case "line":
					enc := format.NewLineEncoder(os.Stdout)
					if err := enc.Encode(class); err != nil {
						return fmt.Errorf("encode line: %w", err)
					}
				default:
					return fmt.Errorf("unknown format: %s (expected json, csharp, or line)", dumpFormat)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&dumpFormat, "format", "f", "json", "output format (json, csharp, line)")
	cmd.Flags().BoolVar(&showTokens, "tokens", false, "dump the token stream instead of the class model")

	return cmd
}

func dumpTokens(filename string) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("read source file: %w", err)
	}
	tokens, err := cpp.Tokenize(data, cpp.WithFile(filename))
	if err != nil {
		return err
	}
	for _, tok := range tokens {
		fmt.Printf("%d:%d\t%s\t%q\n", tok.Line, tok.Column, tok.Kind, tok.Lexeme)
	}
	return nil
}
