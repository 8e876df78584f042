// Command iktok is a small demo/admin CLI around package ikseg: it
// loads a dictionary from an ik.yml configuration file and tokenizes
// either a --text argument or stdin, printing one lexeme per line.
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/blueshen/ik-go/config"
	"github.com/blueshen/ik-go/dict"
	"github.com/blueshen/ik-go/ikseg"
)

// modeFlag is a pflag.Value that only accepts "search" or "index",
// rejecting anything else at flag-parse time rather than inside RunE.
type modeFlag struct {
	mode ikseg.Mode
}

var _ pflag.Value = (*modeFlag)(nil)

func (f *modeFlag) String() string {
	if f.mode == ikseg.Index {
		return "index"
	}
	return "search"
}

func (f *modeFlag) Set(s string) error {
	switch strings.ToLower(s) {
	case "search":
		f.mode = ikseg.Search
	case "index":
		f.mode = ikseg.Index
	default:
		return fmt.Errorf("unknown mode %q: want \"search\" or \"index\"", s)
	}
	return nil
}

func (f *modeFlag) Type() string { return "mode" }

func main() {
	var (
		configPath string
		text       string
	)
	mode := &modeFlag{mode: ikseg.Search}

	cmd := &cobra.Command{
		Use:   "iktok",
		Short: "Tokenize text against an IK-style dictionary",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := zap.NewProduction()
			if err != nil {
				return fmt.Errorf("building logger: %w", err)
			}
			defer logger.Sync()

			cfg, err := config.LoadYAML(configPath)
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}

			d := dict.NewDictionary()
			loader := &dict.FileLoader{Log: logger.Sugar()}
			if err := dict.LoadAll(d, cfg, loader); err != nil {
				return fmt.Errorf("loading dictionary: %w", err)
			}

			seg := ikseg.New(d)

			input, err := readInput(cmd.InOrStdin(), text)
			if err != nil {
				return err
			}

			for _, line := range input {
				for _, lx := range seg.Tokenize(line, mode.mode) {
					fmt.Fprintf(cmd.OutOrStdout(), "%s\t%d\t%d\t%s\n", lx.TypeString(), lx.Begin(), lx.End(), lx.Text())
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "ik.yml", "path to the ik.yml configuration file")
	cmd.Flags().StringVar(&text, "text", "", "text to tokenize (reads stdin if empty)")
	cmd.Flags().Var(mode, "mode", "tokenize mode: search or index")

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func readInput(stdin io.Reader, text string) ([]string, error) {
	if text != "" {
		return []string{text}, nil
	}
	var lines []string
	scanner := bufio.NewScanner(stdin)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading stdin: %w", err)
	}
	return lines, nil
}
