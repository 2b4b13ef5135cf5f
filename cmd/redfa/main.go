package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"redfa"
	"redfa/internal/suite"
)

var (
	green = color.New(color.FgGreen)
	red   = color.New(color.FgRed)
)

func main() {
	root := &cobra.Command{
		Use:          "redfa",
		Short:        "compile regular expressions to DFAs and run them",
		SilenceUsage: true,
	}
	root.AddCommand(matchCmd(), dotCmd(), exportCmd(), runCmd())
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func matchCmd() *cobra.Command {
	var trace bool
	cmd := &cobra.Command{
		Use:   "match <pattern> <input>...",
		Short: "test inputs against a pattern (whole-string match)",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			re, err := redfa.Compile(args[0])
			if err != nil {
				return err
			}
			for _, in := range args[1:] {
				if re.MatchString(in) {
					green.Printf("accept  %q\n", in)
				} else {
					red.Printf("reject  %q\n", in)
				}
				if trace {
					fmt.Printf("  states %v\n", re.Trace(in))
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&trace, "trace", false, "print visited DFA states per input")
	return cmd
}

func dotCmd() *cobra.Command {
	var nfa bool
	var out string
	cmd := &cobra.Command{
		Use:   "dot <pattern>",
		Short: "write a Graphviz rendering of the compiled automaton",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			re, err := redfa.Compile(args[0])
			if err != nil {
				return err
			}
			w := os.Stdout
			if out != "-" {
				f, err := os.Create(out)
				if err != nil {
					return err
				}
				defer f.Close()
				w = f
			}
			if nfa {
				redfa.ExportDOT(w, re.NFA())
			} else {
				redfa.ExportDOT(w, re.DFA())
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&nfa, "nfa", false, "render the Thompson NFA instead of the DFA")
	cmd.Flags().StringVarP(&out, "output", "o", "-", "output file (- for stdout)")
	return cmd
}

func exportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export <pattern>",
		Short: "dump the DFA transition table as YAML",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			re, err := redfa.Compile(args[0])
			if err != nil {
				return err
			}
			data, err := yaml.Marshal(re.DFA().Table())
			if err != nil {
				return err
			}
			_, err = os.Stdout.Write(data)
			return err
		},
	}
}

func runCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run <suite file>",
		Short: "execute a pattern suite file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			s, err := suite.Parse(string(data))
			if err != nil {
				return err
			}
			results := s.Run()
			failed := 0
			for _, r := range results {
				if r.OK() {
					green.Printf("ok    %s\n", r)
				} else {
					red.Printf("FAIL  %s\n", r)
					failed++
				}
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d checks failed", failed, len(results))
			}
			fmt.Printf("%d checks passed\n", len(results))
			return nil
		},
	}
}
