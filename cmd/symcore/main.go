// Command symcore runs a symbolic rewrite Universe from the command line:
// normalize its Program against its Rules, render a step-by-step trace, or
// dispatch a single external action.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/SymaLang/symacore/internal/trace"
	"github.com/SymaLang/symacore/pkg/symcore"
)

var (
	universePath string
	maxSteps     int
	skipPrims    bool
	verbose      bool
	onlyRules    []string
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "symcore",
		Short: "Run a symbolic rewrite Universe",
	}
	root.PersistentFlags().StringVarP(&universePath, "universe", "u", "-", "path to a Universe JSON file (\"-\" for stdin)")
	root.PersistentFlags().IntVar(&maxSteps, "max-steps", 10000, "rewrite step budget before a non-termination error")
	root.PersistentFlags().BoolVar(&skipPrims, "skip-prims", false, "skip primitive folding between rewrite steps")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug-level logging")
	registerFilterFlag(root.PersistentFlags())

	root.AddCommand(newNormalizeCmd())
	root.AddCommand(newTraceCmd())
	root.AddCommand(newDispatchCmd())
	return root
}

// registerFilterFlag binds --only directly against the pflag.FlagSet cobra
// wraps, independent of the cobra convenience methods used elsewhere.
func registerFilterFlag(fs *pflag.FlagSet) {
	fs.StringArrayVar(&onlyRules, "only", nil, "restrict rewriting to rules with this name (repeatable)")
}

// filterRules restricts rules to those named in only, preserving priority
// order. A nil or empty only leaves rules unrestricted.
func filterRules(rules []*symcore.Rule, only []string) []*symcore.Rule {
	if len(only) == 0 {
		return rules
	}
	wanted := make(map[string]bool, len(only))
	for _, name := range only {
		wanted[name] = true
	}
	filtered := make([]*symcore.Rule, 0, len(rules))
	for _, r := range rules {
		if wanted[r.Name] {
			filtered = append(filtered, r)
		}
	}
	return filtered
}

func newLogger() hclog.Logger {
	level := hclog.Info
	if verbose {
		level = hclog.Debug
	}
	return hclog.New(&hclog.LoggerOptions{Name: "symcore", Level: level, Output: os.Stderr})
}

func newEngine() *symcore.Engine {
	return symcore.NewEngine(
		symcore.WithMaxSteps(maxSteps),
		symcore.WithSkipPrims(skipPrims),
		symcore.WithLogger(newLogger()),
	)
}

func loadUniverse() (*symcore.Term, error) {
	var r io.Reader = os.Stdin
	if universePath != "-" {
		f, err := os.Open(universePath)
		if err != nil {
			return nil, fmt.Errorf("symcore: open universe file: %w", err)
		}
		defer f.Close()
		r = f
	}
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("symcore: read universe: %w", err)
	}
	u, err := symcore.Deserialize(string(b))
	if err != nil {
		return nil, fmt.Errorf("symcore: decode universe: %w", err)
	}
	return u, nil
}

func printUniverse(u *symcore.Term) error {
	s, err := symcore.Serialize(u)
	if err != nil {
		return fmt.Errorf("symcore: encode universe: %w", err)
	}
	fmt.Println(s)
	return nil
}

func newNormalizeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "normalize",
		Short: "Normalize the Universe's Program against its Rules",
		RunE: func(cmd *cobra.Command, args []string) error {
			universe, err := loadUniverse()
			if err != nil {
				return err
			}
			program, err := symcore.ProgramOf(universe)
			if err != nil {
				return err
			}
			rules, err := symcore.ExtractRules(symcore.RulesOf(universe))
			if err != nil {
				return err
			}
			rules = filterRules(rules, onlyRules)

			engine := newEngine()
			newProgram, err := engine.NormalizeProgram(program, rules)
			if err != nil {
				return err
			}
			return printUniverse(symcore.ReplaceSection(universe, "Program", newProgram))
		},
	}
}

func newTraceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "trace",
		Short: "Normalize and print every rewrite step taken",
		RunE: func(cmd *cobra.Command, args []string) error {
			universe, err := loadUniverse()
			if err != nil {
				return err
			}
			program, err := symcore.ProgramOf(universe)
			if err != nil {
				return err
			}
			rules, err := symcore.ExtractRules(symcore.RulesOf(universe))
			if err != nil {
				return err
			}
			rules = filterRules(rules, onlyRules)

			engine := newEngine()
			newProgram, steps, err := engine.NormalizeProgramWithTrace(program, rules)
			if err != nil {
				return err
			}
			if renderErr := trace.New(steps).Render(os.Stdout); renderErr != nil {
				return renderErr
			}
			return printUniverse(symcore.ReplaceSection(universe, "Program", newProgram))
		},
	}
}

func newDispatchCmd() *cobra.Command {
	var actionJSON string
	cmd := &cobra.Command{
		Use:   "dispatch",
		Short: "Dispatch one external action against the Universe's Program",
		RunE: func(cmd *cobra.Command, args []string) error {
			universe, err := loadUniverse()
			if err != nil {
				return err
			}
			action, err := symcore.Deserialize(actionJSON)
			if err != nil {
				return fmt.Errorf("symcore: decode action: %w", err)
			}

			engine := newEngine()
			updated, err := engine.Dispatch(universe, action)
			if err != nil {
				return err
			}
			return printUniverse(updated)
		},
	}
	cmd.Flags().StringVar(&actionJSON, "action", "", "the action term, as canonical JSON")
	cmd.MarkFlagRequired("action")
	return cmd
}
