package main

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/maxibaudrix/sporvit/engine"
)

// calculatorCommands generates one subcommand per registry entry, so the CLI
// catalogue can never drift from the engine's.
func calculatorCommands() []*cobra.Command {
	cmds := make([]*cobra.Command, 0, len(engine.Calculators()))
	for _, calc := range engine.Calculators() {
		calc := calc
		cmds = append(cmds, &cobra.Command{
			Use:   fmt.Sprintf("%s [field=value ...]", calc.Name),
			Short: calc.Title,
			Long:  calculatorHelp(calc),
			RunE: func(cmd *cobra.Command, args []string) error {
				return runCalculator(calc, args)
			},
		})
	}
	return cmds
}

func calculatorHelp(calc engine.Calculator) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n\nInputs (field=value):\n", calc.Title)
	for _, f := range calc.Schema.Numbers {
		fmt.Fprintf(&b, "  %-18s %g-%g %s%s\n", f.Name, f.Min, f.Max, f.Unit, optionalSuffix(f.Optional))
	}
	for _, f := range calc.Schema.Categories {
		fmt.Fprintf(&b, "  %-18s %s%s\n", f.Name, strings.Join(f.Allowed, "|"), optionalSuffix(f.Optional))
	}
	for _, f := range calc.Schema.Times {
		fmt.Fprintf(&b, "  %-18s RFC 3339 timestamp%s\n", f.Name, optionalSuffix(f.Optional))
	}
	b.WriteString("\nDurations may be given as mm:ss; they are converted to seconds.")
	return b.String()
}

func runCalculator(calc engine.Calculator, args []string) error {
	rec, err := parseRecord(args)
	if err != nil {
		return err
	}

	env, fieldErrs, err := calc.Eval(rec)
	if err != nil {
		return fmt.Errorf("%s: %w", calc.Name, err)
	}
	if len(fieldErrs) > 0 {
		names := make([]string, 0, len(fieldErrs))
		for name := range fieldErrs {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			fmt.Fprintf(os.Stderr, "invalid input %s: %s\n", name, fieldErrs[name])
		}
		return fmt.Errorf("%s: %d invalid input(s)", calc.Name, len(fieldErrs))
	}

	if jsonOut {
		return printJSON(env)
	}
	printEnvelope(calc.Title, env)
	return nil
}

// parseRecord turns field=value arguments into a Record. The value shape
// picks the field kind; schema validation decides whether the field itself
// is expected.
func parseRecord(args []string) (engine.Record, error) {
	rec := engine.Record{
		Numbers:    map[string]float64{},
		Categories: map[string]string{},
		Times:      map[string]time.Time{},
	}
	for _, arg := range args {
		name, value, ok := strings.Cut(arg, "=")
		if !ok || name == "" || value == "" {
			return engine.Record{}, fmt.Errorf("argument %q is not of the form field=value", arg)
		}
		switch {
		case isNumber(value):
			rec.Numbers[name], _ = strconv.ParseFloat(value, 64)
		case isMMSS(value):
			secs, err := engine.ParseMMSS(value)
			if err != nil {
				return engine.Record{}, fmt.Errorf("field %s: %w", name, err)
			}
			rec.Numbers[name] = secs
		case isTimestamp(value):
			t, _ := time.Parse(time.RFC3339, value)
			rec.Times[name] = t
		default:
			rec.Categories[name] = value
		}
	}
	return rec, nil
}

func isNumber(s string) bool {
	_, err := strconv.ParseFloat(s, 64)
	return err == nil
}

func isMMSS(s string) bool {
	if strings.Count(s, ":") != 1 {
		return false
	}
	_, err := engine.ParseMMSS(s)
	return err == nil
}

func isTimestamp(s string) bool {
	_, err := time.Parse(time.RFC3339, s)
	return err == nil
}

func printEnvelope(title string, env *engine.Envelope) {
	fmt.Println(title)
	line := fmt.Sprintf("  %g %s", env.Value, env.Unit)
	if env.Classification != "" {
		line += " (" + env.Classification + ")"
	}
	fmt.Println(line)
	if len(env.Breakdown) > 0 {
		fmt.Println()
		for _, m := range env.Breakdown {
			fmt.Printf("  %-28s %10g %s\n", m.Label, m.Value, m.Unit)
		}
	}
	for _, w := range env.Warnings {
		fmt.Printf("warning: %s\n", w)
	}
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
