package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/maxibaudrix/sporvit/engine"
	"github.com/maxibaudrix/sporvit/fitsource"
)

var fitFlags struct {
	weightKg   float64
	restingHR  float64
	preWeight  float64
	postWeight float64
	fluidL     float64
}

var fitCmd = &cobra.Command{
	Use:   "fit <activity.fit>",
	Short: "Derive calculations from a FIT activity file",
	Long: `Decode a FIT activity file and run every calculator its data can feed:
FTP from the best 20-minute power, VO2max from the session max heart rate,
and sweat rate when pre/post scale readings are supplied.`,
	Args: cobra.ExactArgs(1),
	RunE: runFit,
}

func init() {
	fitCmd.Flags().Float64Var(&fitFlags.weightKg, "weight", 0, "Athlete weight in kg (adds power-to-weight to the FTP result)")
	fitCmd.Flags().Float64Var(&fitFlags.restingHR, "resting-hr", 0, "Resting heart rate in bpm (enables VO2max estimation)")
	fitCmd.Flags().Float64Var(&fitFlags.preWeight, "pre-weight", 0, "Weight before the session in kg (enables sweat rate)")
	fitCmd.Flags().Float64Var(&fitFlags.postWeight, "post-weight", 0, "Weight after the session in kg")
	fitCmd.Flags().Float64Var(&fitFlags.fluidL, "fluid", 0, "Fluid intake during the session in liters")
}

// fitDerived pairs a calculator with the record a FIT activity produced for
// it.
type fitDerived struct {
	Calculator string           `json:"calculator"`
	Result     *engine.Envelope `json:"result"`
}

func runFit(cmd *cobra.Command, args []string) error {
	inputs, err := fitsource.FromFile(args[0])
	if err != nil {
		return fmt.Errorf("decode %s: %w", args[0], err)
	}

	type candidate struct {
		name string
		rec  engine.Record
	}
	candidates := []candidate{}
	if rec, ok := inputs.FTPRecord(fitFlags.weightKg); ok {
		candidates = append(candidates, candidate{"ftp", rec})
	}
	if fitFlags.restingHR > 0 {
		if rec, ok := inputs.VO2MaxRecord(fitFlags.restingHR); ok {
			candidates = append(candidates, candidate{"vo2max-hr", rec})
		}
	}
	if fitFlags.preWeight > 0 && fitFlags.postWeight > 0 {
		if rec, ok := inputs.SweatRateRecord(fitFlags.preWeight, fitFlags.postWeight, fitFlags.fluidL); ok {
			candidates = append(candidates, candidate{"sweat", rec})
		}
	}
	if len(candidates) == 0 {
		return fmt.Errorf("%s carries no data any calculator can use (power or heart rate required)", args[0])
	}

	derived := make([]fitDerived, 0, len(candidates))
	for _, c := range candidates {
		calc, ok := engine.Lookup(c.name)
		if !ok {
			continue
		}
		env, fieldErrs, err := calc.Eval(c.rec)
		if err != nil {
			fmt.Printf("%s: skipped: %v\n", calc.Name, err)
			continue
		}
		if len(fieldErrs) > 0 {
			fmt.Printf("%s: skipped: %s\n", calc.Name, fieldErrs.Error())
			continue
		}
		derived = append(derived, fitDerived{Calculator: calc.Name, Result: env})
	}

	if jsonOut {
		return printJSON(struct {
			Activity *fitsource.Inputs `json:"activity"`
			Derived  []fitDerived      `json:"derived"`
		}{inputs, derived})
	}

	fmt.Printf("%s: %.1f km in %.2f h", inputs.Sport, inputs.DistanceM/1000, inputs.DurationH)
	if inputs.AvgHeartRate > 0 {
		fmt.Printf(", avg %.0f bpm", inputs.AvgHeartRate)
	}
	if inputs.Best20MinPowerW > 0 {
		fmt.Printf(", best 20 min %.0f W", inputs.Best20MinPowerW)
	}
	fmt.Println()
	for _, d := range derived {
		calc, _ := engine.Lookup(d.Calculator)
		fmt.Println()
		printEnvelope(calc.Title, d.Result)
	}
	return nil
}
