package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/maxibaudrix/sporvit/batch"
)

var batchOpts batch.Options

var batchCmd = &cobra.Command{
	Use:   "batch --plan plan.yaml --out outdir",
	Short: "Evaluate a YAML plan of calculator requests",
	Long: `Evaluate every request in a YAML plan and write the outcomes as a JSONL
stream, a flat parquet or CSV table and a run manifest.

A plan names requests and their inputs:

  requests:
    - name: reference-bmr
      calculator: energy
      numbers: {weight_kg: 75, height_cm: 180, age: 25}
      categories: {sex: male}`,
	RunE: runBatch,
}

func init() {
	batchCmd.Flags().StringVar(&batchOpts.PlanPath, "plan", "", "Path to the YAML request plan")
	batchCmd.Flags().StringVar(&batchOpts.OutDir, "out", "", "Output directory for run artifacts")
	batchCmd.Flags().StringVar(&batchOpts.Format, "format", "parquet", "Results table format: parquet|csv")
	batchCmd.Flags().BoolVar(&batchOpts.Overwrite, "overwrite", false, "Allow writing into a non-empty output directory")
	_ = batchCmd.MarkFlagRequired("plan")
	_ = batchCmd.MarkFlagRequired("out")
}

func runBatch(cmd *cobra.Command, args []string) error {
	res, err := batch.Run(batchOpts, logger)
	if err != nil {
		return err
	}

	if jsonOut {
		return printJSON(res)
	}
	fmt.Printf("batch run %s complete\n", res.RunID)
	fmt.Printf("output dir:    %s\n", res.OutputDir)
	fmt.Printf("results:       %s\n", res.ResultsPath)
	fmt.Printf("table:         %s\n", res.TablePath)
	fmt.Printf("manifest:      %s\n", res.ManifestPath)
	fmt.Printf("ok %d, invalid %d, error %d\n", res.OKCount, res.InvalidCount, res.ErrorCount)
	return nil
}
