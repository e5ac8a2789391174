package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/maxibaudrix/sporvit/engine"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the calculator catalogue",
	Long:  `List every calculator with its input fields, valid ranges and categorical sets.`,
	RunE:  runList,
}

func runList(cmd *cobra.Command, args []string) error {
	if jsonOut {
		type field struct {
			Name     string   `json:"name"`
			Kind     string   `json:"kind"`
			Min      float64  `json:"min,omitempty"`
			Max      float64  `json:"max,omitempty"`
			Unit     string   `json:"unit,omitempty"`
			Allowed  []string `json:"allowed,omitempty"`
			Optional bool     `json:"optional,omitempty"`
		}
		type entry struct {
			Name   string  `json:"name"`
			Title  string  `json:"title"`
			Fields []field `json:"fields"`
		}
		entries := make([]entry, 0, len(engine.Calculators()))
		for _, c := range engine.Calculators() {
			e := entry{Name: c.Name, Title: c.Title}
			for _, f := range c.Schema.Numbers {
				e.Fields = append(e.Fields, field{Name: f.Name, Kind: "number", Min: f.Min, Max: f.Max, Unit: f.Unit, Optional: f.Optional})
			}
			for _, f := range c.Schema.Categories {
				e.Fields = append(e.Fields, field{Name: f.Name, Kind: "category", Allowed: f.Allowed, Optional: f.Optional})
			}
			for _, f := range c.Schema.Times {
				e.Fields = append(e.Fields, field{Name: f.Name, Kind: "time", Optional: f.Optional})
			}
			entries = append(entries, e)
		}
		return printJSON(entries)
	}

	for _, c := range engine.Calculators() {
		fmt.Printf("%-14s %s\n", c.Name, c.Title)
		for _, f := range c.Schema.Numbers {
			fmt.Printf("    %-18s %g-%g %s%s\n", f.Name, f.Min, f.Max, f.Unit, optionalSuffix(f.Optional))
		}
		for _, f := range c.Schema.Categories {
			fmt.Printf("    %-18s %s%s\n", f.Name, strings.Join(f.Allowed, "|"), optionalSuffix(f.Optional))
		}
		for _, f := range c.Schema.Times {
			fmt.Printf("    %-18s RFC 3339 timestamp%s\n", f.Name, optionalSuffix(f.Optional))
		}
	}
	return nil
}

func optionalSuffix(optional bool) string {
	if optional {
		return " (optional)"
	}
	return ""
}
