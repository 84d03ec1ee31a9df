package cmd

import (
	"fmt"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gofsi/internal/calc"
	"github.com/alexiusacademia/gofsi/internal/diagram"
)

var (
	loadArea  float64
	loadItems []string
)

var fireloadCmd = &cobra.Command{
	Use:   "fireload",
	Short: "Calculate fire load density of a compartment",
	Long: `Calculate the fire load density (MJ/m²) of a compartment from its
combustible contents and classify it as light, ordinary or high hazard.

Each item is given as name:mass_kg, using a built-in calorific value, or
name:mass_kg:MJ_per_kg. Built-in materials:
  wood, paper, cotton, polyethylene, polystyrene, pvc,
  rubber, gasoline, diesel, lpg

Examples:
  gofsi fireload --area 50 --item wood:800 --item paper:300
  gofsi fireload --area 120 --item "office furniture:1500:18"`,
	Args: cobra.NoArgs,
	RunE: runFireLoad,
}

func init() {
	rootCmd.AddCommand(fireloadCmd)

	fireloadCmd.Flags().Float64VarP(&loadArea, "area", "a", 0, "Compartment floor area (m²)")
	fireloadCmd.Flags().StringArrayVarP(&loadItems, "item", "i", nil, "Combustible item name:mass[:MJ/kg], repeatable")

	fireloadCmd.MarkFlagRequired("area")
}

func runFireLoad(cmd *cobra.Command, args []string) error {
	fl := &calc.FireLoad{FloorArea: loadArea}
	for _, s := range loadItems {
		c, err := calc.ParseCombustible(s)
		if err != nil {
			return err
		}
		fl.Items = append(fl.Items, c)
	}

	result, err := fl.Calculate()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out)
	fmt.Fprintln(out, "═══════════════════════════════════════════════════════════════")
	fmt.Fprintln(out, "          FIRE LOAD DENSITY")
	fmt.Fprintln(out, "═══════════════════════════════════════════════════════════════")
	fmt.Fprintln(out)

	fmt.Fprintln(out, "COMBUSTIBLE CONTENTS:")
	fmt.Fprintln(out, "───────────────────────────────────────────────────────────────")
	items := make([]calc.ItemLoad, len(result.Items))
	copy(items, result.Items)
	sort.SliceStable(items, func(i, j int) bool { return items[i].Energy > items[j].Energy })

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Item\tEnergy (MJ)\tShare\n")
	fmt.Fprintf(w, "  ────\t───────────\t─────\n")
	for _, it := range items {
		fmt.Fprintf(w, "  %s\t%.0f\t%.1f %%\n", it.Name, it.Energy, it.Share*100)
	}
	w.Flush()
	fmt.Fprintln(out)

	fmt.Fprint(out, diagram.DrawSummaryBox("FIRE LOAD", []string{
		fmt.Sprintf("Total energy:     %.0f MJ", result.TotalEnergy),
		fmt.Sprintf("Density:          %.1f MJ/m²", result.Density),
		fmt.Sprintf("Wood equivalent:  %.1f kg/m²", result.WoodEquivalent),
		fmt.Sprintf("Classification:   %s hazard", result.Classification),
	}))
	fmt.Fprintln(out)
	return nil
}
