package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var occupancyCmd = &cobra.Command{
	Use:   "occupancy",
	Short: "Occupancy types and building features",
}

var occupancyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List occupancy types with their occupant load factors",
	Long: `List every occupancy type known to gofsi, including any added in the
config file, with its occupant load factor (m² per person) and hazard
classification. Building features that can be passed to 'assess --feature'
are listed after the occupancies.

Examples:
  gofsi occupancy list`,
	Args: cobra.NoArgs,
	RunE: runOccupancyList,
}

func init() {
	rootCmd.AddCommand(occupancyCmd)
	occupancyCmd.AddCommand(occupancyListCmd)
}

func runOccupancyList(cmd *cobra.Command, args []string) error {
	tbl, err := activeConfig().OccupancyTable()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	fmt.Fprintln(out)
	fmt.Fprintln(out, "OCCUPANCY TYPES:")
	fmt.Fprintln(out, "───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  ID\tName\tm²/person\tHazard\n")
	fmt.Fprintf(w, "  ──\t────\t─────────\t──────\n")
	for _, t := range tbl.All() {
		hazard := string(t.Hazard)
		if hazard == "" {
			hazard = "-"
		}
		fmt.Fprintf(w, "  %s\t%s\t%.2f\t%s\n", t.ID, t.Name, t.OccupantLoadFactor, hazard)
	}
	w.Flush()
	fmt.Fprintln(out)

	fmt.Fprintln(out, "BUILDING FEATURES:")
	fmt.Fprintln(out, "───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	for _, f := range tbl.Features() {
		fmt.Fprintf(w, "  %s\t%s\n", f.ID, f.Name)
	}
	w.Flush()
	fmt.Fprintln(out)
	return nil
}
