package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gofsi/internal/calc"
)

var (
	egressLoad       int
	egressStairWidth float64
	egressDoorWidth  float64
	egressExits      int
)

var egressCmd = &cobra.Command{
	Use:   "egress",
	Short: "Check egress capacity of one story (NFPA 101)",
	Long: `Check the egress capacity of one story using the NFPA 101 capacity
factors: 7.6 mm per person for stairs and 5.0 mm per person for level
components and doors. Minimum widths are 1120 mm for stairs and 810 mm for
doors. Two exits are required up to 500 persons, three up to 1000, four
beyond.

Examples:
  # Required widths only
  gofsi egress --load 224

  # Check provided widths and exits
  gofsi egress --load 224 --stair 1200 --door 900 --exits 2`,
	Args: cobra.NoArgs,
	RunE: runEgress,
}

func init() {
	rootCmd.AddCommand(egressCmd)

	egressCmd.Flags().IntVarP(&egressLoad, "load", "l", 0, "Occupant load served (persons)")
	egressCmd.Flags().Float64Var(&egressStairWidth, "stair", 0, "Provided stair clear width (mm)")
	egressCmd.Flags().Float64Var(&egressDoorWidth, "door", 0, "Provided door clear width (mm)")
	egressCmd.Flags().IntVar(&egressExits, "exits", 0, "Number of exits provided")

	egressCmd.MarkFlagRequired("load")
}

func runEgress(cmd *cobra.Command, args []string) error {
	e := &calc.Egress{
		OccupantLoad:  egressLoad,
		StairWidth:    egressStairWidth,
		DoorWidth:     egressDoorWidth,
		ExitsProvided: egressExits,
	}
	result, err := e.Calculate()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out)
	fmt.Fprintln(out, "═══════════════════════════════════════════════════════════════")
	fmt.Fprintln(out, "          EGRESS CAPACITY CHECK - NFPA 101")
	fmt.Fprintln(out, "═══════════════════════════════════════════════════════════════")
	fmt.Fprintln(out)

	fmt.Fprintf(out, "  Occupant load: %d persons\n\n", e.OccupantLoad)

	fmt.Fprintln(out, "REQUIRED:")
	fmt.Fprintln(out, "───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Stair width:\t%.0f mm\n", result.RequiredStairWidth)
	fmt.Fprintf(w, "  Door width:\t%.0f mm\n", result.RequiredDoorWidth)
	fmt.Fprintf(w, "  Number of exits:\t%d\n", result.RequiredExits)
	w.Flush()
	fmt.Fprintln(out)

	if e.StairWidth == 0 && e.DoorWidth == 0 && e.ExitsProvided == 0 {
		return nil
	}

	fmt.Fprintln(out, "PROVIDED:")
	fmt.Fprintln(out, "───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Item\tProvided\tCapacity\tStatus\n")
	fmt.Fprintf(w, "  ────\t────────\t────────\t──────\n")
	if e.StairWidth > 0 {
		fmt.Fprintf(w, "  Stair\t%.0f mm\t%d persons\t%s\n", e.StairWidth, result.StairCapacity, status(result.StairAdequate))
	}
	if e.DoorWidth > 0 {
		fmt.Fprintf(w, "  Door\t%.0f mm\t%d persons\t%s\n", e.DoorWidth, result.DoorCapacity, status(result.DoorAdequate))
	}
	if e.ExitsProvided > 0 {
		fmt.Fprintf(w, "  Exits\t%d\t-\t%s\n", e.ExitsProvided, status(result.ExitsAdequate))
	}
	w.Flush()
	fmt.Fprintln(out)
	return nil
}

func status(ok bool) string {
	if ok {
		return "✓ OK"
	}
	return "✗ INADEQUATE"
}
