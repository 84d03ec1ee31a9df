package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/alexiusacademia/gofsi/internal/fees"
)

var (
	feeItems []string
	feeList  bool
)

var feeCmd = &cobra.Command{
	Use:   "fee",
	Short: "Assess hazardous material storage permit fees",
	Long: `Assess the permit fee for hazardous materials stored on the premises.

Each item is given as class:quantity. Quantities at or below the class's
exempt quantity pay nothing; above it the fee is quantity × rate, but never
less than the class minimum. Rates can be overridden in the config file:

  fees:
    lpg:
      rate: "0.75"

Examples:
  # Show the fee schedule
  gofsi fee --list

  # Assess a gasoline station
  gofsi fee --item flammable-liquid:20000 --item lpg:500`,
	Args: cobra.NoArgs,
	RunE: runFee,
}

func init() {
	rootCmd.AddCommand(feeCmd)

	feeCmd.Flags().StringArrayVarP(&feeItems, "item", "i", nil, "Stored material class:quantity, repeatable")
	feeCmd.Flags().BoolVarP(&feeList, "list", "l", false, "List the fee schedule")
}

func runFee(cmd *cobra.Command, args []string) error {
	schedule, err := activeConfig().FeeSchedule()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	if feeList || len(feeItems) == 0 {
		fmt.Fprintln(out)
		fmt.Fprintln(out, "HAZARDOUS MATERIAL FEE SCHEDULE:")
		fmt.Fprintln(out, "───────────────────────────────────────────────────────────────")
		w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "  Class\tDescription\tRate (₱/unit)\tMinimum (₱)\tExempt up to\n")
		fmt.Fprintf(w, "  ─────\t───────────\t─────────────\t───────────\t────────────\n")
		for _, c := range schedule.Classes() {
			fmt.Fprintf(w, "  %s\t%s\t%s\t%s\t%s %s\n", c.ID, c.Name, c.Rate.StringFixed(2), c.Minimum.StringFixed(2), c.ExemptQuantity.String(), c.Unit)
		}
		w.Flush()
		fmt.Fprintln(out)
		return nil
	}

	items := make([]fees.Item, 0, len(feeItems))
	for _, s := range feeItems {
		it, err := fees.ParseItem(s)
		if err != nil {
			return err
		}
		items = append(items, it)
	}

	total, assessed, err := schedule.Total(items)
	if err != nil {
		return err
	}
	logger.Debug("fees assessed", zap.Int("items", len(assessed)), zap.String("total", total.StringFixed(2)))

	fmt.Fprintln(out)
	fmt.Fprintln(out, "═══════════════════════════════════════════════════════════════")
	fmt.Fprintln(out, "          HAZARDOUS MATERIALS PERMIT FEE")
	fmt.Fprintln(out, "═══════════════════════════════════════════════════════════════")
	fmt.Fprintln(out)

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Class\tQuantity\tFee (₱)\tNote\n")
	fmt.Fprintf(w, "  ─────\t────────\t───────\t────\n")
	for _, a := range assessed {
		note := ""
		switch {
		case a.Exempt:
			note = "exempt quantity"
		case a.MinimumApplied:
			note = "minimum fee"
		}
		fmt.Fprintf(w, "  %s\t%s %s\t%s\t%s\n", a.Class.ID, a.Quantity.String(), a.Class.Unit, a.Fee.StringFixed(2), note)
	}
	w.Flush()
	fmt.Fprintln(out)
	fmt.Fprintf(out, "  TOTAL FEE: ₱ %s\n\n", total.StringFixed(2))
	return nil
}
