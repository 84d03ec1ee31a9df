package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/alexiusacademia/gofsi/internal/calc"
	"github.com/alexiusacademia/gofsi/internal/diagram"
)

var (
	// Fire area
	flowLength  float64
	flowWidth   float64
	flowStories int

	flowInvolvement float64
	flowExposures   int

	// Options
	flowCurve  bool
	flowOutput string
)

var fireflowCmd = &cobra.Command{
	Use:   "fireflow",
	Short: "Calculate needed fire flow (National Fire Academy formula)",
	Long: `Calculate the needed fire flow for a fire area using the National
Fire Academy formula:

  NFF (gpm) = (A / 3) × floors involved × involvement

where A is the fire area in ft². At most three floors are counted and each
exposed side adds 25 % of the base flow, up to 75 %.

Examples:
  # Two-story building, 30 m × 20 m, fully involved
  gofsi fireflow --length 30 --width 20 --stories 2

  # Half involved with two exposures, plot the involvement curve
  gofsi fireflow -L 30 -W 20 -s 2 --involvement 50 --exposures 2 --curve`,
	Args: cobra.NoArgs,
	RunE: runFireFlow,
}

func init() {
	rootCmd.AddCommand(fireflowCmd)

	fireflowCmd.Flags().Float64VarP(&flowLength, "length", "L", 0, "Fire area length (m)")
	fireflowCmd.Flags().Float64VarP(&flowWidth, "width", "W", 0, "Fire area width (m)")
	fireflowCmd.Flags().IntVarP(&flowStories, "stories", "s", 1, "Number of stories")
	fireflowCmd.Flags().Float64VarP(&flowInvolvement, "involvement", "i", 100, "Percent of the area involved")
	fireflowCmd.Flags().IntVarP(&flowExposures, "exposures", "x", 0, "Number of exposed sides (0-4)")

	fireflowCmd.Flags().BoolVarP(&flowCurve, "curve", "c", false, "Plot required flow against involvement")
	fireflowCmd.Flags().StringVar(&flowOutput, "output", "", "Save the involvement curve (.png, .svg or .pdf)")

	fireflowCmd.MarkFlagRequired("length")
	fireflowCmd.MarkFlagRequired("width")
}

func runFireFlow(cmd *cobra.Command, args []string) error {
	ff := calc.NewFireFlow(flowLength, flowWidth, flowStories)
	ff.InvolvementPercent = flowInvolvement
	ff.Exposures = flowExposures

	result, err := ff.Calculate()
	if err != nil {
		return err
	}
	logger.Debug("fire flow calculated", zap.Float64("required_gpm", result.RequiredGPM))

	out := cmd.OutOrStdout()
	fmt.Fprintln(out)
	fmt.Fprintln(out, "═══════════════════════════════════════════════════════════════")
	fmt.Fprintln(out, "          NEEDED FIRE FLOW - NATIONAL FIRE ACADEMY")
	fmt.Fprintln(out, "═══════════════════════════════════════════════════════════════")
	fmt.Fprintln(out)

	fmt.Fprintln(out, "FIRE AREA:")
	fmt.Fprintln(out, "───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Dimensions:\t%.2f m × %.2f m\n", ff.Length, ff.Width)
	fmt.Fprintf(w, "  Area:\t%.2f m² (%.0f ft²)\n", result.FloorAreaSqM, result.FloorAreaSqFt)
	fmt.Fprintf(w, "  Stories:\t%d (%d counted)\n", ff.Stories, result.InvolvedFloors)
	fmt.Fprintf(w, "  Involvement:\t%.0f %%\n", ff.InvolvementPercent)
	fmt.Fprintf(w, "  Exposures:\t%d (+%.0f %%)\n", ff.Exposures, result.ExposureShare*100)
	w.Flush()
	fmt.Fprintln(out)

	fmt.Fprintln(out, "RESULT:")
	fmt.Fprintln(out, "───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Base flow:\t%.0f gpm\n", result.BaseGPM)
	fmt.Fprintf(w, "  Exposure allowance:\t%.0f gpm\n", result.ExposureGPM)
	w.Flush()
	fmt.Fprintln(out)
	fmt.Fprint(out, diagram.DrawSummaryBox("NEEDED FIRE FLOW", []string{
		fmt.Sprintf("%.0f gpm (%.0f L/min)", result.RequiredGPM, result.RequiredLPM),
		fmt.Sprintf("%d hose streams of 250 gpm", result.HoseStreams),
	}))
	fmt.Fprintln(out)

	if !flowCurve && flowOutput == "" {
		return nil
	}
	curve, err := ff.InvolvementCurve()
	if err != nil {
		return err
	}
	if flowCurve {
		fmt.Fprint(out, diagram.DrawASCIIFireFlowCurve(curve))
		fmt.Fprintln(out)
	}
	if flowOutput != "" {
		path, err := diagram.ExportFireFlowCurve(curve, flowOutput)
		if err != nil {
			return fmt.Errorf("failed to export curve: %w", err)
		}
		fmt.Fprintf(out, "Fire flow curve saved to: %s\n\n", path)
	}
	return nil
}
