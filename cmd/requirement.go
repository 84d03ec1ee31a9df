package cmd

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gofsi/internal/requirement"
)

var requirementCmd = &cobra.Command{
	Use:     "requirement",
	Aliases: []string{"req"},
	Short:   "Browse the fire safety requirement catalog",
}

var requirementListCmd = &cobra.Command{
	Use:   "list",
	Short: "List every catalog entry with its applicability and thresholds",
	Long: `List every fire safety requirement in catalog order.

An entry applies to a building when the occupancy matches, no exemption
holds and every listed threshold is met (thresholds are inclusive minimums).

Examples:
  gofsi requirement list`,
	Args: cobra.NoArgs,
	RunE: runRequirementList,
}

var requirementShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show one catalog entry",
	Long: `Show the description, code reference, applicability and thresholds of
one catalog entry. Quantities depend on the building and are shown by
'gofsi assess'.

Examples:
  gofsi requirement show automatic-sprinkler-system`,
	Args: cobra.ExactArgs(1),
	RunE: runRequirementShow,
}

func init() {
	rootCmd.AddCommand(requirementCmd)
	requirementCmd.AddCommand(requirementListCmd)
	requirementCmd.AddCommand(requirementShowCmd)
}

func runRequirementList(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	fmt.Fprintln(out)
	fmt.Fprintln(out, "FIRE SAFETY REQUIREMENT CATALOG:")
	fmt.Fprintln(out, "───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  ID\tCode\tApplies to\tThresholds\n")
	fmt.Fprintf(w, "  ──\t────\t──────────\t──────────\n")
	for _, r := range requirement.Catalog() {
		fmt.Fprintf(w, "  %s\t%s\t%s\t%s\n", r.ID, r.Code, strings.Join(r.Occupancies, ", "), describeThresholds(r.Thresholds))
	}
	w.Flush()
	fmt.Fprintln(out)
	return nil
}

func runRequirementShow(cmd *cobra.Command, args []string) error {
	r, ok := requirement.Lookup(args[0])
	if !ok {
		return fmt.Errorf("unknown requirement %q (see 'gofsi requirement list')", args[0])
	}
	out := cmd.OutOrStdout()

	fmt.Fprintln(out)
	fmt.Fprintln(out, "═══════════════════════════════════════════════════════════════")
	fmt.Fprintf(out, "  %s\n", strings.ToUpper(r.Name))
	fmt.Fprintln(out, "═══════════════════════════════════════════════════════════════")
	fmt.Fprintln(out)

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  ID:\t%s\n", r.ID)
	fmt.Fprintf(w, "  Category:\t%s\n", r.Category)
	fmt.Fprintf(w, "  Code:\t%s\n", r.Code)
	fmt.Fprintf(w, "  Applies to:\t%s\n", strings.Join(r.Occupancies, ", "))
	fmt.Fprintf(w, "  Thresholds:\t%s\n", describeThresholds(r.Thresholds))
	w.Flush()
	fmt.Fprintln(out)
	fmt.Fprintf(out, "  %s\n\n", r.Description)
	return nil
}

func describeThresholds(t requirement.Thresholds) string {
	if t.IsEmpty() {
		return "none"
	}
	var parts []string
	if t.OccupantLoad != nil {
		parts = append(parts, fmt.Sprintf("occupant load ≥ %d", *t.OccupantLoad))
	}
	if t.Stories != nil {
		parts = append(parts, fmt.Sprintf("stories ≥ %d", *t.Stories))
	}
	if t.FloorArea != nil {
		parts = append(parts, fmt.Sprintf("area ≥ %.0f m²", *t.FloorArea))
	}
	if t.BuildingHeight != nil {
		parts = append(parts, fmt.Sprintf("height ≥ %.0f m", *t.BuildingHeight))
	}
	return strings.Join(parts, ", ")
}
