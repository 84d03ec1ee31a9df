package cmd

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gofsi/internal/reference"
)

var referenceCmd = &cobra.Command{
	Use:     "reference",
	Aliases: []string{"ref"},
	Short:   "Look up fire codes and standards",
}

var referenceSearchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search codes and standards by keyword",
	Long: `Search the code library by keyword. Entries matching more query words
rank first. Without a query every entry is listed.

Examples:
  gofsi reference search sprinkler
  gofsi reference search "smoke control"`,
	RunE: runReferenceSearch,
}

var referenceShowCmd = &cobra.Command{
	Use:   "show <code>",
	Short: "Show one code or standard",
	Long: `Show one code or standard by its designation, case-insensitive.

Examples:
  gofsi reference show "NFPA 13"
  gofsi reference show "ra 9514"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runReferenceShow,
}

func init() {
	rootCmd.AddCommand(referenceCmd)
	referenceCmd.AddCommand(referenceSearchCmd)
	referenceCmd.AddCommand(referenceShowCmd)
}

func runReferenceSearch(cmd *cobra.Command, args []string) error {
	lib := reference.Default()
	query := strings.Join(args, " ")

	entries := lib.All()
	if query != "" {
		entries = lib.Search(query)
	}
	out := cmd.OutOrStdout()
	if len(entries) == 0 {
		fmt.Fprintf(out, "No references match %q.\n", query)
		return nil
	}

	fmt.Fprintln(out)
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Code\tTitle\tEdition\n")
	fmt.Fprintf(w, "  ────\t─────\t───────\n")
	for _, e := range entries {
		fmt.Fprintf(w, "  %s\t%s\t%s\n", e.Code, e.Title, e.Edition)
	}
	w.Flush()
	fmt.Fprintln(out)
	return nil
}

func runReferenceShow(cmd *cobra.Command, args []string) error {
	e, err := reference.Default().ByCode(strings.Join(args, " "))
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	fmt.Fprintln(out)
	fmt.Fprintln(out, "═══════════════════════════════════════════════════════════════")
	fmt.Fprintf(out, "  %s - %s\n", e.Code, e.Title)
	fmt.Fprintln(out, "═══════════════════════════════════════════════════════════════")
	if e.Edition != "" {
		fmt.Fprintf(out, "  Edition: %s\n", e.Edition)
	}
	fmt.Fprintln(out)
	fmt.Fprintf(out, "  %s\n", e.Summary)
	if len(e.Tags) > 0 {
		fmt.Fprintf(out, "\n  Tags: %s\n", strings.Join(e.Tags, ", "))
	}
	fmt.Fprintln(out)
	return nil
}
