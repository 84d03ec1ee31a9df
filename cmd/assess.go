package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/alexiusacademia/gofsi/internal/building"
	"github.com/alexiusacademia/gofsi/internal/diagram"
	"github.com/alexiusacademia/gofsi/internal/nfpa"
	"github.com/alexiusacademia/gofsi/internal/report"
	"github.com/alexiusacademia/gofsi/internal/requirement"
)

var (
	// Building
	assessName       string
	assessOccupancy  string
	assessFloors     []string
	assessFloorsFile string
	assessFeatures   []string

	// Output
	assessFormat  string
	assessExplain bool
	assessDiagram bool
	assessOutput  string
)

var assessCmd = &cobra.Command{
	Use:   "assess",
	Short: "Determine the fire safety requirements of a building",
	Long: `Determine the fire safety measures required for a building.

The building is described by its occupancy type and one rectangular
floor plate per story, given bottom floor first. Floor area and occupant
load are computed per floor, and the applicable measures are selected
from the requirement catalog. Automatic sprinklers are not required for
a small single-story business, a one- or two-family dwelling of at most
two stories, a naturally ventilated parking garage, a small
telecommunication facility or an agricultural structure used only for
growing crops.

Floors may be read from a YAML or JSON building file:
  name: Riverside Mall
  occupancy: mercantile
  floors:
    - {length: 40, width: 25}
    - {length: 30, width: 25, count: 2}
  features: [basement, elevator]

Examples:
  # Five-story mall
  gofsi assess --occupancy mercantile --floor 25x25 --floor 25x25 \
    --floor 25x25 --floor 25x25 --floor 25x25

  # From a building file, as JSON
  gofsi assess --floors-file mall.yaml --format json

  # Show why each measure was included or left out
  gofsi assess --occupancy business --floor 20x10 --explain

  # Draw the elevation and save an occupant load chart
  gofsi assess --occupancy educational --floor 30x20 --floor 30x20 \
    --diagram --output load.png`,
	Args: cobra.NoArgs,
	RunE: runAssess,
}

func init() {
	rootCmd.AddCommand(assessCmd)

	assessCmd.Flags().StringVarP(&assessName, "name", "n", "", "Building name shown in the report")
	assessCmd.Flags().StringVarP(&assessOccupancy, "occupancy", "o", "", "Occupancy type id (see 'gofsi occupancy list')")
	assessCmd.Flags().StringArrayVarP(&assessFloors, "floor", "f", nil, "Floor dimensions LENGTHxWIDTH in meters, repeat per story")
	assessCmd.Flags().StringVar(&assessFloorsFile, "floors-file", "", "YAML or JSON building definition file")
	assessCmd.Flags().StringSliceVar(&assessFeatures, "feature", nil, "Building feature id, repeatable")

	assessCmd.Flags().StringVar(&assessFormat, "format", "", "Output format: text, json or yaml")
	assessCmd.Flags().BoolVarP(&assessExplain, "explain", "e", false, "Show the inclusion decision for every catalog entry")
	assessCmd.Flags().BoolVarP(&assessDiagram, "diagram", "d", false, "Draw an ASCII elevation of the building")
	assessCmd.Flags().StringVar(&assessOutput, "output", "", "Save an occupant load chart (.png, .svg or .pdf)")
}

func runAssess(cmd *cobra.Command, args []string) error {
	conf := activeConfig()
	out := cmd.OutOrStdout()

	format := assessFormat
	if format == "" {
		format = conf.Defaults.Format
	}
	f, err := report.ParseFormat(format)
	if err != nil {
		return err
	}

	def, err := assessDefinition()
	if err != nil {
		return err
	}
	if def.Occupancy == "" {
		def.Occupancy = conf.Defaults.Occupancy
	}
	if err := def.Validate(); err != nil {
		return err
	}

	tbl, err := conf.OccupancyTable()
	if err != nil {
		return err
	}
	session, err := def.Session(tbl)
	if err != nil {
		return err
	}
	b := session.Data()
	logger.Debug("building aggregated",
		zap.String("occupancy", b.Occupancy.ID),
		zap.Int("stories", b.Stories()),
		zap.Float64("total_area", b.TotalArea),
		zap.Int("total_occupant_load", b.TotalOccupantLoad))

	reqs := requirement.Determine(b)
	logger.Info("requirements determined", zap.Int("count", len(reqs)))

	a := report.Build(def.Name, b, reqs)
	if err := a.Encode(out, f); err != nil {
		return err
	}

	if f == report.FormatText {
		if assessDiagram {
			fmt.Fprint(out, diagram.DrawASCIIElevation(elevationData(def.Name, b)))
			fmt.Fprintln(out)
		}
		if assessExplain {
			printDecisions(cmd, requirement.Explain(b))
		}
	} else if assessDiagram || assessExplain {
		logger.Warn("--diagram and --explain are only shown with text output", zap.String("format", string(f)))
	}

	if assessOutput != "" {
		path, err := diagram.ExportOccupantLoadChart(elevationData(def.Name, b), assessOutput)
		if err != nil {
			return fmt.Errorf("failed to export chart: %w", err)
		}
		logger.Info("chart saved", zap.String("path", path))
		if f == report.FormatText {
			fmt.Fprintf(out, "Occupant load chart saved to: %s\n\n", path)
		}
	}
	return nil
}

// assessDefinition merges the building file with the command line flags
func assessDefinition() (*building.Definition, error) {
	def := &building.Definition{}
	if assessFloorsFile != "" {
		loaded, err := building.LoadFromFile(assessFloorsFile)
		if err != nil {
			return nil, err
		}
		def = loaded
		logger.Debug("building file loaded", zap.String("path", assessFloorsFile), zap.Int("floor_entries", len(def.Floors)))
	}

	if assessName != "" {
		def.Name = assessName
	}
	if assessOccupancy != "" {
		def.Occupancy = assessOccupancy
	}
	for _, s := range assessFloors {
		l, w, err := building.ParseDimensions(s)
		if err != nil {
			return nil, err
		}
		def.Floors = append(def.Floors, building.FloorSpec{Length: l, Width: w})
	}
	def.Features = append(def.Features, assessFeatures...)
	return def, nil
}

func elevationData(name string, b building.Data) diagram.ElevationData {
	data := diagram.ElevationData{
		Title:       name,
		StoryHeight: nfpa.MetersPerStory,
	}
	for _, f := range b.Floors {
		data.Floors = append(data.Floors, diagram.FloorData{
			Number:       f.ID,
			Length:       f.Length,
			Width:        f.Width,
			Area:         f.Area,
			OccupantLoad: f.OccupantLoad,
		})
	}
	return data
}

func printDecisions(cmd *cobra.Command, decisions []requirement.Decision) {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "SELECTION DETAILS:")
	fmt.Fprintln(out, "───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Requirement\tIncluded\tReason\n")
	fmt.Fprintf(w, "  ───────────\t────────\t──────\n")
	for _, d := range decisions {
		mark := "no"
		if d.Included {
			mark = "yes"
		}
		fmt.Fprintf(w, "  %s\t%s\t%s\n", d.Requirement.ID, mark, d.Reason)
	}
	w.Flush()
	fmt.Fprintln(out)
}
