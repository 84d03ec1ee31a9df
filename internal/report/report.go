package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/alexiusacademia/gofsi/internal/building"
	"github.com/alexiusacademia/gofsi/internal/requirement"
)

// Format is an output encoding
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat validates a format name
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatText, FormatJSON, FormatYAML:
		return f, nil
	}
	return "", fmt.Errorf("unknown format %q (want text, json or yaml)", s)
}

// Summary is the building part of an assessment
type Summary struct {
	Name              string           `json:"name,omitempty" yaml:"name,omitempty"`
	OccupancyID       string           `json:"occupancy_id" yaml:"occupancy_id"`
	OccupancyName     string           `json:"occupancy_name" yaml:"occupancy_name"`
	Hazard            string           `json:"hazard,omitempty" yaml:"hazard,omitempty"`
	Stories           int              `json:"stories" yaml:"stories"`
	EstimatedHeight   float64          `json:"estimated_height" yaml:"estimated_height"`
	TotalArea         float64          `json:"total_area" yaml:"total_area"`
	TotalOccupantLoad int              `json:"total_occupant_load" yaml:"total_occupant_load"`
	Features          []string         `json:"features,omitempty" yaml:"features,omitempty"`
	Floors            []building.Floor `json:"floors" yaml:"floors"`
}

// Assessment is a rendered set of requirements for one building
type Assessment struct {
	ID           uuid.UUID              `json:"id" yaml:"id"`
	GeneratedAt  time.Time              `json:"generated_at" yaml:"generated_at"`
	Building     Summary                `json:"building" yaml:"building"`
	Requirements []requirement.Expanded `json:"requirements" yaml:"requirements"`
}

// Build assembles an assessment, expanding every requirement's text
func Build(name string, b building.Data, reqs []requirement.FireSafetyRequirement) *Assessment {
	s := Summary{
		Name:              name,
		OccupancyID:       b.Occupancy.ID,
		OccupancyName:     b.Occupancy.Name,
		Hazard:            string(b.Occupancy.Hazard),
		Stories:           b.Stories(),
		EstimatedHeight:   b.EstimatedHeight(),
		TotalArea:         b.TotalArea,
		TotalOccupantLoad: b.TotalOccupantLoad,
		Floors:            b.Floors,
	}
	for _, f := range b.Features {
		s.Features = append(s.Features, f.ID)
	}

	return &Assessment{
		ID:           uuid.New(),
		GeneratedAt:  time.Now().UTC(),
		Building:     s,
		Requirements: requirement.ExpandAll(reqs, b),
	}
}

// Encode writes the assessment in the requested format
func (a *Assessment) Encode(w io.Writer, f Format) error {
	switch f {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(a)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(yamlDoc{ID: a.ID.String(), GeneratedAt: a.GeneratedAt, Building: a.Building, Requirements: a.Requirements}); err != nil {
			return err
		}
		return enc.Close()
	case FormatText:
		return a.writeText(w)
	}
	return fmt.Errorf("unknown format %q", f)
}

// yamlDoc spells the id out as text; uuid.UUID is a byte array
type yamlDoc struct {
	ID           string                 `yaml:"id"`
	GeneratedAt  time.Time              `yaml:"generated_at"`
	Building     Summary                `yaml:"building"`
	Requirements []requirement.Expanded `yaml:"requirements"`
}

const rule = "───────────────────────────────────────────────────────────────"

func (a *Assessment) writeText(w io.Writer) error {
	var sb strings.Builder

	sb.WriteString("\n═══════════════════════════════════════════════════════════════\n")
	sb.WriteString("        FIRE SAFETY REQUIREMENTS - RA 9514 / NFPA\n")
	sb.WriteString("═══════════════════════════════════════════════════════════════\n\n")

	sb.WriteString("BUILDING DATA:\n" + rule + "\n")
	tw := tabwriter.NewWriter(&sb, 0, 0, 2, ' ', 0)
	if a.Building.Name != "" {
		fmt.Fprintf(tw, "  Name:\t%s\n", a.Building.Name)
	}
	fmt.Fprintf(tw, "  Occupancy:\t%s (%s)\n", a.Building.OccupancyName, a.Building.OccupancyID)
	if a.Building.Hazard != "" {
		fmt.Fprintf(tw, "  Hazard classification:\t%s\n", a.Building.Hazard)
	}
	fmt.Fprintf(tw, "  Stories:\t%d\n", a.Building.Stories)
	fmt.Fprintf(tw, "  Estimated height:\t%.1f m\n", a.Building.EstimatedHeight)
	fmt.Fprintf(tw, "  Total floor area:\t%.2f m²\n", a.Building.TotalArea)
	fmt.Fprintf(tw, "  Total occupant load:\t%d persons\n", a.Building.TotalOccupantLoad)
	if len(a.Building.Features) > 0 {
		fmt.Fprintf(tw, "  Features:\t%s\n", strings.Join(a.Building.Features, ", "))
	}
	tw.Flush()
	sb.WriteString("\n")

	if len(a.Building.Floors) > 0 {
		sb.WriteString("FLOORS:\n" + rule + "\n")
		tw = tabwriter.NewWriter(&sb, 0, 0, 2, ' ', 0)
		fmt.Fprintf(tw, "  Floor\tL × W (m)\tArea (m²)\tOccupant Load\n")
		fmt.Fprintf(tw, "  ─────\t─────────\t─────────\t─────────────\n")
		for _, f := range a.Building.Floors {
			fmt.Fprintf(tw, "  %d\t%.2f × %.2f\t%.2f\t%d\n", f.ID, f.Length, f.Width, f.Area, f.OccupantLoad)
		}
		tw.Flush()
		sb.WriteString("\n")
	}

	fmt.Fprintf(&sb, "REQUIRED FIRE SAFETY MEASURES (%d):\n%s\n", len(a.Requirements), rule)
	category := ""
	for _, r := range a.Requirements {
		if r.Category != category {
			category = r.Category
			fmt.Fprintf(&sb, "\n  [%s]\n", category)
		}
		fmt.Fprintf(&sb, "\n  ■ %s", r.Name)
		if r.Code != "" {
			fmt.Fprintf(&sb, " (%s)", r.Code)
		}
		sb.WriteString("\n")
		fmt.Fprintf(&sb, "    %s\n", r.Description)

		tw = tabwriter.NewWriter(&sb, 0, 0, 2, ' ', 0)
		for _, field := range []struct{ label, value string }{
			{"Quantity", r.Quantity},
			{"Type", r.Type},
			{"Specifications", r.Specifications},
			{"Distribution", r.Distribution},
			{"Installation", r.Installation},
			{"Maintenance", r.Maintenance},
		} {
			if field.value != "" {
				fmt.Fprintf(tw, "    %s:\t%s\n", field.label, field.value)
			}
		}
		tw.Flush()
	}
	sb.WriteString("\n" + rule + "\n")
	fmt.Fprintf(&sb, "  Report %s generated %s\n\n", a.ID, a.GeneratedAt.Format(time.RFC3339))

	_, err := io.WriteString(w, sb.String())
	return err
}
