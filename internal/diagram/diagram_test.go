package diagram

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func threeStory() ElevationData {
	return ElevationData{
		Title:       "Office",
		StoryHeight: 3,
		Floors: []FloorData{
			{Number: 1, Length: 20, Width: 10, Area: 200, OccupantLoad: 22},
			{Number: 2, Length: 20, Width: 10, Area: 200, OccupantLoad: 22},
			{Number: 3, Length: 10, Width: 10, Area: 100, OccupantLoad: 11},
		},
	}
}

func TestDrawASCIIElevation(t *testing.T) {
	out := DrawASCIIElevation(threeStory())

	assert.Contains(t, out, "OFFICE")
	assert.Contains(t, out, "Stories: 3")
	assert.Contains(t, out, "9.0 m")
	assert.Contains(t, out, "Total occupant load: 55 persons")
	assert.Contains(t, out, "200.00 m²")

	// Top floor is drawn first
	assert.Less(t, strings.Index(out, " F3"), strings.Index(out, " F1"))
}

func TestDrawASCIIElevationEmpty(t *testing.T) {
	out := DrawASCIIElevation(ElevationData{StoryHeight: 3})
	assert.Contains(t, out, "BUILDING ELEVATION")
	assert.Contains(t, out, "(no floors)")
}

func TestDrawASCIIFireFlowCurve(t *testing.T) {
	assert.Empty(t, DrawASCIIFireFlowCurve(nil))

	out := DrawASCIIFireFlowCurve([]float64{100, 200, 300, 400})
	assert.Contains(t, out, "Required fire flow")
	assert.Contains(t, out, "400")
}

func TestDrawSummaryBox(t *testing.T) {
	out := DrawSummaryBox("RESULT", []string{"Area: 625.00 m²", "Load: 224"})
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 6)

	// Every row has the same display width
	width := len([]rune(lines[0]))
	for _, l := range lines {
		assert.Equal(t, width, len([]rune(l)), l)
	}
}

func TestExportOccupantLoadChart(t *testing.T) {
	dir := t.TempDir()

	path, err := ExportOccupantLoadChart(threeStory(), filepath.Join(dir, "charts", "load.svg"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "charts", "load.svg"), path)
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Positive(t, info.Size())

	path, err = ExportOccupantLoadChart(threeStory(), filepath.Join(dir, "load"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "load.png"), path)
	assert.FileExists(t, path)

	_, err = ExportOccupantLoadChart(ElevationData{}, filepath.Join(dir, "x.png"))
	assert.ErrorIs(t, err, ErrNoData)
}

func TestExportFireFlowCurve(t *testing.T) {
	dir := t.TempDir()

	path, err := ExportFireFlowCurve([]float64{100, 200, 300}, filepath.Join(dir, "flow.pdf"))
	require.NoError(t, err)
	assert.FileExists(t, path)

	_, err = ExportFireFlowCurve(nil, filepath.Join(dir, "flow.pdf"))
	assert.ErrorIs(t, err, ErrNoData)
}
