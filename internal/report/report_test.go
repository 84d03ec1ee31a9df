package report

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/alexiusacademia/gofsi/internal/building"
	"github.com/alexiusacademia/gofsi/internal/occupancy"
	"github.com/alexiusacademia/gofsi/internal/requirement"
)

func mall(t *testing.T) *Assessment {
	t.Helper()
	occ, err := occupancy.Default().Get("mercantile")
	require.NoError(t, err)

	s := building.NewSession(occ)
	for i := 0; i < 5; i++ {
		_, err := s.AddFloor(25, 25)
		require.NoError(t, err)
	}
	s.ToggleFeature(occupancy.Feature{ID: "elevator", Name: "Elevator"})

	b := s.Data()
	return Build("Mall", b, requirement.Determine(b))
}

func TestBuild(t *testing.T) {
	a := mall(t)
	assert.NotEqual(t, uuid.Nil, a.ID)
	assert.Equal(t, 5, a.Building.Stories)
	assert.Equal(t, 1120, a.Building.TotalOccupantLoad)
	assert.Equal(t, []string{"elevator"}, a.Building.Features)
	assert.Len(t, a.Requirements, 11)

	assert.NotEqual(t, a.ID, mall(t).ID)
}

func TestEncodeJSON(t *testing.T) {
	a := mall(t)
	var buf bytes.Buffer
	require.NoError(t, a.Encode(&buf, FormatJSON))

	var decoded Assessment
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, a.ID, decoded.ID)
	assert.Equal(t, a.Building.TotalArea, decoded.Building.TotalArea)
	require.Len(t, decoded.Requirements, len(a.Requirements))
	assert.Equal(t, a.Requirements[0].Quantity, decoded.Requirements[0].Quantity)
}

func TestEncodeYAML(t *testing.T) {
	a := mall(t)
	var buf bytes.Buffer
	require.NoError(t, a.Encode(&buf, FormatYAML))

	var decoded yamlDoc
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, a.ID.String(), decoded.ID)
	assert.Equal(t, "mercantile", decoded.Building.OccupancyID)
	assert.Len(t, decoded.Requirements, len(a.Requirements))
}

func TestEncodeText(t *testing.T) {
	a := mall(t)
	var buf bytes.Buffer
	require.NoError(t, a.Encode(&buf, FormatText))

	out := buf.String()
	assert.Contains(t, out, "Automatic Sprinkler System (NFPA 13)")
	assert.Contains(t, out, "[Fire Suppression]")
	assert.Contains(t, out, "1120 persons")
	assert.Contains(t, out, a.ID.String())
	assert.Equal(t, 5, strings.Count(out, "25.00 × 25.00"))
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("JSON")
	require.NoError(t, err)
	assert.Equal(t, FormatJSON, f)

	_, err = ParseFormat("xml")
	assert.Error(t, err)

	assert.Error(t, (&Assessment{}).Encode(&bytes.Buffer{}, Format("xml")))
}
