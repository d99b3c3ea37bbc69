package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conornaught0n/emg-energy-demo/internal/model"
)

// testJobType mirrors a slice of the BER assessment checklist.
func testJobType() *model.JobType {
	return &model.JobType{
		ID:   "ber-assessment",
		Name: "BER Rating Assessment",
		Checklist: []model.Category{
			{
				ID:   "building-fabric",
				Name: "Building Fabric",
				Items: []model.ChecklistItem{
					{ID: "walls-external", Name: "External wall construction and U-value", Keywords: []string{"wall", "cavity", "solid", "insulation", "brick", "block", "external"}},
					{ID: "windows-glazing", Name: "Windows and glazing type", Keywords: []string{"window", "glazing", "double", "single", "triple", "pvc", "timber"}},
				},
			},
			{
				ID:   "heating-systems",
				Name: "Heating Systems",
				Items: []model.ChecklistItem{
					{ID: "boiler-type", Name: "Main heating boiler type and age", Keywords: []string{"boiler", "furnace", "heater", "condensing", "combi", "gas", "oil"}},
					{ID: "radiators", Name: "Radiator count and sizing", Keywords: []string{"radiator", "rad", "heating panel"}},
				},
			},
		},
	}
}

func TestMatchNote(t *testing.T) {
	tests := []struct {
		name        string
		text        string
		wantItemIDs []string
	}{
		{
			name:        "single item match",
			text:        "old gas boiler in the kitchen",
			wantItemIDs: []string{"boiler-type"},
		},
		{
			name:        "multiple items across categories in catalog order",
			text:        "solid brick wall, double glazed windows, condensing boiler",
			wantItemIDs: []string{"walls-external", "windows-glazing", "boiler-type"},
		},
		{
			name:        "keyword matching is case insensitive",
			text:        "SOLID BRICK WALL",
			wantItemIDs: []string{"walls-external"},
		},
		{
			name:        "substring match, not word boundary",
			text:        "radiators throughout",
			wantItemIDs: []string{"radiators"},
		},
		{
			name:        "no matches",
			text:        "lovely garden out the back",
			wantItemIDs: nil,
		},
		{
			name:        "empty text",
			text:        "",
			wantItemIDs: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			matches := MatchNote(tt.text, testJobType())

			gotIDs := make([]string, 0, len(matches))
			for _, m := range matches {
				gotIDs = append(gotIDs, m.ItemID)
			}
			if tt.wantItemIDs == nil {
				assert.Empty(t, matches)
			} else {
				assert.Equal(t, tt.wantItemIDs, gotIDs)
			}
		})
	}
}

func TestMatchNote_MissingJobType(t *testing.T) {
	assert.Empty(t, MatchNote("boiler and radiators", nil))
	assert.Empty(t, MatchNote("boiler and radiators", &model.JobType{ID: "empty"}))
}

func TestMatchNote_ConfidenceFormula(t *testing.T) {
	// 4 of 7 keywords hit: wall, solid, insulation, brick.
	matches := MatchNote("solid brick wall, no insulation visible", testJobType())
	require.Len(t, matches, 1)

	assert.Equal(t, "building-fabric", matches[0].CategoryID)
	assert.Equal(t, "Building Fabric", matches[0].CategoryName)
	assert.Equal(t, "walls-external", matches[0].ItemID)
	assert.Equal(t, 80, matches[0].Confidence)
}

func TestMatchNote_ConfidenceBounds(t *testing.T) {
	jt := testJobType()

	texts := []string{
		"wall",
		"wall cavity",
		"wall cavity solid insulation",
		"wall cavity solid insulation brick block external",
		"solid brick wall with cavity insulation, external block and a boiler",
	}

	for _, text := range texts {
		for _, m := range MatchNote(text, jt) {
			assert.GreaterOrEqual(t, m.Confidence, 60, "text %q item %s", text, m.ItemID)
			assert.LessOrEqual(t, m.Confidence, 95, "text %q item %s", text, m.ItemID)
		}
	}
}

func TestMatchNote_ConfidenceMonotonicInKeywordFraction(t *testing.T) {
	jt := testJobType()

	progressive := []string{
		"wall",
		"wall cavity",
		"wall cavity solid",
		"wall cavity solid insulation",
		"wall cavity solid insulation brick",
		"wall cavity solid insulation brick block",
		"wall cavity solid insulation brick block external",
	}

	prev := 0
	for _, text := range progressive {
		matches := MatchNote(text, jt)
		require.NotEmpty(t, matches, "text %q", text)
		assert.GreaterOrEqual(t, matches[0].Confidence, prev, "text %q", text)
		prev = matches[0].Confidence
	}

	// All keywords hit caps at 95, never 100.
	assert.Equal(t, 95, prev)
}
