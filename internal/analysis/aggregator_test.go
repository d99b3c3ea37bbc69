package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conornaught0n/emg-energy-demo/internal/model"
)

func notes(texts ...string) []model.VoiceNote {
	result := make([]model.VoiceNote, len(texts))
	for i, text := range texts {
		result[i] = model.VoiceNote{ID: "note", Transcription: text}
	}
	return result
}

func TestAnalyzeProject_MissingJobType(t *testing.T) {
	result := AnalyzeProject(notes("boiler", "radiators"), nil)

	assert.Empty(t, result.CheckedItems)
	assert.NotNil(t, result.CheckedItems)
	assert.Empty(t, result.Suggestions)
	assert.Equal(t, 0, result.CompletionPercentage)
}

func TestAnalyzeProject_ChecksItemsAcrossNotes(t *testing.T) {
	jt := testJobType()
	result := AnalyzeProject(notes(
		"solid brick wall construction",
		"double glazed windows throughout",
		"gas boiler with 8 radiators",
	), jt)

	require.Len(t, result.CheckedItems, 4)

	walls := result.CheckedItems["walls-external"]
	assert.True(t, walls.Checked)
	assert.Equal(t, model.CheckedSourceVoice, walls.Source)
	assert.Equal(t, 0, walls.NoteIndex)

	boiler := result.CheckedItems["boiler-type"]
	assert.Equal(t, 2, boiler.NoteIndex)

	// 4 of 4 items checked.
	assert.Equal(t, 100, result.CompletionPercentage)
	assert.Empty(t, result.Suggestions)
}

func TestAnalyzeProject_ConfidenceOnlyIncreases(t *testing.T) {
	jt := testJobType()

	// First note hits 1 of 7 wall keywords, second hits 4, third hits 2.
	result := AnalyzeProject(notes(
		"a wall",
		"solid brick wall, no insulation visible",
		"brick wall",
	), jt)

	walls := result.CheckedItems["walls-external"]
	assert.Equal(t, 80, walls.Confidence)
	// Source stays with the first note that checked the item.
	assert.Equal(t, 0, walls.NoteIndex)
}

func TestAnalyzeProject_ConfidenceOrderIndependent(t *testing.T) {
	jt := testJobType()
	forward := []string{"a wall", "solid brick wall, no insulation visible", "gas boiler"}
	reversed := []string{"gas boiler", "solid brick wall, no insulation visible", "a wall"}

	a := AnalyzeProject(notes(forward...), jt)
	b := AnalyzeProject(notes(reversed...), jt)

	require.Equal(t, len(a.CheckedItems), len(b.CheckedItems))
	for itemID, checked := range a.CheckedItems {
		other, ok := b.CheckedItems[itemID]
		require.True(t, ok, "item %s missing after reorder", itemID)
		// noteIndex may differ; max confidence must not.
		assert.Equal(t, checked.Confidence, other.Confidence, "item %s", itemID)
	}
}

func TestAnalyzeProject_CompletionMonotonic(t *testing.T) {
	jt := testJobType()

	base := AnalyzeProject(notes("solid brick wall"), jt)
	extended := AnalyzeProject(notes("solid brick wall", "gas boiler"), jt)

	assert.GreaterOrEqual(t, extended.CompletionPercentage, base.CompletionPercentage)
}

func TestAnalyzeProject_CompletionRounding(t *testing.T) {
	jt := testJobType()

	// 1 of 4 items.
	result := AnalyzeProject(notes("gas boiler"), jt)
	assert.Equal(t, 25, result.CompletionPercentage)

	// 3 of 4 items.
	result = AnalyzeProject(notes("solid wall", "double glazed window", "gas boiler"), jt)
	assert.Equal(t, 75, result.CompletionPercentage)
}

func TestAnalyzeProject_EmptyChecklistCompletion(t *testing.T) {
	jt := &model.JobType{
		ID:        "hollow",
		Name:      "Hollow",
		Checklist: []model.Category{{ID: "empty", Name: "Empty"}},
	}

	result := AnalyzeProject(notes("anything at all"), jt)
	assert.Equal(t, 0, result.CompletionPercentage)
	assert.Empty(t, result.CheckedItems)
}

func TestAnalyzeProject_Deterministic(t *testing.T) {
	jt := testJobType()
	input := notes("solid brick wall", "gas boiler with radiators", "nice day")

	a := AnalyzeProject(input, jt)
	b := AnalyzeProject(input, jt)

	assert.Equal(t, a, b)
}
