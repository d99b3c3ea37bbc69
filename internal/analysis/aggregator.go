package analysis

import (
	"math"

	"github.com/conornaught0n/emg-energy-demo/internal/model"
)

// AnalyzeProject folds every note of a survey through the matcher and
// returns the per-item checked state, gap suggestions, and the overall
// completion percentage.
//
// Notes are processed in input order. The first match for an item
// checks it and records the note index as its source; later matches
// only raise the confidence (max of all observed, strict improvement
// required). Given identical notes in identical order the result is
// exactly reproducible.
//
// A missing or checklist-less job type is a defined condition, not an
// error: the result is an empty map, no suggestions, and 0% completion.
func AnalyzeProject(notes []model.VoiceNote, jobType *model.JobType) model.ProjectAnalysis {
	checked := make(map[string]model.CheckedItem)

	if !jobType.HasChecklist() {
		return model.ProjectAnalysis{
			CheckedItems: checked,
			Suggestions:  []model.Suggestion{},
		}
	}

	for i, note := range notes {
		for _, match := range MatchNote(note.Transcription, jobType) {
			existing, ok := checked[match.ItemID]
			if !ok {
				checked[match.ItemID] = model.CheckedItem{
					Checked:    true,
					Confidence: match.Confidence,
					Source:     model.CheckedSourceVoice,
					NoteIndex:  i,
				}
				continue
			}
			if match.Confidence > existing.Confidence {
				existing.Confidence = match.Confidence
				checked[match.ItemID] = existing
			}
		}
	}

	return model.ProjectAnalysis{
		CheckedItems:         checked,
		Suggestions:          GenerateSuggestions(jobType, checked),
		CompletionPercentage: completionPercentage(jobType, checked),
	}
}

// completionPercentage is the ratio of checked items to total checklist
// items, rounded to an integer percentage. A checklist with no items at
// all yields 0 rather than dividing by zero.
func completionPercentage(jobType *model.JobType, checked map[string]model.CheckedItem) int {
	total := jobType.TotalItems()
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(len(checked)) / float64(total) * 100))
}
