// Package analysis implements the survey-note analysis engine: keyword
// matching of transcriptions against a job type's checklist, aggregation
// of matches into per-survey checked-item state, completion tracking,
// and gap suggestions.
//
// Everything here is a pure function over its inputs. The caller owns
// the catalog snapshot and the note slice and must not mutate them while
// a call is in flight; nothing is retained between calls.
package analysis

import (
	"math"
	"strings"

	"github.com/conornaught0n/emg-energy-demo/internal/model"
)

// Confidence bounds for a keyword match. A single keyword hit scores
// the floor; an item only reaches the ceiling when every keyword hits.
const (
	confidenceFloor   = 60.0
	confidenceCeiling = 95.0
	confidenceSpread  = 35.0
)

// MatchNote scans a transcription against the job type's checklist and
// returns one match per checklist item whose keywords appear in the
// text. Results follow catalog order (categories, then items), not
// confidence order. A job type without a checklist yields no matches.
func MatchNote(text string, jobType *model.JobType) []model.Match {
	if !jobType.HasChecklist() {
		return nil
	}

	lower := strings.ToLower(text)

	var matches []model.Match
	for _, cat := range jobType.Checklist {
		for _, item := range cat.Items {
			if !anyKeywordMatches(lower, item.Keywords) {
				continue
			}
			matches = append(matches, model.Match{
				CategoryID:   cat.ID,
				CategoryName: cat.Name,
				ItemID:       item.ID,
				ItemName:     item.Name,
				Confidence:   keywordConfidence(lower, item.Keywords),
			})
		}
	}

	return matches
}

func anyKeywordMatches(lower string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(lower, strings.ToLower(kw)) {
			return true
		}
	}
	return false
}

// keywordConfidence scores a match by the fraction of the item's
// keywords found in the text: 60 when one of many hits, up to 95 when
// all hit. Catalog validation guarantees a non-empty keyword set.
func keywordConfidence(lower string, keywords []string) int {
	matched := 0
	for _, kw := range keywords {
		if strings.Contains(lower, strings.ToLower(kw)) {
			matched++
		}
	}

	confidence := confidenceFloor + float64(matched)/float64(len(keywords))*confidenceSpread
	return int(math.Round(math.Min(confidenceCeiling, confidence)))
}
