package model

// Match records that a checklist item's keywords were found in a note's
// transcription. Matches are ephemeral: produced per (note, item) pair
// and folded into the checked-item map by aggregation.
type Match struct {
	CategoryID   string `json:"categoryId"`
	CategoryName string `json:"categoryName"`
	ItemID       string `json:"itemId"`
	ItemName     string `json:"itemName"`
	Confidence   int    `json:"confidence"`
}

// CheckedSource identifies where a checked item's evidence came from.
const CheckedSourceVoice = "voice"

// CheckedItem is the aggregate state for one checklist item across all
// of a survey's notes. Confidence only ever increases; NoteIndex records
// the note that first checked the item.
type CheckedItem struct {
	Source     string `json:"source"`
	Confidence int    `json:"confidence"`
	NoteIndex  int    `json:"noteIndex"`
	Checked    bool   `json:"checked"`
}

// SuggestionPriority ranks how urgently a category's gaps should be
// addressed before the survey is signed off.
type SuggestionPriority string

// Suggestion priority tiers.
const (
	PriorityHigh   SuggestionPriority = "high"
	PriorityMedium SuggestionPriority = "medium"
	PriorityLow    SuggestionPriority = "low"
)

// Suggestion lists the checklist items in one category that no note has
// addressed yet. Recomputed fresh from the checked-item map on every
// analysis; never persisted.
type Suggestion struct {
	Category string             `json:"category"`
	Priority SuggestionPriority `json:"priority"`
	Items    []string           `json:"items"`
	Message  string             `json:"message"`
}

// ProjectAnalysis is the result of analysing all notes of a survey
// against its job type's checklist.
type ProjectAnalysis struct {
	CheckedItems         map[string]CheckedItem `json:"checkedItems"`
	Suggestions          []Suggestion           `json:"suggestions"`
	CompletionPercentage int                    `json:"completionPercentage"`
}
