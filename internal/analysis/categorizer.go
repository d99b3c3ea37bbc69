package analysis

import "github.com/conornaught0n/emg-energy-demo/internal/model"

// GeneralObservations is the fallback bucket for notes that match no
// checklist item, and the single bucket used when no checklist exists.
const GeneralObservations = "General Observations"

// CategorizedNotes groups note transcriptions by category name. Bucket
// order is first-seen order, which the report drafter relies on; note
// order within a bucket preserves input order.
type CategorizedNotes struct {
	buckets map[string][]string
	order   []string
}

func (c *CategorizedNotes) add(category, transcription string) {
	if c.buckets == nil {
		c.buckets = make(map[string][]string)
	}
	if _, ok := c.buckets[category]; !ok {
		c.order = append(c.order, category)
	}
	c.buckets[category] = append(c.buckets[category], transcription)
}

// Categories returns the bucket names in first-seen order.
func (c *CategorizedNotes) Categories() []string {
	return c.order
}

// Notes returns the transcriptions filed under a category.
func (c *CategorizedNotes) Notes(category string) []string {
	return c.buckets[category]
}

// Len returns the total number of filed transcriptions.
func (c *CategorizedNotes) Len() int {
	n := 0
	for _, notes := range c.buckets {
		n += len(notes)
	}
	return n
}

// CategorizeNotes files each note under the category of its first match
// in catalog order, or under the general bucket when nothing matches.
// Every note lands in exactly one bucket.
func CategorizeNotes(notes []model.VoiceNote, jobType *model.JobType) *CategorizedNotes {
	categorized := &CategorizedNotes{}

	if !jobType.HasChecklist() {
		// Single bucket, present even when there are no notes.
		categorized.buckets = map[string][]string{GeneralObservations: {}}
		categorized.order = []string{GeneralObservations}
		for _, note := range notes {
			categorized.add(GeneralObservations, note.Transcription)
		}
		return categorized
	}

	for _, note := range notes {
		matches := MatchNote(note.Transcription, jobType)
		if len(matches) > 0 {
			categorized.add(matches[0].CategoryName, note.Transcription)
		} else {
			categorized.add(GeneralObservations, note.Transcription)
		}
	}

	return categorized
}
