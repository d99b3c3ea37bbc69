package report

import (
	"strings"

	"github.com/conornaught0n/emg-energy-demo/internal/analysis"
	"github.com/conornaught0n/emg-energy-demo/internal/model"
)

// DraftProfessionalText drafts report body text from a survey's notes:
// notes are grouped by their best-matching checklist category, then each
// category is emitted as a header line followed by one bullet per
// professionalized note. Category order is first-seen order from
// categorization; note order within a category is preserved.
//
// The output is plain drafted text, ready for embedding into a report
// document by the templating layer.
func DraftProfessionalText(notes []model.VoiceNote, jobType *model.JobType) string {
	categorized := analysis.CategorizeNotes(notes, jobType)

	var b strings.Builder
	for _, category := range categorized.Categories() {
		b.WriteString("\n\n")
		b.WriteString(category)
		b.WriteString(":\n")
		for _, note := range categorized.Notes(category) {
			b.WriteString("• ")
			b.WriteString(Professionalize(note))
			b.WriteString("\n")
		}
	}

	return b.String()
}
