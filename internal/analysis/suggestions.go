package analysis

import (
	"fmt"

	"github.com/conornaught0n/emg-energy-demo/internal/model"
)

// Priority tiers are static, catalog-coupled policy keyed by category
// id, not derived from the data: fabric and heat-source categories block
// sign-off, secondary system categories follow, everything else is low.
var (
	highPriorityCategories = map[string]bool{
		"building-fabric":   true,
		"heating-systems":   true,
		"property-details":  true,
		"boiler-assessment": true,
	}
	mediumPriorityCategories = map[string]bool{
		"ventilation":  true,
		"distribution": true,
		"controls":     true,
		"attic-access": true,
	}
)

// GenerateSuggestions compares the checked-item state against the full
// checklist and emits one suggestion per category that still has
// unaddressed items, in catalog order. Fully covered categories produce
// nothing. Item order within a suggestion preserves catalog order.
func GenerateSuggestions(jobType *model.JobType, checked map[string]model.CheckedItem) []model.Suggestion {
	if !jobType.HasChecklist() {
		return []model.Suggestion{}
	}

	suggestions := []model.Suggestion{}
	for _, cat := range jobType.Checklist {
		var missing []string
		for _, item := range cat.Items {
			if _, ok := checked[item.ID]; !ok {
				missing = append(missing, item.Name)
			}
		}
		if len(missing) == 0 {
			continue
		}
		suggestions = append(suggestions, model.Suggestion{
			Category: cat.Name,
			Priority: suggestionPriority(cat.ID),
			Items:    missing,
			Message:  fmt.Sprintf(`The following items in "%s" have not been addressed:`, cat.Name),
		})
	}

	return suggestions
}

func suggestionPriority(categoryID string) model.SuggestionPriority {
	switch {
	case highPriorityCategories[categoryID]:
		return model.PriorityHigh
	case mediumPriorityCategories[categoryID]:
		return model.PriorityMedium
	default:
		return model.PriorityLow
	}
}
