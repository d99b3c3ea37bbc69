// Package model defines the core domain models used throughout the application.
package model

import "fmt"

// JobType describes a survey type and the checklist an assessor works
// through while on site. It is immutable reference data: loaded once
// from the catalog and shared read-only by every analysis run.
type JobType struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Icon        string     `json:"icon"`
	Checklist   []Category `json:"checklist"`
}

// Category groups related checklist items under one survey heading.
type Category struct {
	ID    string          `json:"id"`
	Name  string          `json:"category"`
	Items []ChecklistItem `json:"items"`
}

// ChecklistItem is a single point an assessor must cover, tagged with
// the keywords used to detect it in voice-note transcriptions.
type ChecklistItem struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Keywords []string `json:"keywords"`
}

// TotalItems returns the number of checklist items across all categories.
func (jt *JobType) TotalItems() int {
	if jt == nil {
		return 0
	}
	total := 0
	for _, cat := range jt.Checklist {
		total += len(cat.Items)
	}
	return total
}

// HasChecklist reports whether the job type carries a usable checklist.
// Analysis functions treat a job type without one as "no catalog" and
// degrade to their empty results rather than failing.
func (jt *JobType) HasChecklist() bool {
	return jt != nil && len(jt.Checklist) > 0
}

// Validate ensures the job type satisfies the catalog invariants: every
// item carries at least one keyword, and item ids are unique across the
// whole job type (they key the aggregation map).
func (jt *JobType) Validate() error {
	if jt.ID == "" {
		return fmt.Errorf("job type id is required")
	}
	if jt.Name == "" {
		return fmt.Errorf("job type %q: name is required", jt.ID)
	}

	seen := make(map[string]string)
	for _, cat := range jt.Checklist {
		if cat.ID == "" {
			return fmt.Errorf("job type %q: category id is required", jt.ID)
		}
		if cat.Name == "" {
			return fmt.Errorf("job type %q: category %q: name is required", jt.ID, cat.ID)
		}
		for _, item := range cat.Items {
			if item.ID == "" {
				return fmt.Errorf("job type %q: category %q: item id is required", jt.ID, cat.ID)
			}
			if item.Name == "" {
				return fmt.Errorf("job type %q: item %q: name is required", jt.ID, item.ID)
			}
			if len(item.Keywords) == 0 {
				return fmt.Errorf("job type %q: item %q: at least one keyword is required", jt.ID, item.ID)
			}
			for _, kw := range item.Keywords {
				if kw == "" {
					return fmt.Errorf("job type %q: item %q: empty keyword", jt.ID, item.ID)
				}
			}
			if prev, ok := seen[item.ID]; ok {
				return fmt.Errorf("job type %q: duplicate item id %q in categories %q and %q", jt.ID, item.ID, prev, cat.ID)
			}
			seen[item.ID] = cat.ID
		}
	}

	return nil
}
