package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validJobType() *JobType {
	return &JobType{
		ID:   "test-survey",
		Name: "Test Survey",
		Checklist: []Category{
			{
				ID:   "cat-a",
				Name: "Category A",
				Items: []ChecklistItem{
					{ID: "item-1", Name: "Item 1", Keywords: []string{"one"}},
					{ID: "item-2", Name: "Item 2", Keywords: []string{"two", "deux"}},
				},
			},
			{
				ID:   "cat-b",
				Name: "Category B",
				Items: []ChecklistItem{
					{ID: "item-3", Name: "Item 3", Keywords: []string{"three"}},
				},
			},
		},
	}
}

func TestJobTypeValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*JobType)
		wantErr string
	}{
		{
			name:   "valid",
			mutate: func(*JobType) {},
		},
		{
			name:    "missing id",
			mutate:  func(jt *JobType) { jt.ID = "" },
			wantErr: "id is required",
		},
		{
			name:    "missing name",
			mutate:  func(jt *JobType) { jt.Name = "" },
			wantErr: "name is required",
		},
		{
			name:    "item without keywords",
			mutate:  func(jt *JobType) { jt.Checklist[0].Items[0].Keywords = nil },
			wantErr: "at least one keyword",
		},
		{
			name:    "empty keyword",
			mutate:  func(jt *JobType) { jt.Checklist[1].Items[0].Keywords = []string{""} },
			wantErr: "empty keyword",
		},
		{
			name:    "duplicate item id across categories",
			mutate:  func(jt *JobType) { jt.Checklist[1].Items[0].ID = "item-1" },
			wantErr: "duplicate item id",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			jt := validJobType()
			tt.mutate(jt)

			err := jt.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				assert.ErrorContains(t, err, tt.wantErr)
			}
		})
	}
}

func TestJobTypeTotalItems(t *testing.T) {
	assert.Equal(t, 3, validJobType().TotalItems())

	var nilJT *JobType
	assert.Equal(t, 0, nilJT.TotalItems())
}

func TestJobTypeHasChecklist(t *testing.T) {
	assert.True(t, validJobType().HasChecklist())

	var nilJT *JobType
	assert.False(t, nilJT.HasChecklist())
	assert.False(t, (&JobType{ID: "bare", Name: "Bare"}).HasChecklist())
}
