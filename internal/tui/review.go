// Package tui implements the reviewer view: a survey browser with an
// analysis panel showing checklist coverage, gap suggestions, and the
// drafted report text.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/conornaught0n/emg-energy-demo/internal/analysis"
	"github.com/conornaught0n/emg-energy-demo/internal/catalog"
	"github.com/conornaught0n/emg-energy-demo/internal/model"
	"github.com/conornaught0n/emg-energy-demo/internal/report"
)

type viewState int

const (
	stateList viewState = iota
	stateDetail
)

// surveyItem adapts a survey for the list component.
type surveyItem struct {
	survey     model.Survey
	jobType    *model.JobType
	completion int
}

func (i surveyItem) Title() string {
	ref := i.survey.ProjectReference
	if ref == "" {
		ref = i.survey.ID
	}
	return ref
}

func (i surveyItem) Description() string {
	name := i.survey.JobTypeID
	if i.jobType != nil {
		name = i.jobType.Name
	}
	return fmt.Sprintf("%s · %d notes · %d%% complete", name, len(i.survey.VoiceNotes), i.completion)
}

func (i surveyItem) FilterValue() string {
	return i.survey.ProjectReference + " " + i.survey.JobTypeID
}

// ReviewModel is the top-level bubbletea model for the review view.
type ReviewModel struct {
	catalog  catalog.Catalog
	list     list.Model
	viewport viewport.Model
	state    viewState
	width    int
	height   int
	ready    bool
}

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#2EC27E"))

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Underline(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

// NewReviewModel builds the review view over the given surveys.
func NewReviewModel(surveys []model.Survey, cat catalog.Catalog) ReviewModel {
	items := make([]list.Item, 0, len(surveys))
	for _, survey := range surveys {
		item := surveyItem{survey: survey}
		if jt, ok := cat.Get(survey.JobTypeID); ok {
			item.jobType = &jt
			result := analysis.AnalyzeProject(survey.VoiceNotes, &jt)
			item.completion = result.CompletionPercentage
		}
		items = append(items, item)
	}

	l := list.New(items, list.NewDefaultDelegate(), 0, 0)
	l.Title = "Surveys for review"
	l.SetShowStatusBar(false)

	return ReviewModel{
		catalog: cat,
		list:    l,
		state:   stateList,
	}
}

// Init implements tea.Model.
func (m ReviewModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m ReviewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.list.SetSize(msg.Width, msg.Height-2)
		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height-4)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height - 4
		}

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			if m.state == stateDetail {
				m.state = stateList
				return m, nil
			}
			return m, tea.Quit
		case "esc":
			if m.state == stateDetail {
				m.state = stateList
				return m, nil
			}
		case "enter":
			if m.state == stateList {
				if item, ok := m.list.SelectedItem().(surveyItem); ok {
					m.viewport.SetContent(renderSurveyDetail(item))
					m.viewport.GotoTop()
					m.state = stateDetail
				}
				return m, nil
			}
		}
	}

	var cmd tea.Cmd
	switch m.state {
	case stateList:
		m.list, cmd = m.list.Update(msg)
	case stateDetail:
		m.viewport, cmd = m.viewport.Update(msg)
	}
	return m, cmd
}

// View implements tea.Model.
func (m ReviewModel) View() string {
	if m.state == stateDetail {
		return m.viewport.View() + "\n" + helpStyle.Render("↑/↓ scroll · esc back · q list")
	}
	return m.list.View() + "\n" + helpStyle.Render("enter view analysis · q quit")
}

// renderSurveyDetail builds the analysis panel for one survey.
func renderSurveyDetail(item surveyItem) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(item.Title()))
	b.WriteString("\n\n")

	if item.jobType == nil {
		b.WriteString("Unknown job type: " + item.survey.JobTypeID + "\n")
		return b.String()
	}

	result := analysis.AnalyzeProject(item.survey.VoiceNotes, item.jobType)

	b.WriteString(headerStyle.Render("Checklist coverage"))
	b.WriteString(fmt.Sprintf("\n%d of %d items · %d%% complete\n\n",
		len(result.CheckedItems), item.jobType.TotalItems(), result.CompletionPercentage))

	for _, cat := range item.jobType.Checklist {
		b.WriteString(cat.Name + "\n")
		for _, checklistItem := range cat.Items {
			if checked, ok := result.CheckedItems[checklistItem.ID]; ok {
				b.WriteString(fmt.Sprintf("  ✓ %s (%d%%)\n", checklistItem.Name, checked.Confidence))
			} else {
				b.WriteString(fmt.Sprintf("  ✗ %s\n", checklistItem.Name))
			}
		}
	}

	if len(result.Suggestions) > 0 {
		b.WriteString("\n")
		b.WriteString(headerStyle.Render("Outstanding items"))
		b.WriteString("\n")
		for _, suggestion := range result.Suggestions {
			b.WriteString(fmt.Sprintf("[%s] %s\n", strings.ToUpper(string(suggestion.Priority)), suggestion.Message))
			for _, name := range suggestion.Items {
				b.WriteString("  - " + name + "\n")
			}
		}
	}

	if len(item.survey.VoiceNotes) > 0 {
		b.WriteString("\n")
		b.WriteString(headerStyle.Render("Draft report"))
		b.WriteString("\n")
		b.WriteString(report.DraftProfessionalText(item.survey.VoiceNotes, item.jobType))
	}

	return b.String()
}
