package model

import "time"

// VoiceNote is a single transcribed observation captured on site.
// Notes are immutable once captured; only the transcription is consumed
// by analysis.
type VoiceNote struct {
	CapturedAt    time.Time `json:"captured_at"`
	ID            string    `json:"id"`
	Transcription string    `json:"transcription"`
	Confidence    float64   `json:"confidence,omitempty"`
}

// Survey is the unit of capture and sync: one site visit for one job
// type, with its ordered voice notes.
type Survey struct {
	CreatedAt        time.Time   `json:"createdAt"`
	LastModified     time.Time   `json:"lastModified"`
	ID               string      `json:"jobId"`
	ProjectReference string      `json:"projectReference"`
	JobTypeID        string      `json:"jobTypeId"`
	VoiceNotes       []VoiceNote `json:"voiceNotes"`
	Version          int         `json:"version"`
}

// Stats summarises the stored survey data.
type Stats struct {
	SurveyCount int `json:"total"`
	NoteCount   int `json:"totalVoiceNotes"`
}
