package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/conornaught0n/emg-energy-demo/internal/common"
	"github.com/conornaught0n/emg-energy-demo/internal/model"
)

// SaveSurvey upserts a survey and replaces its voice notes. The stored
// last-modified timestamp is bumped and the version counter incremented
// on updates, mirroring what the sync clients expect back.
func (s *SQLiteStorage) SaveSurvey(ctx context.Context, survey *model.Survey) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if survey == nil {
		return fmt.Errorf("survey cannot be nil")
	}
	if survey.ID == "" {
		survey.ID = uuid.NewString()
	}
	if survey.JobTypeID == "" {
		return fmt.Errorf("survey %s: job type id is required", survey.ID)
	}
	if survey.CreatedAt.IsZero() {
		survey.CreatedAt = time.Now().UTC()
	}
	survey.LastModified = time.Now().UTC()
	if survey.Version == 0 {
		survey.Version = 1
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO surveys (id, project_reference, job_type_id, created_at, last_modified, version)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			project_reference = excluded.project_reference,
			job_type_id = excluded.job_type_id,
			last_modified = excluded.last_modified,
			version = surveys.version + 1`,
		survey.ID, survey.ProjectReference, survey.JobTypeID,
		survey.CreatedAt, survey.LastModified, survey.Version)
	if err != nil {
		return fmt.Errorf("failed to save survey: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM voice_notes WHERE survey_id = ?`, survey.ID); err != nil {
		return fmt.Errorf("failed to clear voice notes: %w", err)
	}

	for i := range survey.VoiceNotes {
		note := &survey.VoiceNotes[i]
		if note.ID == "" {
			note.ID = uuid.NewString()
		}
		if note.CapturedAt.IsZero() {
			note.CapturedAt = time.Now().UTC()
		}
		_, err := tx.ExecContext(ctx, `
			INSERT INTO voice_notes (id, survey_id, position, transcription, captured_at, confidence)
			VALUES (?, ?, ?, ?, ?, ?)`,
			note.ID, survey.ID, i, note.Transcription, note.CapturedAt, note.Confidence)
		if err != nil {
			return fmt.Errorf("failed to save voice note: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit survey: %w", err)
	}

	return nil
}

// GetSurvey loads a survey and its notes by id.
func (s *SQLiteStorage) GetSurvey(ctx context.Context, id string) (*model.Survey, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	var survey model.Survey
	err := s.db.QueryRowContext(ctx, `
		SELECT id, project_reference, job_type_id, created_at, last_modified, version
		FROM surveys WHERE id = ?`, id).
		Scan(&survey.ID, &survey.ProjectReference, &survey.JobTypeID,
			&survey.CreatedAt, &survey.LastModified, &survey.Version)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("survey %s: %w", id, common.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load survey: %w", err)
	}

	notes, err := s.loadNotes(ctx, id)
	if err != nil {
		return nil, err
	}
	survey.VoiceNotes = notes

	return &survey, nil
}

// ListSurveys returns all surveys with their notes, newest first.
func (s *SQLiteStorage) ListSurveys(ctx context.Context) ([]model.Survey, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, project_reference, job_type_id, created_at, last_modified, version
		FROM surveys ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list surveys: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var surveys []model.Survey
	for rows.Next() {
		var survey model.Survey
		if err := rows.Scan(&survey.ID, &survey.ProjectReference, &survey.JobTypeID,
			&survey.CreatedAt, &survey.LastModified, &survey.Version); err != nil {
			return nil, fmt.Errorf("failed to scan survey: %w", err)
		}
		surveys = append(surveys, survey)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate surveys: %w", err)
	}

	for i := range surveys {
		notes, err := s.loadNotes(ctx, surveys[i].ID)
		if err != nil {
			return nil, err
		}
		surveys[i].VoiceNotes = notes
	}

	return surveys, nil
}

// DeleteSurvey removes a survey and its notes.
func (s *SQLiteStorage) DeleteSurvey(ctx context.Context, id string) error {
	if err := validateContext(ctx); err != nil {
		return err
	}

	res, err := s.db.ExecContext(ctx, `DELETE FROM surveys WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete survey: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("survey %s: %w", id, common.ErrNotFound)
	}

	return nil
}

// AddNote appends a voice note to an existing survey.
func (s *SQLiteStorage) AddNote(ctx context.Context, surveyID string, note model.VoiceNote) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if note.Transcription == "" {
		return fmt.Errorf("note transcription cannot be empty")
	}
	if note.ID == "" {
		note.ID = uuid.NewString()
	}
	if note.CapturedAt.IsZero() {
		note.CapturedAt = time.Now().UTC()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var position int
	err = tx.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM voice_notes WHERE survey_id = ?`, surveyID).Scan(&position)
	if err != nil {
		return fmt.Errorf("failed to count voice notes: %w", err)
	}

	res, err := tx.ExecContext(ctx,
		`UPDATE surveys SET last_modified = ? WHERE id = ?`, time.Now().UTC(), surveyID)
	if err != nil {
		return fmt.Errorf("failed to touch survey: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("survey %s: %w", surveyID, common.ErrNotFound)
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO voice_notes (id, survey_id, position, transcription, captured_at, confidence)
		VALUES (?, ?, ?, ?, ?, ?)`,
		note.ID, surveyID, position, note.Transcription, note.CapturedAt, note.Confidence)
	if err != nil {
		return fmt.Errorf("failed to insert voice note: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit note: %w", err)
	}

	return nil
}

// GetStats summarises the stored data.
func (s *SQLiteStorage) GetStats(ctx context.Context) (model.Stats, error) {
	var stats model.Stats
	if err := validateContext(ctx); err != nil {
		return stats, err
	}

	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM surveys`).Scan(&stats.SurveyCount); err != nil {
		return stats, fmt.Errorf("failed to count surveys: %w", err)
	}
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM voice_notes`).Scan(&stats.NoteCount); err != nil {
		return stats, fmt.Errorf("failed to count voice notes: %w", err)
	}

	return stats, nil
}

func (s *SQLiteStorage) loadNotes(ctx context.Context, surveyID string) ([]model.VoiceNote, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, transcription, captured_at, confidence
		FROM voice_notes WHERE survey_id = ? ORDER BY position`, surveyID)
	if err != nil {
		return nil, fmt.Errorf("failed to load voice notes: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var notes []model.VoiceNote
	for rows.Next() {
		var note model.VoiceNote
		if err := rows.Scan(&note.ID, &note.Transcription, &note.CapturedAt, &note.Confidence); err != nil {
			return nil, fmt.Errorf("failed to scan voice note: %w", err)
		}
		notes = append(notes, note)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate voice notes: %w", err)
	}

	return notes, nil
}
