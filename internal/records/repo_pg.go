package records

import (
	"context"
	"database/sql"
	"encoding/json"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// CreateApplication inserts a new application.
func (r *PGRepo) CreateApplication(ctx context.Context, app Application) error {
	const query = `
INSERT INTO applications (id, user_id, company, title, status, applied_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.DB.ExecContext(ctx, query,
		app.ID, app.UserID, app.Company, app.Title, app.Status, app.AppliedAt, app.UpdatedAt)
	return err
}

// UpdateApplicationStatus updates the status of one application.
func (r *PGRepo) UpdateApplicationStatus(ctx context.Context, userID, appID, status string) error {
	const query = `
UPDATE applications SET status = $1, updated_at = NOW() WHERE id = $2 AND user_id = $3`

	res, err := r.DB.ExecContext(ctx, query, status, appID, userID)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// ListApplicationsByUser returns the user's applications, newest first.
func (r *PGRepo) ListApplicationsByUser(ctx context.Context, userID string) ([]Application, error) {
	const query = `
SELECT id, user_id, company, title, status, applied_at, updated_at
FROM applications
WHERE user_id = $1
ORDER BY applied_at DESC`

	rows, err := r.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Application
	for rows.Next() {
		var app Application
		if err := rows.Scan(&app.ID, &app.UserID, &app.Company, &app.Title, &app.Status, &app.AppliedAt, &app.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, app)
	}
	return out, rows.Err()
}

// CreateAnalysis inserts a new career analysis.
func (r *PGRepo) CreateAnalysis(ctx context.Context, analysis CareerAnalysis) error {
	const query = `
INSERT INTO career_analyses (id, user_id, recommendation, reasons, role, level, domain, objective, created_at)
VALUES ($1, $2, $3, $4::jsonb, $5, $6, $7, $8, $9)`

	reasons, err := json.Marshal(analysis.Reasons)
	if err != nil {
		return err
	}
	_, err = r.DB.ExecContext(ctx, query,
		analysis.ID, analysis.UserID, analysis.Recommendation, string(reasons),
		analysis.Role, analysis.Level, analysis.Domain, analysis.Objective, analysis.CreatedAt)
	return err
}

// ListAnalysesByUser returns the user's analyses, newest first.
func (r *PGRepo) ListAnalysesByUser(ctx context.Context, userID string) ([]CareerAnalysis, error) {
	const query = `
SELECT id, user_id, recommendation, reasons, role, level, domain, objective, created_at
FROM career_analyses
WHERE user_id = $1
ORDER BY created_at DESC`

	rows, err := r.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []CareerAnalysis
	for rows.Next() {
		var a CareerAnalysis
		var reasons sql.NullString
		if err := rows.Scan(&a.ID, &a.UserID, &a.Recommendation, &reasons, &a.Role, &a.Level, &a.Domain, &a.Objective, &a.CreatedAt); err != nil {
			return nil, err
		}
		if reasons.Valid && reasons.String != "" {
			if err := json.Unmarshal([]byte(reasons.String), &a.Reasons); err != nil {
				return nil, err
			}
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

// CreateInterviewSession inserts a completed session.
func (r *PGRepo) CreateInterviewSession(ctx context.Context, session InterviewSession) error {
	const query = `
INSERT INTO interview_sessions (id, user_id, role, score, feedback, strengths, improvements, completed_at)
VALUES ($1, $2, $3, $4, $5, $6::jsonb, $7::jsonb, $8)`

	strengths, err := json.Marshal(session.Strengths)
	if err != nil {
		return err
	}
	improvements, err := json.Marshal(session.Improvements)
	if err != nil {
		return err
	}
	_, err = r.DB.ExecContext(ctx, query,
		session.ID, session.UserID, session.Role, session.Score, session.Feedback,
		string(strengths), string(improvements), session.CompletedAt)
	return err
}

// ListInterviewSessionsByUser returns the user's sessions, newest first.
func (r *PGRepo) ListInterviewSessionsByUser(ctx context.Context, userID string) ([]InterviewSession, error) {
	const query = `
SELECT id, user_id, role, score, feedback, strengths, improvements, completed_at
FROM interview_sessions
WHERE user_id = $1
ORDER BY completed_at DESC`

	rows, err := r.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []InterviewSession
	for rows.Next() {
		var s InterviewSession
		var feedback, strengths, improvements sql.NullString
		if err := rows.Scan(&s.ID, &s.UserID, &s.Role, &s.Score, &feedback, &strengths, &improvements, &s.CompletedAt); err != nil {
			return nil, err
		}
		s.Feedback = feedback.String
		if strengths.Valid && strengths.String != "" {
			if err := json.Unmarshal([]byte(strengths.String), &s.Strengths); err != nil {
				return nil, err
			}
		}
		if improvements.Valid && improvements.String != "" {
			if err := json.Unmarshal([]byte(improvements.String), &s.Improvements); err != nil {
				return nil, err
			}
		}
		out = append(out, s)
	}
	return out, rows.Err()
}
