package records

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestPGRepoCreateAnalysisMarshalsReasons(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	analysis := CareerAnalysis{
		ID:             "analysis-1",
		UserID:         "user-1",
		Recommendation: "Focus on platform roles.",
		Reasons:        []string{"narrow pipeline", "few referrals"},
		Role:           "Backend Engineer",
		Level:          "mid",
		Domain:         "fintech",
		Objective:      "more-interviews",
		CreatedAt:      time.Now().UTC(),
	}

	mock.ExpectExec("INSERT INTO career_analyses").
		WithArgs(
			analysis.ID,
			analysis.UserID,
			analysis.Recommendation,
			`["narrow pipeline","few referrals"]`,
			analysis.Role,
			analysis.Level,
			analysis.Domain,
			analysis.Objective,
			sqlmock.AnyArg(),
		).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := repo.CreateAnalysis(context.Background(), analysis); err != nil {
		t.Fatalf("CreateAnalysis: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoListAnalysesDecodesReasons(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	createdAt := time.Now().UTC()

	rows := sqlmock.NewRows([]string{"id", "user_id", "recommendation", "reasons", "role", "level", "domain", "objective", "created_at"}).
		AddRow("analysis-1", "user-1", "Focus on platform roles.", `["narrow pipeline"]`, "Backend Engineer", "mid", "fintech", "more-interviews", createdAt).
		AddRow("analysis-2", "user-1", "Stay the course.", nil, "", "", "", "", createdAt.Add(-time.Hour))

	mock.ExpectQuery("SELECT id, user_id, recommendation, reasons").
		WithArgs("user-1").
		WillReturnRows(rows)

	got, err := repo.ListAnalysesByUser(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("ListAnalysesByUser: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 analyses, got %d", len(got))
	}
	if len(got[0].Reasons) != 1 || got[0].Reasons[0] != "narrow pipeline" {
		t.Fatalf("expected decoded reasons, got %v", got[0].Reasons)
	}
	if got[1].Reasons != nil {
		t.Fatalf("expected nil reasons for NULL column, got %v", got[1].Reasons)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoUpdateStatusNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}

	mock.ExpectExec("UPDATE applications SET status").
		WithArgs(StatusInterview, "missing", "user-1").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err = repo.UpdateApplicationStatus(context.Background(), "user-1", "missing", StatusInterview)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoListInterviewSessionsDecodesJSON(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	completedAt := time.Now().UTC()

	rows := sqlmock.NewRows([]string{"id", "user_id", "role", "score", "feedback", "strengths", "improvements", "completed_at"}).
		AddRow("s1", "user-1", "Backend Engineer", 72, "solid round", `["system design"]`, `["conciseness"]`, completedAt).
		AddRow("s2", "user-1", "Backend Engineer", 65, nil, nil, nil, completedAt.Add(-time.Hour))

	mock.ExpectQuery("SELECT id, user_id, role, score").
		WithArgs("user-1").
		WillReturnRows(rows)

	got, err := repo.ListInterviewSessionsByUser(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("ListInterviewSessionsByUser: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 sessions, got %d", len(got))
	}
	if got[0].Feedback != "solid round" || len(got[0].Strengths) != 1 {
		t.Fatalf("expected decoded session fields, got %+v", got[0])
	}
	if got[1].Feedback != "" || got[1].Strengths != nil {
		t.Fatalf("expected zero values for NULL columns, got %+v", got[1])
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}
