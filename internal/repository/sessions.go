package repository

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/medparse/bloodlab/constants"
	"github.com/medparse/bloodlab/internal/common"
	"github.com/medparse/bloodlab/internal/report"
)

// Session is one processed upload batch.
type Session struct {
	ID        uuid.UUID
	Status    constants.SessionStatus
	Filenames []string
	Error     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type SessionRepository interface {
	Start(ctx context.Context, filenames []string) (*Session, error)
	FinishSuccess(ctx context.Context, sessionID uuid.UUID, rep *report.Report) error
	FinishFailure(ctx context.Context, sessionID uuid.UUID, message string) error
	GetReport(ctx context.Context, sessionID uuid.UUID) (*report.Report, error)
}

type sessionRepo struct {
	pool *pgxpool.Pool
	log  *slog.Logger
}

func NewSessionRepository(pool *pgxpool.Pool, log *slog.Logger) SessionRepository {
	if log == nil {
		log = slog.Default()
	}
	return &sessionRepo{pool: pool, log: log}
}

func (r *sessionRepo) Start(ctx context.Context, filenames []string) (*Session, error) {
	s := &Session{
		ID:        uuid.New(),
		Status:    constants.SessionProcessing,
		Filenames: filenames,
	}
	const q = `
		INSERT INTO analysis_session (id, status, filenames)
		VALUES ($1, $2, $3)
		RETURNING created_at, updated_at`
	if err := r.pool.QueryRow(ctx, q, s.ID, string(s.Status), filenames).
		Scan(&s.CreatedAt, &s.UpdatedAt); err != nil {
		r.log.Error("session start failed", "err", err)
		return nil, common.WrapError(err, "insert analysis_session")
	}
	r.log.Info("session started", "session_id", s.ID, "files", len(filenames))
	return s, nil
}

func (r *sessionRepo) FinishSuccess(ctx context.Context, sessionID uuid.UUID, rep *report.Report) error {
	payload, err := json.Marshal(rep)
	if err != nil {
		return common.WrapError(err, "marshal report")
	}
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return common.WrapError(err, "begin tx")
	}
	defer func() { _ = tx.Rollback(ctx) }()

	const insertReport = `
		INSERT INTO blood_test_report (id, session_id, payload)
		VALUES ($1, $2, $3)`
	if _, err := tx.Exec(ctx, insertReport, uuid.New(), sessionID, payload); err != nil {
		r.log.Error("report save failed", "session_id", sessionID, "err", err)
		return common.WrapError(err, "insert blood_test_report")
	}
	const updateSession = `
		UPDATE analysis_session
		SET status = $2, updated_at = now()
		WHERE id = $1`
	if _, err := tx.Exec(ctx, updateSession, sessionID, string(constants.SessionCompleted)); err != nil {
		return common.WrapError(err, "update analysis_session")
	}
	if err := tx.Commit(ctx); err != nil {
		return common.WrapError(err, "commit tx")
	}
	r.log.Info("session completed", "session_id", sessionID)
	return nil
}

func (r *sessionRepo) FinishFailure(ctx context.Context, sessionID uuid.UUID, message string) error {
	const q = `
		UPDATE analysis_session
		SET status = $2, error = $3, updated_at = now()
		WHERE id = $1`
	if _, err := r.pool.Exec(ctx, q, sessionID, string(constants.SessionFailed), message); err != nil {
		r.log.Error("session failure update failed", "session_id", sessionID, "err", err)
		return common.WrapError(err, "update analysis_session")
	}
	r.log.Info("session failed", "session_id", sessionID, "reason", message)
	return nil
}

func (r *sessionRepo) GetReport(ctx context.Context, sessionID uuid.UUID) (*report.Report, error) {
	const q = `
		SELECT payload FROM blood_test_report
		WHERE session_id = $1
		ORDER BY created_at DESC
		LIMIT 1`
	var payload []byte
	if err := r.pool.QueryRow(ctx, q, sessionID).Scan(&payload); err != nil {
		return nil, common.WrapError(common.ErrNotFound, "report for session "+sessionID.String())
	}
	rep := report.New()
	if err := json.Unmarshal(payload, rep); err != nil {
		return nil, common.WrapError(err, "unmarshal report payload")
	}
	return rep, nil
}
