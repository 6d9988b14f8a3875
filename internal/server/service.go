package server

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/medparse/bloodlab/constants"
	"github.com/medparse/bloodlab/internal/common"
	"github.com/medparse/bloodlab/internal/doctext"
	"github.com/medparse/bloodlab/internal/extract"
	"github.com/medparse/bloodlab/internal/report"
	"github.com/medparse/bloodlab/internal/repository"
)

// UploadedFile is one file from a multipart request.
type UploadedFile struct {
	Name string
	Data []byte
}

// Processor runs the full document-to-report pipeline. Handlers depend on
// this interface rather than the concrete service.
type Processor interface {
	Process(ctx context.Context, files []UploadedFile) (*report.Report, error)
}

// Service glues recognition, extraction and session bookkeeping together.
type Service struct {
	recognizer doctext.Recognizer
	orch       *extract.Orchestrator
	sessions   repository.SessionRepository
	logger     *slog.Logger
}

// NewService builds the pipeline service. sessions may be nil when no
// database is configured, bookkeeping is skipped then.
func NewService(recognizer doctext.Recognizer, orch *extract.Orchestrator, sessions repository.SessionRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		recognizer: recognizer,
		orch:       orch,
		sessions:   sessions,
		logger:     logger,
	}
}

func (s *Service) Process(ctx context.Context, files []UploadedFile) (*report.Report, error) {
	if len(files) == 0 {
		return nil, fmt.Errorf("%w: no files uploaded", common.ErrInvalidInput)
	}
	names := make([]string, len(files))
	for i, f := range files {
		if !constants.IsAllowedExt(f.Name) {
			return nil, fmt.Errorf("%w: %s", common.ErrUnsupportedFile, f.Name)
		}
		names[i] = f.Name
	}

	var session *repository.Session
	if s.sessions != nil {
		var err error
		session, err = s.sessions.Start(ctx, names)
		if err != nil {
			return nil, err
		}
	}

	rep, err := s.run(ctx, files)
	if s.sessions != nil && session != nil {
		if err != nil {
			if ferr := s.sessions.FinishFailure(ctx, session.ID, err.Error()); ferr != nil {
				s.logger.Error("session failure update failed", "session_id", session.ID, "error", ferr)
			}
		} else {
			if ferr := s.sessions.FinishSuccess(ctx, session.ID, rep); ferr != nil {
				s.logger.Error("session success update failed", "session_id", session.ID, "error", ferr)
			}
		}
	}
	return rep, err
}

func (s *Service) run(ctx context.Context, files []UploadedFile) (*report.Report, error) {
	texts := make([]string, 0, len(files))
	for _, f := range files {
		text, err := s.recognizer.Text(ctx, f.Name, f.Data)
		if err != nil {
			return nil, common.WrapError(err, "recognize "+f.Name)
		}
		texts = append(texts, text)
	}

	rep, err := s.orch.Extract(ctx, texts)
	if err != nil {
		return nil, err
	}
	if !rep.HasCBCData() {
		return nil, fmt.Errorf("%w: no blood count markers found", common.ErrNotBloodTest)
	}
	return rep, nil
}
