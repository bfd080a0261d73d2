package service

import (
	"context"
	"fmt"

	"salaire/internal/domaingate"
	"salaire/internal/salary/models"
	dErrors "salaire/pkg/domain-errors"
)

// Well-known intake rejections. Handlers match on these to pick the
// user-facing message; everything else surfaces with backend detail.
var (
	ErrPersonalEmail    = dErrors.New(dErrors.CodeBadRequest, "email domain looks personal, a professional address is required")
	ErrDuplicatePending = dErrors.New(dErrors.CodeConflict, "an identical submission is already awaiting validation")
)

// SubmitResult reports an accepted submission.
type SubmitResult struct {
	Submission *models.PendingSubmission
	// Message is the success confirmation shown to the contributor.
	Message string
}

// Submit runs the intake flow: gate check, duplicate check, staging insert,
// verification-link request. The gate is passed per call because the
// denylist snapshot is loaded per submission session, never held as process
// state.
func (s *Service) Submit(ctx context.Context, gate *domaingate.Gate, in models.SubmissionInput) (*SubmitResult, error) {
	sub, err := models.NewPendingSubmission(in, s.now())
	if err != nil {
		return nil, err
	}

	if !gate.IsProfessional(sub.Email) {
		if s.metrics != nil {
			s.metrics.SubmissionsGateDenied.Inc()
		}
		return nil, ErrPersonalEmail
	}

	existing, err := s.pending.FindPending(ctx, sub.Email, sub.Company, sub.Title)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "duplicate check failed")
	}
	if len(existing) > 0 {
		if s.metrics != nil {
			s.metrics.SubmissionsDuplicate.Inc()
		}
		return nil, ErrDuplicatePending
	}

	if err := s.pending.Insert(ctx, sub); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to store submission")
	}

	if err := s.verifier.RequestVerification(ctx, sub.Email, s.returnURL); err != nil {
		// The staging row stays: the retention sweeper will purge it if the
		// contributor never retries.
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to send confirmation email")
	}

	if s.metrics != nil {
		s.metrics.SubmissionsCreated.Inc()
	}
	s.logger.Info("submission staged", "company", sub.Company, "title", sub.Title)

	return &SubmitResult{
		Submission: sub,
		Message:    fmt.Sprintf("✅ Un lien de confirmation a été envoyé à %s. Veuillez cliquer dessus pour valider votre soumission.", sub.Email),
	}, nil
}
