package service

import (
	"context"
	"errors"
	"fmt"

	"salaire/internal/salary/models"
	"salaire/pkg/platform/sentinel"
)

// Outcome is the terminal state of one confirmation run.
type Outcome string

const (
	OutcomeAwaitingToken    Outcome = "awaiting_token"
	OutcomeSessionFailed    Outcome = "session_failed"
	OutcomeNotAuthenticated Outcome = "not_authenticated"
	OutcomeAlreadyPublished Outcome = "already_published"
	OutcomeNoPendingFound   Outcome = "no_pending_found"
	OutcomePublishFailed    Outcome = "publish_failed"
	OutcomeCleanupFailed    Outcome = "cleanup_failed"
	OutcomePublished        Outcome = "published"
)

// Success reports whether the outcome should read as a success to the
// contributor. CleanupFailed counts: the publish went through, cleanup is
// best-effort housekeeping.
func (o Outcome) Success() bool {
	switch o {
	case OutcomePublished, OutcomeAlreadyPublished, OutcomeCleanupFailed:
		return true
	}
	return false
}

// ConfirmInput is the verification context carried back by the one-time
// link.
type ConfirmInput struct {
	AccessToken  string
	RefreshToken string
}

// ConfirmResult is the single terminal user-facing outcome of a run.
type ConfirmResult struct {
	Outcome   Outcome
	Message   string
	Published int
}

// Confirm runs the confirmation state machine. Every step is strictly
// sequential: each precondition depends on the previous step's committed
// effect. The run is idempotent under replay; a second visit of the same
// link after success terminates AlreadyPublished with zero writes.
//
// The staging and public stores are independent, so steps are individually
// safe to retry or skip, never requiring two writes to be atomic together.
func (s *Service) Confirm(ctx context.Context, in ConfirmInput) ConfirmResult {
	res := s.confirm(ctx, in)
	if s.metrics != nil {
		s.metrics.RecordConfirmation(string(res.Outcome))
	}
	return res
}

func (s *Service) confirm(ctx context.Context, in ConfirmInput) ConfirmResult {
	// AwaitingToken: nothing to do until the emailed link is used.
	if in.AccessToken == "" && in.RefreshToken == "" {
		return ConfirmResult{
			Outcome: OutcomeAwaitingToken,
			Message: "❌ Vous n'êtes pas connecté. Veuillez utiliser le lien envoyé par email.",
		}
	}

	// SessionEstablishing.
	id, err := s.verifier.EstablishSession(ctx, in.AccessToken, in.RefreshToken)
	if err != nil {
		s.logger.Warn("confirmation session rejected", "error", err)
		return ConfirmResult{
			Outcome: OutcomeSessionFailed,
			Message: "❌ Impossible d'établir la session. Veuillez utiliser le lien envoyé par email.",
		}
	}

	// IdentityResolved.
	if id.Email == "" {
		return ConfirmResult{
			Outcome: OutcomeNotAuthenticated,
			Message: "❌ Vous n'êtes pas connecté. Veuillez utiliser le lien envoyé par email.",
		}
	}
	email := id.Email

	// Duplicate-publish check, idempotent under replay.
	published, err := s.published.HasPublished(ctx, email)
	if err != nil {
		return ConfirmResult{
			Outcome: OutcomePublishFailed,
			Message: "❌ Une erreur est survenue lors de la validation : " + err.Error(),
		}
	}
	if published {
		return ConfirmResult{
			Outcome: OutcomeAlreadyPublished,
			Message: "✅ Votre salaire a déjà été publié. Merci pour votre contribution !",
		}
	}

	// Staging lookup.
	pending, err := s.pending.ListByEmail(ctx, email)
	if err != nil {
		return ConfirmResult{
			Outcome: OutcomePublishFailed,
			Message: "❌ Une erreur est survenue lors de la validation : " + err.Error(),
		}
	}
	if len(pending) == 0 {
		return ConfirmResult{
			Outcome: OutcomeNoPendingFound,
			Message: "❌ Aucune soumission trouvée à valider pour cet email.",
		}
	}

	// Field stripping: the published rows carry zero contributor-identifying
	// fields.
	now := s.now()
	entries := make([]models.SalaryEntry, 0, len(pending))
	for _, p := range pending {
		entries = append(entries, p.ToEntry(now))
	}

	// Publish. The ledger mark goes first: its uniqueness constraint turns
	// two near-simultaneous confirmations into one winner and one
	// AlreadyPublished, instead of a double publish.
	if err := s.published.MarkPublished(ctx, email, now); err != nil {
		if errors.Is(err, sentinel.ErrAlreadyPublished) {
			return ConfirmResult{
				Outcome: OutcomeAlreadyPublished,
				Message: "✅ Votre salaire a déjà été publié. Merci pour votre contribution !",
			}
		}
		return ConfirmResult{
			Outcome: OutcomePublishFailed,
			Message: "❌ Une erreur est survenue lors de la validation : " + err.Error(),
		}
	}

	if err := s.published.InsertEntries(ctx, entries); err != nil {
		// Roll the ledger mark back so the link stays reusable; staging
		// rows are deliberately kept for the retry.
		if uerr := s.published.UnmarkPublished(ctx, email); uerr != nil {
			s.logger.Error("failed to release confirmation mark after publish failure", "error", uerr)
		}
		return ConfirmResult{
			Outcome: OutcomePublishFailed,
			Message: "❌ Une erreur est survenue lors de la validation : " + err.Error(),
		}
	}

	if s.metrics != nil {
		s.metrics.SalariesPublished.Add(float64(len(entries)))
	}
	s.logger.Info("salaries published", "count", len(entries))

	// Cleanup, best-effort: publish already succeeded and must not read as a
	// failure of the contribution itself.
	if err := s.pending.DeleteByEmail(ctx, email); err != nil {
		s.logger.Error("staging cleanup failed after publish", "error", err)
		return ConfirmResult{
			Outcome:   OutcomeCleanupFailed,
			Message:   fmt.Sprintf("✔️ Salaire publié, mais erreur de nettoyage : %v", err),
			Published: len(entries),
		}
	}

	return ConfirmResult{
		Outcome:   OutcomePublished,
		Message:   "✅ Votre salaire a été publié avec succès ! Merci pour votre contribution.",
		Published: len(entries),
	}
}
