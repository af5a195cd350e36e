// Package services contains the application services of the revista client:
// the submission workflow (manuscripts and reviewer applications) and the
// catalog query over published papers.
package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/estudiantes/revista/internal/client/api"
	"github.com/estudiantes/revista/internal/client/models"
	"github.com/estudiantes/revista/internal/client/policy"
	"github.com/estudiantes/revista/internal/common"
	"github.com/estudiantes/revista/internal/logging"
)

// identitySource yields the identity of the current session, or nil for an
// anonymous caller. *session.Manager satisfies it.
type identitySource interface {
	Current() *models.Identity
}

// SubmissionService drives the manuscript and reviewer-application
// workflows. Both share the same shape: intake creates a pending record,
// a later admin decision moves it to a terminal state.
//
// Validation happens before any network call; authorization is checked
// against the access policy before a decision is even attempted. Mutating
// operations are never retried, so an abandoned call can land at most once.
type SubmissionService interface {
	SubmitManuscript(ctx context.Context, draft models.ManuscriptDraft) (models.SubmitReceipt, error)
	ApplyAsReviewer(ctx context.Context, draft models.ApplicationDraft) error
	DecideManuscript(ctx context.Context, id string, verdict models.Verdict, comment string) error
	DecideApplication(ctx context.Context, id string, verdict models.Verdict, comment string) error
}

type submissionService struct {
	client api.Client
	who    identitySource
	log    logging.Logger
}

func NewSubmissionService(client api.Client, who identitySource, log logging.Logger) SubmissionService {
	return &submissionService{client: client, who: who, log: log.With("component", "submission")}
}

// SubmitManuscript validates the draft and uploads it. The manuscript is
// created pending and without a DOI; the DOI exists only once approved.
func (s *submissionService) SubmitManuscript(ctx context.Context, draft models.ManuscriptDraft) (models.SubmitReceipt, error) {
	if err := draft.Validate(); err != nil {
		return models.SubmitReceipt{}, err
	}

	log := s.log.With("request_id", uuid.NewString())
	log.Info(ctx, "submitting manuscript", "title", draft.Title, "category", draft.Category)

	receipt, err := s.client.SubmitManuscript(ctx, draft)
	if err != nil {
		log.Error(ctx, "manuscript submission failed", "err", err)
		return models.SubmitReceipt{}, err
	}

	log.Info(ctx, "manuscript accepted for review", "id", receipt.ID)
	return receipt, nil
}

// ApplyAsReviewer validates the application and uploads it together with the
// CV and certificates.
func (s *submissionService) ApplyAsReviewer(ctx context.Context, draft models.ApplicationDraft) error {
	if err := draft.Validate(); err != nil {
		return err
	}

	log := s.log.With("request_id", uuid.NewString())
	log.Info(ctx, "submitting reviewer application", "email", draft.Email)

	if err := s.client.ApplyAsReviewer(ctx, draft); err != nil {
		log.Error(ctx, "reviewer application failed", "err", err)
		return err
	}
	return nil
}

// DecideManuscript records an approve/reject decision on a pending
// manuscript. Only legal from pending: a second decision on the same id
// surfaces common.ErrInvalidStateTransition from the collaborator, whose
// state machine is the source of truth. The comment travels with the
// decision but is not kept client-side.
func (s *submissionService) DecideManuscript(ctx context.Context, id string, verdict models.Verdict, comment string) error {
	if verdict != models.VerdictApproved && verdict != models.VerdictRejected {
		return fmt.Errorf("%w: manuscript verdict must be approved or rejected, got %q", common.ErrValidation, verdict)
	}
	if err := s.authorize(policy.ActionDecideManuscript); err != nil {
		return err
	}

	log := s.log.With("request_id", uuid.NewString())
	log.Info(ctx, "deciding manuscript", "id", id, "verdict", verdict)

	if err := s.client.ReviewManuscript(ctx, id, verdict, comment); err != nil {
		log.Error(ctx, "manuscript decision failed", "id", id, "err", err)
		return err
	}
	return nil
}

// DecideApplication records an accept/reject decision on a pending reviewer
// application.
func (s *submissionService) DecideApplication(ctx context.Context, id string, verdict models.Verdict, comment string) error {
	if verdict != models.VerdictAccepted && verdict != models.VerdictRejected {
		return fmt.Errorf("%w: application verdict must be accepted or rejected, got %q", common.ErrValidation, verdict)
	}
	if err := s.authorize(policy.ActionDecideApplication); err != nil {
		return err
	}

	log := s.log.With("request_id", uuid.NewString())
	log.Info(ctx, "deciding reviewer application", "id", id, "verdict", verdict)

	if err := s.client.ReviewApplication(ctx, id, verdict, comment); err != nil {
		log.Error(ctx, "application decision failed", "id", id, "err", err)
		return err
	}
	return nil
}

// authorize consults the access policy before any network traffic. The
// collaborator re-checks independently; this is the client-side gate.
func (s *submissionService) authorize(action policy.Action) error {
	if !policy.CanAccess(s.who.Current(), action) {
		return fmt.Errorf("%w: %s requires an admin role", common.ErrAuthorization, action)
	}
	return nil
}
