// Package api is the client's only boundary with the journal collaborator.
// It defines the Client interface consumed by the session manager and the
// services, and an HTTP implementation of the collaborator's REST contract.
package api

import (
	"context"

	"github.com/estudiantes/revista/internal/client/models"
)

// Client is the collaborator API surface. Implementations map transport
// failures to the sentinel error kinds in internal/common; callers never see
// raw status codes.
type Client interface {
	Close() error

	// SetToken installs (or, with "", clears) the bearer token attached to
	// authenticated calls.
	SetToken(token string)

	// Authenticate exchanges credentials for a bearer token (POST /token).
	Authenticate(ctx context.Context, email, password string) (string, error)

	// CurrentUser resolves the identity behind token (GET /current_user).
	// The token is attached to this request only; the installed token is
	// not touched, so concurrent validations cannot cross-contaminate.
	CurrentUser(ctx context.Context, token string) (models.Identity, error)

	// Register creates a new account (POST /register). The session is not
	// affected; the user logs in afterwards.
	Register(ctx context.Context, profile models.Profile) error

	// Categories returns the ordered list of manuscript categories
	// (GET /categories).
	Categories(ctx context.Context) ([]string, error)

	// SubmitManuscript uploads a draft and its file (POST /submit-paper,
	// multipart). The caller validates the draft first.
	SubmitManuscript(ctx context.Context, draft models.ManuscriptDraft) (models.SubmitReceipt, error)

	// Papers lists manuscripts matching the filter (GET /papers). Without a
	// status filter the collaborator returns approved manuscripts only.
	Papers(ctx context.Context, filter models.Filter) ([]models.Manuscript, error)

	// ApplyAsReviewer uploads a reviewer application (POST /apply-admin,
	// multipart).
	ApplyAsReviewer(ctx context.Context, draft models.ApplicationDraft) error

	// ReviewerApplications lists pending applications (GET /admin/applications,
	// bearer required).
	ReviewerApplications(ctx context.Context) ([]models.ReviewerApplication, error)

	// ReviewManuscript records a decision on a pending manuscript
	// (POST /review/{id}). Deciding a non-pending manuscript yields
	// common.ErrInvalidStateTransition.
	ReviewManuscript(ctx context.Context, id string, verdict models.Verdict, comment string) error

	// ReviewApplication records a decision on a pending reviewer application
	// (POST /admin/applications/{id}/review).
	ReviewApplication(ctx context.Context, id string, verdict models.Verdict, comment string) error
}
