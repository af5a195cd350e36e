package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/sethvargo/go-retry"

	"github.com/estudiantes/revista/internal/client/api"
	"github.com/estudiantes/revista/internal/client/models"
	"github.com/estudiantes/revista/internal/client/policy"
	"github.com/estudiantes/revista/internal/common"
	"github.com/estudiantes/revista/internal/logging"
)

// CatalogService is the filterable read-model over manuscripts and reviewer
// applications. Reads are idempotent, so a brief collaborator outage is
// retried with capped backoff; mutations never are.
type CatalogService interface {
	// Papers returns manuscripts matching every provided predicate, newest
	// first. Without a status filter the collaborator returns approved
	// manuscripts only; asking for pending or rejected ones requires review
	// access.
	Papers(ctx context.Context, filter models.Filter) ([]models.Manuscript, error)

	// Categories returns the journal's category names in collaborator order.
	Categories(ctx context.Context) ([]string, error)

	// PendingManuscripts lists the review queue. Requires review access.
	PendingManuscripts(ctx context.Context) ([]models.Manuscript, error)

	// ReviewerApplications lists reviewer applications. Requires review access.
	ReviewerApplications(ctx context.Context) ([]models.ReviewerApplication, error)
}

type catalogService struct {
	client api.Client
	who    identitySource
	log    logging.Logger
}

func NewCatalogService(client api.Client, who identitySource, log logging.Logger) CatalogService {
	return &catalogService{client: client, who: who, log: log.With("component", "catalog")}
}

func (s *catalogService) Papers(ctx context.Context, filter models.Filter) ([]models.Manuscript, error) {
	if filter.Status != "" && filter.Status != models.StatusApproved {
		if !policy.CanAccess(s.who.Current(), policy.ActionListPendingPapers) {
			return nil, fmt.Errorf("%w: listing %s manuscripts requires an admin role",
				common.ErrAuthorization, filter.Status)
		}
	}

	var papers []models.Manuscript
	err := s.withRetry(ctx, func(ctx context.Context) error {
		var err error
		papers, err = s.client.Papers(ctx, filter)
		return err
	})
	if err != nil {
		return nil, err
	}

	// Newest first. Display convenience, not an invariant: the collaborator
	// owns the canonical ordering.
	sort.SliceStable(papers, func(i, j int) bool {
		return papers[i].SubmissionDate.After(papers[j].SubmissionDate)
	})
	return papers, nil
}

func (s *catalogService) Categories(ctx context.Context) ([]string, error) {
	var categories []string
	err := s.withRetry(ctx, func(ctx context.Context) error {
		var err error
		categories, err = s.client.Categories(ctx)
		return err
	})
	if err != nil {
		return nil, err
	}
	return categories, nil
}

func (s *catalogService) PendingManuscripts(ctx context.Context) ([]models.Manuscript, error) {
	if !policy.CanAccess(s.who.Current(), policy.ActionListPendingPapers) {
		return nil, fmt.Errorf("%w: listing pending manuscripts requires an admin role", common.ErrAuthorization)
	}
	return s.Papers(ctx, models.Filter{Status: models.StatusPending})
}

func (s *catalogService) ReviewerApplications(ctx context.Context) ([]models.ReviewerApplication, error) {
	if !policy.CanAccess(s.who.Current(), policy.ActionListApplications) {
		return nil, fmt.Errorf("%w: listing reviewer applications requires an admin role", common.ErrAuthorization)
	}

	var applications []models.ReviewerApplication
	err := s.withRetry(ctx, func(ctx context.Context) error {
		var err error
		applications, err = s.client.ReviewerApplications(ctx)
		return err
	})
	if err != nil {
		return nil, err
	}
	return applications, nil
}

// withRetry runs a read-only call, retrying only collaborator unavailability
// with capped exponential backoff.
func (s *catalogService) withRetry(ctx context.Context, fn func(ctx context.Context) error) error {
	backoff := retry.WithMaxRetries(2, retry.NewExponential(200*time.Millisecond))
	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		err := fn(ctx)
		if errors.Is(err, common.ErrUnavailable) {
			s.log.Warn(ctx, "collaborator unavailable, retrying", "err", err)
			return retry.RetryableError(err)
		}
		return err
	})
}
