// Package policy is the pure access-control decision function. It is
// consulted before constructing any workflow operation; the collaborator
// independently re-checks on its side.
package policy

import "github.com/estudiantes/revista/internal/client/models"

// Action names an operation a caller may attempt.
type Action string

const (
	ActionViewAdminConsole      Action = "viewAdminConsole"
	ActionListPendingPapers     Action = "listPendingManuscripts"
	ActionListApplications      Action = "listReviewerApplications"
	ActionDecideManuscript      Action = "decideManuscript"
	ActionDecideApplication     Action = "decideApplication"
	ActionSubmitManuscript      Action = "submitManuscript"
	ActionApplyAsReviewer       Action = "applyAsReviewer"
	ActionBrowsePublishedPapers Action = "browsePublished"
)

// CanAccess decides whether identity may perform action. A nil identity is
// an anonymous caller. Rules are evaluated in order, first match wins:
//
//  1. review-side actions require role admin or super_admin (the two are
//     equivalent for every action modeled here),
//  2. submitting, applying, and browsing published papers are open to
//     everyone including anonymous callers,
//  3. anything else is denied.
func CanAccess(identity *models.Identity, action Action) bool {
	switch action {
	case ActionViewAdminConsole,
		ActionListPendingPapers,
		ActionListApplications,
		ActionDecideManuscript,
		ActionDecideApplication:
		return identity != nil && identity.IsAdmin()

	case ActionSubmitManuscript,
		ActionApplyAsReviewer,
		ActionBrowsePublishedPapers:
		return true

	default:
		return false
	}
}
