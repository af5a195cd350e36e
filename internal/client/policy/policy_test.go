package policy

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/estudiantes/revista/internal/client/models"
)

func TestCanAccess(t *testing.T) {
	student := &models.Identity{ID: "1", Role: models.RoleStudent}
	admin := &models.Identity{ID: "2", Role: models.RoleAdmin}
	super := &models.Identity{ID: "3", Role: models.RoleSuperAdmin}

	tests := []struct {
		name     string
		identity *models.Identity
		action   Action
		want     bool
	}{
		{"anonymous browses published", nil, ActionBrowsePublishedPapers, true},
		{"anonymous submits", nil, ActionSubmitManuscript, true},
		{"anonymous applies", nil, ActionApplyAsReviewer, true},
		{"anonymous cannot decide", nil, ActionDecideManuscript, false},
		{"anonymous cannot list pending", nil, ActionListPendingPapers, false},

		{"student submits", student, ActionSubmitManuscript, true},
		{"student cannot view console", student, ActionViewAdminConsole, false},
		{"student cannot decide application", student, ActionDecideApplication, false},
		{"student cannot list applications", student, ActionListApplications, false},

		{"admin decides manuscript", admin, ActionDecideManuscript, true},
		{"admin lists pending", admin, ActionListPendingPapers, true},
		{"admin lists applications", admin, ActionListApplications, true},
		{"admin views console", admin, ActionViewAdminConsole, true},
		{"admin still submits", admin, ActionSubmitManuscript, true},

		{"super_admin equals admin", super, ActionDecideApplication, true},
		{"super_admin lists pending", super, ActionListPendingPapers, true},

		{"unknown action denied for admin", admin, Action("deleteEverything"), false},
		{"unknown action denied for anonymous", nil, Action(""), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, CanAccess(tc.identity, tc.action))
		})
	}
}
