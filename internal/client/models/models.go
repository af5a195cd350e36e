// Package models defines the data shapes exchanged with the journal
// collaborator API: identities, manuscripts, reviewer applications, and the
// drafts submitted by the CLI.
package models

import "time"

// Role is the access level carried by an Identity.
type Role string

const (
	RoleStudent    Role = "student"
	RoleAdmin      Role = "admin"
	RoleSuperAdmin Role = "super_admin"
)

// Identity is the journal's view of an authenticated user. The client holds
// a cached, possibly stale copy for the duration of the session; the
// identity store owns the record.
type Identity struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Institution string `json:"institution"`
	StudyArea   string `json:"study_area"`
	Role        Role   `json:"role"`
}

// IsAdmin reports whether the identity may exercise review capabilities.
// admin and super_admin are equivalent for every action modeled here.
func (i Identity) IsAdmin() bool {
	return i.Role == RoleAdmin || i.Role == RoleSuperAdmin
}

// Status is the lifecycle state of a manuscript or reviewer application.
// Manuscripts move Pending -> Approved|Rejected; applications move
// Pending -> Accepted|Rejected. Both end states are terminal.
type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusAccepted Status = "accepted"
	StatusRejected Status = "rejected"
)

// Verdict is a review decision submitted by an admin. The collaborator's
// state machine, not the client, is the source of truth for whether the
// transition is legal.
type Verdict string

const (
	VerdictApproved Verdict = "approved"
	VerdictAccepted Verdict = "accepted"
	VerdictRejected Verdict = "rejected"
)

// Manuscript is a submitted paper tracked through the review lifecycle.
// DOI is assigned by the collaborator on approval and is present iff
// Status == StatusApproved.
type Manuscript struct {
	ID             string    `json:"id"`
	Title          string    `json:"title"`
	Authors        []string  `json:"authors"`
	Institution    string    `json:"institution"`
	Email          string    `json:"email"`
	Category       string    `json:"category"`
	Abstract       string    `json:"abstract"`
	Keywords       []string  `json:"keywords"`
	WordCount      int       `json:"word_count"`
	FileURL        string    `json:"file_url"`
	Status         Status    `json:"status"`
	SubmissionDate time.Time `json:"submission_date"`
	DOI            string    `json:"doi,omitempty"`
}

// ReviewerApplication is a request to be granted review capability.
type ReviewerApplication struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	Email            string   `json:"email"`
	Institution      string   `json:"institution"`
	CVURL            string   `json:"cv_url"`
	MotivationLetter string   `json:"motivation_letter"`
	Specialization   []string `json:"specialization"`
	References       []string `json:"references"`
	Experience       string   `json:"experience"`
	CertificatesURL  string   `json:"certificates_url"`
	Status           Status   `json:"status"`
}

// Profile carries the fields required to register a new account.
type Profile struct {
	Name        string
	Email       string
	Password    string
	Institution string
	StudyArea   string
}

// Filter is an optional conjunction over manuscript attributes. Zero-valued
// fields impose no constraint. With an empty Status the collaborator returns
// only approved manuscripts.
type Filter struct {
	Category    string
	Author      string
	Institution string
	Status      Status
}

// SubmitReceipt is the collaborator's acknowledgment of a manuscript
// submission. The DOI is not part of it: it is minted on approval.
type SubmitReceipt struct {
	ID string `json:"id"`
}
