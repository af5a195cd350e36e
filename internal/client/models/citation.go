package models

import (
	"fmt"
	"strings"

	"github.com/estudiantes/revista/internal/common"
)

// Citation renders the canonical citation line for a manuscript:
//
//	{authors joined by ', '}. ({year}). {title}. {journal}. DOI: {doi}
//
// It is a pure function: the same manuscript always yields the same string.
// Author order is preserved as submitted.
func Citation(m Manuscript) string {
	return fmt.Sprintf("%s. (%d). %s. %s. DOI: %s",
		strings.Join(m.Authors, ", "),
		m.SubmissionDate.Year(),
		m.Title,
		common.JournalName,
		m.DOI,
	)
}
