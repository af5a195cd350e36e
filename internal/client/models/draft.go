package models

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/estudiantes/revista/internal/common"
)

// Word count bounds enforced at submission time, before any network call.
const (
	MinWordCount = 2000
	MaxWordCount = 8000
)

// MinMotivationWords is the minimum length of a reviewer application's
// motivation letter, in words.
const MinMotivationWords = 500

// Attachment is a file handed to the collaborator as a multipart part.
// Validation looks only at Name; Content is streamed as-is.
type Attachment struct {
	Name    string
	Content io.Reader
}

var (
	manuscriptExtensions = map[string]bool{".doc": true, ".docx": true}
	documentExtensions   = map[string]bool{".pdf": true, ".doc": true, ".docx": true}
)

func checkExtension(field, name string, accepted map[string]bool) error {
	ext := strings.ToLower(filepath.Ext(name))
	if !accepted[ext] {
		return fmt.Errorf("%w: %s %q", common.ErrUnsupportedFileType, field, name)
	}
	return nil
}

// ManuscriptDraft is the input to a manuscript submission.
type ManuscriptDraft struct {
	Title       string
	Authors     []string
	Institution string
	Email       string
	Category    string
	Abstract    string
	Keywords    []string
	WordCount   int
	File        Attachment
}

// Validate checks all submission constraints: required fields, non-empty
// ordered authors and keywords, word count within bounds, and an accepted
// manuscript extension (.doc or .docx).
func (d ManuscriptDraft) Validate() error {
	required := []struct{ field, value string }{
		{"title", d.Title},
		{"institution", d.Institution},
		{"email", d.Email},
		{"category", d.Category},
		{"abstract", d.Abstract},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			return fmt.Errorf("%w: %s is required", common.ErrValidation, r.field)
		}
	}
	if len(d.Authors) == 0 {
		return fmt.Errorf("%w: at least one author is required", common.ErrValidation)
	}
	if len(d.Keywords) == 0 {
		return fmt.Errorf("%w: at least one keyword is required", common.ErrValidation)
	}
	if d.WordCount < MinWordCount || d.WordCount > MaxWordCount {
		return fmt.Errorf("%w: word_count must be between %d and %d, got %d",
			common.ErrValidation, MinWordCount, MaxWordCount, d.WordCount)
	}
	if d.File.Name == "" {
		return fmt.Errorf("%w: manuscript file is required", common.ErrValidation)
	}
	return checkExtension("manuscript file", d.File.Name, manuscriptExtensions)
}

// ApplicationDraft is the input to a reviewer application.
type ApplicationDraft struct {
	Name             string
	Email            string
	Institution      string
	CV               Attachment
	MotivationLetter string
	Specialization   []string
	References       []string
	Experience       string
	Certificates     Attachment
}

// Validate checks the application constraints with the same discipline as
// manuscript submission. The motivation letter minimum is counted in words.
func (d ApplicationDraft) Validate() error {
	required := []struct{ field, value string }{
		{"name", d.Name},
		{"email", d.Email},
		{"institution", d.Institution},
		{"experience", d.Experience},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			return fmt.Errorf("%w: %s is required", common.ErrValidation, r.field)
		}
	}
	if len(d.Specialization) == 0 {
		return fmt.Errorf("%w: at least one specialization is required", common.ErrValidation)
	}
	if len(d.References) == 0 {
		return fmt.Errorf("%w: at least one reference is required", common.ErrValidation)
	}
	if n := len(strings.Fields(d.MotivationLetter)); n < MinMotivationWords {
		return fmt.Errorf("%w: motivation letter must be at least %d words, got %d",
			common.ErrValidation, MinMotivationWords, n)
	}
	if d.CV.Name == "" {
		return fmt.Errorf("%w: cv file is required", common.ErrValidation)
	}
	if err := checkExtension("cv", d.CV.Name, documentExtensions); err != nil {
		return err
	}
	if d.Certificates.Name == "" {
		return fmt.Errorf("%w: certificates file is required", common.ErrValidation)
	}
	return checkExtension("certificates", d.Certificates.Name, documentExtensions)
}
