package cli

import (
	"context"
	"os"
	"path/filepath"

	"github.com/estudiantes/revista/internal/client/models"
)

// Apply walks the user through a reviewer application: profile prompts, the
// motivation letter, then the CV and optional certificates files.
func (a *App) Apply(ctx context.Context) error {
	draft := models.ApplicationDraft{}
	var err error

	if draft.Name, err = getSimpleText(a.reader, "Enter full name", os.Stdout); err != nil {
		return err
	}
	if draft.Email, err = getSimpleText(a.reader, "Enter email", os.Stdout); err != nil {
		return err
	}
	if draft.Institution, err = getSimpleText(a.reader, "Enter institution", os.Stdout); err != nil {
		return err
	}
	if draft.Specialization, err = getList(a.reader, "Enter specialization areas", os.Stdout); err != nil {
		return err
	}
	if draft.References, err = getList(a.reader, "Enter references", os.Stdout); err != nil {
		return err
	}
	if draft.Experience, err = getMultiline(a.reader, "Describe your experience", os.Stdout); err != nil {
		return err
	}
	if draft.MotivationLetter, err = getMultiline(a.reader, "Enter motivation letter (at least 500 words)", os.Stdout); err != nil {
		return err
	}

	cvPath, err := getSimpleText(a.reader, "Enter CV file path (.pdf, .doc or .docx)", os.Stdout)
	if err != nil {
		return err
	}
	cv, err := os.Open(cvPath)
	if err != nil {
		printlnFn("Cannot open CV file:", err.Error())
		return err
	}
	defer cv.Close()
	draft.CV = models.Attachment{Name: filepath.Base(cvPath), Content: cv}

	certPath, err := getSimpleText(a.reader, "Enter certificates file path (.pdf, .doc or .docx)", os.Stdout)
	if err != nil {
		return err
	}
	cert, err := os.Open(certPath)
	if err != nil {
		printlnFn("Cannot open certificates file:", err.Error())
		return err
	}
	defer cert.Close()
	draft.Certificates = models.Attachment{Name: filepath.Base(certPath), Content: cert}

	if err := a.submissions.ApplyAsReviewer(ctx, draft); err != nil {
		printlnFn("Application failed:", err.Error())
		return err
	}

	printlnFn("Application submitted. The editorial board will review it.")
	return nil
}
