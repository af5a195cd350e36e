package cli

import (
	"context"
	"os"
	"path/filepath"

	"github.com/estudiantes/revista/internal/client/models"
)

// Submit walks the user through a manuscript submission: metadata prompts,
// the manuscript file, then the upload. The manuscript stays on disk and is
// streamed to the collaborator.
func (a *App) Submit(ctx context.Context) error {
	draft := models.ManuscriptDraft{}
	var err error

	if draft.Title, err = getSimpleText(a.reader, "Enter title", os.Stdout); err != nil {
		return err
	}
	if draft.Authors, err = getList(a.reader, "Enter authors", os.Stdout); err != nil {
		return err
	}
	if draft.Institution, err = getSimpleText(a.reader, "Enter institution", os.Stdout); err != nil {
		return err
	}
	if draft.Email, err = getSimpleText(a.reader, "Enter contact email", os.Stdout); err != nil {
		return err
	}
	if draft.Category, err = getSimpleText(a.reader, "Enter category", os.Stdout); err != nil {
		return err
	}
	if draft.Abstract, err = getMultiline(a.reader, "Enter abstract", os.Stdout); err != nil {
		return err
	}
	if draft.Keywords, err = getList(a.reader, "Enter keywords", os.Stdout); err != nil {
		return err
	}
	if draft.WordCount, err = getInt(a.reader, "Enter word count", os.Stdout); err != nil {
		printlnFn(err.Error())
		return err
	}

	path, err := getSimpleText(a.reader, "Enter manuscript file path (.doc or .docx)", os.Stdout)
	if err != nil {
		return err
	}

	file, err := os.Open(path)
	if err != nil {
		printlnFn("Cannot open manuscript file:", err.Error())
		return err
	}
	defer file.Close()

	draft.File = models.Attachment{Name: filepath.Base(path), Content: file}

	receipt, err := a.submissions.SubmitManuscript(ctx, draft)
	if err != nil {
		printlnFn("Submission failed:", err.Error())
		return err
	}

	printlnFn("Manuscript submitted, id:", receipt.ID)
	printlnFn("A DOI will be assigned if the manuscript is approved.")
	return nil
}
