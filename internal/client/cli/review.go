package cli

import (
	"context"
	"os"

	"github.com/estudiantes/revista/internal/client/models"
)

// Review prompts for a pending manuscript id and a verdict, then records the
// decision. The collaborator rejects decisions on already-decided papers.
func (a *App) Review(ctx context.Context) error {
	id, err := getSimpleText(a.reader, "Enter manuscript id", os.Stdout)
	if err != nil {
		return err
	}

	verdict, err := getSimpleText(a.reader, "Enter verdict (approved/rejected)", os.Stdout)
	if err != nil {
		return err
	}

	comment, err := getMultiline(a.reader, "Enter comment for the authors", os.Stdout)
	if err != nil {
		return err
	}

	if err := a.submissions.DecideManuscript(ctx, id, models.Verdict(verdict), comment); err != nil {
		printlnFn("Review failed:", err.Error())
		return err
	}

	if models.Verdict(verdict) == models.VerdictApproved {
		printlnFn("Manuscript approved. A DOI has been assigned.")
	} else {
		printlnFn("Manuscript rejected.")
	}
	return nil
}

// DecideApplication prompts for a reviewer application id and a verdict,
// then records the decision.
func (a *App) DecideApplication(ctx context.Context) error {
	id, err := getSimpleText(a.reader, "Enter application id", os.Stdout)
	if err != nil {
		return err
	}

	verdict, err := getSimpleText(a.reader, "Enter verdict (accepted/rejected)", os.Stdout)
	if err != nil {
		return err
	}

	comment, err := getMultiline(a.reader, "Enter comment for the applicant", os.Stdout)
	if err != nil {
		return err
	}

	if err := a.submissions.DecideApplication(ctx, id, models.Verdict(verdict), comment); err != nil {
		printlnFn("Decision failed:", err.Error())
		return err
	}

	printlnFn("Application decision recorded.")
	return nil
}
