package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/estudiantes/revista/internal/client/models"
)

// Categories prints the journal's category names in collaborator order.
func (a *App) Categories(ctx context.Context) error {
	categories, err := a.catalog.Categories(ctx)
	if err != nil {
		printlnFn("Cannot list categories:", err.Error())
		return err
	}
	for _, c := range categories {
		printlnFn(" -", c)
	}
	return nil
}

// Papers prompts for optional filters and prints the matching manuscripts,
// newest first. Approved papers are printed with their citation line.
func (a *App) Papers(ctx context.Context) error {
	filter := models.Filter{}
	var err error

	if filter.Category, err = getSimpleText(a.reader, "Filter by category (empty for all)", os.Stdout); err != nil {
		return err
	}
	if filter.Author, err = getSimpleText(a.reader, "Filter by author (empty for all)", os.Stdout); err != nil {
		return err
	}
	if filter.Institution, err = getSimpleText(a.reader, "Filter by institution (empty for all)", os.Stdout); err != nil {
		return err
	}

	status, err := getSimpleText(a.reader, "Filter by status (empty for published)", os.Stdout)
	if err != nil {
		return err
	}
	filter.Status = models.Status(status)

	papers, err := a.catalog.Papers(ctx, filter)
	if err != nil {
		printlnFn("Cannot list papers:", err.Error())
		return err
	}

	printPapers(papers)
	return nil
}

// Pending lists the review queue. Requires review access.
func (a *App) Pending(ctx context.Context) error {
	papers, err := a.catalog.PendingManuscripts(ctx)
	if err != nil {
		printlnFn("Cannot list pending manuscripts:", err.Error())
		return err
	}
	printPapers(papers)
	return nil
}

// Applications lists reviewer applications. Requires review access.
func (a *App) Applications(ctx context.Context) error {
	applications, err := a.catalog.ReviewerApplications(ctx)
	if err != nil {
		printlnFn("Cannot list applications:", err.Error())
		return err
	}
	for _, app := range applications {
		printlnFn(fmt.Sprintf("[%s] %s (%s) — %s", app.ID, app.Name, app.Institution, app.Status))
	}
	if len(applications) == 0 {
		printlnFn("No applications.")
	}
	return nil
}

func printPapers(papers []models.Manuscript) {
	for _, p := range papers {
		printlnFn(fmt.Sprintf("[%s] %s (%s, %s)", p.ID, p.Title, p.Category, p.Status))
		if p.Status == models.StatusApproved {
			printlnFn("     " + models.Citation(p))
		}
	}
	if len(papers) == 0 {
		printlnFn("No papers found.")
	}
}
