package cli

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/estudiantes/revista/internal/client/models"
	"github.com/estudiantes/revista/internal/common"
)

type fakeSubmissions struct {
	Receipt   models.SubmitReceipt
	SubmitErr error
	ApplyErr  error
	DecideErr error

	LastDraft       models.ManuscriptDraft
	LastApplication models.ApplicationDraft
	LastID          string
	LastVerdict     models.Verdict
	LastComment     string
}

func (f *fakeSubmissions) SubmitManuscript(_ context.Context, draft models.ManuscriptDraft) (models.SubmitReceipt, error) {
	f.LastDraft = draft
	return f.Receipt, f.SubmitErr
}
func (f *fakeSubmissions) ApplyAsReviewer(_ context.Context, draft models.ApplicationDraft) error {
	f.LastApplication = draft
	return f.ApplyErr
}
func (f *fakeSubmissions) DecideManuscript(_ context.Context, id string, verdict models.Verdict, comment string) error {
	f.LastID, f.LastVerdict, f.LastComment = id, verdict, comment
	return f.DecideErr
}
func (f *fakeSubmissions) DecideApplication(_ context.Context, id string, verdict models.Verdict, comment string) error {
	f.LastID, f.LastVerdict, f.LastComment = id, verdict, comment
	return f.DecideErr
}

type fakeCatalog struct {
	PapersRet     []models.Manuscript
	PapersErr     error
	CategoriesRet []string
	Apps          []models.ReviewerApplication

	LastFilter models.Filter
}

func (f *fakeCatalog) Papers(_ context.Context, filter models.Filter) ([]models.Manuscript, error) {
	f.LastFilter = filter
	return f.PapersRet, f.PapersErr
}
func (f *fakeCatalog) Categories(context.Context) ([]string, error) {
	return f.CategoriesRet, nil
}
func (f *fakeCatalog) PendingManuscripts(context.Context) ([]models.Manuscript, error) {
	return f.PapersRet, f.PapersErr
}
func (f *fakeCatalog) ReviewerApplications(context.Context) ([]models.ReviewerApplication, error) {
	return f.Apps, nil
}

func writeTempFile(t *testing.T, name string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte("contenido"), 0o600))
	return path
}

func TestSubmit_PassesDraftThrough(t *testing.T) {
	silencePrintln(t)
	path := writeTempFile(t, "ondas.docx")

	stubTextQueue(t, "Ondas Gravitacionales", "UNAM", "maria@uni.edu", "Física", path)
	stubListQueue(t, []string{"María López", "José Díaz"}, []string{"ondas", "gravedad"})
	stubMultilineQueue(t, "Un estudio de ondas.")
	stubInt(t, 3500)

	subs := &fakeSubmissions{Receipt: models.SubmitReceipt{ID: "p-1"}}
	a := &App{submissions: subs}

	require.NoError(t, a.Submit(context.Background()))
	require.Equal(t, "Ondas Gravitacionales", subs.LastDraft.Title)
	require.Equal(t, []string{"María López", "José Díaz"}, subs.LastDraft.Authors)
	require.Equal(t, "Física", subs.LastDraft.Category)
	require.Equal(t, 3500, subs.LastDraft.WordCount)
	require.Equal(t, "ondas.docx", subs.LastDraft.File.Name)
	require.NotNil(t, subs.LastDraft.File.Content)
}

func TestSubmit_ServiceErrorSurfaces(t *testing.T) {
	silencePrintln(t)
	path := writeTempFile(t, "ondas.docx")

	stubTextQueue(t, "Ondas", "UNAM", "maria@uni.edu", "Física", path)
	stubListQueue(t, []string{"María"}, []string{"ondas"})
	stubMultilineQueue(t, "Resumen.")
	stubInt(t, 100)

	subs := &fakeSubmissions{SubmitErr: common.ErrValidation}
	a := &App{submissions: subs}

	err := a.Submit(context.Background())
	require.ErrorIs(t, err, common.ErrValidation)
}

func TestSubmit_MissingFile(t *testing.T) {
	silencePrintln(t)

	stubTextQueue(t, "Ondas", "UNAM", "maria@uni.edu", "Física", "/no/such/file.docx")
	stubListQueue(t, []string{"María"}, []string{"ondas"})
	stubMultilineQueue(t, "Resumen.")
	stubInt(t, 3500)

	subs := &fakeSubmissions{}
	a := &App{submissions: subs}

	require.Error(t, a.Submit(context.Background()))
	require.Empty(t, subs.LastDraft.Title, "service must not be called")
}

func TestApply_PassesDraftThrough(t *testing.T) {
	silencePrintln(t)
	cvPath := writeTempFile(t, "cv.pdf")
	certPath := writeTempFile(t, "certs.pdf")

	stubTextQueue(t, "María López", "maria@uni.edu", "UNAM", cvPath, certPath)
	stubListQueue(t, []string{"física"}, []string{"Dr. Ruiz"})
	stubMultilineQueue(t, "Diez años de docencia.", "Mi motivación es amplia.")

	subs := &fakeSubmissions{}
	a := &App{submissions: subs}

	require.NoError(t, a.Apply(context.Background()))
	require.Equal(t, "María López", subs.LastApplication.Name)
	require.Equal(t, []string{"física"}, subs.LastApplication.Specialization)
	require.Equal(t, "cv.pdf", subs.LastApplication.CV.Name)
	require.Equal(t, "certs.pdf", subs.LastApplication.Certificates.Name)
}

func TestPapers_ForwardsFilter(t *testing.T) {
	silencePrintln(t)
	stubTextQueue(t, "Física", "María", "UNAM", "")

	cat := &fakeCatalog{PapersRet: []models.Manuscript{
		{ID: "p-1", Title: "Ondas", Status: models.StatusApproved, DOI: "RNCE-1"},
	}}
	a := &App{catalog: cat}

	require.NoError(t, a.Papers(context.Background()))
	require.Equal(t, models.Filter{Category: "Física", Author: "María", Institution: "UNAM"}, cat.LastFilter)
}

func TestCategories_PrintsAll(t *testing.T) {
	var got []string
	orig := printlnFn
	printlnFn = func(args ...any) (int, error) {
		for _, a := range args {
			if s, ok := a.(string); ok {
				got = append(got, s)
			}
		}
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = orig })

	cat := &fakeCatalog{CategoriesRet: []string{"Física", "Química"}}
	a := &App{catalog: cat}

	require.NoError(t, a.Categories(context.Background()))
	require.Contains(t, got, "Física")
	require.Contains(t, got, "Química")
}

func TestReview_PassesDecision(t *testing.T) {
	silencePrintln(t)
	stubTextQueue(t, "p-7", "approved")
	stubMultilineQueue(t, "Sólido trabajo.")

	subs := &fakeSubmissions{}
	a := &App{submissions: subs}

	require.NoError(t, a.Review(context.Background()))
	require.Equal(t, "p-7", subs.LastID)
	require.Equal(t, models.VerdictApproved, subs.LastVerdict)
	require.Equal(t, "Sólido trabajo.", subs.LastComment)
}

func TestReview_AlreadyDecided(t *testing.T) {
	silencePrintln(t)
	stubTextQueue(t, "p-7", "approved")
	stubMultilineQueue(t, "")

	subs := &fakeSubmissions{DecideErr: common.ErrInvalidStateTransition}
	a := &App{submissions: subs}

	err := a.Review(context.Background())
	require.True(t, errors.Is(err, common.ErrInvalidStateTransition))
}

func TestDecideApplication_PassesDecision(t *testing.T) {
	silencePrintln(t)
	stubTextQueue(t, "app-3", "accepted")
	stubMultilineQueue(t, "Bienvenida al equipo.")

	subs := &fakeSubmissions{}
	a := &App{submissions: subs}

	require.NoError(t, a.DecideApplication(context.Background()))
	require.Equal(t, "app-3", subs.LastID)
	require.Equal(t, models.VerdictAccepted, subs.LastVerdict)
}
