package models

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/estudiantes/revista/internal/common"
)

func validManuscriptDraft() ManuscriptDraft {
	return ManuscriptDraft{
		Title:       "X",
		Authors:     []string{"A", "B"},
		Institution: "Universidad Central",
		Email:       "a@uni.edu",
		Category:    "Física",
		Abstract:    "Un resumen.",
		Keywords:    []string{"física"},
		WordCount:   3000,
		File:        Attachment{Name: "paper.docx", Content: strings.NewReader("doc")},
	}
}

func TestManuscriptDraft_Valid(t *testing.T) {
	require.NoError(t, validManuscriptDraft().Validate())
}

func TestManuscriptDraft_WordCountBounds(t *testing.T) {
	tests := []struct {
		wc int
		ok bool
	}{
		{1999, false},
		{2000, true},
		{8000, true},
		{8001, false},
		{0, false},
	}
	for _, tc := range tests {
		d := validManuscriptDraft()
		d.WordCount = tc.wc
		err := d.Validate()
		if tc.ok {
			require.NoError(t, err, "word_count=%d", tc.wc)
		} else {
			require.ErrorIs(t, err, common.ErrValidation, "word_count=%d", tc.wc)
		}
	}
}

func TestManuscriptDraft_RequiredFields(t *testing.T) {
	for _, mutate := range []func(*ManuscriptDraft){
		func(d *ManuscriptDraft) { d.Title = "" },
		func(d *ManuscriptDraft) { d.Institution = " " },
		func(d *ManuscriptDraft) { d.Email = "" },
		func(d *ManuscriptDraft) { d.Category = "" },
		func(d *ManuscriptDraft) { d.Abstract = "" },
		func(d *ManuscriptDraft) { d.Authors = nil },
		func(d *ManuscriptDraft) { d.Keywords = nil },
		func(d *ManuscriptDraft) { d.File = Attachment{} },
	} {
		d := validManuscriptDraft()
		mutate(&d)
		require.ErrorIs(t, d.Validate(), common.ErrValidation)
	}
}

func TestManuscriptDraft_FileExtension(t *testing.T) {
	tests := []struct {
		name string
		ok   bool
	}{
		{"paper.doc", true},
		{"paper.docx", true},
		{"PAPER.DOCX", true},
		{"paper.pdf", false},
		{"paper.txt", false},
		{"paper", false},
	}
	for _, tc := range tests {
		d := validManuscriptDraft()
		d.File.Name = tc.name
		err := d.Validate()
		if tc.ok {
			require.NoError(t, err, tc.name)
		} else {
			require.ErrorIs(t, err, common.ErrUnsupportedFileType, tc.name)
		}
	}
}

func validApplicationDraft() ApplicationDraft {
	return ApplicationDraft{
		Name:             "C. Ruiz",
		Email:            "c@uni.edu",
		Institution:      "Universidad Central",
		CV:               Attachment{Name: "cv.pdf", Content: strings.NewReader("cv")},
		MotivationLetter: strings.Repeat("palabra ", 520),
		Specialization:   []string{"Química"},
		References:       []string{"Dra. M. Soto"},
		Experience:       "Tres años de revisión editorial.",
		Certificates:     Attachment{Name: "certs.pdf", Content: strings.NewReader("certs")},
	}
}

func TestApplicationDraft_Valid(t *testing.T) {
	require.NoError(t, validApplicationDraft().Validate())
}

func TestApplicationDraft_MotivationCountedInWords(t *testing.T) {
	d := validApplicationDraft()
	// 499 words but far more than 500 characters.
	d.MotivationLetter = strings.Repeat("palabralarguísima ", 499)
	require.ErrorIs(t, d.Validate(), common.ErrValidation)

	d.MotivationLetter = strings.Repeat("p ", 500)
	require.NoError(t, d.Validate())
}

func TestApplicationDraft_DocumentExtensions(t *testing.T) {
	d := validApplicationDraft()
	d.CV.Name = "cv.exe"
	require.ErrorIs(t, d.Validate(), common.ErrUnsupportedFileType)

	d = validApplicationDraft()
	d.Certificates.Name = "certs.zip"
	require.ErrorIs(t, d.Validate(), common.ErrUnsupportedFileType)
}

func TestApplicationDraft_RequiredFields(t *testing.T) {
	for _, mutate := range []func(*ApplicationDraft){
		func(d *ApplicationDraft) { d.Name = "" },
		func(d *ApplicationDraft) { d.Email = "" },
		func(d *ApplicationDraft) { d.Institution = "" },
		func(d *ApplicationDraft) { d.Experience = "" },
		func(d *ApplicationDraft) { d.Specialization = nil },
		func(d *ApplicationDraft) { d.References = nil },
		func(d *ApplicationDraft) { d.CV = Attachment{} },
		func(d *ApplicationDraft) { d.Certificates = Attachment{} },
	} {
		d := validApplicationDraft()
		mutate(&d)
		require.ErrorIs(t, d.Validate(), common.ErrValidation)
	}
}
