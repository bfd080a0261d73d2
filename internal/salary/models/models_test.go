package models

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "salaire/pkg/domain-errors"
)

func validInput() SubmissionInput {
	return SubmissionInput{
		Email:          "a@wave.ci",
		Company:        "Wave",
		Title:          "Backend Engineer",
		Location:       "Abidjan",
		Level:          LevelSenior,
		WorkMode:       WorkHybrid,
		Compensation:   "8000000",
		YearsAtCompany: 2,
		YearsTotal:     5,
	}
}

func TestNewPendingSubmission(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	sub, err := NewPendingSubmission(validInput(), now)
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, sub.ID)
	assert.Equal(t, "a@wave.ci", sub.Email)
	assert.Equal(t, now, sub.CreatedAt)
}

func TestNewPendingSubmission_NormalizesEmail(t *testing.T) {
	in := validInput()
	in.Email = "  A@Wave.CI "

	sub, err := NewPendingSubmission(in, time.Now())
	require.NoError(t, err)
	assert.Equal(t, "a@wave.ci", sub.Email)
}

func TestNewPendingSubmission_Validation(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*SubmissionInput)
	}{
		{"missing email", func(in *SubmissionInput) { in.Email = "" }},
		{"malformed email", func(in *SubmissionInput) { in.Email = "no-at-sign" }},
		{"missing company", func(in *SubmissionInput) { in.Company = " " }},
		{"missing title", func(in *SubmissionInput) { in.Title = "" }},
		{"missing location", func(in *SubmissionInput) { in.Location = "" }},
		{"missing compensation", func(in *SubmissionInput) { in.Compensation = "" }},
		{"negative experience", func(in *SubmissionInput) { in.YearsTotal = -1 }},
		{"company years over total", func(in *SubmissionInput) { in.YearsAtCompany = 10; in.YearsTotal = 3 }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := validInput()
			tc.mutate(&in)

			_, err := NewPendingSubmission(in, time.Now())
			require.Error(t, err)
			assert.True(t, dErrors.HasCode(err, dErrors.CodeBadRequest))
		})
	}
}

func TestToEntry_StripsContributorIdentity(t *testing.T) {
	sub, err := NewPendingSubmission(validInput(), time.Now().Add(-time.Hour))
	require.NoError(t, err)

	publishedAt := time.Now()
	entry := sub.ToEntry(publishedAt)

	assert.NotEqual(t, sub.ID, entry.ID, "published row must not share the staging identifier")
	assert.Equal(t, publishedAt, entry.PublishedAt, "publish timestamp replaces the staging one")
	assert.Equal(t, sub.Company, entry.Company)
	assert.Equal(t, sub.Title, entry.Title)
	assert.Equal(t, sub.Compensation, entry.Compensation)

	// No field of the published entry may equal the contributor email.
	for _, v := range []string{entry.Company, entry.Title, entry.Location, entry.Level, entry.WorkMode, entry.Compensation, entry.ID.String()} {
		assert.NotEqual(t, sub.Email, v)
	}
}
