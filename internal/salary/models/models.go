// Package models defines the salary submission domain entities.
package models

import (
	"strings"
	"time"

	"github.com/google/uuid"

	dErrors "salaire/pkg/domain-errors"
)

// Level is the seniority reported by the contributor. Values mirror the
// niveau column of the public table.
const (
	LevelJunior       = "Junior"
	LevelIntermediate = "Intermédiaire"
	LevelSenior       = "Senior"
)

// Work modality values (modalite_travail column).
const (
	WorkOnSite = "Présentiel"
	WorkHybrid = "Hybride"
	WorkRemote = "Full Remote"
)

// PendingSubmission is one unverified contribution sitting in the staging
// store. It is created at intake, read and deleted by the confirmation flow,
// and never mutated in place. The contributor email exists only here.
type PendingSubmission struct {
	ID             uuid.UUID
	Email          string
	Company        string
	Title          string
	Location       string
	Level          string
	WorkMode       string
	Compensation   string
	YearsAtCompany int
	YearsTotal     int
	CreatedAt      time.Time
}

// SalaryEntry is one anonymized public data point. It carries no email and
// no reference back to the staging row it came from.
type SalaryEntry struct {
	ID             uuid.UUID
	Company        string
	Title          string
	Location       string
	Level          string
	WorkMode       string
	Compensation   string
	YearsAtCompany int
	YearsTotal     int
	PublishedAt    time.Time
}

// SubmissionInput carries the raw intake fields before validation.
type SubmissionInput struct {
	Email          string
	Company        string
	Title          string
	Location       string
	Level          string
	WorkMode       string
	Compensation   string
	YearsAtCompany int
	YearsTotal     int
}

// NewPendingSubmission validates intake fields and mints the staging row.
func NewPendingSubmission(in SubmissionInput, now time.Time) (*PendingSubmission, error) {
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	in.Company = strings.TrimSpace(in.Company)
	in.Title = strings.TrimSpace(in.Title)
	in.Location = strings.TrimSpace(in.Location)
	in.Compensation = strings.TrimSpace(in.Compensation)

	switch {
	case in.Email == "":
		return nil, dErrors.New(dErrors.CodeBadRequest, "email is required")
	case !strings.Contains(in.Email, "@"):
		return nil, dErrors.New(dErrors.CodeBadRequest, "email is malformed")
	case in.Company == "":
		return nil, dErrors.New(dErrors.CodeBadRequest, "company is required")
	case in.Title == "":
		return nil, dErrors.New(dErrors.CodeBadRequest, "job title is required")
	case in.Location == "":
		return nil, dErrors.New(dErrors.CodeBadRequest, "location is required")
	case in.Compensation == "":
		return nil, dErrors.New(dErrors.CodeBadRequest, "compensation is required")
	case in.YearsAtCompany < 0 || in.YearsTotal < 0:
		return nil, dErrors.New(dErrors.CodeBadRequest, "experience years cannot be negative")
	case in.YearsAtCompany > in.YearsTotal:
		return nil, dErrors.New(dErrors.CodeBadRequest, "experience at company cannot exceed total experience")
	}

	return &PendingSubmission{
		ID:             uuid.New(),
		Email:          in.Email,
		Company:        in.Company,
		Title:          in.Title,
		Location:       in.Location,
		Level:          in.Level,
		WorkMode:       in.WorkMode,
		Compensation:   in.Compensation,
		YearsAtCompany: in.YearsAtCompany,
		YearsTotal:     in.YearsTotal,
		CreatedAt:      now,
	}, nil
}

// ToEntry projects the staging row into its public form, dropping the
// identifier, email and staging timestamp. Publication gets a fresh ID so
// the public row cannot be joined back to the staging row.
func (p *PendingSubmission) ToEntry(now time.Time) SalaryEntry {
	return SalaryEntry{
		ID:             uuid.New(),
		Company:        p.Company,
		Title:          p.Title,
		Location:       p.Location,
		Level:          p.Level,
		WorkMode:       p.WorkMode,
		Compensation:   p.Compensation,
		YearsAtCompany: p.YearsAtCompany,
		YearsTotal:     p.YearsTotal,
		PublishedAt:    now,
	}
}
