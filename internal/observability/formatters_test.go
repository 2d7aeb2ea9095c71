package observability

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/thomas/portfolio-cms/internal/schemas"
	"github.com/thomas/portfolio-cms/internal/types"
)

func TestPrintContentSummary(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	doc := types.DefaultPortfolio()
	doc.Hero.PersonalInfo.Name = "Thomas"
	doc.Hero.PersonalInfo.Titles = []string{"Developer", "Data Engineer"}
	doc.Experience = []types.Experience{{ID: "e1", Title: "Data Engineer"}}
	doc.Skills = map[string][]types.Skill{
		"Backend": {{Name: "Go"}, {Name: "Postgres"}},
	}
	doc.LastModifiedAt = time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	p.PrintContentSummary(&doc)
	output := buf.String()

	assert.Contains(t, output, "CONTENT SUMMARY")
	assert.Contains(t, output, "Thomas")
	assert.Contains(t, output, "Developer, Data Engineer")
	assert.Contains(t, output, "Experience entries: 1")
	assert.Contains(t, output, "2 in 1 categories")
	assert.Contains(t, output, "2026-08-01")
}

func TestPrintContentSummary_Nil(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintContentSummary(nil)

	assert.Empty(t, buf.String())
}

func TestPrintExperience(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	entries := []types.Experience{
		{Title: "Data Engineer", Company: "Nolimit Indonesia", WorkType: types.WorkTypeOnSite, Order: 0, Visible: true, Skills: []string{"Go", "Kafka"}},
		{Title: "Backend Engineer", Company: "Acme", WorkType: types.WorkTypeRemote, Order: 1},
	}

	p.PrintExperience(entries)
	output := buf.String()

	assert.Contains(t, output, "EXPERIENCE")
	assert.Contains(t, output, "Data Engineer")
	assert.Contains(t, output, "Go, Kafka")
	assert.Contains(t, output, "(hidden)")
}

func TestPrintExperience_Empty(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintExperience(nil)

	assert.Empty(t, buf.String())
}

func TestPrintExperience_TruncatesLongLists(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	entries := make([]types.Experience, 8)
	for i := range entries {
		entries[i] = types.Experience{Title: "Role", Company: "Acme", Order: i}
	}

	p.PrintExperience(entries)

	assert.Contains(t, buf.String(), "and 3 more entries")
}

func TestPrintValidationResult_Clean(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintValidationResult(nil)

	assert.Contains(t, buf.String(), "DOCUMENT IS VALID")
}

func TestPrintValidationResult_Violations(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintValidationResult(&schemas.ValidationError{
		Errors: []schemas.FieldError{
			{Field: "hero.personal_info.titles", Message: "Array must have at least 1 items"},
			{Field: "experience.0.work_type", Message: "must be one of the enum values"},
		},
	})
	output := buf.String()

	assert.Contains(t, output, "SCHEMA VIOLATIONS")
	assert.Contains(t, output, "Found 2 violations")
	assert.Contains(t, output, "hero.personal_info.titles")
}
