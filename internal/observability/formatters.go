// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/thomas/portfolio-cms/internal/schemas"
	"github.com/thomas/portfolio-cms/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintContentSummary outputs a human-readable summary of a content document.
func (p *Printer) PrintContentSummary(doc *types.Portfolio) {
	if doc == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Name:     %s\n", doc.Hero.PersonalInfo.Name))
	if len(doc.Hero.PersonalInfo.Titles) > 0 {
		sb.WriteString(fmt.Sprintf("Titles:   %s\n", strings.Join(doc.Hero.PersonalInfo.Titles, ", ")))
	}
	sb.WriteString("\n")

	sb.WriteString(fmt.Sprintf("Experience entries: %d\n", len(doc.Experience)))
	sb.WriteString(fmt.Sprintf("Education entries:  %d\n", len(doc.Education)))
	sb.WriteString(fmt.Sprintf("Projects:           %d\n", len(doc.Projects)))

	totalSkills := 0
	for _, list := range doc.Skills {
		totalSkills += len(list)
	}
	sb.WriteString(fmt.Sprintf("Skills:             %d in %d categories\n", totalSkills, len(doc.Skills)))

	if !doc.LastModifiedAt.IsZero() {
		sb.WriteString("\n")
		sb.WriteString(fmt.Sprintf("Last modified: %s", doc.LastModifiedAt.Format("2006-01-02 15:04:05")))
	}

	p.printBox("CONTENT SUMMARY", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintExperience outputs the first few experience entries with their skills.
func (p *Printer) PrintExperience(entries []types.Experience) {
	if len(entries) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Total entries: %d\n\n", len(entries)))

	count := min(len(entries), maxItemsToShow)
	for i := 0; i < count; i++ {
		e := entries[i]
		sb.WriteString(fmt.Sprintf("#%d  %s\n", e.Order+1, e.Title))
		sb.WriteString(fmt.Sprintf("    %s · %s", e.Company, e.WorkType))
		if !e.Visible {
			sb.WriteString(" (hidden)")
		}
		sb.WriteString("\n")
		if len(e.Skills) > 0 {
			skills := strings.Join(e.Skills, ", ")
			if len(skills) > 40 {
				skills = skills[:37] + "..."
			}
			sb.WriteString(fmt.Sprintf("    Skills: %s\n", skills))
		}
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(entries) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more entries", len(entries)-maxItemsToShow))
	}

	p.printBox("EXPERIENCE", sb.String())
}

// PrintValidationResult outputs schema violations, or a success marker when
// the document is clean.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintValidationResult(ve *schemas.ValidationError) {
	if ve == nil || len(ve.Errors) == 0 {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, "✅ DOCUMENT IS VALID")
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Found %d violations:\n\n", len(ve.Errors)))

	for i, fe := range ve.Errors {
		message := fe.Message
		if len(message) > 45 {
			message = message[:42] + "..."
		}
		sb.WriteString(fmt.Sprintf("⚠ %s\n", fe.Field))
		sb.WriteString(fmt.Sprintf("  %s\n", message))
		if i < len(ve.Errors)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("SCHEMA VIOLATIONS", sb.String())
}
