// Package report turns a submitted block of community names into a formatted
// rename report.
package report

import (
	"fmt"
	"strings"
	"time"
)

// Params holds the validated submission fields the report is generated from.
type Params struct {
	Rename            string
	RobuxFund         string
	CommunitiesMember string
	OwnerUsername     string
	OriginalContent   string
}

// Lines splits content on line breaks and returns the non-blank lines in
// original order. A trailing carriage return is stripped, the line content is
// otherwise untouched.
func Lines(content string) []string {
	var lines []string
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}

// Count returns the number of non-blank lines in content.
func Count(content string) int {
	return len(Lines(content))
}

// Generate renders the rename report: a header block with the generation
// timestamp and the metadata fields, a 1-based numbered listing of the
// surviving lines and a trailing summary line. The output is deterministic
// for a given now, it never fails for validated input.
func Generate(p Params, now time.Time) string {
	lines := Lines(p.OriginalContent)

	var b strings.Builder
	b.WriteString("Community Rename Report\n")
	b.WriteString(fmt.Sprintf("Generated: %s\n", now.Format("2006-01-02 15:04:05")))
	b.WriteString(fmt.Sprintf("Rename: %s\n", p.Rename))
	b.WriteString(fmt.Sprintf("Robux Fund: %s\n", p.RobuxFund))
	b.WriteString(fmt.Sprintf("Communities Member: %s\n", p.CommunitiesMember))
	b.WriteString(fmt.Sprintf("Owner Username: %s\n", p.OwnerUsername))
	b.WriteString("\n")

	for i, line := range lines {
		b.WriteString(fmt.Sprintf("%d. %s\n", i+1, line))
	}

	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("Total Communities: %d\n", len(lines)))
	return b.String()
}

// FileName derives the attachment filename from the rename label.
func FileName(rename string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(strings.TrimSpace(rename)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ', r == '-', r == '_':
			b.WriteRune('-')
		}
	}
	name := strings.Trim(b.String(), "-")
	if name == "" {
		name = "community"
	}
	return name + "-rename-report.txt"
}
