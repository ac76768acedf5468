package report

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testParams = Params{
	Rename:            "Alpha",
	RobuxFund:         "100",
	CommunitiesMember: "m1",
	OwnerUsername:     "owner1",
	OriginalContent:   "line one\n\nline two",
}

func TestLines(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []string
	}{
		{
			name:    "blank lines discarded",
			content: "line one\n\nline two",
			want:    []string{"line one", "line two"},
		},
		{
			name:    "whitespace-only lines discarded",
			content: "a\n   \n\t\nb\n",
			want:    []string{"a", "b"},
		},
		{
			name:    "windows line endings",
			content: "a\r\nb\r\n",
			want:    []string{"a", "b"},
		},
		{
			name:    "order preserved",
			content: "c\na\nb",
			want:    []string{"c", "a", "b"},
		},
		{
			name:    "only blank lines",
			content: "\n \n",
			want:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Lines(tt.content))
		})
	}
}

// numberedLines re-parses the numbered listing out of a generated report.
func numberedLines(t *testing.T, generated string) []string {
	t.Helper()
	var lines []string
	for _, line := range strings.Split(generated, "\n") {
		parts := strings.SplitN(line, ". ", 2)
		if len(parts) != 2 || !isNumber(parts[0]) {
			continue
		}
		lines = append(lines, parts[1])
	}
	return lines
}

func isNumber(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func TestGenerate(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	out := Generate(testParams, now)

	assert.Contains(t, out, "Generated: 2025-06-01 12:00:00")
	assert.Contains(t, out, "Rename: Alpha")
	assert.Contains(t, out, "Robux Fund: 100")
	assert.Contains(t, out, "Communities Member: m1")
	assert.Contains(t, out, "Owner Username: owner1")
	assert.Contains(t, out, "1. line one")
	assert.Contains(t, out, "2. line two")
	assert.Contains(t, out, "Total Communities: 2")
}

func TestGenerateNumberingContiguous(t *testing.T) {
	content := "alpha\n\nbravo\n \ncharlie\ndelta"
	out := Generate(Params{OriginalContent: content}, time.Now())

	want := Lines(content)
	require.Equal(t, len(want), Count(content))
	for i, line := range want {
		assert.Contains(t, out, fmt.Sprintf("%d. %s\n", i+1, line))
	}
	assert.Contains(t, out, fmt.Sprintf("Total Communities: %d", len(want)))
	assert.NotContains(t, out, fmt.Sprintf("%d. ", len(want)+1))
}

func TestGenerateIdempotent(t *testing.T) {
	// identical except for the embedded timestamp line
	strip := func(s string) string {
		var kept []string
		for _, line := range strings.Split(s, "\n") {
			if strings.HasPrefix(line, "Generated: ") {
				continue
			}
			kept = append(kept, line)
		}
		return strings.Join(kept, "\n")
	}

	first := Generate(testParams, time.Now())
	second := Generate(testParams, time.Now().Add(time.Hour))
	assert.Equal(t, strip(first), strip(second))
}

func TestGenerateRoundTrip(t *testing.T) {
	content := "Crimson Raiders\n\nBlue Falcons\nNight Owls\n"
	out := Generate(Params{OriginalContent: content}, time.Now())
	assert.Equal(t, Lines(content), numberedLines(t, out))
}

func TestGenerateEmptyContent(t *testing.T) {
	out := Generate(Params{OriginalContent: "\n  \n"}, time.Now())
	assert.Contains(t, out, "Total Communities: 0")
}

func TestFileName(t *testing.T) {
	tests := []struct {
		rename string
		want   string
	}{
		{"Alpha", "alpha-rename-report.txt"},
		{"My Cool Community", "my-cool-community-rename-report.txt"},
		{"  padded  ", "padded-rename-report.txt"},
		{"///", "community-rename-report.txt"},
		{"", "community-rename-report.txt"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FileName(tt.rename), "rename %q", tt.rename)
	}
}
