package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatSeconds(t *testing.T) {
	assert.Equal(t, "-", FormatSeconds(0))
	assert.Equal(t, "-", FormatSeconds(-5))
	assert.Equal(t, "00:59", FormatSeconds(59))
	assert.Equal(t, "26:15", FormatSeconds(1575))
	assert.Equal(t, "1:00:01", FormatSeconds(3601))
}

func TestWriteTable(t *testing.T) {
	var sb strings.Builder
	WriteTable(&sb, []string{"Rank", "Name"}, [][]string{
		{"1.", "Erika Mustermann"},
		{"2.", "Max"},
	})
	lines := strings.Split(strings.TrimRight(sb.String(), "\n"), "\n")
	assert.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "Rank  Name"))
	assert.True(t, strings.HasPrefix(lines[1], "1.    Erika Mustermann"))
}
