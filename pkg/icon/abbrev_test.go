package icon

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAbbreviate(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"Russian", "RU"},
		{"RUSSIAN", "RU"},
		{"ru-keyboard", "RU"},
		{"English (US)", "EN"},
		{"US International", "EN"},
		{"english (UK)", "EN"},
		{"ua-phonetic", "UA"},
		{"French", "FR"},
		{"German", "GE"},
		// substring matching quirks, kept on purpose
		{"Belarus", "RU"},
		{"Ukrainian", "UK"},
		// short and empty names
		{"f", "F"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Abbreviate(tt.name))
		})
	}
}

func TestAbbreviateChecksRussianBeforeEnglish(t *testing.T) {
	// "russian" contains "us" as well; the ru branch must win.
	assert.Equal(t, "RU", Abbreviate("russian"))
}
