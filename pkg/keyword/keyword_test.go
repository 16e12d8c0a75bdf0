package keyword

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var techs = []string{"react", "python", "javascript", "java", "nodejs", "vue"}

func TestMatcher_Extract(t *testing.T) {
	m, err := New(techs)
	require.NoError(t, err)

	tests := []struct {
		name   string
		text   string
		want   string
		wantOK bool
	}{
		{name: "single term", text: "How many Python jobs?", want: "Python", wantOK: true},
		{name: "javascript beats java", text: "any JavaScript roles", want: "Javascript", wantOK: true},
		{name: "java alone", text: "java internships", want: "Java", wantOK: true},
		{name: "earliest priority wins", text: "vue or react?", want: "React", wantOK: true},
		{name: "substring match", text: "reactjs devs", want: "React", wantOK: true},
		{name: "no match", text: "tell me about golang", wantOK: false},
		{name: "empty", text: "", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := m.Extract(tt.text)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNew_EmptyVocabulary(t *testing.T) {
	_, err := New([]string{"", "  "})
	assert.ErrorIs(t, err, ErrEmptyVocabulary)
}

func TestCapitalize(t *testing.T) {
	assert.Equal(t, "Nodejs", Capitalize("NODEJS"))
	assert.Equal(t, "Ios", Capitalize("ios"))
	assert.Equal(t, "", Capitalize(""))
}
