package wizard

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJoinHuman(t *testing.T) {
	tests := []struct {
		items []string
		want  string
	}{
		{nil, ""},
		{[]string{}, ""},
		{[]string{"A"}, "A"},
		{[]string{"A", "B"}, "A and B"},
		{[]string{"A", "B", "C"}, "A, B, and C"},
		{[]string{"A", "B", "C", "D"}, "A, B, C, and D"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, JoinHuman(tt.items), "%v", tt.items)
	}
}

func TestSentence(t *testing.T) {
	assert.Equal(t, "", Sentence("This solution targets ", nil))
	assert.Equal(t, "This solution targets IT.", Sentence("This solution targets ", []string{"IT"}))
	assert.Equal(t, "We will develop Templates, Policies, and Forms/GUI.",
		Sentence("We will develop ", []string{"Templates", "Policies", "Forms/GUI"}))
}
