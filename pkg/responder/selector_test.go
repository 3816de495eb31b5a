package responder

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"mindcare/backend/pkg/rules"
)

func newTestSelector() *Selector {
	return NewSelector(rules.Default())
}

func TestSelectCategories(t *testing.T) {
	s := newTestSelector()

	cases := []struct {
		text     string
		expected Category
	}{
		{"I am so stressed and anxious about exams", CategoryStress},
		{"feeling really sad and lonely today", CategorySad},
		{"I can't sleep, lying awake all night", CategorySleep},
		{"I am thrilled about my exam results!", CategoryHappy},
		{"just checking in", CategoryGeneric},
		{"", CategoryGeneric},
	}

	for _, tc := range cases {
		got := s.Select(tc.text, 0.0, false)
		assert.Equal(t, tc.expected, got, "text: %q", tc.text)
	}
}

func TestSelectIsCaseInsensitive(t *testing.T) {
	s := newTestSelector()

	assert.Equal(t, CategoryStress, s.Select("SO STRESSED RIGHT NOW", 0.0, false))
}

func TestSelectCrisisOverridesCategories(t *testing.T) {
	s := newTestSelector()

	// Even a text full of happy keywords resolves to crisis when flagged
	got := s.Select("happy and excited", 0.9, true)

	assert.Equal(t, CategoryCrisis, got)
}

func TestSelectRuleOrder(t *testing.T) {
	s := newTestSelector()

	// Mentions both stress and happy keywords; stress appears first in the
	// rule table and wins.
	got := s.Select("stressed but also happy", 0.0, false)

	assert.Equal(t, CategoryStress, got)
}

func TestBaseReply(t *testing.T) {
	s := newTestSelector()
	rs := rules.Default()

	assert.Equal(t, rs.Replies["stress"], s.BaseReply(CategoryStress))
	assert.Equal(t, rs.Replies["happy"], s.BaseReply(CategoryHappy))
	assert.Equal(t, rs.GenericReply, s.BaseReply(CategoryGeneric))
}

func TestFinalizeAppendsCrisisFooter(t *testing.T) {
	s := newTestSelector()

	plain := s.Finalize("take care of yourself", false)
	assert.Equal(t, "take care of yourself", plain)

	flagged := s.Finalize("take care of yourself", true)
	assert.True(t, strings.HasPrefix(flagged, "take care of yourself\n\n"))
	assert.Contains(t, flagged, rules.Default().CrisisFooter)
}
