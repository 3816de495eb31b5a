package rules

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultRulesetIsValid(t *testing.T) {
	rs := Default()

	assert.NotEmpty(t, rs.CrisisKeywords)
	assert.NotEmpty(t, rs.Categories)
	assert.NotEmpty(t, rs.GenericReply)
	assert.NotEmpty(t, rs.CrisisFooter)
	assert.NotEmpty(t, rs.SystemPrompt)

	for _, cr := range rs.Categories {
		assert.Contains(t, rs.Replies, cr.Name, "category %q has no reply", cr.Name)
	}
}

func TestDefaultRulesetIsNormalized(t *testing.T) {
	rs := Default()

	for _, k := range rs.CrisisKeywords {
		assert.Equal(t, strings.ToLower(k), k)
	}
	for _, cr := range rs.Categories {
		for _, k := range cr.Keywords {
			assert.Equal(t, strings.ToLower(k), k)
		}
	}
}

func TestLoadRulesFile(t *testing.T) {
	rs, err := Load("../../data/rules.json")
	require.NoError(t, err)

	assert.NotEmpty(t, rs.CrisisKeywords)
	assert.Contains(t, rs.CrisisKeywords, "end my life")

	names := make([]string, 0, len(rs.Categories))
	for _, cr := range rs.Categories {
		names = append(names, cr.Name)
	}
	assert.Equal(t, []string{"stress", "sad", "sleep", "happy"}, names)
}

func TestLoadNormalizesKeywordCase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.json")
	raw := `{
		"crisis_keywords": ["SUICIDE", "End My Life"],
		"categories": [{"name": "stress", "keywords": ["STRESSED"]}],
		"replies": {"stress": "reply"},
		"generic_reply": "generic",
		"crisis_footer": "footer",
		"system_prompt": "prompt"
	}`
	require.NoError(t, os.WriteFile(path, []byte(raw), 0o644))

	rs, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"suicide", "end my life"}, rs.CrisisKeywords)
	assert.Equal(t, []string{"stressed"}, rs.Categories[0].Keywords)
}

func TestLoadRejectsEmptyRuleset(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"crisis_keywords": []}`), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load("no-such-rules.json")
	assert.Error(t, err)
}
