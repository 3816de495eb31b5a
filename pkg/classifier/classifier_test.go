package classifier

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"mindcare/backend/pkg/rules"
)

func newTestClassifier() *Classifier {
	return New(rules.Default().CrisisKeywords, -0.6)
}

func TestClassifyKeywordMatch(t *testing.T) {
	c := newTestClassifier()

	result := c.Classify("I want to end my life", 0.1)

	assert.True(t, result.IsCrisis)
	assert.Equal(t, TriggerKeyword, result.Trigger)
	assert.Equal(t, "end my life", result.MatchedKeyword)
}

func TestClassifyKeywordMatchIsCaseInsensitive(t *testing.T) {
	c := newTestClassifier()

	result := c.Classify("I WANT TO END MY LIFE", 0.5)

	assert.True(t, result.IsCrisis)
	assert.Equal(t, TriggerKeyword, result.Trigger)
}

func TestClassifyKeywordMatchesSubstrings(t *testing.T) {
	c := newTestClassifier()

	// Substring match, not whole-word: "killme" inside a longer token
	result := c.Classify("pleasekillmenow", 0.0)

	assert.True(t, result.IsCrisis)
	assert.Equal(t, "killme", result.MatchedKeyword)
}

func TestClassifyKeywordWinsRegardlessOfSentiment(t *testing.T) {
	c := newTestClassifier()

	// Positive sentiment must not mask an explicit statement
	result := c.Classify("honestly I just want to die", 0.9)

	assert.True(t, result.IsCrisis)
	assert.Equal(t, TriggerKeyword, result.Trigger)
}

func TestClassifySentimentFloor(t *testing.T) {
	c := newTestClassifier()

	result := c.Classify("everything is awful and nothing helps", -0.7)

	assert.True(t, result.IsCrisis)
	assert.Equal(t, TriggerSentimentThreshold, result.Trigger)
	assert.Empty(t, result.MatchedKeyword)
}

func TestClassifySentimentFloorBoundary(t *testing.T) {
	c := newTestClassifier()

	// The floor is inclusive at exactly the threshold
	atThreshold := c.Classify("bad day", -0.6)
	assert.True(t, atThreshold.IsCrisis)

	aboveThreshold := c.Classify("bad day", -0.59)
	assert.False(t, aboveThreshold.IsCrisis)
	assert.Equal(t, TriggerNone, aboveThreshold.Trigger)
}

func TestClassifyNonCrisis(t *testing.T) {
	c := newTestClassifier()

	result := c.Classify("had a pretty good day at school", 0.4)

	assert.False(t, result.IsCrisis)
	assert.Equal(t, TriggerNone, result.Trigger)
	assert.Equal(t, 0.4, result.Sentiment)
}

func TestClassifyEmptyText(t *testing.T) {
	c := newTestClassifier()

	for _, text := range []string{"", "   ", "\n\t"} {
		result := c.Classify(text, -0.9)
		assert.False(t, result.IsCrisis, "empty text must never classify as crisis: %q", text)
		assert.Equal(t, TriggerNone, result.Trigger)
	}
}

func TestClassifyConfigurableThreshold(t *testing.T) {
	c := New(rules.Default().CrisisKeywords, -0.3)

	result := c.Classify("not great", -0.4)

	assert.True(t, result.IsCrisis)
	assert.Equal(t, TriggerSentimentThreshold, result.Trigger)
}
