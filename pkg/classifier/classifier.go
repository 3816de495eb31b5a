// Package classifier decides whether a message indicates self-harm risk.
package classifier

import "strings"

// Trigger names which signal flagged a message
type Trigger string

const (
	TriggerKeyword            Trigger = "keyword"
	TriggerSentimentThreshold Trigger = "sentiment_threshold"
	TriggerNone               Trigger = "none"
)

// Result is the per-message classification outcome. It is ephemeral: produced
// per message and consumed immediately to decide storage and response category.
type Result struct {
	Sentiment      float64 `json:"sentiment"`
	IsCrisis       bool    `json:"is_crisis"`
	MatchedKeyword string  `json:"matched_keyword,omitempty"`
	Trigger        Trigger `json:"trigger"`
}

// rule is one (predicate, outcome) pair; rules are evaluated in order and the
// first match wins, which keeps the priority order auditable rule by rule.
type rule struct {
	name  string
	apply func(text string, sentiment float64) (Result, bool)
}

// Classifier combines keyword matching and a sentiment floor into a crisis
// flag. The two signals are OR-ed, never AND-ed: a single strong signal is
// sufficient, trading false positives for fewer false negatives.
type Classifier struct {
	keywords  []string
	threshold float64
	rules     []rule
}

// New creates a classifier with the given crisis keyword list and sentiment
// threshold. Keywords are matched as case-insensitive substrings, not whole
// words. The classifier must see the full raw message, before any storage
// truncation, so keywords are never clipped out from under the test.
func New(keywords []string, threshold float64) *Classifier {
	lowered := make([]string, len(keywords))
	for i, k := range keywords {
		lowered[i] = strings.ToLower(k)
	}

	c := &Classifier{
		keywords:  lowered,
		threshold: threshold,
	}

	c.rules = []rule{
		{name: "crisis_keyword", apply: c.matchKeyword},
		{name: "sentiment_floor", apply: c.matchSentimentFloor},
	}

	return c
}

// Classify runs the ordered rule list over text and sentiment
func (c *Classifier) Classify(text string, sentiment float64) Result {
	// Empty or whitespace-only text is never a crisis
	if strings.TrimSpace(text) == "" {
		return Result{Sentiment: sentiment, Trigger: TriggerNone}
	}

	for _, r := range c.rules {
		if result, ok := r.apply(text, sentiment); ok {
			return result
		}
	}

	return Result{Sentiment: sentiment, Trigger: TriggerNone}
}

func (c *Classifier) matchKeyword(text string, sentiment float64) (Result, bool) {
	lowered := strings.ToLower(text)
	for _, k := range c.keywords {
		if strings.Contains(lowered, k) {
			return Result{
				Sentiment:      sentiment,
				IsCrisis:       true,
				MatchedKeyword: k,
				Trigger:        TriggerKeyword,
			}, true
		}
	}
	return Result{}, false
}

// matchSentimentFloor catches implicit severe distress without explicit
// keywords: short phrases can under-react on keyword matching alone.
func (c *Classifier) matchSentimentFloor(_ string, sentiment float64) (Result, bool) {
	if sentiment <= c.threshold {
		return Result{
			Sentiment: sentiment,
			IsCrisis:  true,
			Trigger:   TriggerSentimentThreshold,
		}, true
	}
	return Result{}, false
}
