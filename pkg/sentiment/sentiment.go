// Package sentiment scores the affective polarity of free text.
package sentiment

import (
	"math"
	"strings"

	"mindcare/backend/pkg/logger"
	"mindcare/backend/pkg/metrics"

	"github.com/jonreiter/govader"
)

// Scorer maps raw text to a polarity score in [-1, 1]
type Scorer interface {
	Score(text string) float64
}

// VaderScorer scores text with a VADER lexicon analyzer. Any analyzer failure
// degrades to a neutral 0.0 instead of propagating; losing one score is
// preferable to failing the message pipeline.
type VaderScorer struct {
	analyzer *govader.SentimentIntensityAnalyzer
	log      *logger.Logger
}

// NewVaderScorer creates a scorer backed by the VADER lexicon
func NewVaderScorer(log *logger.Logger) *VaderScorer {
	return &VaderScorer{
		analyzer: govader.NewSentimentIntensityAnalyzer(),
		log:      log.WithComponent("sentiment"),
	}
}

// Score returns the compound polarity of text, rounded to 3 decimal digits
// and clamped to [-1, 1]. Empty or whitespace-only input scores 0.0.
func (s *VaderScorer) Score(text string) (score float64) {
	defer func() {
		if r := recover(); r != nil {
			s.log.Warn("sentiment analysis degraded to neutral", "reason", r)
			metrics.AnalysisDegraded.Inc()
			score = 0.0
		}
	}()

	if strings.TrimSpace(text) == "" {
		return 0.0
	}

	result := s.analyzer.PolarityScores(text)
	return round3(clamp(result.Compound))
}

func clamp(v float64) float64 {
	switch {
	case v > 1.0:
		return 1.0
	case v < -1.0:
		return -1.0
	}
	return v
}

// round3 keeps stored scores stable across analyzer float noise
func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
