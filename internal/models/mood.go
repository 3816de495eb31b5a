package models

import "time"

// MaxNoteLen is the storage bound for mood notes
const MaxNoteLen = 1000

// Mood labels, ordinal from best to worst
const (
	MoodVeryPositive = "Very Positive"
	MoodPositive     = "Positive"
	MoodNeutral      = "Neutral"
	MoodAnxious      = "Anxious"
	MoodVeryNegative = "Very Negative"
)

// moodScores is the canonical label→score bijection. Label and score must
// never disagree; MoodEntry rows always store the mapped value.
var moodScores = map[string]int{
	MoodVeryPositive: 2,
	MoodPositive:     1,
	MoodNeutral:      0,
	MoodAnxious:      -1,
	MoodVeryNegative: -2,
}

// MoodScore returns the canonical score for a label
func MoodScore(label string) (int, bool) {
	score, ok := moodScores[label]
	return score, ok
}

// MoodLabels returns the valid labels in ordinal order
func MoodLabels() []string {
	return []string{MoodVeryPositive, MoodPositive, MoodNeutral, MoodAnxious, MoodVeryNegative}
}

// MoodEntry is one logged mood
type MoodEntry struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Label     string    `json:"label" gorm:"column:mood_label"`
	Score     int       `json:"score"`
	Note      string    `json:"note"`
	Timestamp time.Time `json:"timestamp"`
}

// TableName keeps the historical table name
func (MoodEntry) TableName() string { return "moods" }
