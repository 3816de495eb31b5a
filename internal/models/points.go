package models

import "time"

// PointsEntry is one row in the wellness points ledger
type PointsEntry struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Reason    string    `json:"reason"`
	Points    int       `json:"points"`
	Timestamp time.Time `json:"timestamp"`
}

// TableName keeps the historical table name
func (PointsEntry) TableName() string { return "points" }

// Activity awards for self-care micro-tasks. Logging a mood awards
// MoodLogPoints as a side effect.
const MoodLogPoints = 5

// Activities maps a self-care activity name to its award
var Activities = map[string]int{
	"breathing": 10,
	"grounding": 5,
	"gratitude": 5,
}
