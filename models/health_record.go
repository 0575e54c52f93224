package models

import "time"

// Sleep quality and mood scales for health records.
const (
	SleepPoor      = "poor"
	SleepFair      = "fair"
	SleepGood      = "good"
	SleepExcellent = "excellent"

	MoodBad   = "bad"
	MoodOkay  = "okay"
	MoodGood  = "good"
	MoodGreat = "great"
)

// HealthRecord is a daily wellness log entry. All tracked metrics are
// optional; Date identifies the day the entry describes.
type HealthRecord struct {
	ID               int64      `json:"id"`
	UserID           int64      `json:"userId"`
	Date             time.Time  `json:"date"`
	SleepHours       *float64   `json:"sleepHours,omitempty"`
	SleepQuality     string     `json:"sleepQuality,omitempty"`
	Meals            string     `json:"meals,omitempty"`
	Water            *int64     `json:"water,omitempty"`
	Exercise         string     `json:"exercise,omitempty"`
	ExerciseDuration *int64     `json:"exerciseDuration,omitempty"`
	Mood             string     `json:"mood,omitempty"`
	Notes            string     `json:"notes,omitempty"`
	CreatedAt        time.Time  `json:"createdAt"`
	UpdatedAt        time.Time  `json:"updatedAt"`
}

// CreateHealthRecordRequest is the payload for logging a day.
type CreateHealthRecordRequest struct {
	Date             time.Time `json:"date"`
	SleepHours       *float64  `json:"sleepHours,omitempty"`
	SleepQuality     string    `json:"sleepQuality,omitempty"`
	Meals            string    `json:"meals,omitempty"`
	Water            *int64    `json:"water,omitempty"`
	Exercise         string    `json:"exercise,omitempty"`
	ExerciseDuration *int64    `json:"exerciseDuration,omitempty"`
	Mood             string    `json:"mood,omitempty"`
	Notes            string    `json:"notes,omitempty"`
}

// HealthRecordPatch is a partial update. Nil fields are left unchanged.
type HealthRecordPatch struct {
	Date             *time.Time `json:"date,omitempty"`
	SleepHours       *float64   `json:"sleepHours,omitempty"`
	SleepQuality     *string    `json:"sleepQuality,omitempty"`
	Meals            *string    `json:"meals,omitempty"`
	Water            *int64     `json:"water,omitempty"`
	Exercise         *string    `json:"exercise,omitempty"`
	ExerciseDuration *int64     `json:"exerciseDuration,omitempty"`
	Mood             *string    `json:"mood,omitempty"`
	Notes            *string    `json:"notes,omitempty"`
}

// UpdateHealthRecordRequest couples a record id with its patch.
type UpdateHealthRecordRequest struct {
	ID int64 `json:"id"`
	HealthRecordPatch
}
