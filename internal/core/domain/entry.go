package domain

import "time"

// Emotion labels offered by the diary client. The save path stores whatever
// label it receives; these constants exist for seeding and for tests.
const (
	EmotionHappy   = "happy"
	EmotionGood    = "good"
	EmotionNeutral = "neutral"
	EmotionSad     = "sad"
	EmotionAngry   = "angry"
)

// Entry represents one diary record for a specific calendar day.
// At most one Entry exists per EntryDate.
type Entry struct {
	EntryID   string    `json:"entryID"` // Primary Key (UUID)
	EntryDate time.Time `json:"entryDate"`
	Emotion   string    `json:"emotion"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	AIComment string    `json:"aiComment"`
	AuditFields
}

// Day returns the entry's calendar day in YYYY-MM-DD form.
func (e Entry) Day() string {
	return e.EntryDate.Format(time.DateOnly)
}
