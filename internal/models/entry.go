package models

import "time"

// Entry is the persistence representation of a diary entry row.
type Entry struct {
	EntryID   string    `db:"entry_id"`
	EntryDate time.Time `db:"entry_date"`
	Emotion   string    `db:"emotion"`
	Title     string    `db:"title"`
	Content   string    `db:"content"`
	AIComment string    `db:"ai_comment"`
	AuditFields
}

// AuditFields holds standard audit columns shared by all tables.
type AuditFields struct {
	CreatedAt     time.Time `db:"created_at"`
	LastUpdatedAt time.Time `db:"last_updated_at"`
}
