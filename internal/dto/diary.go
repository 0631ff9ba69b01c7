package dto

import (
	"time"

	"github.com/kokorolog/kokorolog/internal/core/domain"
)

// SaveDiaryRequest is the body of POST /api/save-diary. Date, title and
// content are required; emotion is stored as given.
type SaveDiaryRequest struct {
	Date    string `json:"date" binding:"required,dateonly"`
	Emotion string `json:"emotion"`
	Title   string `json:"title" binding:"required"`
	Content string `json:"content" binding:"required"`
}

// CreateDiaryRequest is the body of POST /api/diaries. The entry is dated
// today; title is optional and defaults to the empty string.
type CreateDiaryRequest struct {
	Emotion string `json:"emotion"`
	Title   string `json:"title"`
	Content string `json:"content" binding:"required"`
}

// UpdateDiaryRequest is the body of PUT /api/diaries/:id.
type UpdateDiaryRequest struct {
	Emotion string `json:"emotion"`
	Title   string `json:"title" binding:"required"`
	Content string `json:"content" binding:"required"`
}

// SaveDiaryResponse reports the outcome of a save. ID is only set when a new
// row was created; Message is "created" or "updated".
type SaveDiaryResponse struct {
	ID        string `json:"id,omitempty"`
	AIComment string `json:"ai_comment"`
	Message   string `json:"message"`
}

// CreateDiaryResponse is the trimmed response of POST /api/diaries.
type CreateDiaryResponse struct {
	ID        string `json:"id"`
	AIComment string `json:"ai_comment"`
}

// EntryResponse is the wire shape of a single diary entry.
type EntryResponse struct {
	ID        string `json:"id"`
	Date      string `json:"date"`
	Emotion   string `json:"emotion"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	AIComment string `json:"ai_comment"`
}

// ToEntryResponse converts a domain.Entry to its wire shape.
func ToEntryResponse(e *domain.Entry) EntryResponse {
	return EntryResponse{
		ID:        e.EntryID,
		Date:      e.EntryDate.Format(time.DateOnly),
		Emotion:   e.Emotion,
		Title:     e.Title,
		Content:   e.Content,
		AIComment: e.AIComment,
	}
}

// ToEntryResponseSlice converts a slice of domain entries to wire shapes.
func ToEntryResponseSlice(entries []domain.Entry) []EntryResponse {
	out := make([]EntryResponse, len(entries))
	for i := range entries {
		out[i] = ToEntryResponse(&entries[i])
	}
	return out
}
