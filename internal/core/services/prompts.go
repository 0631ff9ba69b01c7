package services

import (
	"fmt"
	"strings"

	"github.com/kokorolog/kokorolog/internal/core/domain"
)

const (
	commentInstruction = `You are a gentle counselor who stays close to the user. ` +
		`Reply to the following diary entry with a short, positive comment.`

	summaryInstruction = `Analyze the overall emotional trends and notable events ` +
		`across the following diary entries, and summarize them like a kind counselor.`

	// recordSeparator sits between entries in the aggregate summary prompt.
	recordSeparator = "\n---\n"
)

// NoEntriesSummary is returned by the summary service when the diary is empty.
// The generator is not invoked in that case.
const NoEntriesSummary = "There are no diary entries yet. Write your first entry and ask again."

// buildCommentPrompt assembles the per-entry commentary prompt from the new
// field values. The title line is omitted when the entry has no title.
func buildCommentPrompt(emotion, title, content string) string {
	var b strings.Builder
	b.WriteString(commentInstruction)
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "Mood: %s\n", emotion)
	if title != "" {
		fmt.Fprintf(&b, "Title: %s\n", title)
	}
	fmt.Fprintf(&b, "Diary: %s", content)
	return b.String()
}

// buildSummaryPrompt assembles the aggregate prompt over recent entries,
// keeping the store's date-descending order.
func buildSummaryPrompt(entries []domain.Entry) string {
	records := make([]string, len(entries))
	for i, e := range entries {
		records[i] = fmt.Sprintf("Mood: %s, Title: %s, Content: %s", e.Emotion, e.Title, e.Content)
	}
	return summaryInstruction + "\n\n" + strings.Join(records, recordSeparator)
}
