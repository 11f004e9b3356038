package domain

import "time"

// QuestionnaireData is the Q&A snapshot embedded in a completed prompt record.
type QuestionnaireData struct {
	Questions []Question `json:"questions"`
	Answers   []string   `json:"answers"`
}

// Prompt is a completed enhancement record. Rows are append-only; the
// workflow never updates or deletes them.
type Prompt struct {
	ID                 string
	UserID             string
	OriginalPrompt     string
	EnhancedPrompt     string
	QuestionnaireData  QuestionnaireData
	EnhancementOptions EnhancementOptions
	CreatedAt          time.Time
}
