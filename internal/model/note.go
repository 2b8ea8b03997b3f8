package model

import "time"

// NoteType draws from the workspace's content taxonomy. It overlaps the task
// categories but is a separate enumeration.
type NoteType string

const (
	NoteLearning    NoteType = "learning"
	NoteAppIdea     NoteType = "app_idea"
	NoteSocialMedia NoteType = "social_media"
	NoteCareer      NoteType = "career"
	NoteImprovement NoteType = "improvement"
	NoteAutomation  NoteType = "automation"
	NoteGeneral     NoteType = "general"
)

// Note is a freeform reflection or insight. Notes are immutable after
// creation; the only lifecycle operation besides create is delete.
type Note struct {
	ID         string `gorm:"primaryKey"`
	TaskID     string `gorm:"index"` // empty when not linked to a task
	Type       NoteType
	Content    string
	Timestamp  string // optional marker, e.g. a video timestamp
	SourceName string // named external source for learning notes
	CreatedAt  time.Time
}
