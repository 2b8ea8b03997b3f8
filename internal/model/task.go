package model

import "time"

// TaskCategory classifies a task into one of the workspace's fixed areas.
type TaskCategory string

const (
	CategoryLearning       TaskCategory = "learning"
	CategoryProject        TaskCategory = "project"
	CategoryIncomeWork     TaskCategory = "income_work"
	CategoryPublicPresence TaskCategory = "public_presence"
	CategoryNewsScan       TaskCategory = "news_scan"
	CategoryLead           TaskCategory = "lead"
	CategoryPortfolio      TaskCategory = "portfolio"
	CategoryReflection     TaskCategory = "reflection"
)

// TaskCategories lists every valid category. The chain engine's mapping table
// is checked against this list, so a new category cannot silently fall through
// to an idle chain.
var TaskCategories = []TaskCategory{
	CategoryLearning,
	CategoryProject,
	CategoryIncomeWork,
	CategoryPublicPresence,
	CategoryNewsScan,
	CategoryLead,
	CategoryPortfolio,
	CategoryReflection,
}

// Priority of a task.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Task represents a single planned item. Date carries day granularity only
// (YYYY-MM-DD); sub-tasks are expansion items excluded from the daily routine.
type Task struct {
	ID          string `gorm:"primaryKey"`
	Title       string
	Description string
	Category    TaskCategory `gorm:"index"`
	Completed   bool         `gorm:"default:false"`
	Date        string       `gorm:"index"`
	IsSubTask   bool         `gorm:"default:false"`
	Priority    Priority
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// DateFormat is the day-granularity layout used for Task.Date.
const DateFormat = "2006-01-02"

// DateString formats t as a task date.
func DateString(t time.Time) string {
	return t.Format(DateFormat)
}
