package service

import (
	"strings"
	"time"

	"chainboard/internal/model"
)

// StepStatus is the three-valued completion signal for one chain step.
type StepStatus string

const (
	StepDone    StepStatus = "done"
	StepPartial StepStatus = "partial"
	StepIdle    StepStatus = "idle"
)

// ChainID names one of the three workflow chains.
type ChainID string

const (
	ChainAuthority ChainID = "authority"
	ChainAsset     ChainID = "asset"
	ChainRevenue   ChainID = "revenue"
)

// ChainCategories maps each chain to the task categories it tracks. Every
// analytics-relevant category must appear here exactly once; the test suite
// checks the table against model.TaskCategories.
var ChainCategories = map[ChainID][]model.TaskCategory{
	ChainAuthority: {model.CategoryNewsScan, model.CategoryPublicPresence},
	ChainAsset:     {model.CategoryLearning},
	ChainRevenue:   {model.CategoryIncomeWork, model.CategoryLead},
}

// StepResult is the evaluated status of one chain step.
type StepResult struct {
	Number int
	Label  string
	Status StepStatus
}

// ChainReport is the per-chain daily signal. Active distinguishes an idle
// chain (no tasks today) from a fully completed one: both report percent 0
// and 100 respectively, but percent alone cannot tell "nothing planned"
// from "all done".
type ChainReport struct {
	Chain     ChainID
	Percent   int
	DoneCount int
	Total     int
	Active    bool
	Steps     []StepResult
}

// DailyChains is the full chain evaluation for one day.
type DailyChains struct {
	Authority ChainReport
	Asset     ChainReport
	Revenue   ChainReport
	FullDay   bool
}

// stepFilter selects tasks by category set and an optional case-insensitive
// title keyword.
type stepFilter struct {
	categories []model.TaskCategory
	keyword    string
}

// revenueStepDef is one row of the declarative revenue step table. When the
// primary filter matches nothing, the fallback filter (if any) is evaluated
// instead.
type revenueStepDef struct {
	number   int
	label    string
	filter   stepFilter
	fallback *stepFilter
}

var revenueSteps = []revenueStepDef{
	{1, "Collect leads", stepFilter{categories: []model.TaskCategory{model.CategoryLead}}, nil},
	{2, "Send personalized proposal",
		stepFilter{categories: []model.TaskCategory{model.CategoryIncomeWork}, keyword: "proposal"},
		&stepFilter{categories: []model.TaskCategory{model.CategoryIncomeWork}, keyword: "send"}},
	{3, "Follow up", stepFilter{categories: []model.TaskCategory{model.CategoryIncomeWork}, keyword: "follow"}, nil},
	{4, "Close deal or archive lead",
		stepFilter{categories: []model.TaskCategory{model.CategoryIncomeWork}, keyword: "close"},
		&stepFilter{categories: []model.TaskCategory{model.CategoryLead}}},
}

// EvaluateChains classifies one day's tasks and notes into the three chains
// and derives per-step statuses plus per-chain percentages.
func EvaluateChains(tasks []model.Task, notes []model.Note, date string) DailyChains {
	dayTasks := tasksOn(tasks, date)
	dayNotes := notesOn(notes, date)

	chains := DailyChains{
		Authority: evaluateAuthority(dayTasks),
		Asset:     evaluateAsset(dayTasks, dayNotes),
		Revenue:   evaluateRevenue(dayTasks),
	}
	chains.FullDay = chains.Authority.Percent >= 100 &&
		chains.Asset.Percent >= 100 &&
		chains.Revenue.Percent >= 100
	return chains
}

func evaluateAuthority(dayTasks []model.Task) ChainReport {
	chainTasks := filterTasks(dayTasks, stepFilter{categories: ChainCategories[ChainAuthority]})
	done := countCompleted(chainTasks)

	newsTotal := len(filterTasks(dayTasks, stepFilter{categories: []model.TaskCategory{model.CategoryNewsScan}}))
	newsDone := completedCount(dayTasks, model.CategoryNewsScan)
	presenceTotal := len(filterTasks(dayTasks, stepFilter{categories: []model.TaskCategory{model.CategoryPublicPresence}}))
	presenceDone := completedCount(dayTasks, model.CategoryPublicPresence)

	step1 := StepIdle
	if newsTotal > 0 {
		step1 = StepPartial
		if newsDone > 0 {
			step1 = StepDone
		}
	}
	// Steps 2 and 3 mirror step 1's completion signal rather than reading
	// note records. Intentional: the chain treats a finished scan as
	// evidence that insight was extracted and written down.
	step2 := StepIdle
	if newsDone > 0 {
		step2 = StepDone
	}
	step3 := step2
	step4 := StepIdle
	if presenceDone > 0 {
		step4 = StepDone
	} else if presenceTotal > 0 {
		step4 = StepPartial
	}
	step5 := StepIdle
	switch {
	case presenceDone >= 2:
		step5 = StepDone
	case presenceDone == 1:
		step5 = StepPartial
	}

	return ChainReport{
		Chain:     ChainAuthority,
		Percent:   percentOf(done, len(chainTasks)),
		DoneCount: done,
		Total:     len(chainTasks),
		Active:    len(chainTasks) > 0,
		Steps: []StepResult{
			{1, "Discover AI tool or news", step1},
			{2, "Test or extract insight", step2},
			{3, "Write clear notes", step3},
			{4, "Create and publish a post", step4},
			{5, "Engage (2-3 replies)", step5},
		},
	}
}

func evaluateAsset(dayTasks []model.Task, dayNotes []model.Note) ChainReport {
	chainTasks := filterTasks(dayTasks, stepFilter{categories: ChainCategories[ChainAsset]})
	done := countCompleted(chainTasks)

	var learningNotes []model.Note
	for _, note := range dayNotes {
		if note.Type == model.NoteLearning {
			learningNotes = append(learningNotes, note)
		}
	}

	hasSummaryNote := false
	for _, note := range learningNotes {
		if strings.Contains(strings.ToLower(note.Content), "summary:") {
			hasSummaryNote = true
			break
		}
	}
	hasPractice := false
	for _, task := range chainTasks {
		if task.Completed && strings.Contains(strings.ToLower(task.Title), "practice") {
			hasPractice = true
			break
		}
	}

	stepsDone := [4]bool{
		done > 0,
		len(learningNotes) > 0,
		hasSummaryNote,
		hasPractice || done >= 2,
	}
	doneSteps := 0
	for _, ok := range stepsDone {
		if ok {
			doneSteps++
		}
	}

	status := func(i int) StepStatus {
		if stepsDone[i] {
			return StepDone
		}
		// Only the task and note steps have a partial state.
		if (i == 0 && len(chainTasks) > 0) || (i == 1 && len(learningNotes) > 0) {
			return StepPartial
		}
		return StepIdle
	}

	return ChainReport{
		Chain:     ChainAsset,
		Percent:   percentOf(doneSteps, len(stepsDone)),
		DoneCount: done,
		Total:     len(chainTasks),
		Active:    len(chainTasks) > 0,
		Steps: []StepResult{
			{1, "Watch video", status(0)},
			{2, "Take structured notes", status(1)},
			{3, "Write summary in your own words", status(2)},
			{4, "Practice in lab", status(3)},
		},
	}
}

func evaluateRevenue(dayTasks []model.Task) ChainReport {
	chainTasks := filterTasks(dayTasks, stepFilter{categories: ChainCategories[ChainRevenue]})
	done := countCompleted(chainTasks)

	steps := make([]StepResult, 0, len(revenueSteps))
	for _, def := range revenueSteps {
		status := filterStatus(dayTasks, def.filter)
		if status == StepIdle && def.fallback != nil {
			status = filterStatus(dayTasks, *def.fallback)
		}
		steps = append(steps, StepResult{def.number, def.label, status})
	}

	return ChainReport{
		Chain:     ChainRevenue,
		Percent:   percentOf(done, len(chainTasks)),
		DoneCount: done,
		Total:     len(chainTasks),
		Active:    len(chainTasks) > 0,
		Steps:     steps,
	}
}

// DayActivity holds the three per-day chain booleans of the weekly rollup.
type DayActivity struct {
	Date      string
	Label     string // short weekday label, e.g. "Mon"
	IsToday   bool
	Authority bool
	Asset     bool
	Revenue   bool
}

// WeeklyActivity evaluates the trailing 7 calendar days, oldest first and
// inclusive of today.
func WeeklyActivity(tasks []model.Task, notes []model.Note, today time.Time) []DayActivity {
	todayStr := model.DateString(today)
	week := make([]DayActivity, 0, 7)
	for i := 6; i >= 0; i-- {
		day := today.AddDate(0, 0, -i)
		date := model.DateString(day)
		dayTasks := tasksOn(tasks, date)
		dayNotes := notesOn(notes, date)

		authority := filterTasks(dayTasks, stepFilter{categories: ChainCategories[ChainAuthority]})
		asset := filterTasks(dayTasks, stepFilter{categories: ChainCategories[ChainAsset]})
		revenue := filterTasks(dayTasks, stepFilter{categories: ChainCategories[ChainRevenue]})

		hasLearningNote := false
		for _, note := range dayNotes {
			if note.Type == model.NoteLearning {
				hasLearningNote = true
				break
			}
		}

		week = append(week, DayActivity{
			Date:      date,
			Label:     day.Format("Mon"),
			IsToday:   date == todayStr,
			Authority: len(authority) > 0 && countCompleted(authority) == len(authority),
			Asset:     len(asset) > 0 && hasLearningNote,
			Revenue:   len(revenue) > 0 && countCompleted(revenue) > 0,
		})
	}
	return week
}

func tasksOn(tasks []model.Task, date string) []model.Task {
	var out []model.Task
	for _, task := range tasks {
		if task.Date == date {
			out = append(out, task)
		}
	}
	return out
}

func notesOn(notes []model.Note, date string) []model.Note {
	var out []model.Note
	for _, note := range notes {
		if model.DateString(note.CreatedAt) == date {
			out = append(out, note)
		}
	}
	return out
}

func filterTasks(tasks []model.Task, filter stepFilter) []model.Task {
	var out []model.Task
	for _, task := range tasks {
		if !inCategories(task.Category, filter.categories) {
			continue
		}
		if filter.keyword != "" && !strings.Contains(strings.ToLower(task.Title), filter.keyword) {
			continue
		}
		out = append(out, task)
	}
	return out
}

// filterStatus is the reusable step predicate: done when any match is
// completed, partial when matches exist but none are, idle otherwise.
func filterStatus(tasks []model.Task, filter stepFilter) StepStatus {
	matching := filterTasks(tasks, filter)
	if len(matching) == 0 {
		return StepIdle
	}
	if countCompleted(matching) > 0 {
		return StepDone
	}
	return StepPartial
}

func inCategories(category model.TaskCategory, categories []model.TaskCategory) bool {
	for _, c := range categories {
		if c == category {
			return true
		}
	}
	return false
}

func countCompleted(tasks []model.Task) int {
	n := 0
	for _, task := range tasks {
		if task.Completed {
			n++
		}
	}
	return n
}

func completedCount(tasks []model.Task, category model.TaskCategory) int {
	n := 0
	for _, task := range tasks {
		if task.Category == category && task.Completed {
			n++
		}
	}
	return n
}

func percentOf(done, total int) int {
	if total == 0 {
		return 0
	}
	return roundPercent(done, total)
}
