package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"chainboard/internal/model"
)

const day = "2026-01-05"

func task(title string, category model.TaskCategory, completed bool) model.Task {
	return model.Task{ID: title, Title: title, Category: category, Completed: completed, Date: day}
}

func learningNote(content string) model.Note {
	return model.Note{
		ID:        content,
		Type:      model.NoteLearning,
		Content:   content,
		CreatedAt: time.Date(2026, 1, 5, 14, 30, 0, 0, time.UTC),
	}
}

func stepStatuses(report ChainReport) []StepStatus {
	statuses := make([]StepStatus, 0, len(report.Steps))
	for _, step := range report.Steps {
		statuses = append(statuses, step.Status)
	}
	return statuses
}

func TestChainCategoriesCoverEveryCategory(t *testing.T) {
	// Categories outside every chain are deliberately untracked; anything
	// else must be claimed by exactly one chain.
	untracked := map[model.TaskCategory]bool{
		model.CategoryProject:    true,
		model.CategoryPortfolio:  true,
		model.CategoryReflection: true,
	}

	claimed := map[model.TaskCategory]int{}
	for _, categories := range ChainCategories {
		for _, category := range categories {
			claimed[category]++
		}
	}

	for _, category := range model.TaskCategories {
		if untracked[category] {
			require.Zero(t, claimed[category], "category %s is both untracked and claimed", category)
			continue
		}
		require.Equal(t, 1, claimed[category], "category %s must be claimed by exactly one chain", category)
	}
}

func TestAuthorityStepProgression(t *testing.T) {
	// No news task at all: everything upstream idles.
	chains := EvaluateChains(nil, nil, day)
	require.Equal(t, []StepStatus{StepIdle, StepIdle, StepIdle, StepIdle, StepIdle}, stepStatuses(chains.Authority))
	require.Zero(t, chains.Authority.Percent)
	require.False(t, chains.Authority.Active)

	// News task exists but incomplete: step 1 partial, 2-3 stay idle.
	tasks := []model.Task{task("AI news scan", model.CategoryNewsScan, false)}
	chains = EvaluateChains(tasks, nil, day)
	require.Equal(t, []StepStatus{StepPartial, StepIdle, StepIdle, StepIdle, StepIdle}, stepStatuses(chains.Authority))
	require.True(t, chains.Authority.Active)

	// Completing the scan flips steps 1-3 together; notes are not consulted.
	tasks[0].Completed = true
	chains = EvaluateChains(tasks, nil, day)
	require.Equal(t, []StepStatus{StepDone, StepDone, StepDone, StepIdle, StepIdle}, stepStatuses(chains.Authority))
}

func TestAuthorityPublishAndEngage(t *testing.T) {
	tasks := []model.Task{
		task("Draft post", model.CategoryPublicPresence, false),
		task("Reply to thread", model.CategoryPublicPresence, false),
	}
	chains := EvaluateChains(tasks, nil, day)
	require.Equal(t, StepPartial, chains.Authority.Steps[3].Status, "presence tasks exist but none done")
	require.Equal(t, StepIdle, chains.Authority.Steps[4].Status)

	tasks[0].Completed = true
	chains = EvaluateChains(tasks, nil, day)
	require.Equal(t, StepDone, chains.Authority.Steps[3].Status)
	require.Equal(t, StepPartial, chains.Authority.Steps[4].Status, "one completion is a partial engage")

	tasks[1].Completed = true
	chains = EvaluateChains(tasks, nil, day)
	require.Equal(t, StepDone, chains.Authority.Steps[4].Status, "two completions finish the engage step")
}

func TestAssetChainBoundaries(t *testing.T) {
	// Zero learning activity: percentage 0 and every step idle.
	chains := EvaluateChains(nil, nil, day)
	require.Zero(t, chains.Asset.Percent)
	require.Equal(t, []StepStatus{StepIdle, StepIdle, StepIdle, StepIdle}, stepStatuses(chains.Asset))

	// All four booleans true: percentage 100.
	tasks := []model.Task{
		task("Watch docker video", model.CategoryLearning, true),
		task("Practice in lab", model.CategoryLearning, true),
	}
	notes := []model.Note{learningNote("Summary: containers share the kernel")}
	chains = EvaluateChains(tasks, notes, day)
	require.Equal(t, 100, chains.Asset.Percent)
	require.Equal(t, []StepStatus{StepDone, StepDone, StepDone, StepDone}, stepStatuses(chains.Asset))
}

func TestAssetPartialStates(t *testing.T) {
	// A learning task exists but none completed: step 1 partial only.
	tasks := []model.Task{task("Watch docker video", model.CategoryLearning, false)}
	chains := EvaluateChains(tasks, nil, day)
	require.Equal(t, []StepStatus{StepPartial, StepIdle, StepIdle, StepIdle}, stepStatuses(chains.Asset))

	// A learning note without a summary marker: step 2 done, step 3 idle
	// (steps 3-4 have no partial state).
	notes := []model.Note{learningNote("raw commands only")}
	chains = EvaluateChains(tasks, notes, day)
	require.Equal(t, []StepStatus{StepPartial, StepDone, StepIdle, StepIdle}, stepStatuses(chains.Asset))
	require.Equal(t, 25, chains.Asset.Percent)
}

func TestAssetSummaryMarkerIsCaseInsensitive(t *testing.T) {
	tasks := []model.Task{task("Watch docker video", model.CategoryLearning, true)}
	notes := []model.Note{learningNote("SUMMARY: networking basics in my own words")}
	chains := EvaluateChains(tasks, notes, day)
	require.Equal(t, StepDone, chains.Asset.Steps[2].Status)
}

func TestAssetPracticeAlternatives(t *testing.T) {
	// Two completed learning tasks satisfy step 4 without a practice title.
	tasks := []model.Task{
		task("Watch docker video", model.CategoryLearning, true),
		task("Watch networking video", model.CategoryLearning, true),
	}
	chains := EvaluateChains(tasks, nil, day)
	require.Equal(t, StepDone, chains.Asset.Steps[3].Status)

	// A single completed task titled with "practice" also satisfies it.
	tasks = []model.Task{task("Practice terraform plan", model.CategoryLearning, true)}
	chains = EvaluateChains(tasks, nil, day)
	require.Equal(t, StepDone, chains.Asset.Steps[3].Status)
}

func TestRevenueScenarioProposalAndFollowUp(t *testing.T) {
	tasks := []model.Task{
		task("Send proposal to X", model.CategoryIncomeWork, true),
		task("Follow up with Y", model.CategoryIncomeWork, false),
	}
	chains := EvaluateChains(tasks, nil, day)

	require.Equal(t, StepDone, chains.Revenue.Steps[1].Status)
	require.Equal(t, StepPartial, chains.Revenue.Steps[2].Status, "an incomplete follow-up match is partial")
	require.Equal(t, 50, chains.Revenue.Percent)
}

func TestRevenueProposalFallsBackToSendKeyword(t *testing.T) {
	tasks := []model.Task{task("Send intro packet", model.CategoryIncomeWork, true)}
	chains := EvaluateChains(tasks, nil, day)
	require.Equal(t, StepDone, chains.Revenue.Steps[1].Status, "no proposal match, but the send keyword hits")
}

func TestRevenueCloseFallsBackToLeads(t *testing.T) {
	// One lead task today, no income work at all: the close step must report
	// from the lead fallback instead of idling.
	tasks := []model.Task{task("Qualify agency lead", model.CategoryLead, false)}
	chains := EvaluateChains(tasks, nil, day)
	require.Equal(t, StepPartial, chains.Revenue.Steps[3].Status)

	tasks[0].Completed = true
	chains = EvaluateChains(tasks, nil, day)
	require.Equal(t, StepDone, chains.Revenue.Steps[3].Status)
}

func TestFullDaySignal(t *testing.T) {
	tasks := []model.Task{
		task("AI news scan", model.CategoryNewsScan, true),
		task("Publish post", model.CategoryPublicPresence, true),
		task("Reply to thread", model.CategoryPublicPresence, true),
		task("Watch docker video", model.CategoryLearning, true),
		task("Practice in lab", model.CategoryLearning, true),
		task("Send proposal to X", model.CategoryIncomeWork, true),
	}
	notes := []model.Note{learningNote("Summary: overlay networks")}

	chains := EvaluateChains(tasks, notes, day)
	require.Equal(t, 100, chains.Authority.Percent)
	require.Equal(t, 100, chains.Asset.Percent)
	require.Equal(t, 100, chains.Revenue.Percent)
	require.True(t, chains.FullDay)

	// An idle chain never counts as full.
	chains = EvaluateChains(tasks[:5], notes, day)
	require.Zero(t, chains.Revenue.Percent)
	require.False(t, chains.Revenue.Active)
	require.False(t, chains.FullDay)
}

func TestWeeklyActivityRollup(t *testing.T) {
	today := monday
	yesterday := model.DateString(today.AddDate(0, 0, -1))

	tasks := []model.Task{
		task("AI news scan", model.CategoryNewsScan, true),
		task("Watch docker video", model.CategoryLearning, false),
		{ID: "y-lead", Title: "Qualify lead", Category: model.CategoryLead, Completed: true, Date: yesterday},
		{ID: "y-post", Title: "Publish post", Category: model.CategoryPublicPresence, Completed: false, Date: yesterday},
	}
	notes := []model.Note{learningNote("commands from the lab")}

	week := WeeklyActivity(tasks, notes, today)
	require.Len(t, week, 7)
	require.Equal(t, day, week[6].Date, "today is last")
	require.True(t, week[6].IsToday)
	require.Equal(t, yesterday, week[5].Date)

	// Today: the only authority task is completed, and a learning task plus
	// a learning note exist.
	require.True(t, week[6].Authority)
	require.True(t, week[6].Asset)
	require.False(t, week[6].Revenue, "no revenue task today")

	// Yesterday: an incomplete presence task breaks the all-done rule, the
	// completed lead activates revenue, and no learning note means no asset.
	require.False(t, week[5].Authority)
	require.False(t, week[5].Asset)
	require.True(t, week[5].Revenue)

	// Empty days idle on every chain.
	require.False(t, week[0].Authority)
	require.False(t, week[0].Asset)
	require.False(t, week[0].Revenue)
}
