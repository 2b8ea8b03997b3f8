package bot

import (
	"fmt"
	"html"
	"strings"

	"chainboard/internal/model"
	"chainboard/internal/service"
)

const (
	iconDone    = "✅"
	iconPending = "⬜"
	iconSubTask = "↳"
)

var chainTitles = map[service.ChainID]string{
	service.ChainAuthority: "🟣 Authority Engine",
	service.ChainAsset:     "🟢 Asset Engine",
	service.ChainRevenue:   "🟡 Revenue Engine",
}

func statusIcon(status service.StepStatus) string {
	switch status {
	case service.StepDone:
		return "🟢"
	case service.StepPartial:
		return "🟡"
	default:
		return "⚪"
	}
}

func formatHelp() string {
	var sb strings.Builder
	sb.WriteString("⛓ <b>chainboard</b>\n")
	sb.WriteString("Your day, sorted into three engines.\n\n")
	sb.WriteString("/today — today's routine with completion buttons\n")
	sb.WriteString("/chains — live chain tracking for today\n")
	sb.WriteString("/week — last 7 days of chain activity\n")
	sb.WriteString("/videos — learning path progress\n")
	sb.WriteString("/log &lt;minutes&gt; — log a watch session on the next video\n")
	sb.WriteString("/note &lt;text&gt; — save a learning note (start with \"summary:\" to count as one)\n")
	sb.WriteString("/task [category] &lt;title&gt; — add an extra task for today\n")
	return sb.String()
}

func formatToday(tasks []model.Task, noteCounts map[string]int, progress service.DayProgress) string {
	var sb strings.Builder
	sb.WriteString("📋 <b>Today's Routine</b>\n")
	sb.WriteString(fmt.Sprintf("%d/%d done · %d%%\n\n", progress.Completed, progress.Total, progress.Percentage))

	if len(tasks) == 0 {
		sb.WriteString("— nothing planned today\n")
		return strings.TrimSpace(sb.String())
	}

	for _, task := range tasks {
		icon := iconPending
		if task.Completed {
			icon = iconDone
		}
		prefix := ""
		if task.IsSubTask {
			prefix = iconSubTask + " "
		}
		suffix := ""
		if n := noteCounts[task.ID]; n > 0 {
			suffix = fmt.Sprintf(" 📝%d", n)
		}
		sb.WriteString(fmt.Sprintf("%s %s%s <i>(%s)</i>%s\n", icon, prefix, html.EscapeString(strings.TrimSpace(task.Title)), task.Category, suffix))
	}
	return strings.TrimSpace(sb.String())
}

func formatChains(chains service.DailyChains) string {
	var sb strings.Builder
	sb.WriteString("⛓ <b>Daily Chain Summary</b>\n\n")
	if chains.FullDay {
		sb.WriteString("🔥 <b>Full Strategic Day Completed</b>\n\n")
	}
	writeChain(&sb, chains.Authority)
	writeChain(&sb, chains.Asset)
	writeChain(&sb, chains.Revenue)
	return strings.TrimSpace(sb.String())
}

func writeChain(sb *strings.Builder, report service.ChainReport) {
	sb.WriteString(fmt.Sprintf("%s — <b>%d%%</b>", chainTitles[report.Chain], report.Percent))
	if !report.Active {
		sb.WriteString(" · idle today")
	} else {
		sb.WriteString(fmt.Sprintf(" · %d/%d tasks", report.DoneCount, report.Total))
	}
	sb.WriteByte('\n')
	for _, step := range report.Steps {
		sb.WriteString(fmt.Sprintf("  %s %d. %s\n", statusIcon(step.Status), step.Number, step.Label))
	}
	sb.WriteByte('\n')
}

func formatWeek(week []service.DayActivity) string {
	var sb strings.Builder
	sb.WriteString("📅 <b>Weekly Chain Activity</b>\n")
	sb.WriteString("<i>Authority · Asset · Revenue</i>\n\n")
	for _, day := range week {
		label := day.Label
		if day.IsToday {
			label = "<b>" + label + "</b>"
		}
		sb.WriteString(fmt.Sprintf("%s  %s %s %s\n",
			label,
			activityDot(day.Authority),
			activityDot(day.Asset),
			activityDot(day.Revenue),
		))
	}
	return strings.TrimSpace(sb.String())
}

func activityDot(done bool) string {
	if done {
		return "🟢"
	}
	return "⚫"
}

func formatVideos(path []model.Video, progress []model.VideoProgress, next *model.Video) string {
	stats := service.ComputeVideoStats(path, progress)

	var sb strings.Builder
	sb.WriteString("🎥 <b>Learning Path</b>\n")
	sb.WriteString(fmt.Sprintf("%d/%d videos · %dm of %dm · <b>%d%%</b>\n\n",
		stats.VideosCompleted, stats.TotalVideos, stats.MinutesWatched, stats.TotalMinutes, stats.Percentage))

	for _, video := range path {
		watched := 0
		for _, record := range progress {
			if record.VideoID == video.ID {
				watched = record.MinutesWatched
				break
			}
		}
		icon := iconPending
		if watched >= video.Duration {
			icon = iconDone
		}
		sb.WriteString(fmt.Sprintf("%s %d. %s — %dm/%dm\n", icon, video.Order, html.EscapeString(video.Category), watched, video.Duration))
	}

	if next != nil {
		sb.WriteString(fmt.Sprintf("\n▶️ Next: <b>%s</b>\n%s", html.EscapeString(next.Title), next.URL))
	} else {
		sb.WriteString("\n🎉 Path complete.")
	}
	return strings.TrimSpace(sb.String())
}

func formatLogged(videoID string, record model.VideoProgress) string {
	status := "in progress"
	if record.Completed {
		status = "completed 🎉"
	}
	return fmt.Sprintf("🎥 <b>%s</b>\n%dm watched · %s", html.EscapeString(videoID), record.MinutesWatched, status)
}

func formatDigest(tasks []model.Task, noteCounts map[string]int, progress service.DayProgress, chains service.DailyChains, stats service.VideoStats, next *model.Video) string {
	var sb strings.Builder
	sb.WriteString("🌅 <b>Daily Digest</b>\n\n")
	sb.WriteString(formatToday(tasks, noteCounts, progress))
	sb.WriteString("\n\n")
	sb.WriteString(fmt.Sprintf("⛓ Authority %d%% · Asset %d%% · Revenue %d%%\n",
		chains.Authority.Percent, chains.Asset.Percent, chains.Revenue.Percent))
	if chains.FullDay {
		sb.WriteString("🔥 Full strategic day!\n")
	}
	sb.WriteString(fmt.Sprintf("\n🎥 Learning: %d%% of the path", stats.Percentage))
	if next != nil {
		sb.WriteString(fmt.Sprintf(" · next up <b>%s</b>", html.EscapeString(next.Category)))
	}
	return strings.TrimSpace(sb.String())
}
