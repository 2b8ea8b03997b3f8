package model

import "time"

// TaskTemplate is a blueprint for a routine task synthesized for a day.
type TaskTemplate struct {
	Title       string
	Description string
	Category    TaskCategory
	Priority    Priority
}

// WeeklyTemplate maps each weekday to its ordered routine blueprint. Pure
// reference data; a missing or empty day legitimately yields an empty routine.
var WeeklyTemplate = map[time.Weekday][]TaskTemplate{
	time.Monday: {
		{
			Title:       "DevOps video 25-40 min + practice + notes",
			Description: "Watch a focused DevOps tutorial, replicate the steps in your lab, and take notes on key commands or pitfalls.",
			Category:    CategoryLearning,
			Priority:    PriorityHigh,
		},
		{
			Title:       "AI news scan 15-20 min → add to directory → draft post ideas",
			Description: "Quickly check feeds for new AI tools or agentic workflow updates. Add interesting ones to your directory and think of content ideas.",
			Category:    CategoryNewsScan,
			Priority:    PriorityHigh,
		},
		{
			Title:       "Plan main project/automation focus for the week",
			Description: "Define the specific automation or SaaS feature you will complete by Sunday. Set clear milestones.",
			Category:    CategoryProject,
			Priority:    PriorityMedium,
		},
		{
			Title:       "Review post ideas → schedule posts for week",
			Description: "Look at your idea backlog. Schedule at least 3 posts across X, LinkedIn, or Medium for the upcoming days.",
			Category:    CategoryPublicPresence,
			Priority:    PriorityMedium,
		},
		{
			Title:       "X/Reddit engagement (2-3 replies)",
			Description: "Reply thoughtfully to current discussions in the DevOps, AI, or SaaS communities to build presence.",
			Category:    CategoryPublicPresence,
			Priority:    PriorityLow,
		},
	},
	time.Tuesday: {
		{
			Title:       "Project work (n8n / SaaS) 1-2h",
			Description: "Deep work session on your primary project. Focus on logic building or UI implementation.",
			Category:    CategoryProject,
			Priority:    PriorityHigh,
		},
		{
			Title:       "Push updates to GitHub",
			Description: "Commit your changes with clear messages. Maintain your streak and version history.",
			Category:    CategoryProject,
			Priority:    PriorityHigh,
		},
		{
			Title:       "Draft X/Medium post from project progress",
			Description: "Share a screenshot or a lesson learned from today's build. Real-time building attracts more interest.",
			Category:    CategoryPublicPresence,
			Priority:    PriorityMedium,
		},
		{
			Title:       "AI tool test → notes/mini review",
			Description: "Pick one tool from your scans. Test it for 10 minutes and write a quick pros/cons note.",
			Category:    CategoryNewsScan,
			Priority:    PriorityLow,
		},
		{
			Title:       "X/Reddit engagement (2-3 replies)",
			Description: "Provide value in comment sections. Help people solve problems related to automation or DevOps.",
			Category:    CategoryPublicPresence,
			Priority:    PriorityLow,
		},
	},
	time.Wednesday: {
		{
			Title:       "DevOps video 25-40 min + practice + notes",
			Description: "Continue your learning path. Focus on practical implementation of infrastructure as code or CI/CD.",
			Category:    CategoryLearning,
			Priority:    PriorityHigh,
		},
		{
			Title:       "Run lead collection automation + manual leads",
			Description: "Trigger your lead scrapers and spend 15 minutes manually finding high-quality freelance leads.",
			Category:    CategoryLead,
			Priority:    PriorityHigh,
		},
		{
			Title:       "Send 3-5 proposals",
			Description: "Write personalized proposals for the leads found. Focus on showcasing your automation expertise.",
			Category:    CategoryIncomeWork,
			Priority:    PriorityHigh,
		},
		{
			Title:       "Engage online: reply 2-3 X/Reddit posts",
			Description: "Maintain consistency in engagement. Look for people asking for automation or freelance help.",
			Category:    CategoryPublicPresence,
			Priority:    PriorityMedium,
		},
	},
	time.Thursday: {
		{
			Title:       "Continue project (n8n / SaaS)",
			Description: "Keep the momentum. Fix bugs or start the next sub-feature planned on Monday.",
			Category:    CategoryProject,
			Priority:    PriorityHigh,
		},
		{
			Title:       "GitHub push",
			Description: "Daily commit. Ensure your repo reflects today's progress.",
			Category:    CategoryProject,
			Priority:    PriorityHigh,
		},
		{
			Title:       "Draft project-based post",
			Description: "Create a thread or post about a specific technical challenge you solved in your project today.",
			Category:    CategoryPublicPresence,
			Priority:    PriorityMedium,
		},
		{
			Title:       "Optional AI tool practice",
			Description: "If you have extra energy, dive deeper into a new AI agent framework or automation node.",
			Category:    CategoryNewsScan,
			Priority:    PriorityLow,
		},
		{
			Title:       "X/Reddit engagement (2-3 replies)",
			Description: "Strengthen relationships by replying to key influencers or active community members.",
			Category:    CategoryPublicPresence,
			Priority:    PriorityLow,
		},
	},
	time.Friday: {
		{
			Title:       "DevOps video + practice + notes",
			Description: "Wrap up the week's learning module. Ensure you can explain the core concept without looking at notes.",
			Category:    CategoryLearning,
			Priority:    PriorityHigh,
		},
		{
			Title:       "Weekly reflection draft (post/blog)",
			Description: "Use the auto-generated summary to write a \"Week in Review\" post. Highlight wins and lessons.",
			Category:    CategoryReflection,
			Priority:    PriorityHigh,
		},
		{
			Title:       "Portfolio update",
			Description: "Add a new project screenshot, update a description, or refine a skill tag in your portfolio.",
			Category:    CategoryPortfolio,
			Priority:    PriorityMedium,
		},
		{
			Title:       "Freelance follow-ups",
			Description: "Ping leads from Monday/Wednesday if they haven't replied. Be professional and brief.",
			Category:    CategoryIncomeWork,
			Priority:    PriorityMedium,
		},
		{
			Title:       "X/Reddit engagement (2-3 replies)",
			Description: "Final engagement pulse for the work week.",
			Category:    CategoryPublicPresence,
			Priority:    PriorityLow,
		},
	},
	time.Saturday: {
		{
			Title:       "Send 3-5 proposals",
			Description: "Batch process new opportunities for the coming week while competition is lower.",
			Category:    CategoryIncomeWork,
			Priority:    PriorityHigh,
		},
		{
			Title:       "Review/tag leads",
			Description: "Organize your CRM. Tag leads by potential value and niche for easier follow-ups.",
			Category:    CategoryLead,
			Priority:    PriorityMedium,
		},
		{
			Title:       "Optional small project tweaks",
			Description: "Do the non-essential but nice-to-have polishing on your projects.",
			Category:    CategoryProject,
			Priority:    PriorityLow,
		},
		{
			Title:       "Quick post/learning snippet",
			Description: "Share a Saturday thought or a quick tip you picked up during the week.",
			Category:    CategoryPublicPresence,
			Priority:    PriorityLow,
		},
		{
			Title:       "Check freelance messages",
			Description: "Quick scan of Upwork/LinkedIn for any urgent weekend inquiries.",
			Category:    CategoryIncomeWork,
			Priority:    PriorityMedium,
		},
	},
	time.Sunday: {
		{
			Title:       "Plan next week's focus",
			Description: "Come up with the main project idea for the week and prepare the necessary resources or tools.",
			Category:    CategoryProject,
			Priority:    PriorityMedium,
		},
		{
			Title:       "AI news scan → add post ideas",
			Description: "Catch up on the latest AI trends and newsletters. Capture at least 2-3 content ideas for the week.",
			Category:    CategoryNewsScan,
			Priority:    PriorityMedium,
		},
		{
			Title:       "Portfolio check",
			Description: "Quickly review your portfolio link, check for dead links, and ensure your latest work is highlighted.",
			Category:    CategoryPortfolio,
			Priority:    PriorityLow,
		},
		{
			Title:       "Optional light learning/side project",
			Description: "Dive into a new tool or minor project feature only if you feel inspired. No pressure.",
			Category:    CategoryLearning,
			Priority:    PriorityLow,
		},
		{
			Title:       "Rest & recharge",
			Description: "Completely disconnect from work. Focus on recovery to maintain long-term momentum.",
			Category:    CategoryPublicPresence,
			Priority:    PriorityLow,
		},
	},
}
