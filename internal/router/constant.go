package router

// Log prefixes
const (
	LogPrefixClassify = "internal.router.Classify"
)

// Router prompts
const (
	PromptRouterSystem = `You are an intent classifier. Classify the query into ONE category:
%s

Intent definitions:
- top_technologies: User asks about trending, popular, or most-used technologies/skills (general list)
- technology_details: User asks specifically about ONE technology: "How many posts for React?", "How much company use React?"
- company_hiring: User asks about companies hiring for a specific tech/skill, job opportunities
- talent_search: User asks to find or see developers/seekers with specific skills
- skill_availability: User asks "how many" or "count" of developers/seekers with a skill
- skill_distribution: User asks what skills seekers have or skill distribution
- demand_supply_gap: User asks about industry needs vs available talent, skills gap
- partnership_intel: User asks about companies to partner with, partnership opportunities
- learning_path: User asks how to learn something, roadmap, curriculum
- general: Unclear or other questions

Rules:
- Output ONLY the intent name (no quotes, no explanation)
- Use conversation context for follow-ups
- Default to "general" if unsure%s`

	PromptHistoryPrefix = "\nRecent conversation:\n"
	PromptQuery         = "Query: %s"
)

// Router configuration
const (
	RouterHistoryTurns       = 2
	RouterDefaultRole        = "user"
	RouterDefaultTemperature = 0.2
	RouterDefaultMaxTokens   = 30
)
