package formatter

import (
	"time"

	"internship-assistant/internal/model"
)

// Log prefixes
const (
	LogPrefixFormat = "internal.formatter.Format"
)

// DefaultFetchTimeout bounds the data stage when Options leaves it unset.
const DefaultFetchTimeout = 10 * time.Second

// Fetch sizes and how many rows reach the sheet.
const (
	TopTechFetch = 10
	TopTechShow  = 5

	TechTotalsFetch  = 100
	TechPostsFetch   = 1000
	CompanyFetch     = 10
	CompanyShow      = 5
	TalentFetch      = 10
	TalentShow       = 5
	SkillDistFetch   = 10
	SkillDistShow    = 7
	GapFetch         = 10
	GapShow          = 8
	PartnershipFetch = 15
	PartnershipShow  = 5
)

// Placeholder for missing contact fields.
const notAvailable = "N/A"

// Vocabularies in priority order. Earlier entries win when several match.
var (
	TechnologyVocabulary = []string{
		"react", "python", "javascript", "java", "nodejs", "vue", "angular", "sql", "mongodb",
		"docker", "kubernetes", "devops", "android", "ios", "backend", "frontend", "fullstack",
	}
	SkillVocabulary = []string{
		"react", "python", "javascript", "java", "nodejs", "typescript", "css", "html", "sql",
		"mongodb", "docker", "kubernetes", "aws", "azure", "git", "devops",
	}
)

// Roadmaps offered by the learning_path instruction, in display order.
var Roadmaps = []struct {
	Topic string
	URL   string
}{
	{"frontend", "https://roadmap.sh/frontend"},
	{"backend", "https://roadmap.sh/backend"},
	{"fullstack", "https://roadmap.sh/full-stack"},
	{"react", "https://roadmap.sh/react"},
	{"python", "https://roadmap.sh/python"},
	{"java", "https://roadmap.sh/java"},
	{"javascript", "https://roadmap.sh/javascript"},
	{"nodejs", "https://roadmap.sh/nodejs"},
	{"devops", "https://roadmap.sh/devops"},
	{"android", "https://roadmap.sh/android"},
	{"ios", "https://roadmap.sh/ios"},
	{"vue", "https://roadmap.sh/vue"},
	{"angular", "https://roadmap.sh/angular"},
	{"sql", "https://roadmap.sh/sql"},
	{"mongodb", "https://roadmap.sh/mongodb"},
	{"docker", "https://roadmap.sh/docker"},
	{"kubernetes", "https://roadmap.sh/kubernetes"},
}

// Open instructions
const (
	PromptLearningPath = `You are a learning advisor. Give helpful, encouraging advice for learning.

Available roadmaps to suggest: %s

When answering:
1. Suggest 1-2 relevant roadmap.sh paths
2. Give practical learning steps
3. Be encouraging and motivating
4. Keep it to 2-3 sentences max

Roadmap links:
%s`

	PromptGeneral = "You are a helpful assistant for a %s. \n" +
		"Answer in 2-3 friendly sentences.\n" +
		"If you don't recognize the question, suggest relevant topics they could ask about."
)

// Role framing
const (
	roleContextPrefix = "You are speaking to a %s. "
	subjectToken      = "{subject}"
)

var roleHints = map[model.Intent]map[model.Role]string{
	model.IntentTopTechnologies: {
		model.RoleSeeker:     "Highlight trending skills with percentages they should learn.",
		model.RoleCompany:    "Highlight market competition with percentages.",
		model.RoleUniversity: "Highlight what industry needs with percentages.",
	},
	model.IntentTechnologyDetails: {
		model.RoleSeeker:     "Help them understand {subject} market demand with percentages.",
		model.RoleCompany:    "Help them understand {subject} market position.",
		model.RoleUniversity: "Help them understand industry {subject} demand.",
	},
	model.IntentCompanyHiring: {
		model.RoleSeeker:  "Show opportunities and encourage applications.",
		model.RoleCompany: "Show market competition.",
	},
	model.IntentTalentSearch: {
		model.RoleSeeker:     "Show these as peers/collaborators.",
		model.RoleCompany:    "Frame as hiring candidates.",
		model.RoleUniversity: "Frame as potential partners/mentors.",
	},
	model.IntentSkillAvailability: {
		model.RoleCompany: "Help them understand talent pool size.",
	},
	model.IntentSkillDistribution: {
		model.RoleCompany:    "Help them understand talent pool capabilities.",
		model.RoleUniversity: "Help curriculum planning.",
	},
	model.IntentDemandSupplyGap: {
		model.RoleUniversity: "Focus on skills gap and curriculum alignment.",
		model.RoleCompany:    "Focus on talent scarcity.",
	},
	model.IntentPartnershipIntel: {
		model.RoleUniversity: "Highlight partnership potential and industry alignment.",
	},
}
