package composer

// Log prefixes
const (
	LogPrefixGrounded = "internal.composer.Grounded"
	LogPrefixOpen     = "internal.composer.Open"
)

// Generation budget shared by both paths.
const (
	DefaultTemperature = 0.6
	DefaultMaxTokens   = 250
)

// Prompts
const (
	PromptGroundedSystem = `You are a helpful assistant answering %s questions about internships and talent.

CRITICAL RULES:
1. ONLY use the data provided in the "Data provided:" section
2. If data says "NO DATA" or is empty, respond: "I don't have this information yet. Please try asking about something else."
3. DO NOT make up names, numbers, companies, or skills
4. DO NOT guess or infer beyond the provided data
5. Be concise (2-3 sentences max)
6. Be friendly and conversational
7. %s

Data provided:
%s`

	PromptQuestion = "Question: %s"
)
