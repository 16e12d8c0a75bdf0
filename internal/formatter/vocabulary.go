package formatter

import "internship-assistant/pkg/keyword"

var (
	technologyMatcher = keyword.MustNew(TechnologyVocabulary)
	skillMatcher      = keyword.MustNew(SkillVocabulary)
)

// ExtractTechnology returns the highest-priority technology named in text, capitalized.
func ExtractTechnology(text string) (string, bool) {
	return technologyMatcher.Extract(text)
}

// ExtractSkill returns the highest-priority skill named in text, capitalized.
func ExtractSkill(text string) (string, bool) {
	return skillMatcher.Extract(text)
}
