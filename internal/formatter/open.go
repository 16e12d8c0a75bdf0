package formatter

import (
	"fmt"
	"strings"

	"internship-assistant/internal/model"
)

var learningPathInstruction = buildLearningPath()

func buildLearningPath() string {
	topics := make([]string, 0, len(Roadmaps))
	var links strings.Builder
	links.WriteString("{\n")
	for i, r := range Roadmaps {
		topics = append(topics, r.Topic)
		fmt.Fprintf(&links, "  %q: %q", r.Topic, r.URL)
		if i < len(Roadmaps)-1 {
			links.WriteString(",")
		}
		links.WriteString("\n")
	}
	links.WriteString("}")
	return fmt.Sprintf(PromptLearningPath, strings.Join(topics, ", "), links.String())
}

func learningPath() Outcome {
	return Outcome{Kind: KindOpen, Intent: model.IntentLearningPath, Instruction: learningPathInstruction}
}

func general(role model.Role) Outcome {
	return Outcome{Kind: KindOpen, Intent: model.IntentGeneral, Instruction: fmt.Sprintf(PromptGeneral, role)}
}

func joinList(items []string) string {
	return strings.Join(items, ", ")
}
