package formatter

import (
	"fmt"
	"strings"

	"internship-assistant/internal/model"
)

// RoleContext is the framing sentence for role and intent. subject fills
// intents whose hint names the technology being asked about. It never carries data.
func RoleContext(role model.Role, intent model.Intent, subject string) string {
	ctx := fmt.Sprintf(roleContextPrefix, role)
	if hint, ok := roleHints[intent][role]; ok {
		ctx += strings.ReplaceAll(hint, subjectToken, subject)
	}
	return ctx
}
