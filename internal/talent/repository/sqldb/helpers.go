package sqldb

import (
	"database/sql"
	"strings"

	"github.com/samber/lo"
)

// likePattern wraps term for a substring LIKE match.
func likePattern(term string) string {
	return "%" + strings.TrimSpace(term) + "%"
}

// splitList splits a comma separated column (GROUP_CONCAT output or the
// free-text skills field) into trimmed, case-insensitively unique values.
func splitList(values ...string) []string {
	var out []string
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return lo.UniqBy(out, strings.ToLower)
}

func nullString(ns sql.NullString) string {
	if !ns.Valid {
		return ""
	}
	return ns.String
}
