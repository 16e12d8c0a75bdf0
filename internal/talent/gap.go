package talent

import (
	"sort"
	"strings"

	"internship-assistant/internal/model"
)

// MergeDemandSupply joins post demand with seeker supply on a case-insensitive
// technology name. A side missing for a name counts as zero. Entries are
// ordered by gap (demand minus supply) descending, then by name.
func MergeDemandSupply(demand []model.TechnologyStat, supply []model.SkillStat) []model.GapEntry {
	byKey := make(map[string]*model.GapEntry, len(demand)+len(supply))
	order := make([]string, 0, len(demand)+len(supply))

	entry := func(name string) *model.GapEntry {
		key := strings.ToLower(strings.TrimSpace(name))
		if e, ok := byKey[key]; ok {
			return e
		}
		e := &model.GapEntry{Technology: strings.TrimSpace(name)}
		byKey[key] = e
		order = append(order, key)
		return e
	}

	for _, d := range demand {
		if strings.TrimSpace(d.Technology) == "" {
			continue
		}
		e := entry(d.Technology)
		e.Demand += d.PostCount
	}
	for _, s := range supply {
		if strings.TrimSpace(s.Skill) == "" {
			continue
		}
		e := entry(s.Skill)
		e.Supply += s.SeekerCount
	}

	out := make([]model.GapEntry, 0, len(order))
	for _, key := range order {
		e := byKey[key]
		e.Gap = e.Demand - e.Supply
		out = append(out, *e)
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Gap != out[j].Gap {
			return out[i].Gap > out[j].Gap
		}
		return strings.ToLower(out[i].Technology) < strings.ToLower(out[j].Technology)
	})
	return out
}
