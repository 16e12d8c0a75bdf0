package model

// TechnologyStat aggregates posts for one technology.
type TechnologyStat struct {
	Technology   string `json:"technology"`
	PostCount    int    `json:"post_count"`
	CompanyCount int    `json:"company_count"`
}

// Post is an internship post joined with its company.
type Post struct {
	ID                 int64  `json:"id"`
	Position           string `json:"position"`
	Technology         string `json:"technology"`
	Description        string `json:"description,omitempty"`
	CompanyName        string `json:"company_name"`
	CompanyEmail       string `json:"company_email,omitempty"`
	CompanyWebsite     string `json:"company_website,omitempty"`
	CompanyLocation    string `json:"company_location,omitempty"`
	CompanyDescription string `json:"company_description,omitempty"`
}

// Seeker is an internship seeker profile.
type Seeker struct {
	ID     int64    `json:"id"`
	Name   string   `json:"name"`
	Email  string   `json:"email,omitempty"`
	Skills []string `json:"skills"`
	Bio    string   `json:"bio,omitempty"`
}

// SkillStat counts seekers holding a skill.
type SkillStat struct {
	Skill       string `json:"skill"`
	SeekerCount int    `json:"seeker_count"`
}

// GapEntry compares demand (posts) with supply (seekers) for one technology.
type GapEntry struct {
	Technology string `json:"technology"`
	Demand     int    `json:"demand"`
	Supply     int    `json:"supply"`
	Gap        int    `json:"gap"`
}

// PartnershipCandidate is a verified company with active posts.
type PartnershipCandidate struct {
	CompanyID    int64    `json:"company_id"`
	Name         string   `json:"name"`
	Email        string   `json:"email,omitempty"`
	PostCount    int      `json:"post_count"`
	Technologies []string `json:"technologies"`
	Positions    []string `json:"positions,omitempty"`
}

// Snapshot is a coarse count of the platform's data.
type Snapshot struct {
	Posts     int `json:"posts"`
	Seekers   int `json:"seekers"`
	Companies int `json:"companies"`
	Skills    int `json:"skills"`
}
