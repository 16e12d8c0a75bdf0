package talent

// Reindex targets.
const (
	TargetSeekers = "seekers"
	TargetPosts   = "posts"
	TargetAll     = "all"
)

// ReindexInput selects what to rebuild.
type ReindexInput struct {
	Target string
	// Recreate drops the collection before indexing.
	Recreate bool
}

// ReindexOutput reports how many documents were written.
type ReindexOutput struct {
	Seekers int
	Posts   int
}

// IndexStats is the number of points per collection.
type IndexStats struct {
	Seekers int `json:"seekers"`
	Posts   int `json:"posts"`
}
