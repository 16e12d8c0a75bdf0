package repository

// QueryPostsOptions defines a semantic post search.
type QueryPostsOptions struct {
	Query      string
	Limit      int
	Technology string // Exact payload match, optional
}

// IndexOptions controls a bulk index run.
type IndexOptions struct {
	Recreate bool // Drop the collection first
}
