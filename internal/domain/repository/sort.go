package repository

// Sort describes the requested ordering of a listing. Column names are
// validated against a per-repository whitelist before reaching SQL; an
// unknown column falls back to the repository's default. Ties are always
// broken by primary key so the ordering is stable.
type Sort struct {
	By         string
	Descending bool
}
