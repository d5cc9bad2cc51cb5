package domain

// Topic is a subject area articles are filed under. Slugs are unique.
type Topic struct {
	Slug        string `db:"slug"`
	Description string `db:"description"`
}
