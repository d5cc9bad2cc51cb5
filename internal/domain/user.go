package domain

// User is the public profile of an article or comment author.
type User struct {
	Username  string `db:"username"`
	Name      string `db:"name"`
	AvatarURL string `db:"avatar_url"`
}
