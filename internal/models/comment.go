package models

// Comment represents a comment on an article
type Comment struct {
	CommentID int       `json:"comment_id" db:"comment_id"`
	ArticleID int       `json:"article_id" db:"article_id"`
	Author    string    `json:"author" db:"author"`
	Body      string    `json:"body" db:"body"`
	Votes     int       `json:"votes" db:"votes"`
	CreatedAt Timestamp `json:"created_at" db:"created_at"`
}

// NewComment is the payload accepted by POST /api/articles/:article_id/comments
type NewComment struct {
	Username string `json:"username"`
	Body     string `json:"body"`
}

// VoteUpdate is the payload accepted by the PATCH endpoints.
// IncVotes is a pointer so an absent field can be told apart from zero.
type VoteUpdate struct {
	IncVotes *int `json:"inc_votes"`
}
