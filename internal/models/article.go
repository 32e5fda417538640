package models

// Article represents an article in the system
type Article struct {
	ArticleID int       `json:"article_id" db:"article_id"`
	Title     string    `json:"title" db:"title"`
	Topic     string    `json:"topic" db:"topic"`
	Author    string    `json:"author" db:"author"`
	Body      string    `json:"body" db:"body"`
	CreatedAt Timestamp `json:"created_at" db:"created_at"`
	Votes     int       `json:"votes" db:"votes"`
}

// ArticleWithCount is a single article together with its aggregated comment count.
// comment_count is rendered as a JSON string to match the aggregate's wire format.
type ArticleWithCount struct {
	Article
	CommentCount int64 `json:"comment_count,string"`
}

// ArticleSummary is an article row as returned by the listing endpoint (no body)
type ArticleSummary struct {
	ArticleID    int       `json:"article_id"`
	Title        string    `json:"title"`
	Topic        string    `json:"topic"`
	Author       string    `json:"author"`
	CreatedAt    Timestamp `json:"created_at"`
	Votes        int       `json:"votes"`
	CommentCount int64     `json:"comment_count,string"`
}

// Sort columns accepted by the article listing
const (
	SortTitle     = "title"
	SortTopic     = "topic"
	SortAuthor    = "author"
	SortCreatedAt = "created_at"
	SortVotes     = "votes"
	SortArticleID = "article_id"
)

// Sort directions accepted by the article listing
const (
	OrderAsc  = "asc"
	OrderDesc = "desc"
)

// ArticleFilter holds the validated listing parameters
type ArticleFilter struct {
	SortBy string
	Order  string
	Topic  string // empty means no topic filter
}

// DefaultArticleFilter returns the listing defaults: newest first, all topics
func DefaultArticleFilter() ArticleFilter {
	return ArticleFilter{SortBy: SortCreatedAt, Order: OrderDesc}
}
