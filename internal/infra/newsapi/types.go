package newsapi

import "time"

// ArticleResponse is the JSON body returned by the top-headlines endpoint.
// On failure the provider sets Status to "error" and fills Code and Message.
type ArticleResponse struct {
	Status       string    `json:"status"`
	TotalResults int       `json:"totalResults"`
	Articles     []Article `json:"articles"`
	Code         string    `json:"code,omitempty"`
	Message      string    `json:"message,omitempty"`
}

// Article is one provider article. Any string field may be null upstream and
// decodes to "".
type Article struct {
	Source      ArticleSource `json:"source"`
	Author      string        `json:"author"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	URL         string        `json:"url"`
	URLToImage  string        `json:"urlToImage"`
	PublishedAt time.Time     `json:"publishedAt"`
	Content     string        `json:"content"`
}

// ArticleSource identifies the publisher of an Article.
type ArticleSource struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
