// Package dto はNewsAPIレスポンスのデータ転送オブジェクトを定義します。
package dto

// TopHeadlinesResponse は /v2/top-headlines のJSONレスポンスを表します。
// status が "error" の場合は Code と Message のみが設定されます。
type TopHeadlinesResponse struct {
	Status       string    `json:"status"`
	TotalResults int       `json:"totalResults"`
	Articles     []Article `json:"articles"`
	Code         string    `json:"code,omitempty"`
	Message      string    `json:"message,omitempty"`
}

// Article は上流の記事1件です。値が無いフィールドはnullになります。
type Article struct {
	Source      *Source `json:"source"`
	Author      *string `json:"author"`
	Title       string  `json:"title"`
	Description *string `json:"description"`
	URL         string  `json:"url"`
	URLToImage  *string `json:"urlToImage"`
	PublishedAt *string `json:"publishedAt"`
	Content     *string `json:"content"`
}

// Source は記事の配信元です。
type Source struct {
	ID   *string `json:"id"`
	Name string  `json:"name"`
}
