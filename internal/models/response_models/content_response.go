package response_models

import "time"

type DailyContentResponse struct {
	ID                 string    `json:"id"`
	Title              string    `json:"title"`
	Content            string    `json:"content"`
	TheologianName     string    `json:"theologian_name"`
	TheologianBio      string    `json:"theologian_bio,omitempty"`
	ScriptureReference string    `json:"scripture_reference,omitempty"`
	ReflectionQuestion string    `json:"reflection_question,omitempty"`
	Tags               []string  `json:"tags,omitempty"`
	PublishDate        time.Time `json:"publish_date"`
}

type DailyContentListResponse struct {
	Items       []DailyContentResponse `json:"items"`
	TotalCount  int64                  `json:"total_count"`
	CurrentPage int                    `json:"current_page"`
	TotalPages  int64                  `json:"total_pages"`
}
