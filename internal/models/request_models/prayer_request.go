package request_models

type CreatePrayerRequest struct {
	Title              string `json:"title" binding:"required"`
	Content            string `json:"content" binding:"required"`
	ScriptureReference string `json:"scripture_reference"`
	ScriptureText      string `json:"scripture_text"`
	YoutubeMusicURL    string `json:"youtube_music_url"`
	Visibility         string `json:"visibility" binding:"omitempty,oneof=PRIVATE COMMUNITY PUBLIC"`
}

// UpdatePrayerRequest carries partial updates; nil fields stay untouched.
type UpdatePrayerRequest struct {
	Title              *string `json:"title"`
	Content            *string `json:"content"`
	ScriptureReference *string `json:"scripture_reference"`
	ScriptureText      *string `json:"scripture_text"`
	YoutubeMusicURL    *string `json:"youtube_music_url"`
	Visibility         *string `json:"visibility" binding:"omitempty,oneof=PRIVATE COMMUNITY PUBLIC"`
}

type MarkPrayerAnsweredRequest struct {
	Testimony string `json:"testimony" binding:"required"`
}

type CreatePrayerUpdateRequest struct {
	Content string `json:"content" binding:"required"`
}
