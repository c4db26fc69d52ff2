package response_models

import "time"

type PrayerResponse struct {
	ID                 string     `json:"id"`
	UserID             string     `json:"user_id"`
	Username           string     `json:"username"`
	UserFullName       string     `json:"user_full_name"`
	Title              string     `json:"title"`
	Content            string     `json:"content"`
	ScriptureReference string     `json:"scripture_reference,omitempty"`
	ScriptureText      string     `json:"scripture_text,omitempty"`
	YoutubeMusicURL    string     `json:"youtube_music_url,omitempty"`
	Status             string     `json:"status"`
	AnsweredAt         *time.Time `json:"answered_at,omitempty"`
	Visibility         string     `json:"visibility"`
	IsShared           bool       `json:"is_shared"`
	FollowerCount      int64      `json:"follower_count"`
	UpdateCount        int64      `json:"update_count"`
	IsFollowing        bool       `json:"is_following"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`
}

type PrayerUpdateResponse struct {
	ID        string    `json:"id"`
	PrayerID  string    `json:"prayer_id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

type PrayerFollowerResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Username  string    `json:"username"`
	FullName  string    `json:"full_name"`
	CreatedAt time.Time `json:"created_at"`
}

type PrayerStatsResponse struct {
	TotalPrayers     int64 `json:"total_prayers"`
	PendingPrayers   int64 `json:"pending_prayers"`
	AnsweredPrayers  int64 `json:"answered_prayers"`
	PrayersFollowing int64 `json:"prayers_following"`
}
