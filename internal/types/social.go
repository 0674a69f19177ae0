package types

import "time"

// SocialMediaProfile is the per-platform account configuration for an artisan.
type SocialMediaProfile struct {
	Platform         SocialPlatform `json:"platform"`
	Username         string         `json:"username"`
	ProfileURL       string         `json:"profile_url"`
	FollowersCount   int            `json:"followers_count"`
	EngagementRate   float64        `json:"engagement_rate"`
	ContentStyle     string         `json:"content_style"`
	PostingFrequency string         `json:"posting_frequency"`
	BestPostingTimes []string       `json:"best_posting_times"`
	TargetHashtags   []string       `json:"target_hashtags"`
	Bio              string         `json:"bio"`
	ProfileImageURL  string         `json:"profile_image_url,omitempty"`
	Verified         bool           `json:"verified"`
	BusinessAccount  bool           `json:"business_account"`
	ArtisanProfileID string         `json:"artisan_profile_id"`
	CreatedAt        time.Time      `json:"created_at"`
}

// SocialProfileConfig carries the fully named inputs for social profile
// creation; zero values fall back to platform defaults at construction.
type SocialProfileConfig struct {
	Platform         string   `json:"platform"`
	Username         string   `json:"username"`
	ProfileURL       string   `json:"profile_url"`
	FollowersCount   int      `json:"followers_count"`
	EngagementRate   float64  `json:"engagement_rate"`
	ContentStyle     string   `json:"content_style"`
	PostingFrequency string   `json:"posting_frequency"`
	BestPostingTimes []string `json:"best_posting_times"`
	TargetHashtags   []string `json:"target_hashtags"`
	Bio              string   `json:"bio"`
	ProfileImageURL  string   `json:"profile_image_url"`
	Verified         bool     `json:"verified"`
	BusinessAccount  bool     `json:"business_account"`
}

// ContentAsset is a media asset linked to an artisan and optionally to the
// craft analysis it was derived from.
type ContentAsset struct {
	AssetID          string           `json:"asset_id"`
	AssetType        ContentAssetType `json:"asset_type"`
	Title            string           `json:"title"`
	Description      string           `json:"description"`
	FilePath         string           `json:"file_path"`
	StorageURI       string           `json:"gcs_uri"`
	Tags             []string         `json:"tags"`
	Dimensions       map[string]int   `json:"dimensions"`
	FileSize         int64            `json:"file_size"`
	MimeType         string           `json:"mime_type"`
	CraftAnalysisID  string           `json:"craft_analysis_id"`
	ArtisanProfileID string           `json:"artisan_profile_id"`
	CreatedAt        time.Time        `json:"created_at"`
}

// ScheduledPost is a queued social media post.
type ScheduledPost struct {
	PostID             string         `json:"post_id"`
	Platform           SocialPlatform `json:"platform"`
	ContentAssetID     string         `json:"content_asset_id"`
	StoryContentID     string         `json:"story_content_id"`
	Caption            string         `json:"caption"`
	Hashtags           []string       `json:"hashtags"`
	ScheduledTime      time.Time      `json:"scheduled_time"`
	Status             PostingStatus  `json:"status"`
	PerformanceMetrics map[string]int `json:"performance_metrics"`
	ArtisanProfileID   string         `json:"artisan_profile_id"`
	CreatedAt          time.Time      `json:"created_at"`
	PublishedAt        *time.Time     `json:"published_at,omitempty"`
}
