// Package types provides type definitions for structured data used throughout the artisan content agent.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "strings"

// CraftType identifies a traditional craft specialization.
type CraftType string

// Craft type values. Unrecognized inputs map to CraftUnknown.
const (
	CraftPottery    CraftType = "pottery"
	CraftTextiles   CraftType = "textiles"
	CraftJewelry    CraftType = "jewelry"
	CraftWoodwork   CraftType = "woodwork"
	CraftMetalwork  CraftType = "metalwork"
	CraftPainting   CraftType = "painting"
	CraftEmbroidery CraftType = "embroidery"
	CraftLeather    CraftType = "leather"
	CraftBamboo     CraftType = "bamboo"
	CraftStonework  CraftType = "stonework"
	CraftGlasswork  CraftType = "glasswork"
	CraftUnknown    CraftType = "unknown"
)

// CraftTypes lists every known craft type excluding the unknown sentinel.
func CraftTypes() []CraftType {
	return []CraftType{
		CraftPottery, CraftTextiles, CraftJewelry, CraftWoodwork,
		CraftMetalwork, CraftPainting, CraftEmbroidery, CraftLeather,
		CraftBamboo, CraftStonework, CraftGlasswork,
	}
}

// ParseCraftType maps a string to a CraftType, returning CraftUnknown for
// anything it does not recognize. It never fails.
func ParseCraftType(s string) CraftType {
	c := CraftType(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range CraftTypes() {
		if c == known {
			return known
		}
	}
	return CraftUnknown
}

// ContentType categorizes a recommended piece of content.
type ContentType string

// Content type values. Unrecognized inputs map to ContentProcessVideo.
const (
	ContentProcessVideo        ContentType = "process_video"
	ContentFinishedProduct     ContentType = "finished_product"
	ContentBehindScenes        ContentType = "behind_scenes"
	ContentTutorial            ContentType = "tutorial"
	ContentStoryTelling        ContentType = "story_telling"
	ContentCulturalContext     ContentType = "cultural_context"
	ContentCustomerTestimonial ContentType = "customer_testimonial"
	ContentTimeLapse           ContentType = "time_lapse"
	ContentComparison          ContentType = "comparison"
	ContentSeasonal            ContentType = "seasonal_content"
)

// ContentTypes lists every valid content type.
func ContentTypes() []ContentType {
	return []ContentType{
		ContentProcessVideo, ContentFinishedProduct, ContentBehindScenes,
		ContentTutorial, ContentStoryTelling, ContentCulturalContext,
		ContentCustomerTestimonial, ContentTimeLapse, ContentComparison,
		ContentSeasonal,
	}
}

// ParseContentType maps a string to a ContentType. Unknown values default to
// ContentProcessVideo so a single bad model output never aborts a batch.
func ParseContentType(s string) ContentType {
	c := ContentType(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range ContentTypes() {
		if c == known {
			return known
		}
	}
	return ContentProcessVideo
}

// Humanize renders a content type as a display label, e.g. "Process Video".
func (c ContentType) Humanize() string {
	return humanizeSnake(string(c))
}

// StoryType identifies one of the fixed narrative archetypes.
type StoryType string

// Story type values. Unrecognized inputs map to StoryBehindScenes.
const (
	StoryOrigin           StoryType = "origin_story"
	StoryCraftJourney     StoryType = "craft_journey"
	StoryCulturalHeritage StoryType = "cultural_heritage"
	StoryCustomer         StoryType = "customer_story"
	StoryBehindScenes     StoryType = "behind_scenes"
	StorySeasonal         StoryType = "seasonal_story"
	StoryProcess          StoryType = "process_story"
	StoryInspiration      StoryType = "inspiration_story"
)

// StoryTypes lists every valid story type.
func StoryTypes() []StoryType {
	return []StoryType{
		StoryOrigin, StoryCraftJourney, StoryCulturalHeritage, StoryCustomer,
		StoryBehindScenes, StorySeasonal, StoryProcess, StoryInspiration,
	}
}

// ParseStoryType maps a string to a StoryType, defaulting to StoryBehindScenes.
func ParseStoryType(s string) StoryType {
	st := StoryType(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range StoryTypes() {
		if st == known {
			return known
		}
	}
	return StoryBehindScenes
}

// Humanize renders a story type as a display label, e.g. "Origin Story".
func (s StoryType) Humanize() string {
	return humanizeSnake(string(s))
}

// PostingStatus tracks a scheduled post through its lifecycle.
type PostingStatus string

// Posting status values.
const (
	StatusDraft     PostingStatus = "draft"
	StatusScheduled PostingStatus = "scheduled"
	StatusPublished PostingStatus = "published"
	StatusFailed    PostingStatus = "failed"
)

// ParsePostingStatus maps a string to a PostingStatus, defaulting to StatusDraft.
func ParsePostingStatus(s string) PostingStatus {
	switch PostingStatus(strings.ToLower(strings.TrimSpace(s))) {
	case StatusScheduled:
		return StatusScheduled
	case StatusPublished:
		return StatusPublished
	case StatusFailed:
		return StatusFailed
	default:
		return StatusDraft
	}
}

// SocialPlatform identifies a supported social media platform.
type SocialPlatform string

// Social platform values. Unrecognized inputs map to PlatformInstagram.
const (
	PlatformInstagram SocialPlatform = "instagram"
	PlatformFacebook  SocialPlatform = "facebook"
	PlatformYouTube   SocialPlatform = "youtube"
	PlatformPinterest SocialPlatform = "pinterest"
	PlatformTwitter   SocialPlatform = "twitter"
	PlatformTikTok    SocialPlatform = "tiktok"
	PlatformLinkedIn  SocialPlatform = "linkedin"
	PlatformWhatsApp  SocialPlatform = "whatsapp"
)

// SocialPlatforms lists every valid platform.
func SocialPlatforms() []SocialPlatform {
	return []SocialPlatform{
		PlatformInstagram, PlatformFacebook, PlatformYouTube, PlatformPinterest,
		PlatformTwitter, PlatformTikTok, PlatformLinkedIn, PlatformWhatsApp,
	}
}

// ParseSocialPlatform maps a string to a SocialPlatform, defaulting to
// PlatformInstagram.
func ParseSocialPlatform(s string) SocialPlatform {
	p := SocialPlatform(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range SocialPlatforms() {
		if p == known {
			return known
		}
	}
	return PlatformInstagram
}

// ContentAssetType categorizes an uploaded or generated media asset.
type ContentAssetType string

// Content asset type values.
const (
	AssetImage    ContentAssetType = "image"
	AssetVideo    ContentAssetType = "video"
	AssetStory    ContentAssetType = "story"
	AssetReel     ContentAssetType = "reel"
	AssetPost     ContentAssetType = "post"
	AssetCarousel ContentAssetType = "carousel"
	AssetLive     ContentAssetType = "live"
	AssetBlog     ContentAssetType = "blog"
)

// ParseContentAssetType maps a string to a ContentAssetType, defaulting to AssetImage.
func ParseContentAssetType(s string) ContentAssetType {
	a := ContentAssetType(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range []ContentAssetType{
		AssetImage, AssetVideo, AssetStory, AssetReel,
		AssetPost, AssetCarousel, AssetLive, AssetBlog,
	} {
		if a == known {
			return known
		}
	}
	return AssetImage
}

// humanizeSnake converts "process_video" to "Process Video".
func humanizeSnake(s string) string {
	words := strings.Split(s, "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
