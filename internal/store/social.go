package store

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/AtharvaAdmile/Local-Artisian-Agents/internal/types"
)

// platformPostingTimes holds the default posting windows used when a social
// profile is created without explicit times.
var platformPostingTimes = map[types.SocialPlatform][]string{
	types.PlatformInstagram: {"6-9 AM", "12-2 PM", "5-7 PM"},
	types.PlatformFacebook:  {"9-10 AM", "1-3 PM", "3-4 PM"},
	types.PlatformYouTube:   {"2-4 PM", "6-9 PM"},
	types.PlatformPinterest: {"8-11 PM", "2-4 AM"},
}

// CreateSocialProfile stores a per-platform account record for an artisan and
// returns its composite key. The artisan profile must exist.
func (s *Store) CreateSocialProfile(artisanID string, cfg types.SocialProfileConfig) (string, error) {
	if _, ok := s.profiles[artisanID]; !ok {
		return "", fmt.Errorf("%w: %s", ErrProfileNotFound, artisanID)
	}

	platform := types.ParseSocialPlatform(cfg.Platform)

	style := cfg.ContentStyle
	if style == "" {
		style = "Traditional craft showcase"
	}
	frequency := cfg.PostingFrequency
	if frequency == "" {
		frequency = "Daily"
	}
	times := cfg.BestPostingTimes
	if len(times) == 0 {
		times = platformPostingTimes[platform]
	}

	profile := &types.SocialMediaProfile{
		Platform:         platform,
		Username:         cfg.Username,
		ProfileURL:       cfg.ProfileURL,
		FollowersCount:   cfg.FollowersCount,
		EngagementRate:   cfg.EngagementRate,
		ContentStyle:     style,
		PostingFrequency: frequency,
		BestPostingTimes: times,
		TargetHashtags:   cfg.TargetHashtags,
		Bio:              cfg.Bio,
		ProfileImageURL:  cfg.ProfileImageURL,
		Verified:         cfg.Verified,
		BusinessAccount:  cfg.BusinessAccount,
		ArtisanProfileID: artisanID,
		CreatedAt:        time.Now().Truncate(time.Second),
	}

	if s.socialProfiles[artisanID] == nil {
		s.socialProfiles[artisanID] = make(map[string]*types.SocialMediaProfile)
	}
	prev := s.socialProfiles[artisanID][string(platform)]
	s.socialProfiles[artisanID][string(platform)] = profile

	if err := s.saveSocialProfiles(); err != nil {
		if prev == nil {
			delete(s.socialProfiles[artisanID], string(platform))
		} else {
			s.socialProfiles[artisanID][string(platform)] = prev
		}
		return "", err
	}

	log.Info().Str("artisan_id", artisanID).Str("platform", string(platform)).
		Msg("created social media profile")
	return artisanID + "_" + string(platform), nil
}

// SocialProfiles returns the per-platform profiles for an artisan, keyed by
// platform name. The map is empty when none exist.
func (s *Store) SocialProfiles(artisanID string) map[string]*types.SocialMediaProfile {
	out := make(map[string]*types.SocialMediaProfile, len(s.socialProfiles[artisanID]))
	for platform, p := range s.socialProfiles[artisanID] {
		out[platform] = p
	}
	return out
}

// UpdateSocialProfile replaces the stored record for one artisan platform.
func (s *Store) UpdateSocialProfile(artisanID, platform string, profile *types.SocialMediaProfile) error {
	prev, ok := s.socialProfiles[artisanID][platform]
	if !ok {
		return fmt.Errorf("social profile not found: %s/%s", artisanID, platform)
	}

	s.socialProfiles[artisanID][platform] = profile
	if err := s.saveSocialProfiles(); err != nil {
		s.socialProfiles[artisanID][platform] = prev
		return err
	}
	return nil
}

// PlatformAnalytics summarizes per-platform account standing for an artisan.
func (s *Store) PlatformAnalytics(artisanID string) map[string]map[string]any {
	analytics := make(map[string]map[string]any)
	for platform, p := range s.socialProfiles[artisanID] {
		scheduled := 0
		for _, post := range s.scheduledPosts {
			if post.ArtisanProfileID == artisanID && string(post.Platform) == platform &&
				post.Status == types.StatusScheduled {
				scheduled++
			}
		}
		analytics[platform] = map[string]any{
			"followers_count":   p.FollowersCount,
			"engagement_rate":   p.EngagementRate,
			"posting_frequency": p.PostingFrequency,
			"posts_scheduled":   scheduled,
		}
	}
	return analytics
}

func (s *Store) saveSocialProfiles() error {
	return saveSnapshot(s.dir, socialProfilesFile, s.socialProfiles)
}
