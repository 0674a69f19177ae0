// Package store persists the agent's collections as JSON snapshots on disk
// and serves them from memory. Every mutation rewrites the touched
// collection's snapshot atomically before returning.
package store

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/AtharvaAdmile/Local-Artisian-Agents/internal/types"
)

// Store holds every collection in memory, backed by per-collection JSON
// snapshot files under dir. It is not safe for concurrent use; the pipeline
// is synchronous by contract.
type Store struct {
	dir string

	profiles       map[string]*types.ArtisanProfile
	socialProfiles map[string]map[string]*types.SocialMediaProfile
	assets         map[string]*types.ContentAsset
	stories        map[string]*types.StoryContent
	scheduledPosts map[string]*types.ScheduledPost
}

// Open creates the snapshot directory if needed and loads every collection.
func Open(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create store directory: %w", err)
	}

	s := &Store{
		dir:            dir,
		profiles:       make(map[string]*types.ArtisanProfile),
		socialProfiles: make(map[string]map[string]*types.SocialMediaProfile),
		assets:         make(map[string]*types.ContentAsset),
		stories:        make(map[string]*types.StoryContent),
		scheduledPosts: make(map[string]*types.ScheduledPost),
	}

	loads := []struct {
		file string
		into any
	}{
		{profilesFile, &s.profiles},
		{socialProfilesFile, &s.socialProfiles},
		{assetsFile, &s.assets},
		{storiesFile, &s.stories},
		{scheduledPostsFile, &s.scheduledPosts},
	}
	for _, l := range loads {
		if err := loadSnapshot(dir, l.file, l.into); err != nil {
			return nil, err
		}
	}

	log.Info().Str("dir", dir).
		Int("profiles", len(s.profiles)).
		Int("stories", len(s.stories)).
		Msg("opened store")
	return s, nil
}
