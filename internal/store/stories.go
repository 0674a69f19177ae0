package store

import (
	"fmt"
	"sort"

	"github.com/rs/zerolog/log"

	"github.com/AtharvaAdmile/Local-Artisian-Agents/internal/types"
)

// PutStory stores or replaces a story under its own id.
func (s *Store) PutStory(story *types.StoryContent) error {
	prev, existed := s.stories[story.StoryID]

	s.stories[story.StoryID] = story
	if err := s.saveStories(); err != nil {
		if existed {
			s.stories[story.StoryID] = prev
		} else {
			delete(s.stories, story.StoryID)
		}
		return err
	}

	log.Info().Str("story_id", story.StoryID).Str("story_type", string(story.StoryType)).
		Msg("stored story")
	return nil
}

// GetStory returns the story for id, or ErrStoryNotFound.
func (s *Store) GetStory(id string) (*types.StoryContent, error) {
	story, ok := s.stories[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrStoryNotFound, id)
	}
	return story, nil
}

// StoriesFor returns every story belonging to an artisan, oldest first so
// calendar attachment order is stable.
func (s *Store) StoriesFor(artisanID string) []*types.StoryContent {
	var out []*types.StoryContent
	for _, story := range s.stories {
		if story.ArtisanProfileID == artisanID {
			out = append(out, story)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].StoryID < out[j].StoryID
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out
}

// DeleteStory removes the story stored under id.
func (s *Store) DeleteStory(id string) error {
	prev, ok := s.stories[id]
	if !ok {
		return fmt.Errorf("%w: %s", ErrStoryNotFound, id)
	}

	delete(s.stories, id)
	if err := s.saveStories(); err != nil {
		s.stories[id] = prev
		return err
	}
	return nil
}

func (s *Store) saveStories() error {
	return saveSnapshot(s.dir, storiesFile, s.stories)
}
