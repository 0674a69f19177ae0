package store

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/AtharvaAdmile/Local-Artisian-Agents/internal/types"
)

// SchedulePost stores a post under a generated id and returns the id.
func (s *Store) SchedulePost(post *types.ScheduledPost) (string, error) {
	id := fmt.Sprintf("post_%x", uuid.New())[:17]
	post.PostID = id
	if post.Status == "" {
		post.Status = types.StatusScheduled
	}
	if post.CreatedAt.IsZero() {
		post.CreatedAt = time.Now().Truncate(time.Second)
	}

	s.scheduledPosts[id] = post
	if err := s.savePosts(); err != nil {
		delete(s.scheduledPosts, id)
		return "", err
	}

	log.Info().Str("post_id", id).Str("platform", string(post.Platform)).
		Msg("scheduled post")
	return id, nil
}

// GetPost returns the scheduled post for id, or ErrPostNotFound.
func (s *Store) GetPost(id string) (*types.ScheduledPost, error) {
	post, ok := s.scheduledPosts[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrPostNotFound, id)
	}
	return post, nil
}

// PostsFor returns every scheduled post for an artisan in schedule order.
func (s *Store) PostsFor(artisanID string) []*types.ScheduledPost {
	var out []*types.ScheduledPost
	for _, post := range s.scheduledPosts {
		if post.ArtisanProfileID == artisanID {
			out = append(out, post)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].ScheduledTime.Equal(out[j].ScheduledTime) {
			return out[i].PostID < out[j].PostID
		}
		return out[i].ScheduledTime.Before(out[j].ScheduledTime)
	})
	return out
}

// MarkPublished transitions a post to published and stamps the publish time.
func (s *Store) MarkPublished(id string, at time.Time) error {
	post, ok := s.scheduledPosts[id]
	if !ok {
		return fmt.Errorf("%w: %s", ErrPostNotFound, id)
	}

	prevStatus, prevAt := post.Status, post.PublishedAt
	published := at.Truncate(time.Second)
	post.Status = types.StatusPublished
	post.PublishedAt = &published

	if err := s.savePosts(); err != nil {
		post.Status = prevStatus
		post.PublishedAt = prevAt
		return err
	}
	return nil
}

func (s *Store) savePosts() error {
	return saveSnapshot(s.dir, scheduledPostsFile, s.scheduledPosts)
}
