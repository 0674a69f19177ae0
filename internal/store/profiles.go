package store

import (
	"fmt"
	"sort"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/AtharvaAdmile/Local-Artisian-Agents/internal/knowledge"
	"github.com/AtharvaAdmile/Local-Artisian-Agents/internal/types"
)

// CreateProfile stores a new artisan profile and returns its generated id.
// The id is the snake-cased name suffixed with an ordinal; the ordinal skips
// past ids still in use, so deletions never let a new profile clobber a
// surviving one.
func (s *Store) CreateProfile(profile *types.ArtisanProfile) (string, error) {
	slug := strings.ToLower(strings.ReplaceAll(profile.Name, " ", "_"))
	var id string
	for seq := len(s.profiles) + 1; ; seq++ {
		id = fmt.Sprintf("%s_%d", slug, seq)
		if _, taken := s.profiles[id]; !taken {
			break
		}
	}

	s.profiles[id] = profile
	if err := s.saveProfiles(); err != nil {
		delete(s.profiles, id)
		return "", err
	}

	log.Info().Str("profile_id", id).Str("name", profile.Name).Msg("created profile")
	return id, nil
}

// GetProfile returns the profile for id, or ErrProfileNotFound.
func (s *Store) GetProfile(id string) (*types.ArtisanProfile, error) {
	profile, ok := s.profiles[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrProfileNotFound, id)
	}
	return profile, nil
}

// UpdateProfile replaces the profile stored under id.
func (s *Store) UpdateProfile(id string, profile *types.ArtisanProfile) error {
	prev, ok := s.profiles[id]
	if !ok {
		return fmt.Errorf("%w: %s", ErrProfileNotFound, id)
	}

	s.profiles[id] = profile
	if err := s.saveProfiles(); err != nil {
		s.profiles[id] = prev
		return err
	}
	return nil
}

// DeleteProfile removes the profile stored under id.
func (s *Store) DeleteProfile(id string) error {
	prev, ok := s.profiles[id]
	if !ok {
		return fmt.Errorf("%w: %s", ErrProfileNotFound, id)
	}

	delete(s.profiles, id)
	if err := s.saveProfiles(); err != nil {
		s.profiles[id] = prev
		return err
	}

	log.Info().Str("profile_id", id).Msg("deleted profile")
	return nil
}

// ProfileSummary is the listing projection of an artisan profile.
type ProfileSummary struct {
	ProfileID       string `json:"profile_id"`
	Name            string `json:"name"`
	Specialization  string `json:"specialization"`
	Location        string `json:"location"`
	ExperienceYears int    `json:"experience_years"`
}

// ListProfiles returns summaries of every stored profile, sorted by id.
func (s *Store) ListProfiles() []ProfileSummary {
	out := make([]ProfileSummary, 0, len(s.profiles))
	for id, p := range s.profiles {
		out = append(out, ProfileSummary{
			ProfileID:       id,
			Name:            p.Name,
			Specialization:  string(p.Specialization),
			Location:        p.Location,
			ExperienceYears: p.ExperienceYears,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ProfileID < out[j].ProfileID })
	return out
}

// FindProfilesByCraft returns the ids of profiles with the given craft.
func (s *Store) FindProfilesByCraft(craft types.CraftType) []string {
	var ids []string
	for id, p := range s.profiles {
		if p.Specialization == craft {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	return ids
}

// FindProfilesByLocation returns the ids of profiles whose location contains
// the query, case-insensitively.
func (s *Store) FindProfilesByLocation(location string) []string {
	query := strings.ToLower(location)
	var ids []string
	for id, p := range s.profiles {
		if strings.Contains(strings.ToLower(p.Location), query) {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	return ids
}

// CraftStatistics counts stored profiles per craft type.
func (s *Store) CraftStatistics() map[string]int {
	stats := make(map[string]int)
	for _, p := range s.profiles {
		stats[string(p.Specialization)]++
	}
	return stats
}

// ExperienceDistribution counts stored profiles per skill band.
func (s *Store) ExperienceDistribution() map[string]int {
	dist := make(map[string]int)
	for _, p := range s.profiles {
		dist[string(knowledge.SkillLevelFor(p.ExperienceYears))]++
	}
	return dist
}

func (s *Store) saveProfiles() error {
	return saveSnapshot(s.dir, profilesFile, s.profiles)
}
