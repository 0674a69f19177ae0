package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Snapshot file names, one JSON document per collection.
const (
	profilesFile       = "artisan_profiles.json"
	socialProfilesFile = "social_media_profiles.json"
	assetsFile         = "content_assets.json"
	storiesFile        = "story_contents.json"
	scheduledPostsFile = "scheduled_posts.json"
)

// saveSnapshot writes one collection atomically: the document goes to a temp
// file in the same directory and is renamed over the target. Readers never
// observe a partial snapshot of a single collection; cross-collection
// consistency is not guaranteed.
func saveSnapshot(dir, name string, collection any) error {
	data, err := json.MarshalIndent(collection, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", name, err)
	}

	path := filepath.Join(dir, name)
	tmp, err := os.CreateTemp(dir, name+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp snapshot for %s: %w", name, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write snapshot %s: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to close snapshot %s: %w", name, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to replace snapshot %s: %w", name, err)
	}
	return nil
}

// loadSnapshot reads one collection into out. A missing file is not an
// error: the collection starts empty.
func loadSnapshot(dir, name string, out any) error {
	data, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to read snapshot %s: %w", name, err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to decode snapshot %s: %w", name, err)
	}
	return nil
}
