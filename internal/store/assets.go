package store

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/AtharvaAdmile/Local-Artisian-Agents/internal/types"
)

// AddAsset stores a content asset under a generated id and returns the id.
func (s *Store) AddAsset(asset *types.ContentAsset) (string, error) {
	id := fmt.Sprintf("asset_%x", uuid.New())[:18]
	asset.AssetID = id
	if asset.CreatedAt.IsZero() {
		asset.CreatedAt = time.Now().Truncate(time.Second)
	}

	s.assets[id] = asset
	if err := s.saveAssets(); err != nil {
		delete(s.assets, id)
		return "", err
	}

	log.Info().Str("asset_id", id).Str("artisan_id", asset.ArtisanProfileID).
		Msg("added content asset")
	return id, nil
}

// GetAsset returns the asset for id, or ErrAssetNotFound.
func (s *Store) GetAsset(id string) (*types.ContentAsset, error) {
	asset, ok := s.assets[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrAssetNotFound, id)
	}
	return asset, nil
}

// AssetsFor returns every asset belonging to an artisan, oldest first.
func (s *Store) AssetsFor(artisanID string) []*types.ContentAsset {
	var out []*types.ContentAsset
	for _, asset := range s.assets {
		if asset.ArtisanProfileID == artisanID {
			out = append(out, asset)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].AssetID < out[j].AssetID
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out
}

// DeleteAsset removes the asset stored under id.
func (s *Store) DeleteAsset(id string) error {
	prev, ok := s.assets[id]
	if !ok {
		return fmt.Errorf("%w: %s", ErrAssetNotFound, id)
	}

	delete(s.assets, id)
	if err := s.saveAssets(); err != nil {
		s.assets[id] = prev
		return err
	}

	log.Info().Str("asset_id", id).Msg("deleted content asset")
	return nil
}

func (s *Store) saveAssets() error {
	return saveSnapshot(s.dir, assetsFile, s.assets)
}
