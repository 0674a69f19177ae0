package store

import "errors"

// ErrProfileNotFound is returned when an artisan profile id does not exist.
// It is the only lookup failure surfaced to callers as a hard error.
var ErrProfileNotFound = errors.New("artisan profile not found")

// ErrAssetNotFound is returned when a content asset id does not exist.
var ErrAssetNotFound = errors.New("content asset not found")

// ErrStoryNotFound is returned when a story id does not exist.
var ErrStoryNotFound = errors.New("story not found")

// ErrPostNotFound is returned when a scheduled post id does not exist.
var ErrPostNotFound = errors.New("scheduled post not found")
