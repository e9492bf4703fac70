package assets

import "errors"

var (
	// ErrAssetNotFound is returned when an override file does not exist.
	ErrAssetNotFound = errors.New("asset not found")
	ErrNoPlayerSpawn = errors.New("no player spawn points defined in map")
)
