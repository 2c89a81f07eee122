package media

import (
	"context"
	"io"
)

// Asset is the durable result of one upload: the URL to serve and the
// identifier needed to delete the binary later. The record that stores
// an AssetID owns the remote asset.
type Asset struct {
	URL     string
	AssetID string
}

// Store abstracts the media backend (Cloudinary or local disk).
type Store interface {
	Upload(ctx context.Context, r io.Reader, folder string) (Asset, error)
	Delete(ctx context.Context, assetID string) error
}

// Replace uploads a new binary and, only after the upload succeeded,
// deletes the superseded asset. Ordering is deliberate: a failed upload
// leaves the old asset (and the record pointing at it) intact, so a
// half-finished swap never orphans the stored identifier. The delete is
// best-effort; its error is returned separately so callers can log it
// without failing the request.
func Replace(ctx context.Context, store Store, oldAssetID, folder string, r io.Reader) (Asset, error, error) {
	asset, err := store.Upload(ctx, r, folder)
	if err != nil {
		return Asset{}, err, nil
	}
	var delErr error
	if oldAssetID != "" {
		delErr = store.Delete(ctx, oldAssetID)
	}
	return asset, nil, delErr
}
