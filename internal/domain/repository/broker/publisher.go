package broker

import "context"

const (
	KindPhotoUploaded = "photo.uploaded"
	KindPhotoDeleted  = "photo.deleted"
)

// Event describes a photo lifecycle change for downstream consumers.
type Event struct {
	ID      string `json:"id"`
	Kind    string `json:"kind"`
	PhotoID string `json:"photoId"`
	OwnerID string `json:"ownerId"`
	At      int64  `json:"at"`
}

// Publisher emits photo lifecycle events. Publishing is best-effort; callers
// log failures and never fail the user-facing operation over them.
type Publisher interface {
	Publish(ctx context.Context, event Event) error
}
