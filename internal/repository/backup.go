package repository

import (
	"context"
	"encoding/json"
)

// BackupStore mirrors records to a remote object store, one JSON document per
// path. Mirrors are advisory: implementations must swallow transport failures
// into an error return and never block a caller beyond their request timeout.
// An unconfigured store reports entity.ErrBackupDisabled for every operation.
type BackupStore interface {
	Put(ctx context.Context, path string, payload []byte) error
	// List fetches every JSON object stored under prefix. It returns an empty
	// slice on any remote failure.
	List(ctx context.Context, prefix string) ([]json.RawMessage, error)
}
