// Package session tracks the response-language mode each user selected.
package session

import (
	"context"
	"errors"

	"github.com/bodhs/bodhs-bot/internal/models"
)

// ErrNotFound means the user has no mode selected.
var ErrNotFound = errors.New("session: no mode selected")

// Store is the per-user mode store. Last write wins; there is no cross-key
// invariant. The interface is the seam for swapping the in-process map for
// a shared backend (Redis) in multi-instance deployments.
type Store interface {
	// Get returns the selected mode, or ErrNotFound when unset.
	Get(ctx context.Context, userID string) (models.Language, error)

	// Set records the selected mode for a user.
	Set(ctx context.Context, userID string, language models.Language) error

	// Clear forgets a user's mode selection.
	Clear(ctx context.Context, userID string) error

	// Close releases backend resources.
	Close() error
}
