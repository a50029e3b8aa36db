// Package repository defines the shot aggregate store interface and errors.
package repository

import (
	"context"

	"github.com/okian/halfcourt/internal/domain/model"
	"github.com/okian/halfcourt/internal/domain/types"
)

// Store accumulates group-wise shot aggregates.
type Store interface {
	// Record folds one transformed shot into its (season, event type) group.
	Record(ctx context.Context, s model.TransformedShot) error

	// Group returns the aggregate for one (season, event type) group.
	// Returns ErrGroupNotFound if no shot was recorded for it.
	Group(ctx context.Context, season, eventType string) (types.GroupStat, error)

	// Groups returns the full summary table ordered by season then event type.
	Groups(ctx context.Context) ([]types.GroupStat, error)

	// Count returns the number of shots recorded.
	Count(ctx context.Context) int
}
