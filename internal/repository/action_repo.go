package repository

import (
	"context"

	"github.com/rohanb712/ecotrack/internal/model"
)

// ActionRepository owns persistence of the full action collection.
// Update returns nil (not an error) when no record matches the id, and
// Delete succeeds regardless of prior existence.
type ActionRepository interface {
	GetAll(ctx context.Context) ([]model.Action, error)
	GetByID(ctx context.Context, id int) (*model.Action, error)
	Create(ctx context.Context, action model.Action) (*model.Action, error)
	Update(ctx context.Context, id int, action model.Action) (*model.Action, error)
	Delete(ctx context.Context, id int) error
}

func nextID(actions []model.Action) int {
	maxID := 0
	for _, a := range actions {
		if a.ID > maxID {
			maxID = a.ID
		}
	}
	return maxID + 1
}
