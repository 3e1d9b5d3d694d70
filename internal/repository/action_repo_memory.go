package repository

import (
	"context"
	"sync"

	"github.com/rohanb712/ecotrack/internal/model"
)

type memoryActionRepository struct {
	mu      sync.Mutex
	actions []model.Action
}

// NewMemoryActionRepository returns an ActionRepository keeping the
// collection in memory. It honors the same contract as the file-backed
// implementation and exists for tests and dependency substitution.
func NewMemoryActionRepository() ActionRepository {
	return &memoryActionRepository{actions: []model.Action{}}
}

func (r *memoryActionRepository) GetAll(ctx context.Context) ([]model.Action, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]model.Action, len(r.actions))
	copy(out, r.actions)
	return out, nil
}

func (r *memoryActionRepository) GetByID(ctx context.Context, id int) (*model.Action, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, a := range r.actions {
		if a.ID == id {
			return &a, nil
		}
	}
	return nil, nil
}

func (r *memoryActionRepository) Create(ctx context.Context, action model.Action) (*model.Action, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	action.ID = nextID(r.actions)
	r.actions = append(r.actions, action)
	return &action, nil
}

func (r *memoryActionRepository) Update(ctx context.Context, id int, action model.Action) (*model.Action, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, a := range r.actions {
		if a.ID == id {
			action.ID = id
			r.actions[i] = action
			return &action, nil
		}
	}
	return nil, nil
}

func (r *memoryActionRepository) Delete(ctx context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	kept := r.actions[:0]
	for _, a := range r.actions {
		if a.ID != id {
			kept = append(kept, a)
		}
	}
	r.actions = kept
	return nil
}
