package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/rohanb712/ecotrack/internal/model"
	"github.com/rohanb712/ecotrack/pkg/logger"
)

type fileActionRepository struct {
	path string
	mu   sync.Mutex
}

// NewFileActionRepository returns a repository persisting the whole
// collection as one JSON array at path. The file is created with an empty
// collection if it does not exist yet.
func NewFileActionRepository(path string) (ActionRepository, error) {
	r := &fileActionRepository{path: path}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := r.save(nil); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// load reads the full collection. A missing or malformed file yields an
// empty collection rather than an error; availability wins over strict
// durability here.
func (r *fileActionRepository) load() []model.Action {
	data, err := os.ReadFile(r.path)
	if err != nil {
		return []model.Action{}
	}

	var actions []model.Action
	if err := json.Unmarshal(data, &actions); err != nil {
		logger.Sugar().Warnw("actions file is malformed, starting from an empty collection",
			"path", r.path, "error", err)
		return []model.Action{}
	}
	if actions == nil {
		actions = []model.Action{}
	}
	return actions
}

func (r *fileActionRepository) save(actions []model.Action) error {
	if actions == nil {
		actions = []model.Action{}
	}
	data, err := json.MarshalIndent(actions, "", "  ")
	if err != nil {
		return fmt.Errorf("encode actions: %w", err)
	}
	if err := os.WriteFile(r.path, data, 0o644); err != nil {
		return fmt.Errorf("write actions file: %w", err)
	}
	return nil
}

func (r *fileActionRepository) GetAll(ctx context.Context) ([]model.Action, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.load(), nil
}

func (r *fileActionRepository) GetByID(ctx context.Context, id int) (*model.Action, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, a := range r.load() {
		if a.ID == id {
			return &a, nil
		}
	}
	return nil, nil
}

func (r *fileActionRepository) Create(ctx context.Context, action model.Action) (*model.Action, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	actions := r.load()
	action.ID = nextID(actions)
	actions = append(actions, action)
	if err := r.save(actions); err != nil {
		return nil, err
	}
	return &action, nil
}

func (r *fileActionRepository) Update(ctx context.Context, id int, action model.Action) (*model.Action, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	actions := r.load()
	for i, a := range actions {
		if a.ID == id {
			action.ID = id
			actions[i] = action
			if err := r.save(actions); err != nil {
				return nil, err
			}
			return &action, nil
		}
	}
	return nil, nil
}

func (r *fileActionRepository) Delete(ctx context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	actions := r.load()
	kept := actions[:0]
	for _, a := range actions {
		if a.ID != id {
			kept = append(kept, a)
		}
	}
	return r.save(kept)
}
