package service

import (
	"context"
	"strings"

	"github.com/rohanb712/ecotrack/internal/dto"
	"github.com/rohanb712/ecotrack/internal/model"
	"github.com/rohanb712/ecotrack/internal/repository"
	"github.com/rohanb712/ecotrack/pkg/apperror"
	"github.com/rohanb712/ecotrack/pkg/validator"
)

type ActionService interface {
	List(ctx context.Context) ([]model.Action, error)
	Get(ctx context.Context, id int) (*model.Action, error)
	Create(ctx context.Context, req dto.ActionRequest) (*model.Action, error)
	Replace(ctx context.Context, id int, req dto.ActionRequest) (*model.Action, error)
	Patch(ctx context.Context, id int, req dto.ActionPatchRequest) (*model.Action, error)
	Delete(ctx context.Context, id int) error
}

type actionService struct {
	repo     repository.ActionRepository
	validate *validator.Validator
}

func NewActionService(repo repository.ActionRepository, validate *validator.Validator) ActionService {
	return &actionService{repo: repo, validate: validate}
}

func (s *actionService) List(ctx context.Context) ([]model.Action, error) {
	return s.repo.GetAll(ctx)
}

func (s *actionService) Get(ctx context.Context, id int) (*model.Action, error) {
	action, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if action == nil {
		return nil, apperror.ErrNotFound
	}
	return action, nil
}

func (s *actionService) Create(ctx context.Context, req dto.ActionRequest) (*model.Action, error) {
	if err := s.validate.ValidateStruct(req); err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, toModel(req))
}

// Replace rewrites every field of an existing record. The existence check
// comes before validation, so an unknown id never reports field errors.
func (s *actionService) Replace(ctx context.Context, id int, req dto.ActionRequest) (*model.Action, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, apperror.ErrNotFound
	}

	if err := s.validate.ValidateStruct(req); err != nil {
		return nil, err
	}

	updated, err := s.repo.Update(ctx, id, toModel(req))
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, apperror.ErrNotFound
	}
	return updated, nil
}

// Patch overlays the supplied fields onto the existing record. Only the
// supplied fields are validated; the rest keep their stored values.
func (s *actionService) Patch(ctx context.Context, id int, req dto.ActionPatchRequest) (*model.Action, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, apperror.ErrNotFound
	}

	if err := s.validate.ValidateStruct(req); err != nil {
		return nil, err
	}

	merged := *existing
	if req.Action != nil {
		merged.Action = strings.TrimSpace(*req.Action)
	}
	if req.Date != nil {
		merged.Date = *req.Date
	}
	if req.Points != nil {
		merged.Points = *req.Points
	}

	updated, err := s.repo.Update(ctx, id, merged)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, apperror.ErrNotFound
	}
	return updated, nil
}

// Delete is idempotent: removing an id that is already gone still succeeds.
func (s *actionService) Delete(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}

func toModel(req dto.ActionRequest) model.Action {
	return model.Action{
		Action: strings.TrimSpace(*req.Action),
		Date:   *req.Date,
		Points: *req.Points,
	}
}
