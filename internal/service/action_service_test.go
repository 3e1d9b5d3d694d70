package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/rohanb712/ecotrack/internal/dto"
	"github.com/rohanb712/ecotrack/internal/model"
	"github.com/rohanb712/ecotrack/internal/repository"
	"github.com/rohanb712/ecotrack/pkg/apperror"
	"github.com/rohanb712/ecotrack/pkg/validator"
)

func newService() ActionService {
	return NewActionService(repository.NewMemoryActionRepository(), validator.New())
}

func strPtr(s string) *string { return &s }
func intPtr(n int) *int       { return &n }

func validRequest() dto.ActionRequest {
	return dto.ActionRequest{
		Action: strPtr("Recycled"),
		Date:   strPtr("2024-01-10"),
		Points: intPtr(10),
	}
}

func TestCreateAssignsIDAndTrimsAction(t *testing.T) {
	svc := newService()

	req := validRequest()
	req.Action = strPtr("  Recycled  ")
	created, err := svc.Create(context.Background(), req)
	require.NoError(t, err)
	require.Equal(t, 1, created.ID)
	require.Equal(t, "Recycled", created.Action)
}

func TestCreateCollectsAllFieldViolations(t *testing.T) {
	svc := newService()

	tomorrow := time.Now().AddDate(0, 0, 1).Format(model.DateLayout)
	_, err := svc.Create(context.Background(), dto.ActionRequest{
		Action: strPtr("   "),
		Date:   strPtr(tomorrow),
		Points: intPtr(-5),
	})

	ve, ok := apperror.AsValidation(err)
	require.True(t, ok)
	require.Equal(t, []string{"Action cannot be empty."}, ve.Fields["action"])
	require.Equal(t, []string{"Date cannot be in the future."}, ve.Fields["date"])
	require.Equal(t, []string{"Points must be a positive integer."}, ve.Fields["points"])
}

func TestCreateMissingFields(t *testing.T) {
	svc := newService()

	_, err := svc.Create(context.Background(), dto.ActionRequest{})

	ve, ok := apperror.AsValidation(err)
	require.True(t, ok)
	for _, field := range []string{"action", "date", "points"} {
		require.Equal(t, []string{"This field is required."}, ve.Fields[field])
	}
}

func TestInvalidCreateLeavesCollectionUnchanged(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	_, err := svc.Create(ctx, validRequest())
	require.NoError(t, err)
	before, err := svc.List(ctx)
	require.NoError(t, err)

	bad := validRequest()
	bad.Points = intPtr(-1)
	_, err = svc.Create(ctx, bad)
	require.Error(t, err)

	after, err := svc.List(ctx)
	require.NoError(t, err)
	require.Equal(t, before, after)
}

func TestGetAbsentReturnsNotFound(t *testing.T) {
	svc := newService()

	_, err := svc.Get(context.Background(), 1)
	require.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestReplaceChecksExistenceBeforeValidation(t *testing.T) {
	svc := newService()

	// Invalid body against an unknown id: not-found wins, no field errors.
	bad := dto.ActionRequest{Action: strPtr(""), Date: strPtr("bogus"), Points: intPtr(-1)}
	_, err := svc.Replace(context.Background(), 42, bad)
	require.ErrorIs(t, err, apperror.ErrNotFound)

	var ve *apperror.ValidationError
	require.False(t, errors.As(err, &ve))
}

func TestReplaceRewritesAllFields(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	created, err := svc.Create(ctx, validRequest())
	require.NoError(t, err)

	updated, err := svc.Replace(ctx, created.ID, dto.ActionRequest{
		Action: strPtr("Composted"),
		Date:   strPtr("2024-02-01"),
		Points: intPtr(7),
	})
	require.NoError(t, err)
	require.Equal(t, created.ID, updated.ID)
	require.Equal(t, "Composted", updated.Action)
	require.Equal(t, "2024-02-01", updated.Date)
	require.Equal(t, 7, updated.Points)
}

func TestPatchMergesOnlySuppliedFields(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	created, err := svc.Create(ctx, validRequest())
	require.NoError(t, err)

	patched, err := svc.Patch(ctx, created.ID, dto.ActionPatchRequest{Points: intPtr(20)})
	require.NoError(t, err)
	require.Equal(t, created.ID, patched.ID)
	require.Equal(t, "Recycled", patched.Action)
	require.Equal(t, "2024-01-10", patched.Date)
	require.Equal(t, 20, patched.Points)
}

func TestPatchValidatesOnlySuppliedFields(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	created, err := svc.Create(ctx, validRequest())
	require.NoError(t, err)

	_, err = svc.Patch(ctx, created.ID, dto.ActionPatchRequest{Action: strPtr("  ")})
	ve, ok := apperror.AsValidation(err)
	require.True(t, ok)
	require.Contains(t, ve.Fields, "action")
	require.NotContains(t, ve.Fields, "date")
	require.NotContains(t, ve.Fields, "points")

	// Failed patch left the record untouched.
	got, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, *created, *got)
}

func TestPatchAbsent(t *testing.T) {
	svc := newService()

	_, err := svc.Patch(context.Background(), 7, dto.ActionPatchRequest{Points: intPtr(1)})
	require.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestDeleteIsIdempotent(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	created, err := svc.Create(ctx, validRequest())
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, created.ID))
	require.NoError(t, svc.Delete(ctx, created.ID))
}

func TestTodayIsNotAFutureDate(t *testing.T) {
	svc := newService()

	req := validRequest()
	req.Date = strPtr(time.Now().Format(model.DateLayout))
	_, err := svc.Create(context.Background(), req)
	require.NoError(t, err)
}
