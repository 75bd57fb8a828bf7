package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/coursehub/internal/pkg/apperrors"
)

// fakeOwnerStore serves owner ids from a fixed map, anything else is missing.
type fakeOwnerStore struct {
	owners map[int64]int64
}

func (s *fakeOwnerStore) GetOwnerID(_ context.Context, courseID int64) (int64, error) {
	ownerID, ok := s.owners[courseID]
	if !ok {
		return 0, apperrors.ErrCourseNotFound
	}
	return ownerID, nil
}

func TestCanModifyCourse(t *testing.T) {
	svc := NewAuthorizationService(&fakeOwnerStore{owners: map[int64]int64{1: 10}})

	t.Run("owner can modify", func(t *testing.T) {
		ok, err := svc.CanModifyCourse(context.Background(), 1, 10)
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("non-owner cannot modify", func(t *testing.T) {
		ok, err := svc.CanModifyCourse(context.Background(), 1, 20)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("missing course reports not found before ownership", func(t *testing.T) {
		_, err := svc.CanModifyCourse(context.Background(), 99, 10)
		assert.ErrorIs(t, err, apperrors.ErrCourseNotFound)
	})
}

func TestValidateCourseOwnership(t *testing.T) {
	svc := NewAuthorizationService(&fakeOwnerStore{owners: map[int64]int64{1: 10}})

	t.Run("owner passes", func(t *testing.T) {
		assert.NoError(t, svc.ValidateCourseOwnership(context.Background(), 1, 10))
	})

	t.Run("non-owner is denied", func(t *testing.T) {
		err := svc.ValidateCourseOwnership(context.Background(), 1, 20)
		assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
	})

	t.Run("missing course is not found, not denied", func(t *testing.T) {
		err := svc.ValidateCourseOwnership(context.Background(), 99, 20)
		assert.ErrorIs(t, err, apperrors.ErrCourseNotFound)
		assert.NotErrorIs(t, err, apperrors.ErrPermissionDenied)
	})
}
