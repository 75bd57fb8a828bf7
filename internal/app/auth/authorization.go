package auth

import (
	"context"

	"github.com/yigit/coursehub/internal/pkg/apperrors"
)

// CourseOwnerStore is the slice of the course store the guard needs: the
// persisted owner id of a course, or apperrors.ErrCourseNotFound.
type CourseOwnerStore interface {
	GetOwnerID(ctx context.Context, courseID int64) (int64, error)
}

// AuthorizationService decides whether an authenticated user may mutate a
// course. Ownership is the sole predicate, and it is always evaluated against
// the record as it exists in storage.
type AuthorizationService struct {
	courses CourseOwnerStore
}

// NewAuthorizationService creates a new AuthorizationService
func NewAuthorizationService(courses CourseOwnerStore) *AuthorizationService {
	return &AuthorizationService{
		courses: courses,
	}
}

// CanModifyCourse checks if the user owns the course. Existence is checked
// before ownership: a missing course yields apperrors.ErrCourseNotFound, not
// a denial.
func (s *AuthorizationService) CanModifyCourse(ctx context.Context, courseID, userID int64) (bool, error) {
	ownerID, err := s.courses.GetOwnerID(ctx, courseID)
	if err != nil {
		return false, err
	}

	return ownerID == userID, nil
}

// ValidateCourseOwnership validates that the user owns the course or returns
// an error: apperrors.ErrCourseNotFound if the course does not exist,
// apperrors.ErrPermissionDenied if it is owned by someone else.
func (s *AuthorizationService) ValidateCourseOwnership(ctx context.Context, courseID, userID int64) error {
	canModify, err := s.CanModifyCourse(ctx, courseID, userID)
	if err != nil {
		return err
	}

	if !canModify {
		return apperrors.ErrPermissionDenied
	}

	return nil
}
