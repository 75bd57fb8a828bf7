package dto

import (
	"github.com/yigit/coursehub/internal/app/models"
)

// CreateCourseRequest is the payload for course creation. UserID is accepted
// on the wire but ignored: ownership always comes from the authenticated
// principal.
type CreateCourseRequest struct {
	Title           string  `json:"title"`
	Description     string  `json:"description"`
	EstimatedTime   *string `json:"estimatedTime"`
	MaterialsNeeded *string `json:"materialsNeeded"`
	UserID          int64   `json:"userId"`
}

// UpdateCourseRequest is the payload for course updates. The supplied fields
// unconditionally overwrite the stored record; userId is never updated.
type UpdateCourseRequest struct {
	Title           string  `json:"title"`
	Description     string  `json:"description"`
	EstimatedTime   *string `json:"estimatedTime"`
	MaterialsNeeded *string `json:"materialsNeeded"`
	UserID          int64   `json:"userId"`
}

// CourseResponse is the course representation without timestamps
type CourseResponse struct {
	ID              int64   `json:"id"`
	Title           string  `json:"title"`
	Description     string  `json:"description"`
	EstimatedTime   *string `json:"estimatedTime"`
	MaterialsNeeded *string `json:"materialsNeeded"`
	UserID          int64   `json:"userId"`
}

// NewCourseResponse maps a course model to its wire representation
func NewCourseResponse(course *models.Course) CourseResponse {
	return CourseResponse{
		ID:              course.ID,
		Title:           course.Title,
		Description:     course.Description,
		EstimatedTime:   course.EstimatedTime,
		MaterialsNeeded: course.MaterialsNeeded,
		UserID:          course.UserID,
	}
}

// CourseWithOwnerResponse pairs a course with its resolved owner. The owner
// is always the reduced user representation, so password and timestamps are
// never embedded.
type CourseWithOwnerResponse struct {
	Course CourseResponse `json:"course"`
	User   UserResponse   `json:"user"`
}

// NewCourseWithOwnerResponse maps a course and its populated Owner relation
func NewCourseWithOwnerResponse(course *models.Course) CourseWithOwnerResponse {
	resp := CourseWithOwnerResponse{
		Course: NewCourseResponse(course),
	}
	if course.Owner != nil {
		resp.User = NewUserResponse(course.Owner)
	}
	return resp
}
