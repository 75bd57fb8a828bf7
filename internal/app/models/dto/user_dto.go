package dto

import (
	"time"

	"github.com/yigit/coursehub/internal/app/models"
)

// CreateUserRequest is the payload for user signup
type CreateUserRequest struct {
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	EmailAddress string `json:"emailAddress"`
	Password     string `json:"password"`
}

// UserResponse is the reduced user representation: no password, no timestamps.
// Used for the user listing, the authenticated caller's own record, and
// course owner embedding.
type UserResponse struct {
	ID           int64  `json:"id"`
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	EmailAddress string `json:"emailAddress"`
}

// NewUserResponse maps a user model to its reduced representation
func NewUserResponse(user *models.User) UserResponse {
	return UserResponse{
		ID:           user.ID,
		FirstName:    user.FirstName,
		LastName:     user.LastName,
		EmailAddress: user.Email,
	}
}

// UserDetailResponse is the full record returned by GET /users/{id}. It
// deliberately includes the stored password hash: the original API leaked it
// and the behavior is preserved as a known gap until a directive says
// otherwise.
type UserDetailResponse struct {
	ID           int64     `json:"id"`
	FirstName    string    `json:"firstName"`
	LastName     string    `json:"lastName"`
	EmailAddress string    `json:"emailAddress"`
	Password     string    `json:"password"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// NewUserDetailResponse maps a user model to the full representation
func NewUserDetailResponse(user *models.User) UserDetailResponse {
	return UserDetailResponse{
		ID:           user.ID,
		FirstName:    user.FirstName,
		LastName:     user.LastName,
		EmailAddress: user.Email,
		Password:     user.Password,
		CreatedAt:    user.CreatedAt,
		UpdatedAt:    user.UpdatedAt,
	}
}
