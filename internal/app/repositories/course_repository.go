package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/yigit/coursehub/internal/app/models"
	"github.com/yigit/coursehub/internal/pkg/apperrors"
)

// CourseStore defines the interface for course-related database operations.
// Update enforces the storage-layer constraints on courses (non-empty title
// and description), surfaced as *apperrors.ValidationError, and never writes
// the owning user id.
type CourseStore interface {
	Create(ctx context.Context, course *models.Course) error
	GetByID(ctx context.Context, id int64) (*models.Course, error)
	GetAll(ctx context.Context) ([]*models.Course, error)
	GetOwnerID(ctx context.Context, id int64) (int64, error)
	Update(ctx context.Context, course *models.Course) error
	Delete(ctx context.Context, id int64) error
}

// CourseRepository handles course database operations
type CourseRepository struct {
	db *pgxpool.Pool
}

// NewCourseRepository creates a new CourseRepository
func NewCourseRepository(db *pgxpool.Pool) *CourseRepository {
	return &CourseRepository{
		db: db,
	}
}

// courseWithOwnerQuery joins each course with its owning user so listings can
// embed the owner without a second round trip per course.
const courseWithOwnerQuery = `
	SELECT c.id, c.title, c.description, c.estimated_time, c.materials_needed,
	       c.user_id, c.created_at, c.updated_at,
	       u.id, u.first_name, u.last_name, u.email
	FROM courses c
	JOIN users u ON u.id = c.user_id`

func scanCourseWithOwner(row pgx.Row) (*models.Course, error) {
	course := &models.Course{Owner: &models.User{}}
	err := row.Scan(
		&course.ID, &course.Title, &course.Description, &course.EstimatedTime,
		&course.MaterialsNeeded, &course.UserID, &course.CreatedAt, &course.UpdatedAt,
		&course.Owner.ID, &course.Owner.FirstName, &course.Owner.LastName, &course.Owner.Email)
	if err != nil {
		return nil, err
	}
	return course, nil
}

// Create persists a new course. The owning user id must already be set from
// the authenticated principal.
func (r *CourseRepository) Create(ctx context.Context, course *models.Course) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO courses (title, description, estimated_time, materials_needed, user_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at`,
		course.Title, course.Description, course.EstimatedTime,
		course.MaterialsNeeded, course.UserID).
		Scan(&course.ID, &course.CreatedAt, &course.UpdatedAt)

	if err != nil {
		return fmt.Errorf("error creating course: %w", err)
	}

	return nil
}

// GetByID retrieves a course by ID with its owner populated
func (r *CourseRepository) GetByID(ctx context.Context, id int64) (*models.Course, error) {
	course, err := scanCourseWithOwner(r.db.QueryRow(ctx, courseWithOwnerQuery+` WHERE c.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCourseNotFound
		}
		return nil, fmt.Errorf("error retrieving course: %w", err)
	}

	return course, nil
}

// GetAll retrieves all courses ordered by ID, each with its owner populated
func (r *CourseRepository) GetAll(ctx context.Context) ([]*models.Course, error) {
	rows, err := r.db.Query(ctx, courseWithOwnerQuery+` ORDER BY c.id`)
	if err != nil {
		return nil, fmt.Errorf("error retrieving courses: %w", err)
	}
	defer rows.Close()

	var courses []*models.Course
	for rows.Next() {
		course, err := scanCourseWithOwner(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning course: %w", err)
		}
		courses = append(courses, course)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating courses: %w", err)
	}

	return courses, nil
}

// GetOwnerID retrieves the persisted owning user id for a course. The
// ownership check always runs against this value, never against anything the
// caller supplied.
func (r *CourseRepository) GetOwnerID(ctx context.Context, id int64) (int64, error) {
	var ownerID int64
	err := r.db.QueryRow(ctx, `SELECT user_id FROM courses WHERE id = $1`, id).Scan(&ownerID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, apperrors.ErrCourseNotFound
		}
		return 0, fmt.Errorf("error retrieving course owner: %w", err)
	}

	return ownerID, nil
}

// Update persists the mutable fields of a course. Title and description must
// be non-empty; both violations are reported together. user_id is immutable
// and deliberately absent from the statement.
func (r *CourseRepository) Update(ctx context.Context, course *models.Course) error {
	var messages []string
	if course.Title == "" {
		messages = append(messages, "Title is required")
	}
	if course.Description == "" {
		messages = append(messages, "A description is required")
	}
	if len(messages) > 0 {
		return &apperrors.ValidationError{Messages: messages}
	}

	tag, err := r.db.Exec(ctx, `
		UPDATE courses
		SET title = $1, description = $2, estimated_time = $3,
		    materials_needed = $4, updated_at = NOW()
		WHERE id = $5`,
		course.Title, course.Description, course.EstimatedTime,
		course.MaterialsNeeded, course.ID)

	if err != nil {
		return fmt.Errorf("error updating course: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrCourseNotFound
	}

	return nil
}

// Delete removes a course by ID
func (r *CourseRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM courses WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting course: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrCourseNotFound
	}

	return nil
}
