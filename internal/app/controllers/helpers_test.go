package controllers_test

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http/httptest"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	appauth "github.com/yigit/coursehub/internal/app/auth"
	"github.com/yigit/coursehub/internal/app/controllers"
	"github.com/yigit/coursehub/internal/app/models"
	"github.com/yigit/coursehub/internal/app/routes"
	"github.com/yigit/coursehub/internal/app/services"
	"github.com/yigit/coursehub/internal/middleware"
	"github.com/yigit/coursehub/internal/pkg/apperrors"
	"github.com/yigit/coursehub/internal/pkg/auth"
	"github.com/yigit/coursehub/internal/pkg/validation"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// memUserStore is an in-memory UserStore honoring the same contract as the
// pgx-backed repository, including the storage-layer validation messages.
type memUserStore struct {
	mu     sync.Mutex
	nextID int64
	users  map[int64]*models.User
}

func newMemUserStore() *memUserStore {
	return &memUserStore{users: make(map[int64]*models.User)}
}

func cloneUser(u *models.User) *models.User {
	c := *u
	return &c
}

func (s *memUserStore) Create(_ context.Context, user *models.User) error {
	if !validation.CompiledPatterns.Email.MatchString(user.Email) {
		return apperrors.NewValidationError("Email is not valid.")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.users {
		if existing.Email == user.Email {
			return apperrors.NewValidationError("That email is already taken!")
		}
	}

	s.nextID++
	user.ID = s.nextID
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	s.users[user.ID] = cloneUser(user)
	return nil
}

func (s *memUserStore) GetByID(_ context.Context, id int64) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[id]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	return cloneUser(user), nil
}

func (s *memUserStore) GetByEmail(_ context.Context, email string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, user := range s.users {
		if user.Email == email {
			return cloneUser(user), nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

func (s *memUserStore) GetAll(_ context.Context) ([]*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	users := make([]*models.User, 0, len(s.users))
	for _, user := range s.users {
		users = append(users, cloneUser(user))
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })
	return users, nil
}

func (s *memUserStore) EmailExists(_ context.Context, email string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, user := range s.users {
		if user.Email == email {
			return true, nil
		}
	}
	return false, nil
}

// memCourseStore is an in-memory CourseStore honoring the same contract as
// the pgx-backed repository: update-time validation messages, immutable
// user_id, owners resolved on read.
type memCourseStore struct {
	mu      sync.Mutex
	nextID  int64
	courses map[int64]*models.Course
	users   *memUserStore
}

func newMemCourseStore(users *memUserStore) *memCourseStore {
	return &memCourseStore{courses: make(map[int64]*models.Course), users: users}
}

func cloneCourse(c *models.Course) *models.Course {
	clone := *c
	clone.Owner = nil
	if c.EstimatedTime != nil {
		v := *c.EstimatedTime
		clone.EstimatedTime = &v
	}
	if c.MaterialsNeeded != nil {
		v := *c.MaterialsNeeded
		clone.MaterialsNeeded = &v
	}
	return &clone
}

func (s *memCourseStore) withOwner(course *models.Course) *models.Course {
	clone := cloneCourse(course)
	if owner, err := s.users.GetByID(context.Background(), course.UserID); err == nil {
		clone.Owner = owner
	}
	return clone
}

func (s *memCourseStore) Create(_ context.Context, course *models.Course) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	course.ID = s.nextID
	course.CreatedAt = time.Now()
	course.UpdatedAt = course.CreatedAt
	s.courses[course.ID] = cloneCourse(course)
	return nil
}

func (s *memCourseStore) GetByID(_ context.Context, id int64) (*models.Course, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	course, ok := s.courses[id]
	if !ok {
		return nil, apperrors.ErrCourseNotFound
	}
	return s.withOwner(course), nil
}

func (s *memCourseStore) GetAll(_ context.Context) ([]*models.Course, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	courses := make([]*models.Course, 0, len(s.courses))
	for _, course := range s.courses {
		courses = append(courses, s.withOwner(course))
	}
	sort.Slice(courses, func(i, j int) bool { return courses[i].ID < courses[j].ID })
	return courses, nil
}

func (s *memCourseStore) GetOwnerID(_ context.Context, id int64) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	course, ok := s.courses[id]
	if !ok {
		return 0, apperrors.ErrCourseNotFound
	}
	return course.UserID, nil
}

func (s *memCourseStore) Update(_ context.Context, course *models.Course) error {
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

	s.mu.Lock()
	defer s.mu.Unlock()

	stored, ok := s.courses[course.ID]
	if !ok {
		return apperrors.ErrCourseNotFound
	}

	updated := cloneCourse(course)
	updated.UserID = stored.UserID
	updated.CreatedAt = stored.CreatedAt
	updated.UpdatedAt = time.Now()
	s.courses[course.ID] = updated
	return nil
}

func (s *memCourseStore) Delete(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.courses[id]; !ok {
		return apperrors.ErrCourseNotFound
	}
	delete(s.courses, id)
	return nil
}

// testEnv wires the in-memory stores through the real services, middleware
// and route table.
type testEnv struct {
	router  *gin.Engine
	users   *memUserStore
	courses *memCourseStore
}

func newTestEnv() *testEnv {
	users := newMemUserStore()
	courses := newMemCourseStore(users)

	authService := services.NewAuthService(users, zerolog.Nop())
	authz := appauth.NewAuthorizationService(courses)
	userService := services.NewUserService(users)
	courseService := services.NewCourseService(courses, authz)

	authMiddleware := middleware.NewAuthMiddleware(authService, zerolog.Nop())
	userController := controllers.NewUserController(userService)
	courseController := controllers.NewCourseController(courseService)

	router := gin.New()
	routes.SetupRouter(router, userController, courseController, authMiddleware)

	return &testEnv{router: router, users: users, courses: courses}
}

// Hashing is expensive, so fixture hashes are computed once per password.
var (
	hashMu    sync.Mutex
	hashCache = map[string]string{}
)

func hashForTest(t *testing.T, password string) string {
	t.Helper()
	hashMu.Lock()
	defer hashMu.Unlock()

	if hash, ok := hashCache[password]; ok {
		return hash
	}
	hash, err := auth.HashPassword(password)
	require.NoError(t, err)
	hashCache[password] = hash
	return hash
}

func (e *testEnv) seedUser(t *testing.T, firstName, lastName, email, password string) *models.User {
	t.Helper()
	user := &models.User{
		FirstName: firstName,
		LastName:  lastName,
		Email:     email,
		Password:  hashForTest(t, password),
	}
	require.NoError(t, e.users.Create(context.Background(), user))
	return user
}

func (e *testEnv) seedCourse(t *testing.T, title, description string, ownerID int64) *models.Course {
	t.Helper()
	course := &models.Course{
		Title:       title,
		Description: description,
		UserID:      ownerID,
	}
	require.NoError(t, e.courses.Create(context.Background(), course))
	return course
}

func basicHeader(email, password string) string {
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(email+":"+password))
}

func (e *testEnv) do(t *testing.T, method, path string, body any, authorization string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func decodeJSON(t *testing.T, w *httptest.ResponseRecorder, out any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}
