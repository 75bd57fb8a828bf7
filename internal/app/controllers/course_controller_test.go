package controllers_test

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListCourses(t *testing.T) {
	env := newTestEnv()
	joe := env.seedUser(t, "Joe", "Smith", "joe@smith.com", "joepassword")
	sally := env.seedUser(t, "Sally", "Jones", "sally@jones.com", "sallypassword")
	env.seedCourse(t, "Build a Basic Bookcase", "High-end furniture projects.", joe.ID)
	env.seedCourse(t, "Learn How to Program", "Learn how to write code.", sally.ID)

	w := env.do(t, http.MethodGet, "/courses", nil, "")

	require.Equal(t, http.StatusOK, w.Code)
	var resp []struct {
		Course map[string]any `json:"course"`
		User   map[string]any `json:"user"`
	}
	decodeJSON(t, w, &resp)
	require.Len(t, resp, 2)

	assert.Equal(t, "Build a Basic Bookcase", resp[0].Course["title"])
	assert.Equal(t, "joe@smith.com", resp[0].User["emailAddress"])
	assert.Equal(t, "sally@jones.com", resp[1].User["emailAddress"])

	// Owners are always embedded reduced.
	assert.NotContains(t, w.Body.String(), "password")
	assert.NotContains(t, resp[0].Course, "createdAt")
}

func TestGetCourseByID(t *testing.T) {
	env := newTestEnv()
	joe := env.seedUser(t, "Joe", "Smith", "joe@smith.com", "joepassword")
	course := env.seedCourse(t, "Build a Basic Bookcase", "High-end furniture projects.", joe.ID)

	t.Run("returns the course with its owner embedded", func(t *testing.T) {
		w := env.do(t, http.MethodGet, fmt.Sprintf("/courses/%d", course.ID), nil, "")

		require.Equal(t, http.StatusOK, w.Code)
		var resp struct {
			Course map[string]any `json:"course"`
			User   map[string]any `json:"user"`
		}
		decodeJSON(t, w, &resp)
		assert.Equal(t, "Build a Basic Bookcase", resp.Course["title"])
		assert.Equal(t, float64(joe.ID), resp.Course["userId"])
		assert.Equal(t, "joe@smith.com", resp.User["emailAddress"])
		assert.NotContains(t, resp.User, "password")
	})

	t.Run("unknown id is 404", func(t *testing.T) {
		w := env.do(t, http.MethodGet, "/courses/99", nil, "")

		require.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"msg":"That course was not found."}`, w.Body.String())
	})

	t.Run("non-numeric id is 400", func(t *testing.T) {
		w := env.do(t, http.MethodGet, "/courses/abc", nil, "")

		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"errors":["Course ID must be a valid number."]}`, w.Body.String())
	})
}

func TestCreateCourse(t *testing.T) {
	payload := map[string]any{
		"title":       "Build a Basic Bookcase",
		"description": "High-end furniture projects.",
	}

	t.Run("requires authentication", func(t *testing.T) {
		env := newTestEnv()
		env.seedUser(t, "Joe", "Smith", "joe@smith.com", "joepassword")

		w := env.do(t, http.MethodPost, "/courses", payload, "")
		require.Equal(t, http.StatusUnauthorized, w.Code)
		assert.JSONEq(t, `{"message":"Access Denied"}`, w.Body.String())
	})

	t.Run("auth failures are indistinguishable regardless of cause", func(t *testing.T) {
		env := newTestEnv()
		env.seedUser(t, "Joe", "Smith", "joe@smith.com", "joepassword")

		unknownEmail := env.do(t, http.MethodPost, "/courses", payload, basicHeader("nobody@smith.com", "joepassword"))
		wrongPassword := env.do(t, http.MethodPost, "/courses", payload, basicHeader("joe@smith.com", "wrongpassword"))

		assert.Equal(t, http.StatusUnauthorized, unknownEmail.Code)
		assert.Equal(t, http.StatusUnauthorized, wrongPassword.Code)
		assert.Equal(t, unknownEmail.Body.String(), wrongPassword.Body.String())
	})

	t.Run("the principal owns the course even when the body claims otherwise", func(t *testing.T) {
		env := newTestEnv()
		joe := env.seedUser(t, "Joe", "Smith", "joe@smith.com", "joepassword")
		sally := env.seedUser(t, "Sally", "Jones", "sally@jones.com", "sallypassword")

		body := map[string]any{
			"title":         "Build a Basic Bookcase",
			"description":   "High-end furniture projects.",
			"estimatedTime": "12 hours",
			"userId":        sally.ID,
		}
		w := env.do(t, http.MethodPost, "/courses", body, basicHeader("joe@smith.com", "joepassword"))

		require.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, "/courses/1", w.Header().Get("Location"))
		assert.Empty(t, w.Body.String())

		stored, err := env.courses.GetByID(context.Background(), 1)
		require.NoError(t, err)
		assert.Equal(t, joe.ID, stored.UserID)
		require.NotNil(t, stored.EstimatedTime)
		assert.Equal(t, "12 hours", *stored.EstimatedTime)
	})

	t.Run("missing title and description report together in order", func(t *testing.T) {
		env := newTestEnv()
		env.seedUser(t, "Joe", "Smith", "joe@smith.com", "joepassword")

		w := env.do(t, http.MethodPost, "/courses", map[string]any{}, basicHeader("joe@smith.com", "joepassword"))

		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"errors":["Please enter a title for the course.","Please enter a description for the course."]}`, w.Body.String())
	})
}

func TestUpdateCourse(t *testing.T) {
	update := map[string]any{
		"title":       "Build a Better Bookcase",
		"description": "Even higher-end furniture projects.",
	}

	t.Run("requires authentication", func(t *testing.T) {
		env := newTestEnv()
		joe := env.seedUser(t, "Joe", "Smith", "joe@smith.com", "joepassword")
		env.seedCourse(t, "Build a Basic Bookcase", "High-end furniture projects.", joe.ID)

		w := env.do(t, http.MethodPut, "/courses/1", update, "")
		require.Equal(t, http.StatusUnauthorized, w.Code)
		assert.JSONEq(t, `{"message":"Access Denied"}`, w.Body.String())
	})

	t.Run("owner update succeeds and never moves ownership", func(t *testing.T) {
		env := newTestEnv()
		joe := env.seedUser(t, "Joe", "Smith", "joe@smith.com", "joepassword")
		sally := env.seedUser(t, "Sally", "Jones", "sally@jones.com", "sallypassword")
		course := env.seedCourse(t, "Build a Basic Bookcase", "High-end furniture projects.", joe.ID)

		body := map[string]any{
			"title":       "Build a Better Bookcase",
			"description": "Even higher-end furniture projects.",
			"userId":      sally.ID,
		}
		w := env.do(t, http.MethodPut, fmt.Sprintf("/courses/%d", course.ID), body, basicHeader("joe@smith.com", "joepassword"))

		require.Equal(t, http.StatusNoContent, w.Code)

		stored, err := env.courses.GetByID(context.Background(), course.ID)
		require.NoError(t, err)
		assert.Equal(t, "Build a Better Bookcase", stored.Title)
		assert.Equal(t, "Even higher-end furniture projects.", stored.Description)
		assert.Equal(t, joe.ID, stored.UserID)
	})

	t.Run("non-owner gets 403 and the record is unchanged", func(t *testing.T) {
		env := newTestEnv()
		joe := env.seedUser(t, "Joe", "Smith", "joe@smith.com", "joepassword")
		env.seedUser(t, "Sally", "Jones", "sally@jones.com", "sallypassword")
		course := env.seedCourse(t, "Build a Basic Bookcase", "High-end furniture projects.", joe.ID)

		w := env.do(t, http.MethodPut, fmt.Sprintf("/courses/%d", course.ID), update, basicHeader("sally@jones.com", "sallypassword"))

		require.Equal(t, http.StatusForbidden, w.Code)
		assert.JSONEq(t, `{"msg":"You do not own this course!"}`, w.Body.String())

		stored, err := env.courses.GetByID(context.Background(), course.ID)
		require.NoError(t, err)
		assert.Equal(t, "Build a Basic Bookcase", stored.Title)
		assert.Equal(t, "High-end furniture projects.", stored.Description)
	})

	t.Run("missing course is reported as 400", func(t *testing.T) {
		env := newTestEnv()
		env.seedUser(t, "Joe", "Smith", "joe@smith.com", "joepassword")

		w := env.do(t, http.MethodPut, "/courses/99", update, basicHeader("joe@smith.com", "joepassword"))

		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"msg":"Course not found!"}`, w.Body.String())
	})

	t.Run("blanked title and description report together", func(t *testing.T) {
		env := newTestEnv()
		joe := env.seedUser(t, "Joe", "Smith", "joe@smith.com", "joepassword")
		course := env.seedCourse(t, "Build a Basic Bookcase", "High-end furniture projects.", joe.ID)

		w := env.do(t, http.MethodPut, fmt.Sprintf("/courses/%d", course.ID), map[string]any{}, basicHeader("joe@smith.com", "joepassword"))

		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"errors":["Title is required","A description is required"]}`, w.Body.String())

		stored, err := env.courses.GetByID(context.Background(), course.ID)
		require.NoError(t, err)
		assert.Equal(t, "Build a Basic Bookcase", stored.Title)
	})
}

func TestDeleteCourse(t *testing.T) {
	t.Run("requires authentication", func(t *testing.T) {
		env := newTestEnv()
		joe := env.seedUser(t, "Joe", "Smith", "joe@smith.com", "joepassword")
		env.seedCourse(t, "Build a Basic Bookcase", "High-end furniture projects.", joe.ID)

		w := env.do(t, http.MethodDelete, "/courses/1", nil, "")
		require.Equal(t, http.StatusUnauthorized, w.Code)
		assert.JSONEq(t, `{"message":"Access Denied"}`, w.Body.String())
	})

	t.Run("owner delete succeeds", func(t *testing.T) {
		env := newTestEnv()
		joe := env.seedUser(t, "Joe", "Smith", "joe@smith.com", "joepassword")
		course := env.seedCourse(t, "Build a Basic Bookcase", "High-end furniture projects.", joe.ID)

		w := env.do(t, http.MethodDelete, fmt.Sprintf("/courses/%d", course.ID), nil, basicHeader("joe@smith.com", "joepassword"))

		require.Equal(t, http.StatusNoContent, w.Code)
		_, err := env.courses.GetByID(context.Background(), course.ID)
		assert.Error(t, err)
	})

	t.Run("non-owner gets 403 and the course survives", func(t *testing.T) {
		env := newTestEnv()
		joe := env.seedUser(t, "Joe", "Smith", "joe@smith.com", "joepassword")
		env.seedUser(t, "Sally", "Jones", "sally@jones.com", "sallypassword")
		course := env.seedCourse(t, "Build a Basic Bookcase", "High-end furniture projects.", joe.ID)

		w := env.do(t, http.MethodDelete, fmt.Sprintf("/courses/%d", course.ID), nil, basicHeader("sally@jones.com", "sallypassword"))

		require.Equal(t, http.StatusForbidden, w.Code)
		assert.JSONEq(t, `{"msg":"You can't delete a course you don't own!"}`, w.Body.String())

		_, err := env.courses.GetByID(context.Background(), course.ID)
		assert.NoError(t, err)
	})

	t.Run("missing course is 404", func(t *testing.T) {
		env := newTestEnv()
		env.seedUser(t, "Joe", "Smith", "joe@smith.com", "joepassword")

		w := env.do(t, http.MethodDelete, "/courses/99", nil, basicHeader("joe@smith.com", "joepassword"))

		require.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"msg":"That course was not found."}`, w.Body.String())
	})
}
