package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taskflow-dev/taskflow/internal/types"
)

func TestUserCreate(t *testing.T) {
	s := NewUserService(setupTestDB(t))

	user, err := s.Create(CreateUserInput{Name: "Alice"})
	require.NoError(t, err)

	assert.NotZero(t, user.ID)
	assert.Equal(t, "Alice", user.Name)
	assert.False(t, user.CreatedAt.IsZero())
}

func TestUserCreateRequiresName(t *testing.T) {
	s := NewUserService(setupTestDB(t))

	_, err := s.Create(CreateUserInput{})

	var validation *ValidationError
	require.ErrorAs(t, err, &validation)
}

func TestUserGetNotFound(t *testing.T) {
	s := NewUserService(setupTestDB(t))

	_, err := s.Get(999)

	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "User with ID 999 not found", err.Error())
}

func TestUserUpdate(t *testing.T) {
	s := NewUserService(setupTestDB(t))

	user, err := s.Create(CreateUserInput{Name: "Alice"})
	require.NoError(t, err)

	name := "Alicia"
	updated, err := s.Update(user.ID, UpdateUserInput{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "Alicia", updated.Name)

	// Empty partial leaves the record unchanged.
	same, err := s.Update(user.ID, UpdateUserInput{})
	require.NoError(t, err)
	assert.Equal(t, "Alicia", same.Name)
}

func TestUserDelete(t *testing.T) {
	s := NewUserService(setupTestDB(t))

	user, err := s.Create(CreateUserInput{Name: "Alice"})
	require.NoError(t, err)

	require.NoError(t, s.Delete(user.ID))

	_, err = s.Get(user.ID)
	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)

	err = s.Delete(user.ID)
	require.ErrorAs(t, err, &notFound)
}

func TestUserDeleteRestrictedWhileDependentsExist(t *testing.T) {
	database := setupTestDB(t)
	s := NewUserService(database)

	user, err := s.Create(CreateUserInput{Name: "Alice"})
	require.NoError(t, err)

	_, err = NewTaskService(database).Create(CreateTaskInput{
		Title:          "Fix bug",
		Assignee:       "Alice",
		Priority:       types.PriorityLow,
		Status:         types.TaskStatusTodo,
		DueDate:        "2025-02-01",
		AssignedUserID: &user.ID,
	})
	require.NoError(t, err)

	err = s.Delete(user.ID)
	var validation *ValidationError
	require.ErrorAs(t, err, &validation)

	// The user is still there.
	_, err = s.Get(user.ID)
	require.NoError(t, err)
}
