package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (f *serviceFixture) taskService() TaskService {
	return NewTaskService(f.repo, f.logger, f.validator)
}

func TestTaskService_ListMineIsScoped(t *testing.T) {
	ctx := context.Background()
	f := newServiceFixture(t)
	svc := f.taskService()

	_, err := svc.Create(ctx, &CreateTaskRequest{Title: "Grade essays", DueDate: "2025-02-01"}, f.actor(t, "u2"))
	require.NoError(t, err)
	_, err = svc.Create(ctx, &CreateTaskRequest{Title: "Revise calculus", DueDate: "2025-02-02"}, f.actor(t, "u3"))
	require.NoError(t, err)

	mine, err := svc.ListMine(ctx, f.actor(t, "u3"))
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, "Revise calculus", mine[0].Title)
	assert.Equal(t, "u3", mine[0].AssignedTo)
}

func TestTaskService_UpdateRequiresOwnership(t *testing.T) {
	ctx := context.Background()
	f := newServiceFixture(t)
	svc := f.taskService()

	created, err := svc.Create(ctx, &CreateTaskRequest{Title: "Revise notes", DueDate: "2025-02-01"}, f.actor(t, "u3"))
	require.NoError(t, err)

	completed := true

	// Even admin cannot touch someone else's personal list.
	err = svc.Update(ctx, created.ID, &UpdateTaskRequest{Completed: &completed}, f.actor(t, "u1"))
	assert.ErrorIs(t, err, ErrForbidden)

	require.NoError(t, svc.Update(ctx, created.ID, &UpdateTaskRequest{Completed: &completed}, f.actor(t, "u3")))

	mine, err := svc.ListMine(ctx, f.actor(t, "u3"))
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.True(t, mine[0].Completed)
}

func TestTaskService_DeleteRequiresOwnership(t *testing.T) {
	ctx := context.Background()
	f := newServiceFixture(t)
	svc := f.taskService()

	created, err := svc.Create(ctx, &CreateTaskRequest{Title: "Return library book", DueDate: "2025-02-01"}, f.actor(t, "u3"))
	require.NoError(t, err)

	assert.ErrorIs(t, svc.Delete(ctx, created.ID, f.actor(t, "u4")), ErrForbidden)
	require.NoError(t, svc.Delete(ctx, created.ID, f.actor(t, "u3")))

	mine, err := svc.ListMine(ctx, f.actor(t, "u3"))
	require.NoError(t, err)
	assert.Empty(t, mine)
}

func TestTaskService_UpdateMissingTask(t *testing.T) {
	ctx := context.Background()
	f := newServiceFixture(t)
	svc := f.taskService()

	completed := true
	err := svc.Update(ctx, "missing", &UpdateTaskRequest{Completed: &completed}, f.actor(t, "u3"))
	assert.ErrorIs(t, err, ErrTaskNotFound)
}
