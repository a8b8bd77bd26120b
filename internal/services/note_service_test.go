package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (f *serviceFixture) noteService() NoteService {
	return NewNoteService(f.repo, f.logger, f.validator)
}

func TestNoteService_CreateStampsUploader(t *testing.T) {
	ctx := context.Background()
	f := newServiceFixture(t)
	svc := f.noteService()

	created, err := svc.Create(ctx, &CreateNoteRequest{
		Title: "Thermodynamics", Subject: "Physics", Content: "Laws of energy", ClassID: "c1", Date: "2025-01-20",
	}, f.actor(t, "u2"))
	require.NoError(t, err)
	assert.Equal(t, "u2", created.UploadedBy)

	notes, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, notes, 5) // 4 seed notes + 1
}

func TestNoteService_StudentCannotManage(t *testing.T) {
	ctx := context.Background()
	f := newServiceFixture(t)
	svc := f.noteService()
	student := f.actor(t, "u3")

	_, err := svc.Create(ctx, &CreateNoteRequest{
		Title: "My notes", Subject: "Math", Content: "x", ClassID: "c1", Date: "2025-01-20",
	}, student)
	assert.ErrorIs(t, err, ErrForbidden)

	assert.ErrorIs(t, svc.Delete(ctx, "n1", student), ErrForbidden)
}

func TestNoteService_ListByClass(t *testing.T) {
	ctx := context.Background()
	f := newServiceFixture(t)
	svc := f.noteService()
	teacher := f.actor(t, "u2")

	_, err := svc.Create(ctx, &CreateNoteRequest{
		Title: "Organic Chemistry", Subject: "Chemistry", Content: "Hydrocarbons", ClassID: "c2", Date: "2025-01-20",
	}, teacher)
	require.NoError(t, err)

	c1, err := svc.ListByClass(ctx, "c1")
	require.NoError(t, err)
	assert.Len(t, c1, 4) // all seed notes belong to c1

	c2, err := svc.ListByClass(ctx, "c2")
	require.NoError(t, err)
	require.Len(t, c2, 1)
	assert.Equal(t, "Organic Chemistry", c2[0].Title)
}

func TestNoteService_Delete(t *testing.T) {
	ctx := context.Background()
	f := newServiceFixture(t)
	svc := f.noteService()
	teacher := f.actor(t, "u2")

	require.NoError(t, svc.Delete(ctx, "n1", teacher))
	assert.ErrorIs(t, svc.Delete(ctx, "n1", teacher), ErrNoteNotFound)

	notes, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, notes, 3)
}
