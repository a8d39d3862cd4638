package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	servermocks "github.com/dtroode/secrets-server/internal/mocks"
	"github.com/dtroode/secrets-server/internal/model"
	"github.com/dtroode/secrets-server/internal/testutil"
)

func TestNotes_SubmitAndGet(t *testing.T) {
	ctx := context.Background()
	principals := newMemoryPrincipals()
	blobs := servermocks.NewBlobStore(t)
	p, err := principals.Create(ctx, model.Principal{ID: uuid.New(), Email: "a@example.com", Provider: model.ProviderLocal})
	require.NoError(t, err)

	key := "secrets/" + p.ID.String()
	blobs.On("Put", mock.Anything, key, []byte("my secret")).Return(nil)
	blobs.On("Get", mock.Anything, key).Return([]byte("my secret"), nil)

	n := NewNotes(principals, blobs, testutil.MakeNoopLogger())
	require.NoError(t, n.Submit(ctx, p.ID, "my secret"))

	stored, err := principals.GetByID(ctx, p.ID)
	require.NoError(t, err)
	require.NotNil(t, stored.NoteKey)
	assert.Equal(t, key, *stored.NoteKey)

	note, err := n.Get(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "my secret", note.Content)

	notes, err := n.List(ctx)
	require.NoError(t, err)
	require.Len(t, notes, 1)
	assert.Equal(t, p.ID, notes[0].PrincipalID)
}

func TestNotes_SubmitEmpty(t *testing.T) {
	n := NewNotes(servermocks.NewPrincipalStore(t), servermocks.NewBlobStore(t), testutil.MakeNoopLogger())
	require.ErrorIs(t, n.Submit(context.Background(), uuid.New(), "  "), model.ErrInvalidInput)
}

func TestNotes_GetWithoutNote(t *testing.T) {
	ctx := context.Background()
	principals := servermocks.NewPrincipalStore(t)
	id := uuid.New()
	principals.On("GetByID", mock.Anything, id).Return(model.Principal{ID: id}, nil)

	n := NewNotes(principals, servermocks.NewBlobStore(t), testutil.MakeNoopLogger())
	_, err := n.Get(ctx, id)
	require.ErrorIs(t, err, model.ErrNotFound)
}

func TestNotes_ListSkipsMissingBlobs(t *testing.T) {
	ctx := context.Background()
	principals := servermocks.NewPrincipalStore(t)
	blobs := servermocks.NewBlobStore(t)
	k1, k2 := "secrets/1", "secrets/2"
	principals.On("ListWithNotes", mock.Anything).Return([]model.Principal{
		{ID: uuid.New(), NoteKey: &k1},
		{ID: uuid.New(), NoteKey: &k2},
	}, nil)
	blobs.On("Get", mock.Anything, k1).Return(nil, model.ErrNotFound)
	blobs.On("Get", mock.Anything, k2).Return([]byte("two"), nil)

	n := NewNotes(principals, blobs, testutil.MakeNoopLogger())
	notes, err := n.List(ctx)
	require.NoError(t, err)
	require.Len(t, notes, 1)
	assert.Equal(t, "two", notes[0].Content)
}

func TestNotes_SubmitUploadFailure(t *testing.T) {
	ctx := context.Background()
	principals := servermocks.NewPrincipalStore(t)
	blobs := servermocks.NewBlobStore(t)
	id := uuid.New()
	principals.On("GetByID", mock.Anything, id).Return(model.Principal{ID: id}, nil)
	blobs.On("Put", mock.Anything, mock.Anything, mock.Anything).Return(model.ErrStoreUnavailable)

	n := NewNotes(principals, blobs, testutil.MakeNoopLogger())
	require.ErrorIs(t, n.Submit(ctx, id, "x"), model.ErrStoreUnavailable)
}

func TestNotes_Delete(t *testing.T) {
	ctx := context.Background()
	principals := newMemoryPrincipals()
	blobs := servermocks.NewBlobStore(t)
	p, err := principals.Create(ctx, model.Principal{ID: uuid.New(), Email: "a@example.com", Provider: model.ProviderLocal})
	require.NoError(t, err)

	key := "secrets/" + p.ID.String()
	blobs.On("Put", mock.Anything, key, []byte("my secret")).Return(nil)
	blobs.On("Delete", mock.Anything, key).Return(nil).Once()

	n := NewNotes(principals, blobs, testutil.MakeNoopLogger())
	require.NoError(t, n.Submit(ctx, p.ID, "my secret"))
	require.NoError(t, n.Delete(ctx, p.ID))

	stored, err := principals.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Nil(t, stored.NoteKey)

	_, err = n.Get(ctx, p.ID)
	require.ErrorIs(t, err, model.ErrNotFound)

	notes, err := n.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, notes)

	require.ErrorIs(t, n.Delete(ctx, p.ID), model.ErrNotFound)
}

func TestNotes_DeleteBlobFailure(t *testing.T) {
	ctx := context.Background()
	principals := newMemoryPrincipals()
	blobs := servermocks.NewBlobStore(t)
	key := "secrets/1"
	p, err := principals.Create(ctx, model.Principal{ID: uuid.New(), Email: "a@example.com", Provider: model.ProviderLocal, NoteKey: &key})
	require.NoError(t, err)
	blobs.On("Delete", mock.Anything, key).Return(model.ErrStoreUnavailable)

	n := NewNotes(principals, blobs, testutil.MakeNoopLogger())
	require.NoError(t, n.Delete(ctx, p.ID))

	stored, err := principals.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Nil(t, stored.NoteKey)
}

func TestNotes_DeleteSaveFailure(t *testing.T) {
	ctx := context.Background()
	principals := servermocks.NewPrincipalStore(t)
	id := uuid.New()
	key := "secrets/" + id.String()
	principals.On("GetByID", mock.Anything, id).Return(model.Principal{ID: id, NoteKey: &key}, nil)
	principals.On("Save", mock.Anything, mock.Anything).Return(model.ErrStoreUnavailable)

	n := NewNotes(principals, servermocks.NewBlobStore(t), testutil.MakeNoopLogger())
	require.ErrorIs(t, n.Delete(ctx, id), model.ErrStoreUnavailable)
}
