package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/secrets-server/internal/model"
)

var principalCols = []string{
	"id", "email", "credential", "provider", "provider_profile_id",
	"name", "note_key", "created_at", "updated_at",
}

func newMock(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		mock.Close()
	})
	return mock
}

func TestPrincipalRepository_GetByEmail(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()
	now := time.Now().UTC().Truncate(time.Second)

	tests := map[string]struct {
		setup   func(mock pgxmock.PgxPoolIface)
		wantErr error
	}{
		"found": {
			setup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(`FROM principals WHERE email = \$1 AND provider = 'local'`).
					WithArgs("a@example.com").
					WillReturnRows(pgxmock.NewRows(principalCols).
						AddRow(id, "a@example.com", "hash", model.ProviderLocal, "", "", nil, now, now))
			},
		},
		"not found": {
			setup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(`FROM principals WHERE email = \$1`).
					WithArgs("a@example.com").
					WillReturnError(pgx.ErrNoRows)
			},
			wantErr: model.ErrNotFound,
		},
		"connection failure": {
			setup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(`FROM principals WHERE email = \$1`).
					WithArgs("a@example.com").
					WillReturnError(errors.New("connection refused"))
			},
			wantErr: model.ErrStoreUnavailable,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			mock := newMock(t)
			tt.setup(mock)

			got, err := NewPrincipalRepository(mock).GetByEmail(ctx, "a@example.com")
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, id, got.ID)
			assert.Equal(t, "hash", got.Credential)
			assert.True(t, got.IsLocal())
			assert.Nil(t, got.NoteKey)
		})
	}
}

func TestPrincipalRepository_GetByProviderID(t *testing.T) {
	mock := newMock(t)
	id := uuid.New()
	now := time.Now().UTC()

	mock.ExpectQuery(`FROM principals WHERE provider = \$1 AND provider_profile_id = \$2`).
		WithArgs("github", "42").
		WillReturnRows(pgxmock.NewRows(principalCols).
			AddRow(id, model.MissingProfileField, "", "github", "42", "octocat", nil, now, now))

	got, err := NewPrincipalRepository(mock).GetByProviderID(context.Background(), "github", "42")
	require.NoError(t, err)
	assert.Equal(t, id, got.ID)
	assert.Equal(t, "octocat", got.Name)
	assert.Equal(t, model.MissingProfileField, got.Email)
	assert.False(t, got.IsLocal())
}

func TestPrincipalRepository_GetByID(t *testing.T) {
	mock := newMock(t)
	id := uuid.New()
	now := time.Now().UTC()
	key := "secrets/" + id.String()

	mock.ExpectQuery(`FROM principals WHERE id = \$1`).
		WithArgs(id).
		WillReturnRows(pgxmock.NewRows(principalCols).
			AddRow(id, "a@example.com", "hash", model.ProviderLocal, "", "", &key, now, now))

	got, err := NewPrincipalRepository(mock).GetByID(context.Background(), id)
	require.NoError(t, err)
	require.NotNil(t, got.NoteKey)
	assert.Equal(t, key, *got.NoteKey)
}

func TestPrincipalRepository_Create(t *testing.T) {
	ctx := context.Background()
	now := time.Now().UTC()
	p := model.Principal{
		ID:         uuid.New(),
		Email:      "a@example.com",
		Credential: "hash",
		Provider:   model.ProviderLocal,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	t.Run("success", func(t *testing.T) {
		mock := newMock(t)
		mock.ExpectQuery(`INSERT INTO principals`).
			WithArgs(p.ID, p.Email, p.Credential, p.Provider, "", "", p.NoteKey, now, now).
			WillReturnRows(pgxmock.NewRows(principalCols).
				AddRow(p.ID, p.Email, p.Credential, p.Provider, "", "", nil, now, now))

		saved, err := NewPrincipalRepository(mock).Create(ctx, p)
		require.NoError(t, err)
		assert.Equal(t, p.ID, saved.ID)
	})

	t.Run("unique violation", func(t *testing.T) {
		mock := newMock(t)
		mock.ExpectQuery(`INSERT INTO principals`).
			WithArgs(p.ID, p.Email, p.Credential, p.Provider, "", "", p.NoteKey, now, now).
			WillReturnError(&pgconn.PgError{Code: uniqueViolation})

		_, err := NewPrincipalRepository(mock).Create(ctx, p)
		require.ErrorIs(t, err, model.ErrDuplicate)
	})

	t.Run("other constraint", func(t *testing.T) {
		mock := newMock(t)
		mock.ExpectQuery(`INSERT INTO principals`).
			WithArgs(p.ID, p.Email, p.Credential, p.Provider, "", "", p.NoteKey, now, now).
			WillReturnError(&pgconn.PgError{Code: "23514"})

		_, err := NewPrincipalRepository(mock).Create(ctx, p)
		require.Error(t, err)
		assert.NotErrorIs(t, err, model.ErrDuplicate)
		assert.NotErrorIs(t, err, model.ErrStoreUnavailable)
	})
}

func TestPrincipalRepository_Save(t *testing.T) {
	ctx := context.Background()
	key := "secrets/x"
	p := model.Principal{ID: uuid.New(), Name: "n", NoteKey: &key, UpdatedAt: time.Now()}

	t.Run("updated", func(t *testing.T) {
		mock := newMock(t)
		mock.ExpectExec(`UPDATE principals SET name = \$2, note_key = \$3, updated_at = \$4`).
			WithArgs(p.ID, p.Name, p.NoteKey, p.UpdatedAt).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		require.NoError(t, NewPrincipalRepository(mock).Save(ctx, p))
	})

	t.Run("missing row", func(t *testing.T) {
		mock := newMock(t)
		mock.ExpectExec(`UPDATE principals`).
			WithArgs(p.ID, p.Name, p.NoteKey, p.UpdatedAt).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))

		require.ErrorIs(t, NewPrincipalRepository(mock).Save(ctx, p), model.ErrNotFound)
	})
}

func TestPrincipalRepository_ListWithNotes(t *testing.T) {
	mock := newMock(t)
	now := time.Now().UTC()
	k1, k2 := "secrets/1", "secrets/2"

	mock.ExpectQuery(`WHERE note_key IS NOT NULL`).
		WillReturnRows(pgxmock.NewRows(principalCols).
			AddRow(uuid.New(), "a@example.com", "h", model.ProviderLocal, "", "", &k1, now, now).
			AddRow(uuid.New(), "None", "", "google", "g-1", "G", &k2, now, now))

	got, err := NewPrincipalRepository(mock).ListWithNotes(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, k1, *got[0].NoteKey)
	assert.Equal(t, "google", got[1].Provider)
}
