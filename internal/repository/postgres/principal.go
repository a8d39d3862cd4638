package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/dtroode/secrets-server/internal/model"
)

var _ model.PrincipalStore = (*PrincipalRepository)(nil)

const principalColumns = `id, email, COALESCE(credential, ''), provider, COALESCE(provider_profile_id, ''),
			  name, note_key, created_at, updated_at`

type PrincipalRepository struct {
	db Querier
}

func NewPrincipalRepository(db Querier) *PrincipalRepository {
	return &PrincipalRepository{
		db: db,
	}
}

func scanPrincipal(row pgx.Row) (model.Principal, error) {
	var p model.Principal
	err := row.Scan(
		&p.ID, &p.Email, &p.Credential, &p.Provider, &p.ProviderProfileID,
		&p.Name, &p.NoteKey, &p.CreatedAt, &p.UpdatedAt,
	)
	return p, err
}

func (r *PrincipalRepository) GetByEmail(ctx context.Context, email string) (model.Principal, error) {
	query := `SELECT ` + principalColumns + `
			  FROM principals WHERE email = $1 AND provider = 'local'`

	p, err := scanPrincipal(r.db.QueryRow(ctx, query, email))
	if err != nil {
		return model.Principal{}, classify("get principal by email", err)
	}

	return p, nil
}

func (r *PrincipalRepository) GetByProviderID(ctx context.Context, provider, providerProfileID string) (model.Principal, error) {
	query := `SELECT ` + principalColumns + `
			  FROM principals WHERE provider = $1 AND provider_profile_id = $2`

	p, err := scanPrincipal(r.db.QueryRow(ctx, query, provider, providerProfileID))
	if err != nil {
		return model.Principal{}, classify("get principal by provider id", err)
	}

	return p, nil
}

func (r *PrincipalRepository) GetByID(ctx context.Context, id uuid.UUID) (model.Principal, error) {
	query := `SELECT ` + principalColumns + `
			  FROM principals WHERE id = $1`

	p, err := scanPrincipal(r.db.QueryRow(ctx, query, id))
	if err != nil {
		return model.Principal{}, classify("get principal by id", err)
	}

	return p, nil
}

// Create inserts a principal. Uniqueness of the local email and of the
// federated provider/profile pair is enforced by partial unique indexes,
// so concurrent inserts of the same key fail with model.ErrDuplicate.
func (r *PrincipalRepository) Create(ctx context.Context, principal model.Principal) (model.Principal, error) {
	query := `INSERT INTO principals (id, email, credential, provider, provider_profile_id, name, note_key, created_at, updated_at)
			  VALUES ($1, $2, NULLIF($3, ''), $4, NULLIF($5, ''), $6, $7, $8, $9)
			  RETURNING ` + principalColumns

	if principal.ID == uuid.Nil {
		principal.ID = uuid.New()
	}

	saved, err := scanPrincipal(r.db.QueryRow(ctx, query,
		principal.ID, principal.Email, principal.Credential, principal.Provider, principal.ProviderProfileID,
		principal.Name, principal.NoteKey, principal.CreatedAt, principal.UpdatedAt,
	))
	if err != nil {
		return model.Principal{}, classify("create principal", err)
	}

	return saved, nil
}

// Save updates the mutable fields of an existing principal.
func (r *PrincipalRepository) Save(ctx context.Context, principal model.Principal) error {
	query := `UPDATE principals SET name = $2, note_key = $3, updated_at = $4
			  WHERE id = $1`

	tag, err := r.db.Exec(ctx, query, principal.ID, principal.Name, principal.NoteKey, principal.UpdatedAt)
	if err != nil {
		return classify("save principal", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrNotFound
	}

	return nil
}

func (r *PrincipalRepository) ListWithNotes(ctx context.Context) ([]model.Principal, error) {
	query := `SELECT ` + principalColumns + `
			  FROM principals WHERE note_key IS NOT NULL ORDER BY updated_at DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, classify("list principals with notes", err)
	}
	defer rows.Close()

	var principals []model.Principal
	for rows.Next() {
		p, err := scanPrincipal(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan principal: %w", err)
		}
		principals = append(principals, p)
	}
	if err := rows.Err(); err != nil {
		return nil, classify("iterate principals with notes", err)
	}

	return principals, nil
}
