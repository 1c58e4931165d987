// Package credentials provides the PostgreSQL-backed repository for
// credential records. Every query is scoped by the owning user id, so a
// single statement both authorizes and performs the operation.
package credentials

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/passkeeper/internal/common"
	"github.com/dmitrijs2005/passkeeper/internal/dbx"
	"github.com/dmitrijs2005/passkeeper/internal/server/models"
)

// PostgresRepository implements credential storage over a dbx.DBTX
// (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// SelectByUser returns all credentials owned by userID. Secrets come back
// as stored ciphertext.
func (r *PostgresRepository) SelectByUser(ctx context.Context, userID string) ([]*models.Credential, error) {
	query :=
		`SELECT id, user_id, app_name, username, secret, created_at, updated_at FROM credentials
		 WHERE user_id = $1
		 `

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.Credential
	for rows.Next() {
		var item models.Credential
		if err := rows.Scan(
			&item.ID, &item.UserID, &item.AppName, &item.Username, &item.Secret,
			&item.CreatedAt, &item.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// Create inserts a new credential (secret already encrypted by the caller)
// and returns it with the DB-assigned id and timestamps.
func (r *PostgresRepository) Create(ctx context.Context, cred *models.Credential) (*models.Credential, error) {
	query :=
		`INSERT INTO credentials (user_id, app_name, username, secret)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at, updated_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		cred.UserID, cred.AppName, cred.Username, cred.Secret).
		Scan(&cred.ID, &cred.CreatedAt, &cred.UpdatedAt)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return cred, nil
}

// Update applies a partial update in one statement scoped by both id and
// user_id. Nil fields keep their stored values via COALESCE. An owner
// mismatch matches zero rows and is indistinguishable from an absent id;
// both yield common.ErrNotFound.
func (r *PostgresRepository) Update(ctx context.Context, id, userID string, upd *models.CredentialUpdate) error {
	query :=
		`UPDATE credentials SET
			app_name = COALESCE($3, app_name),
			username = COALESCE($4, username),
			secret = COALESCE($5, secret),
			updated_at = now()
		 WHERE id = $1 AND user_id = $2
		 `

	res, err := r.db.ExecContext(ctx, query, id, userID, upd.AppName, upd.Username, upd.Secret)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	switch n {
	case 1:
		return nil
	case 0:
		return common.ErrNotFound
	default:
		return fmt.Errorf("unexpected rows affected: %d", n)
	}
}

// Delete removes a credential in one statement scoped by both id and user_id.
// Zero matched rows yield common.ErrNotFound.
func (r *PostgresRepository) Delete(ctx context.Context, id, userID string) error {
	query :=
		`DELETE FROM credentials
		 WHERE id = $1 AND user_id = $2
		 `

	res, err := r.db.ExecContext(ctx, query, id, userID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	switch n {
	case 1:
		return nil
	case 0:
		return common.ErrNotFound
	default:
		return fmt.Errorf("unexpected rows affected: %d", n)
	}
}
