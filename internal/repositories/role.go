package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/mydocmaker/api/internal/models"
)

// RoleReadRepository reads user_roles.
type RoleReadRepository struct {
	db *sqlx.DB
}

func NewRoleReadRepository(db *sqlx.DB) *RoleReadRepository {
	return &RoleReadRepository{db: db}
}

// GetByUserID returns the stored role row, or sql.ErrNoRows.
func (r *RoleReadRepository) GetByUserID(ctx context.Context, userID string) (*models.UserRoleDB, error) {
	const query = `
		SELECT user_id, role, created_at, updated_at
		FROM user_roles
		WHERE user_id = $1
	`

	var role models.UserRoleDB
	err := r.db.GetContext(ctx, &role, query, userID)

	logQuery(query, []any{userID}, role.Role, err)

	if err != nil {
		return nil, err
	}
	return &role, nil
}

// RoleWriteRepository writes user_roles.
type RoleWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewRoleWriteRepository(db *sqlx.DB, txGetter TxGetter) *RoleWriteRepository {
	return &RoleWriteRepository{db: db, txGetter: txGetter}
}

// Save upserts the role of a user.
func (r *RoleWriteRepository) Save(ctx context.Context, userID string, tier models.Tier) error {
	const query = `
		INSERT INTO user_roles (user_id, role, created_at, updated_at)
		VALUES ($1, $2, NOW(), NOW())
		ON CONFLICT (user_id)
		DO UPDATE SET role = EXCLUDED.role, updated_at = NOW()
	`
	args := []any{userID, string(tier)}

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logQuery(query, args, rowsAffected, err)

	return err
}
