package user

import (
	"context"
	"database/sql"
	"errors"
	c "helperland/internal/core/domain/common"
	e "helperland/internal/core/domain/errors"
	"helperland/internal/core/domain/user"
	"helperland/internal/db"
	"time"

	"github.com/jackc/pgx/v4"
)

const passwordResetColumns = `token, user_id, issued_at, expires_at, consumed_at, superseded_at`

type PgxPasswordResetRepository struct {
	db db.DBTX
}

func NewPgxPasswordResetRepository(db db.DBTX) *PgxPasswordResetRepository {
	if db == nil {
		panic(e.NewNilArgumentError("db"))
	}
	return &PgxPasswordResetRepository{db: db}
}

func (r *PgxPasswordResetRepository) Create(
	ctx context.Context,
	input user.CreatePasswordResetInput,
) (reset user.PasswordReset, err error) {
	row := r.db.QueryRow(
		ctx,
		`INSERT INTO password_reset_token (token, user_id, issued_at, expires_at)
		 VALUES ($1, $2, $3, $4)
		 RETURNING `+passwordResetColumns,
		string(input.Token),
		int64(input.UserID),
		input.IssuedAt,
		input.ExpiresAt,
	)
	return scanPasswordReset(row)
}

func (r *PgxPasswordResetRepository) GetLive(
	ctx context.Context,
	token user.PasswordResetToken,
	now time.Time,
) (reset user.PasswordReset, err error) {
	row := r.db.QueryRow(
		ctx,
		`SELECT `+passwordResetColumns+`
		 FROM password_reset_token
		 WHERE token = $1
		   AND consumed_at IS NULL
		   AND superseded_at IS NULL
		   AND expires_at > $2`,
		string(token),
		now,
	)
	reset, err = scanPasswordReset(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return reset, user.ErrInvalidPasswordResetToken
	}
	return reset, err
}

// Consume relies on the conditional UPDATE matching at most one live row,
// so concurrent resets with the same token cannot both succeed.
func (r *PgxPasswordResetRepository) Consume(
	ctx context.Context,
	token user.PasswordResetToken,
	at time.Time,
) (reset user.PasswordReset, err error) {
	row := r.db.QueryRow(
		ctx,
		`UPDATE password_reset_token
		 SET consumed_at = $2
		 WHERE token = $1
		   AND consumed_at IS NULL
		   AND superseded_at IS NULL
		   AND expires_at > $2
		 RETURNING `+passwordResetColumns,
		string(token),
		at,
	)
	reset, err = scanPasswordReset(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return reset, user.ErrInvalidPasswordResetToken
	}
	return reset, err
}

func (r *PgxPasswordResetRepository) SupersedeAllForUser(ctx context.Context, userID user.ID, at time.Time) error {
	_, err := r.db.Exec(
		ctx,
		`UPDATE password_reset_token
		 SET superseded_at = $2
		 WHERE user_id = $1
		   AND consumed_at IS NULL
		   AND superseded_at IS NULL`,
		int64(userID),
		at,
	)
	return err
}

func scanPasswordReset(row pgx.Row) (reset user.PasswordReset, err error) {
	var (
		token        string
		userID       int64
		issuedAt     time.Time
		expiresAt    time.Time
		consumedAt   sql.NullTime
		supersededAt sql.NullTime
	)
	err = row.Scan(&token, &userID, &issuedAt, &expiresAt, &consumedAt, &supersededAt)
	if err != nil {
		return reset, err
	}
	return user.PasswordReset{
		Token:        user.PasswordResetToken(token),
		UserID:       user.ID(userID),
		IssuedAt:     issuedAt,
		ExpiresAt:    expiresAt,
		ConsumedAt:   c.NewOptional(consumedAt.Time, consumedAt.Valid),
		SupersededAt: c.NewOptional(supersededAt.Time, supersededAt.Valid),
	}, nil
}
