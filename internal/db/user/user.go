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

	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4"
)

const PG_UNIQUE_CONSTRAINT_ERR_CODE = "23505"
const EMAIL_CONSTRAINT_NAME = "user_email_idx"

const userColumns = `id, email, password_hash, role, first_name, last_name, mobile, is_approved, created_at`

type PgxUserRepository struct {
	db db.DBTX
}

func NewPgxRepository(db db.DBTX) *PgxUserRepository {
	if db == nil {
		panic(e.NewNilArgumentError("db"))
	}
	return &PgxUserRepository{db: db}
}

func (r *PgxUserRepository) Create(ctx context.Context, input user.CreateUserInput) (u user.User, err error) {
	row := r.db.QueryRow(
		ctx,
		`INSERT INTO "user" (email, password_hash, role, first_name, last_name, mobile, is_approved, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING `+userColumns,
		string(input.Email),
		string(input.PasswordHash),
		string(input.Role),
		encodeOptionalString(input.FirstName),
		encodeOptionalString(input.LastName),
		encodeOptionalString(input.Mobile),
		encodeOptionalBool(input.IsApproved),
		input.CreatedAt,
	)
	u, err = scanUser(row)

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == PG_UNIQUE_CONSTRAINT_ERR_CODE && pgErr.ConstraintName == EMAIL_CONSTRAINT_NAME {
			return u, user.ErrEmailAlreadyExists
		}
	}
	return u, err
}

func (r *PgxUserRepository) GetByID(ctx context.Context, id user.ID) (u user.User, err error) {
	row := r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM "user" WHERE id = $1`, int64(id))
	u, err = scanUser(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return u, user.ErrUserDoesNotExist
	}
	return u, err
}

func (r *PgxUserRepository) GetByEmail(ctx context.Context, email c.Email) (u user.User, err error) {
	row := r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM "user" WHERE email = $1`, string(email))
	u, err = scanUser(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return u, user.ErrUserDoesNotExist
	}
	return u, err
}

func (r *PgxUserRepository) GetAll(ctx context.Context) ([]user.User, error) {
	rows, err := r.db.Query(ctx, `SELECT `+userColumns+` FROM "user" ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := make([]user.User, 0)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func (r *PgxUserRepository) Update(ctx context.Context, input user.UpdateUserInput) (u user.User, err error) {
	row := r.db.QueryRow(
		ctx,
		`UPDATE "user"
		 SET first_name = COALESCE($2, first_name),
		     last_name = COALESCE($3, last_name),
		     mobile = COALESCE($4, mobile)
		 WHERE id = $1
		 RETURNING `+userColumns,
		int64(input.ID),
		encodeOptionalString(input.FirstName),
		encodeOptionalString(input.LastName),
		encodeOptionalString(input.Mobile),
	)
	u, err = scanUser(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return u, user.ErrUserDoesNotExist
	}
	return u, err
}

func (r *PgxUserRepository) SetPassword(ctx context.Context, id user.ID, password user.PasswordHash) error {
	tag, err := r.db.Exec(
		ctx,
		`UPDATE "user" SET password_hash = $2 WHERE id = $1`,
		int64(id),
		string(password),
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return user.ErrUserDoesNotExist
	}
	return nil
}

func scanUser(row pgx.Row) (u user.User, err error) {
	var (
		id           int64
		email        string
		passwordHash string
		role         string
		firstName    sql.NullString
		lastName     sql.NullString
		mobile       sql.NullString
		isApproved   sql.NullBool
		createdAt    time.Time
	)
	err = row.Scan(&id, &email, &passwordHash, &role, &firstName, &lastName, &mobile, &isApproved, &createdAt)
	if err != nil {
		return u, err
	}
	return user.User{
		ID:           user.ID(id),
		Email:        c.Email(email),
		PasswordHash: user.PasswordHash(passwordHash),
		Role:         user.Role(role),
		FirstName:    c.NewOptional(firstName.String, firstName.Valid),
		LastName:     c.NewOptional(lastName.String, lastName.Valid),
		Mobile:       c.NewOptional(mobile.String, mobile.Valid),
		IsApproved:   c.NewOptional(isApproved.Bool, isApproved.Valid),
		CreatedAt:    createdAt,
	}, nil
}

func encodeOptionalString(v c.Optional[string]) sql.NullString {
	return sql.NullString{String: v.Value, Valid: v.IsPresent}
}

func encodeOptionalBool(v c.Optional[bool]) sql.NullBool {
	return sql.NullBool{Bool: v.Value, Valid: v.IsPresent}
}
