package address

import (
	"context"
	"database/sql"
	"errors"
	"helperland/internal/core/domain/address"
	c "helperland/internal/core/domain/common"
	e "helperland/internal/core/domain/errors"
	"helperland/internal/core/domain/user"
	"helperland/internal/db"

	"github.com/jackc/pgx/v4"
)

const addressColumns = `id, user_id, line1, line2, city, state, postal_code, mobile, type`

type PgxAddressRepository struct {
	db db.DBTX
}

func NewPgxRepository(db db.DBTX) *PgxAddressRepository {
	if db == nil {
		panic(e.NewNilArgumentError("db"))
	}
	return &PgxAddressRepository{db: db}
}

func (r *PgxAddressRepository) Create(
	ctx context.Context,
	input address.CreateAddressInput,
) (a address.Address, err error) {
	row := r.db.QueryRow(
		ctx,
		`INSERT INTO address (user_id, line1, line2, city, state, postal_code, mobile, type)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING `+addressColumns,
		int64(input.UserID),
		input.Line1,
		encodeOptionalString(input.Line2),
		input.City,
		input.State,
		input.PostalCode,
		encodeOptionalString(input.Mobile),
		string(input.Type),
	)
	return scanAddress(row)
}

func (r *PgxAddressRepository) Update(
	ctx context.Context,
	input address.UpdateAddressInput,
) (a address.Address, err error) {
	row := r.db.QueryRow(
		ctx,
		`UPDATE address
		 SET line1 = COALESCE($3, line1),
		     line2 = COALESCE($4, line2),
		     city = COALESCE($5, city),
		     state = COALESCE($6, state),
		     postal_code = COALESCE($7, postal_code),
		     mobile = COALESCE($8, mobile),
		     type = COALESCE($9, type)
		 WHERE id = $1 AND user_id = $2
		 RETURNING `+addressColumns,
		int64(input.ID),
		int64(input.UserID),
		encodeOptionalString(input.Line1),
		encodeOptionalString(input.Line2),
		encodeOptionalString(input.City),
		encodeOptionalString(input.State),
		encodeOptionalString(input.PostalCode),
		encodeOptionalString(input.Mobile),
		encodeOptionalType(input.Type),
	)
	a, err = scanAddress(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return a, address.ErrAddressDoesNotExist
	}
	return a, err
}

func (r *PgxAddressRepository) GetByID(
	ctx context.Context,
	userID user.ID,
	id address.ID,
) (a address.Address, err error) {
	row := r.db.QueryRow(
		ctx,
		`SELECT `+addressColumns+` FROM address WHERE id = $1 AND user_id = $2`,
		int64(id),
		int64(userID),
	)
	a, err = scanAddress(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return a, address.ErrAddressDoesNotExist
	}
	return a, err
}

func (r *PgxAddressRepository) GetByUser(ctx context.Context, userID user.ID) ([]address.Address, error) {
	rows, err := r.db.Query(
		ctx,
		`SELECT `+addressColumns+` FROM address WHERE user_id = $1 ORDER BY id`,
		int64(userID),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	addresses := make([]address.Address, 0)
	for rows.Next() {
		a, err := scanAddress(rows)
		if err != nil {
			return nil, err
		}
		addresses = append(addresses, a)
	}
	return addresses, rows.Err()
}

func (r *PgxAddressRepository) Delete(ctx context.Context, userID user.ID, id address.ID) error {
	tag, err := r.db.Exec(
		ctx,
		`DELETE FROM address WHERE id = $1 AND user_id = $2`,
		int64(id),
		int64(userID),
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return address.ErrAddressDoesNotExist
	}
	return nil
}

func scanAddress(row pgx.Row) (a address.Address, err error) {
	var (
		id         int64
		userID     int64
		line1      string
		line2      sql.NullString
		city       string
		state      string
		postalCode string
		mobile     sql.NullString
		addrType   string
	)
	err = row.Scan(&id, &userID, &line1, &line2, &city, &state, &postalCode, &mobile, &addrType)
	if err != nil {
		return a, err
	}
	return address.Address{
		ID:         address.ID(id),
		UserID:     user.ID(userID),
		Line1:      line1,
		Line2:      c.NewOptional(line2.String, line2.Valid),
		City:       city,
		State:      state,
		PostalCode: postalCode,
		Mobile:     c.NewOptional(mobile.String, mobile.Valid),
		Type:       address.Type(addrType),
	}, nil
}

func encodeOptionalString(v c.Optional[string]) sql.NullString {
	return sql.NullString{String: v.Value, Valid: v.IsPresent}
}

func encodeOptionalType(v c.Optional[address.Type]) sql.NullString {
	return sql.NullString{String: string(v.Value), Valid: v.IsPresent}
}
