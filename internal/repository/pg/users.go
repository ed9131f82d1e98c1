package pg

import (
	"context"
	"database/sql"
	"errors"

	"github.com/enviromat/enviromat/internal/model"
)

func (r *Repository) CreateUser(ctx context.Context, user model.User) (int64, error) {
	var id int64

	err := r.executeWithRetry(ctx, func(db *sql.DB) error {
		return db.QueryRowContext(ctx,
			`INSERT INTO users (login, password, first_name, phone) VALUES ($1, $2, $3, $4) RETURNING id`,
			user.Login,
			user.Password,
			user.FirstName,
			user.Phone,
		).Scan(&id)
	})
	if err != nil {
		return 0, err
	}

	return id, nil
}

func (r *Repository) GetUserByLogin(ctx context.Context, login string) (*model.User, error) {
	var user model.User

	err := r.executeWithRetry(ctx, func(db *sql.DB) error {
		return db.QueryRowContext(ctx,
			`SELECT id, login, password, first_name, phone, created_at FROM users WHERE login = $1`,
			login,
		).Scan(&user.ID, &user.Login, &user.Password, &user.FirstName, &user.Phone, &user.CreatedAt)
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, model.ErrUserNotFound
		}
		return nil, err
	}

	return &user, nil
}

func (r *Repository) GetUserByID(ctx context.Context, id int64) (*model.User, error) {
	var user model.User

	err := r.executeWithRetry(ctx, func(db *sql.DB) error {
		return db.QueryRowContext(ctx,
			`SELECT id, login, password, first_name, phone, created_at FROM users WHERE id = $1`,
			id,
		).Scan(&user.ID, &user.Login, &user.Password, &user.FirstName, &user.Phone, &user.CreatedAt)
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, model.ErrUserNotFound
		}
		return nil, err
	}

	return &user, nil
}

func (r *Repository) CreatePicker(ctx context.Context, picker model.Picker) (int64, error) {
	var id int64

	err := r.executeWithRetry(ctx, func(db *sql.DB) error {
		return db.QueryRowContext(ctx,
			`INSERT INTO pickers (login, password, first_name, last_name, phone, city, state)
			 VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`,
			picker.Login,
			picker.Password,
			picker.FirstName,
			picker.LastName,
			picker.Phone,
			picker.City,
			picker.State,
		).Scan(&id)
	})
	if err != nil {
		return 0, err
	}

	return id, nil
}

func (r *Repository) GetPickerByLogin(ctx context.Context, login string) (*model.Picker, error) {
	var picker model.Picker

	err := r.executeWithRetry(ctx, func(db *sql.DB) error {
		return db.QueryRowContext(ctx,
			`SELECT id, login, password, first_name, last_name, phone, city, state, created_at
			 FROM pickers WHERE login = $1`,
			login,
		).Scan(&picker.ID, &picker.Login, &picker.Password, &picker.FirstName, &picker.LastName,
			&picker.Phone, &picker.City, &picker.State, &picker.CreatedAt)
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, model.ErrPickerNotFound
		}
		return nil, err
	}

	return &picker, nil
}

func (r *Repository) GetPickerByID(ctx context.Context, id int64) (*model.Picker, error) {
	var picker model.Picker

	err := r.executeWithRetry(ctx, func(db *sql.DB) error {
		return db.QueryRowContext(ctx,
			`SELECT id, login, password, first_name, last_name, phone, city, state, created_at
			 FROM pickers WHERE id = $1`,
			id,
		).Scan(&picker.ID, &picker.Login, &picker.Password, &picker.FirstName, &picker.LastName,
			&picker.Phone, &picker.City, &picker.State, &picker.CreatedAt)
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, model.ErrPickerNotFound
		}
		return nil, err
	}

	return &picker, nil
}

// FindPickersByCity returns up to limit pickers registered in the city, in
// persistence order. No further ranking happens here.
func (r *Repository) FindPickersByCity(ctx context.Context, city string, limit int) ([]model.Picker, error) {
	return r.findPickers(ctx,
		`SELECT id, login, password, first_name, last_name, phone, city, state, created_at
		 FROM pickers WHERE city = $1 ORDER BY id LIMIT $2`,
		city, limit)
}

func (r *Repository) FindPickersByState(ctx context.Context, state string, limit int) ([]model.Picker, error) {
	return r.findPickers(ctx,
		`SELECT id, login, password, first_name, last_name, phone, city, state, created_at
		 FROM pickers WHERE state = $1 ORDER BY id LIMIT $2`,
		state, limit)
}

func (r *Repository) findPickers(ctx context.Context, query string, arg any, limit int) ([]model.Picker, error) {
	result := make([]model.Picker, 0)

	err := r.executeWithRetry(ctx, func(db *sql.DB) error {
		rows, err := db.QueryContext(ctx, query, arg, limit)
		if err != nil {
			return err
		}
		defer rows.Close()

		result = result[:0]
		for rows.Next() {
			var p model.Picker
			if err := rows.Scan(&p.ID, &p.Login, &p.Password, &p.FirstName, &p.LastName,
				&p.Phone, &p.City, &p.State, &p.CreatedAt); err != nil {
				return err
			}
			result = append(result, p)
		}

		return rows.Err()
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}
