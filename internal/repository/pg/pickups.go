package pg

import (
	"context"
	"database/sql"
	"errors"

	"github.com/enviromat/enviromat/internal/model"
	"github.com/google/uuid"
)

const pickupColumns = `id, user_id, waste_type, image_url, user_quantity, verified_quantity,
	quality_rating, lat, lng, street, city, state, pin_code, credit_points,
	pickup_by, status, is_emergency, pickup_date, created_at, updated_at`

type pickupScanner interface {
	Scan(dest ...any) error
}

func scanPickup(row pickupScanner) (*model.PickupRequest, error) {
	var (
		p                model.PickupRequest
		verifiedQuantity sql.NullFloat64
		qualityRating    sql.NullString
		creditPoints     sql.NullInt64
		pickupBy         sql.NullInt64
		pickupDate       sql.NullTime
	)

	err := row.Scan(
		&p.ID, &p.UserID, &p.WasteType, &p.ImageURL, &p.UserQuantity, &verifiedQuantity,
		&qualityRating, &p.Location.Lat, &p.Location.Lng,
		&p.Address.Street, &p.Address.City, &p.Address.State, &p.Address.PinCode,
		&creditPoints, &pickupBy, &p.Status, &p.IsEmergency, &pickupDate,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if verifiedQuantity.Valid {
		p.VerifiedQuantity = &verifiedQuantity.Float64
	}
	if qualityRating.Valid {
		rating := model.QualityRating(qualityRating.String)
		p.QualityRating = &rating
	}
	if creditPoints.Valid {
		p.CreditPoints = &creditPoints.Int64
	}
	if pickupBy.Valid {
		p.PickupBy = &pickupBy.Int64
	}
	if pickupDate.Valid {
		p.PickupDate = &pickupDate.Time
	}

	return &p, nil
}

func (r *Repository) CreatePickup(ctx context.Context, p *model.PickupRequest) error {
	return r.executeWithRetry(ctx, func(db *sql.DB) error {
		return db.QueryRowContext(ctx,
			`INSERT INTO pickup_requests
			 (id, user_id, waste_type, image_url, user_quantity, lat, lng, street, city, state, pin_code, status, is_emergency)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
			 RETURNING created_at, updated_at`,
			p.ID, p.UserID, p.WasteType, p.ImageURL, p.UserQuantity,
			p.Location.Lat, p.Location.Lng,
			p.Address.Street, p.Address.City, p.Address.State, p.Address.PinCode,
			p.Status, p.IsEmergency,
		).Scan(&p.CreatedAt, &p.UpdatedAt)
	})
}

func (r *Repository) GetPickupByID(ctx context.Context, id uuid.UUID) (*model.PickupRequest, error) {
	var pickup *model.PickupRequest

	err := r.executeWithRetry(ctx, func(db *sql.DB) error {
		var err error
		pickup, err = scanPickup(db.QueryRowContext(ctx,
			`SELECT `+pickupColumns+` FROM pickup_requests WHERE id = $1`, id))
		return err
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, model.ErrPickupNotFound
		}
		return nil, err
	}

	return pickup, nil
}

func (r *Repository) GetPickupsByUserID(ctx context.Context, userID int64) ([]model.PickupRequest, error) {
	return r.listPickups(ctx,
		`SELECT `+pickupColumns+` FROM pickup_requests WHERE user_id = $1 ORDER BY created_at DESC`,
		userID)
}

// GetPickerQueue is the picker's regular or emergency list: it is derived
// from pickup rows, so a request can never appear in both queues.
func (r *Repository) GetPickerQueue(ctx context.Context, pickerID int64, emergency bool) ([]model.PickupRequest, error) {
	return r.listPickups(ctx,
		`SELECT `+pickupColumns+` FROM pickup_requests
		 WHERE pickup_by = $1 AND is_emergency = $2 AND status IN ('assigned', 'in_progress')
		 ORDER BY created_at`,
		pickerID, emergency)
}

func (r *Repository) listPickups(ctx context.Context, query string, args ...any) ([]model.PickupRequest, error) {
	result := make([]model.PickupRequest, 0)

	err := r.executeWithRetry(ctx, func(db *sql.DB) error {
		rows, err := db.QueryContext(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()

		result = result[:0]
		for rows.Next() {
			p, err := scanPickup(rows)
			if err != nil {
				return err
			}
			result = append(result, *p)
		}

		return rows.Err()
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// AssignPickup moves a freshly created request to assigned. The status guard
// in the WHERE clause keeps a concurrent transition from being overwritten.
func (r *Repository) AssignPickup(ctx context.Context, id uuid.UUID, pickerID int64) (*model.PickupRequest, error) {
	var pickup *model.PickupRequest

	err := r.executeWithRetry(ctx, func(db *sql.DB) error {
		var err error
		pickup, err = scanPickup(db.QueryRowContext(ctx,
			`UPDATE pickup_requests
			 SET pickup_by = $2, status = 'assigned', updated_at = now()
			 WHERE id = $1 AND status = 'processing'
			 RETURNING `+pickupColumns, id, pickerID))
		return err
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, model.ErrPickupWrongStatus
		}
		return nil, err
	}

	return pickup, nil
}

func (r *Repository) StartPickup(ctx context.Context, id uuid.UUID, pickerID int64) (*model.PickupRequest, error) {
	var pickup *model.PickupRequest

	err := r.executeWithRetry(ctx, func(db *sql.DB) error {
		var err error
		pickup, err = scanPickup(db.QueryRowContext(ctx,
			`UPDATE pickup_requests
			 SET status = 'in_progress', updated_at = now()
			 WHERE id = $1 AND pickup_by = $2 AND status = 'assigned'
			 RETURNING `+pickupColumns, id, pickerID))
		return err
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, model.ErrPickupWrongStatus
		}
		return nil, err
	}

	return pickup, nil
}

// CancelPickup cancels in one transaction: the guarded status flip plus the
// ledger rows (picker compensation when assigned, user penalty always).
// Either everything commits or nothing does.
func (r *Repository) CancelPickup(ctx context.Context, id uuid.UUID, userPenalty, pickerCompensation int64) (*model.PickupRequest, error) {
	var pickup *model.PickupRequest

	err := r.executeWithRetry(ctx, func(db *sql.DB) error {
		tx, err := db.BeginTx(ctx, nil)
		if err != nil {
			return err
		}
		defer tx.Rollback()

		pickup, err = scanPickup(tx.QueryRowContext(ctx,
			`UPDATE pickup_requests
			 SET status = 'cancelled', updated_at = now()
			 WHERE id = $1 AND status IN ('processing', 'assigned')
			 RETURNING `+pickupColumns, id))
		if err != nil {
			return err
		}

		if pickup.PickupBy != nil {
			err = insertCreditTx(ctx, tx, creditEntry{
				AccountType: model.CreditAccountPicker,
				AccountID:   *pickup.PickupBy,
				PickupID:    &pickup.ID,
				Amount:      pickerCompensation,
				Reason:      model.CreditReasonCancelCompensation,
			})
			if err != nil {
				return err
			}
		}

		err = insertCreditTx(ctx, tx, creditEntry{
			AccountType: model.CreditAccountUser,
			AccountID:   pickup.UserID,
			PickupID:    &pickup.ID,
			Amount:      -userPenalty,
			Reason:      model.CreditReasonCancelPenalty,
		})
		if err != nil {
			return err
		}

		return tx.Commit()
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, model.ErrPickupWrongStatus
		}
		return nil, err
	}

	return pickup, nil
}

// CompletePickup commits the completion transition with its two credit
// awards atomically. A duplicate call matches zero rows and writes nothing.
func (r *Repository) CompletePickup(ctx context.Context, id uuid.UUID, pickerID int64,
	verifiedQuantity float64, qualityRating model.QualityRating,
	userCredits, pickerCredits int64) (*model.PickupRequest, error) {

	var pickup *model.PickupRequest

	err := r.executeWithRetry(ctx, func(db *sql.DB) error {
		tx, err := db.BeginTx(ctx, nil)
		if err != nil {
			return err
		}
		defer tx.Rollback()

		pickup, err = scanPickup(tx.QueryRowContext(ctx,
			`UPDATE pickup_requests
			 SET status = 'completed', verified_quantity = $3, quality_rating = $4,
			     credit_points = $5, pickup_date = now(), updated_at = now()
			 WHERE id = $1 AND pickup_by = $2 AND status = 'in_progress'
			 RETURNING `+pickupColumns,
			id, pickerID, verifiedQuantity, qualityRating, userCredits))
		if err != nil {
			return err
		}

		err = insertCreditTx(ctx, tx, creditEntry{
			AccountType: model.CreditAccountUser,
			AccountID:   pickup.UserID,
			PickupID:    &pickup.ID,
			Amount:      userCredits,
			Reason:      model.CreditReasonPickupCompleted,
		})
		if err != nil {
			return err
		}

		err = insertCreditTx(ctx, tx, creditEntry{
			AccountType: model.CreditAccountPicker,
			AccountID:   pickerID,
			PickupID:    &pickup.ID,
			Amount:      pickerCredits,
			Reason:      model.CreditReasonPickupBonus,
		})
		if err != nil {
			return err
		}

		return tx.Commit()
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, model.ErrPickupWrongStatus
		}
		return nil, err
	}

	return pickup, nil
}
