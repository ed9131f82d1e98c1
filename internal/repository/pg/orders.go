package pg

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/enviromat/enviromat/internal/model"
	"github.com/shopspring/decimal"
)

const orderColumns = `id, seller_id, title, description, category, quantity, price, total_sold, address, image_url, ordered_at`

func scanOrder(row pickupScanner) (*model.Order, error) {
	var o model.Order

	err := row.Scan(&o.ID, &o.SellerID, &o.Title, &o.Description, &o.Category,
		&o.Quantity, &o.Price, &o.TotalSold, &o.Address, &o.ImageURL, &o.OrderedAt)
	if err != nil {
		return nil, err
	}

	return &o, nil
}

func (r *Repository) CreateOrder(ctx context.Context, o *model.Order) error {
	return r.executeWithRetry(ctx, func(db *sql.DB) error {
		return db.QueryRowContext(ctx,
			`INSERT INTO orders (seller_id, title, description, category, quantity, price, address, image_url, ordered_at)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, now())
			 RETURNING id, total_sold, ordered_at`,
			o.SellerID, o.Title, o.Description, o.Category, o.Quantity, o.Price, o.Address, o.ImageURL,
		).Scan(&o.ID, &o.TotalSold, &o.OrderedAt)
	})
}

func (r *Repository) GetOrderByID(ctx context.Context, id int64) (*model.Order, error) {
	var order *model.Order

	err := r.executeWithRetry(ctx, func(db *sql.DB) error {
		var err error
		order, err = scanOrder(db.QueryRowContext(ctx,
			`SELECT `+orderColumns+` FROM orders WHERE id = $1`, id))
		return err
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, model.ErrOrderNotFound
		}
		return nil, err
	}

	return order, nil
}

// GetAvailableOrders lists listings with remaining stock.
func (r *Repository) GetAvailableOrders(ctx context.Context) ([]model.Order, error) {
	return r.listOrders(ctx,
		`SELECT `+orderColumns+` FROM orders WHERE total_sold < quantity ORDER BY ordered_at DESC`)
}

func (r *Repository) GetOrdersByBuyer(ctx context.Context, buyerID int64) ([]model.Order, error) {
	return r.listOrders(ctx,
		`SELECT DISTINCT o.id, o.seller_id, o.title, o.description, o.category, o.quantity, o.price, o.total_sold, o.address, o.image_url, o.ordered_at
		 FROM orders o JOIN order_requests req ON req.order_id = o.id
		 WHERE req.buyer_id = $1 ORDER BY o.ordered_at DESC`,
		buyerID)
}

func (r *Repository) GetCartByUser(ctx context.Context, userID int64) ([]model.Order, error) {
	return r.listOrders(ctx,
		`SELECT o.id, o.seller_id, o.title, o.description, o.category, o.quantity, o.price, o.total_sold, o.address, o.image_url, o.ordered_at
		 FROM orders o JOIN cart_items c ON c.order_id = o.id
		 WHERE c.user_id = $1 ORDER BY c.added_at DESC`,
		userID)
}

func (r *Repository) listOrders(ctx context.Context, query string, args ...any) ([]model.Order, error) {
	result := make([]model.Order, 0)

	err := r.executeWithRetry(ctx, func(db *sql.DB) error {
		rows, err := db.QueryContext(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()

		result = result[:0]
		for rows.Next() {
			o, err := scanOrder(rows)
			if err != nil {
				return err
			}
			result = append(result, *o)
		}

		return rows.Err()
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// RequestOrder performs the buy-request under a row lock: price and stock
// checks, buyer entry insert, stock bump and cart cleanup commit together.
func (r *Repository) RequestOrder(ctx context.Context, buyerID int64, dto model.RequestOrderDTO) (*model.Order, error) {
	var order *model.Order

	err := r.executeWithRetry(ctx, func(db *sql.DB) error {
		tx, err := db.BeginTx(ctx, nil)
		if err != nil {
			return err
		}
		defer tx.Rollback()

		order, err = scanOrder(tx.QueryRowContext(ctx,
			`SELECT `+orderColumns+` FROM orders WHERE id = $1 FOR UPDATE`, dto.OrderID))
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return model.ErrOrderNotFound
			}
			return err
		}

		expected := order.Price.Mul(decimal.NewFromInt(dto.Quantity))
		if !dto.TotalPrice.Equal(expected) {
			return model.ErrOrderPriceBad
		}

		if order.TotalSold+dto.Quantity > order.Quantity {
			return model.ErrOrderOutOfStock
		}

		_, err = tx.ExecContext(ctx,
			`INSERT INTO order_requests (order_id, buyer_id, quantity, price, address, payment_status, delivery_status)
			 VALUES ($1, $2, $3, $4, $5, 'pending', 'requested')`,
			dto.OrderID, buyerID, dto.Quantity, dto.TotalPrice, dto.Address)
		if err != nil {
			return err
		}

		err = tx.QueryRowContext(ctx,
			`UPDATE orders SET total_sold = total_sold + $2, ordered_at = now() WHERE id = $1 RETURNING total_sold, ordered_at`,
			dto.OrderID, dto.Quantity,
		).Scan(&order.TotalSold, &order.OrderedAt)
		if err != nil {
			return err
		}

		// requesting supersedes any cart entry for the same listing
		_, err = tx.ExecContext(ctx,
			`DELETE FROM cart_items WHERE user_id = $1 AND order_id = $2`, buyerID, dto.OrderID)
		if err != nil {
			return err
		}

		return tx.Commit()
	})
	if err != nil {
		return nil, err
	}

	return order, nil
}

// CancelOrderRequest removes the buyer's undelivered entry and restores its
// quantity to the listing's remaining stock.
func (r *Repository) CancelOrderRequest(ctx context.Context, buyerID, orderID int64) (*model.Order, error) {
	var order *model.Order

	err := r.executeWithRetry(ctx, func(db *sql.DB) error {
		tx, err := db.BeginTx(ctx, nil)
		if err != nil {
			return err
		}
		defer tx.Rollback()

		order, err = scanOrder(tx.QueryRowContext(ctx,
			`SELECT `+orderColumns+` FROM orders WHERE id = $1 FOR UPDATE`, orderID))
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return model.ErrOrderNotFound
			}
			return err
		}

		var (
			entryID  int64
			quantity int64
		)
		err = tx.QueryRowContext(ctx,
			`SELECT id, quantity FROM order_requests
			 WHERE order_id = $1 AND buyer_id = $2 AND delivery_status = 'requested'
			 ORDER BY requested_at LIMIT 1`,
			orderID, buyerID,
		).Scan(&entryID, &quantity)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return model.ErrOrderNotRequested
			}
			return err
		}

		_, err = tx.ExecContext(ctx, `DELETE FROM order_requests WHERE id = $1`, entryID)
		if err != nil {
			return err
		}

		err = tx.QueryRowContext(ctx,
			`UPDATE orders SET total_sold = total_sold - $2 WHERE id = $1 RETURNING total_sold`,
			orderID, quantity,
		).Scan(&order.TotalSold)
		if err != nil {
			return err
		}

		return tx.Commit()
	})
	if err != nil {
		return nil, err
	}

	return order, nil
}

// AddToCart is mutually exclusive with an active buy request for the same
// listing and buyer.
func (r *Repository) AddToCart(ctx context.Context, userID, orderID int64) (*model.Order, error) {
	var order *model.Order

	err := r.executeWithRetry(ctx, func(db *sql.DB) error {
		tx, err := db.BeginTx(ctx, nil)
		if err != nil {
			return err
		}
		defer tx.Rollback()

		order, err = scanOrder(tx.QueryRowContext(ctx,
			`SELECT `+orderColumns+` FROM orders WHERE id = $1`, orderID))
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return model.ErrOrderNotFound
			}
			return err
		}

		var active int64
		err = tx.QueryRowContext(ctx,
			`SELECT COUNT(*) FROM order_requests
			 WHERE order_id = $1 AND buyer_id = $2 AND delivery_status = 'requested'`,
			orderID, userID,
		).Scan(&active)
		if err != nil {
			return err
		}
		if active > 0 {
			return model.ErrOrderCartConflict
		}

		_, err = tx.ExecContext(ctx,
			`INSERT INTO cart_items (user_id, order_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
			userID, orderID)
		if err != nil {
			return err
		}

		return tx.Commit()
	})
	if err != nil {
		return nil, err
	}

	return order, nil
}

func (r *Repository) RemoveFromCart(ctx context.Context, userID, orderID int64) (*model.Order, error) {
	order, err := r.GetOrderByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	err = r.executeWithRetry(ctx, func(db *sql.DB) error {
		_, err := db.ExecContext(ctx,
			`DELETE FROM cart_items WHERE user_id = $1 AND order_id = $2`, userID, orderID)
		return err
	})
	if err != nil {
		return nil, err
	}

	return order, nil
}

// MarkOrderDelivered flips one buyer entry to delivered. Kept for the picker
// delivery flow; requested entries only.
func (r *Repository) MarkOrderDelivered(ctx context.Context, orderID, buyerID, pickerID int64, at time.Time) error {
	return r.executeWithRetry(ctx, func(db *sql.DB) error {
		res, err := db.ExecContext(ctx,
			`UPDATE order_requests
			 SET delivery_status = 'delivered', delivered_by = $3, delivered_at = $4
			 WHERE order_id = $1 AND buyer_id = $2 AND delivery_status = 'requested'`,
			orderID, buyerID, pickerID, at)
		if err != nil {
			return err
		}

		affected, err := res.RowsAffected()
		if err != nil {
			return err
		}
		if affected == 0 {
			return model.ErrOrderNotRequested
		}

		return nil
	})
}
