package repo

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	domain "github.com/KMTonmoy/allmartavenue-api/internal/entity"
	"github.com/KMTonmoy/allmartavenue-api/internal/usecase"
)

var ErrNotFound = errors.New("not found")

type MySQLOrderRepo struct{ db *sql.DB }

func NewMySQLOrderRepo(db *sql.DB) *MySQLOrderRepo { return &MySQLOrderRepo{db: db} }

const orderCols = `id, order_number, status, customer_json, items_json, delivery_location,
subtotal, delivery_charge, grand_total, currency, payment_method, courier, tracking_id,
placed_at, updated_at`

func (r *MySQLOrderRepo) Create(ctx context.Context, o *domain.Order) error {
	customer, err := json.Marshal(o.Customer)
	if err != nil {
		return fmt.Errorf("marshal customer: %w", err)
	}
	items, err := json.Marshal(o.Items)
	if err != nil {
		return fmt.Errorf("marshal items: %w", err)
	}
	_, err = r.db.ExecContext(ctx, `
INSERT INTO orders (`+orderCols+`)
VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?,?)`,
		o.ID, o.Number, string(o.Status), customer, items, string(o.DeliveryLocation),
		o.Subtotal.Amount, o.DeliveryCharge.Amount, o.GrandTotal.Amount, o.GrandTotal.Currency,
		o.PaymentMethod, o.Courier, o.TrackingID, o.PlacedAt, o.UpdatedAt)
	return err
}

func (r *MySQLOrderRepo) GetByID(ctx context.Context, id string) (*domain.Order, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+orderCols+` FROM orders WHERE id=?`, id)
	return scanOrder(row)
}

func (r *MySQLOrderRepo) GetByNumber(ctx context.Context, number string) (*domain.Order, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+orderCols+` FROM orders WHERE order_number=?`, number)
	return scanOrder(row)
}

func (r *MySQLOrderRepo) List(ctx context.Context, status domain.Status) ([]domain.Order, error) {
	q := `SELECT ` + orderCols + ` FROM orders`
	args := []any{}
	if status != "" {
		q += ` WHERE status=?`
		args = append(args, string(status))
	}
	q += ` ORDER BY placed_at DESC`

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *o)
	}
	return out, rows.Err()
}

func (r *MySQLOrderRepo) UpdateStatus(ctx context.Context, id string, to domain.Status) error {
	res, err := r.db.ExecContext(ctx, `
        UPDATE orders
        SET status = ?, updated_at = NOW()
        WHERE id = ?`,
		string(to), id,
	)
	if err != nil {
		return err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MySQLOrderRepo) UpdateStatusIf(ctx context.Context, id string, from, to domain.Status) (bool, error) {
	res, err := r.db.ExecContext(ctx, `
        UPDATE orders
        SET status = ?, updated_at = NOW()
        WHERE id = ? AND status = ?`,
		string(to), id, string(from),
	)
	if err != nil {
		return false, err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	// rows == 0 → nothing matched (either not found or status mismatch)
	return rows > 0, nil
}

func (r *MySQLOrderRepo) UpdateTracking(ctx context.Context, id, courier, trackingID string) error {
	res, err := r.db.ExecContext(ctx, `
        UPDATE orders
        SET courier = ?, tracking_id = ?, updated_at = NOW()
        WHERE id = ?`,
		courier, trackingID, id,
	)
	if err != nil {
		return err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MySQLOrderRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM orders WHERE id=?`, id)
	if err != nil {
		return err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}

type rowScanner interface{ Scan(dest ...any) error }

func scanOrder(row rowScanner) (*domain.Order, error) {
	var (
		o                       domain.Order
		status, location        string
		customerJSON, itemsJSON []byte
		courier, tracking       sql.NullString
	)
	err := row.Scan(&o.ID, &o.Number, &status, &customerJSON, &itemsJSON, &location,
		&o.Subtotal.Amount, &o.DeliveryCharge.Amount, &o.GrandTotal.Amount, &o.GrandTotal.Currency,
		&o.PaymentMethod, &courier, &tracking, &o.PlacedAt, &o.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	o.Status = domain.Status(status)
	o.DeliveryLocation = domain.DeliveryLocation(location)
	o.Subtotal.Currency = o.GrandTotal.Currency
	o.DeliveryCharge.Currency = o.GrandTotal.Currency
	o.Courier = courier.String
	o.TrackingID = tracking.String
	if err := json.Unmarshal(customerJSON, &o.Customer); err != nil {
		return nil, fmt.Errorf("unmarshal customer: %w", err)
	}
	if err := json.Unmarshal(itemsJSON, &o.Items); err != nil {
		return nil, fmt.Errorf("unmarshal items: %w", err)
	}
	return &o, nil
}

var _ usecase.OrderRepo = (*MySQLOrderRepo)(nil)
