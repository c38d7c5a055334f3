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

type MySQLProductRepo struct{ db *sql.DB }

func NewMySQLProductRepo(db *sql.DB) *MySQLProductRepo { return &MySQLProductRepo{db: db} }

const productCols = `id, name, description, category, price, currency, stock,
colors_json, images_json, created_at, updated_at`

func (r *MySQLProductRepo) Create(ctx context.Context, p *domain.Product) error {
	colors, images, err := marshalVariantCols(p)
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx, `
INSERT INTO products (`+productCols+`)
VALUES (?,?,?,?,?,?,?,?,?,?,?)`,
		p.ID, p.Name, p.Description, p.Category, p.Price.Amount, p.Price.Currency,
		p.Stock, colors, images, p.CreatedAt, p.UpdatedAt)
	return err
}

func (r *MySQLProductRepo) Update(ctx context.Context, p *domain.Product) error {
	colors, images, err := marshalVariantCols(p)
	if err != nil {
		return err
	}
	res, err := r.db.ExecContext(ctx, `
UPDATE products
SET name=?, description=?, category=?, price=?, currency=?, stock=?,
    colors_json=?, images_json=?, updated_at=NOW()
WHERE id=?`,
		p.Name, p.Description, p.Category, p.Price.Amount, p.Price.Currency,
		p.Stock, colors, images, p.ID)
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

func (r *MySQLProductRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM products WHERE id=?`, id)
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

func (r *MySQLProductRepo) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+productCols+` FROM products WHERE id=?`, id)
	p, err := scanProduct(row)
	if errors.Is(err, ErrNotFound) {
		return nil, nil
	}
	return p, err
}

func (r *MySQLProductRepo) List(ctx context.Context) ([]domain.Product, error) {
	return r.query(ctx, `SELECT `+productCols+` FROM products ORDER BY created_at DESC`)
}

func (r *MySQLProductRepo) Search(ctx context.Context, query string) ([]domain.Product, error) {
	like := "%" + query + "%"
	return r.query(ctx, `
SELECT `+productCols+` FROM products
WHERE name LIKE ? OR category LIKE ?
ORDER BY created_at DESC`, like, like)
}

func (r *MySQLProductRepo) query(ctx context.Context, q string, args ...any) ([]domain.Product, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *p)
	}
	return out, rows.Err()
}

func marshalVariantCols(p *domain.Product) ([]byte, []byte, error) {
	colors, err := json.Marshal(p.Colors)
	if err != nil {
		return nil, nil, fmt.Errorf("marshal colors: %w", err)
	}
	images, err := json.Marshal(p.Images)
	if err != nil {
		return nil, nil, fmt.Errorf("marshal images: %w", err)
	}
	return colors, images, nil
}

func scanProduct(row rowScanner) (*domain.Product, error) {
	var (
		p                      domain.Product
		colorsJSON, imagesJSON []byte
	)
	err := row.Scan(&p.ID, &p.Name, &p.Description, &p.Category, &p.Price.Amount,
		&p.Price.Currency, &p.Stock, &colorsJSON, &imagesJSON, &p.CreatedAt, &p.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if len(colorsJSON) > 0 {
		if err := json.Unmarshal(colorsJSON, &p.Colors); err != nil {
			return nil, fmt.Errorf("unmarshal colors: %w", err)
		}
	}
	if len(imagesJSON) > 0 {
		if err := json.Unmarshal(imagesJSON, &p.Images); err != nil {
			return nil, fmt.Errorf("unmarshal images: %w", err)
		}
	}
	return &p, nil
}

var _ usecase.ProductRepo = (*MySQLProductRepo)(nil)
