package repo

import (
	"context"
	"database/sql"
	"errors"

	domain "github.com/KMTonmoy/allmartavenue-api/internal/entity"
	"github.com/KMTonmoy/allmartavenue-api/internal/usecase"
)

type MySQLBannerRepo struct{ db *sql.DB }

func NewMySQLBannerRepo(db *sql.DB) *MySQLBannerRepo { return &MySQLBannerRepo{db: db} }

const bannerCols = `id, title, image_url, link_url, active, created_at, updated_at`

func (r *MySQLBannerRepo) Create(ctx context.Context, b *domain.Banner) error {
	_, err := r.db.ExecContext(ctx, `
INSERT INTO banners (`+bannerCols+`)
VALUES (?,?,?,?,?,?,?)`,
		b.ID, b.Title, b.ImageURL, b.LinkURL, b.Active, b.CreatedAt, b.UpdatedAt)
	return err
}

func (r *MySQLBannerRepo) Update(ctx context.Context, b *domain.Banner) error {
	res, err := r.db.ExecContext(ctx, `
UPDATE banners
SET title=?, image_url=?, link_url=?, active=?, updated_at=NOW()
WHERE id=?`,
		b.Title, b.ImageURL, b.LinkURL, b.Active, b.ID)
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

func (r *MySQLBannerRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM banners WHERE id=?`, id)
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

func (r *MySQLBannerRepo) GetByID(ctx context.Context, id string) (*domain.Banner, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+bannerCols+` FROM banners WHERE id=?`, id)
	var b domain.Banner
	err := row.Scan(&b.ID, &b.Title, &b.ImageURL, &b.LinkURL, &b.Active, &b.CreatedAt, &b.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *MySQLBannerRepo) List(ctx context.Context, activeOnly bool) ([]domain.Banner, error) {
	q := `SELECT ` + bannerCols + ` FROM banners`
	if activeOnly {
		q += ` WHERE active=1`
	}
	q += ` ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Banner
	for rows.Next() {
		var b domain.Banner
		if err := rows.Scan(&b.ID, &b.Title, &b.ImageURL, &b.LinkURL, &b.Active, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

var _ usecase.BannerRepo = (*MySQLBannerRepo)(nil)
