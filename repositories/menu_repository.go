package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tastehaven/menu_backend/models"
)

// MenuRepository is the pgx-backed menu item store.
type MenuRepository struct {
	pool *pgxpool.Pool
}

func NewMenuRepository(pool *pgxpool.Pool) *MenuRepository {
	return &MenuRepository{pool: pool}
}

const menuItemColumns = "id, name, price, category, image_url, description, created_at"

// ListAll returns every menu item, newest first.
func (r *MenuRepository) ListAll(ctx context.Context) ([]models.MenuItem, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+menuItemColumns+` FROM menu_items
		ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanMenuItems(rows)
}

// ListOrdered returns every menu item ordered by category then name, the
// order the aggregation pipeline groups from.
func (r *MenuRepository) ListOrdered(ctx context.Context) ([]models.MenuItem, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+menuItemColumns+` FROM menu_items
		ORDER BY category ASC, name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanMenuItems(rows)
}

// Insert stores a new menu item and returns it with its assigned id and
// creation timestamp.
func (r *MenuRepository) Insert(ctx context.Context, req models.MenuItemRequest) (*models.MenuItem, error) {
	item := models.MenuItem{
		ID:          uuid.NewString(),
		Name:        req.Name,
		Price:       req.Price,
		Category:    req.Category,
		ImageURL:    req.ImageURL,
		Description: req.Description,
	}

	err := r.pool.QueryRow(ctx, `
		INSERT INTO menu_items (id, name, price, category, image_url, description)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at`,
		item.ID, item.Name, item.Price, item.Category, item.ImageURL, item.Description,
	).Scan(&item.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// Update overwrites the mutable fields of an existing item.
func (r *MenuRepository) Update(ctx context.Context, id string, req models.MenuItemRequest) (*models.MenuItem, error) {
	var item models.MenuItem
	err := r.pool.QueryRow(ctx, `
		UPDATE menu_items
		SET name = $2, price = $3, category = $4, image_url = $5, description = $6
		WHERE id = $1
		RETURNING `+menuItemColumns,
		id, req.Name, req.Price, req.Category, req.ImageURL, req.Description,
	).Scan(&item.ID, &item.Name, &item.Price, &item.Category, &item.ImageURL, &item.Description, &item.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// Delete removes an item by id.
func (r *MenuRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM menu_items WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return models.ErrNotFound
	}
	return nil
}

func scanMenuItems(rows pgx.Rows) ([]models.MenuItem, error) {
	var items []models.MenuItem
	for rows.Next() {
		var item models.MenuItem
		if err := rows.Scan(&item.ID, &item.Name, &item.Price, &item.Category,
			&item.ImageURL, &item.Description, &item.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}
