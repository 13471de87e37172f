package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"shopchat/internal/model"
)

// QueryProducts returns the products matching filter
func (r *Repository) QueryProducts(ctx context.Context, filter model.ProductFilter) ([]model.Product, error) {
	query, args := BuildProductQuery(filter)

	products := []model.Product{}
	if err := r.db.SelectContext(ctx, &products, r.db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	return products, nil
}

// GetProductByID retrieves a single product
func (r *Repository) GetProductByID(ctx context.Context, id int64) (*model.Product, error) {
	var product model.Product
	query := r.db.Rebind("SELECT " + productColumns + " FROM products WHERE id = ?")
	if err := r.db.GetContext(ctx, &product, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get product: %w", err)
	}
	return &product, nil
}

// CountProducts returns the catalog size
func (r *Repository) CountProducts(ctx context.Context) (int, error) {
	var total int
	if err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM products"); err != nil {
		return 0, fmt.Errorf("failed to count products: %w", err)
	}
	return total, nil
}

// InsertProducts stores products in a single transaction
func (r *Repository) InsertProducts(ctx context.Context, products []model.Product) (int, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PreparexContext(ctx, tx.Rebind(`
		INSERT INTO products (name, category, price, stock, description, image_url)
		VALUES (?, ?, ?, ?, ?, ?)
	`))
	if err != nil {
		return 0, fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer stmt.Close()

	for _, p := range products {
		if _, err := stmt.ExecContext(ctx, p.Name, p.Category, p.Price, p.Stock, p.Description, p.ImageURL); err != nil {
			return 0, fmt.Errorf("failed to insert product %q: %w", p.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return len(products), nil
}
