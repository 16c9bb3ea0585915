package store

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// UpsertProduct inserts or updates a catalog product.
func (db *DB) UpsertProduct(p *Product) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	if p.CreatedAt == 0 {
		p.CreatedAt = time.Now().UnixMilli()
	}
	_, err := db.Exec(`
		INSERT INTO products (id, title, description, category, price_cents, image_url, in_stock, is_hot_deal, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			title = excluded.title,
			description = excluded.description,
			category = excluded.category,
			price_cents = excluded.price_cents,
			image_url = excluded.image_url,
			in_stock = excluded.in_stock,
			is_hot_deal = excluded.is_hot_deal`,
		p.ID, p.Title, p.Description, p.Category, p.PriceCents, p.ImageURL, p.InStock, p.IsHotDeal, p.CreatedAt)
	if err != nil {
		return fmt.Errorf("upsert product %q: %w", p.Title, err)
	}
	return nil
}

// SearchProducts performs a full-text search over product titles and
// descriptions. Out-of-stock products are excluded.
func (db *DB) SearchProducts(query string, limit int) ([]Product, error) {
	if limit <= 0 {
		limit = 10
	}
	rows, err := db.Query(`
		SELECT p.id, p.title, p.description, p.category, p.price_cents,
		       p.image_url, p.in_stock, p.is_hot_deal, p.created_at
		FROM products_fts f
		JOIN products p ON p.rowid = f.rowid
		WHERE products_fts MATCH ? AND p.in_stock = 1
		ORDER BY rank LIMIT ?`, query, limit)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()
	return scanProducts(rows)
}

// ListCategories returns the distinct non-empty product categories.
func (db *DB) ListCategories() ([]string, error) {
	rows, err := db.Query(`
		SELECT DISTINCT category FROM products
		WHERE category != '' ORDER BY category`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var cats []string
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, err
		}
		cats = append(cats, c)
	}
	return cats, rows.Err()
}

// HotDeals returns in-stock products flagged as deals, newest first.
func (db *DB) HotDeals(limit int) ([]Product, error) {
	if limit <= 0 {
		limit = 10
	}
	rows, err := db.Query(`
		SELECT id, title, description, category, price_cents, image_url, in_stock, is_hot_deal, created_at
		FROM products
		WHERE is_hot_deal = 1 AND in_stock = 1
		ORDER BY created_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()
	return scanProducts(rows)
}

type productRows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
}

func scanProducts(rows productRows) ([]Product, error) {
	var products []Product
	for rows.Next() {
		var p Product
		if err := rows.Scan(&p.ID, &p.Title, &p.Description, &p.Category,
			&p.PriceCents, &p.ImageURL, &p.InStock, &p.IsHotDeal, &p.CreatedAt); err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}
