// Package catalog implements the generator's Toolset against the
// product tables in the app store.
package catalog

import (
	"context"

	"github.com/quicksell-labs/martbot/internal/config"
	"github.com/quicksell-labs/martbot/internal/genai"
	"github.com/quicksell-labs/martbot/internal/store"
)

// searchLimit bounds how many products a single tool call returns.
const searchLimit = 8

// Catalog answers product and store lookups for the generator.
type Catalog struct {
	db   *store.DB
	info genai.StoreInfo
}

// New creates a catalog toolset for the configured store identity.
func New(db *store.DB, cfg config.Store) *Catalog {
	return &Catalog{
		db: db,
		info: genai.StoreInfo{
			Name:    cfg.Name,
			Phone:   cfg.Phone,
			URL:     cfg.URL,
			Address: cfg.Address,
		},
	}
}

// Search finds in-stock products matching the query.
func (c *Catalog) Search(_ context.Context, query string) ([]store.Product, error) {
	return c.db.SearchProducts(query, searchLimit)
}

// ListCategories returns the distinct product categories.
func (c *Catalog) ListCategories(_ context.Context) ([]string, error) {
	return c.db.ListCategories()
}

// HotDeals returns products currently on promotion.
func (c *Catalog) HotDeals(_ context.Context) ([]store.Product, error) {
	return c.db.HotDeals(searchLimit)
}

// StoreDetails returns the configured store identity.
func (c *Catalog) StoreDetails(_ context.Context) (genai.StoreInfo, error) {
	return c.info, nil
}
