package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ghuser/forgemart/pkg/database"
	catalogdomain "github.com/ghuser/forgemart/services/catalog/domain"
	"github.com/ghuser/forgemart/services/catalog/domain/models"
)

const itemColumns = `id, name, game_system, army, unit_type, description,
	price, tags, image, format, item_type, manufacturer_id, downloads, link`

// CatalogRepository implements repositories.CatalogRepository against PostgreSQL.
// The catalogue is immutable reference data seeded by migrations, so the
// repository exposes reads only.
type CatalogRepository struct {
	db *database.Database
}

// NewCatalogRepository returns a CatalogRepository backed by the given pool.
func NewCatalogRepository(db *database.Database) *CatalogRepository {
	return &CatalogRepository{db: db}
}

// ItemByID returns the catalogue item with the given id.
func (r *CatalogRepository) ItemByID(ctx context.Context, id int64) (*models.Item, error) {
	row := r.db.DB().QueryRowContext(ctx,
		`SELECT `+itemColumns+` FROM catalog_items WHERE id = $1`, id)
	item, err := scanItem(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, catalogdomain.ErrItemNotFound
		}
		return nil, fmt.Errorf("query item: %w", err)
	}
	return item, nil
}

// Items returns every catalogue item ordered by id.
func (r *CatalogRepository) Items(ctx context.Context) ([]models.Item, error) {
	return r.queryItems(ctx,
		`SELECT `+itemColumns+` FROM catalog_items ORDER BY id`)
}

// ItemsByManufacturer returns catalogue items for one manufacturer.
func (r *CatalogRepository) ItemsByManufacturer(ctx context.Context, manufacturerID int64) ([]models.Item, error) {
	return r.queryItems(ctx,
		`SELECT `+itemColumns+` FROM catalog_items WHERE manufacturer_id = $1 ORDER BY id`,
		manufacturerID)
}

// ItemsByUnitType returns catalogue items whose unit type matches case-insensitively.
func (r *CatalogRepository) ItemsByUnitType(ctx context.Context, unitType string) ([]models.Item, error) {
	return r.queryItems(ctx,
		`SELECT `+itemColumns+` FROM catalog_items WHERE lower(unit_type) = lower($1) ORDER BY id`,
		unitType)
}

// SearchItems matches the query case-insensitively against name, description,
// army, unit type, or any tag.
func (r *CatalogRepository) SearchItems(ctx context.Context, query string) ([]models.Item, error) {
	pattern := "%" + query + "%"
	return r.queryItems(ctx,
		`SELECT `+itemColumns+` FROM catalog_items
		 WHERE name ILIKE $1
		    OR description ILIKE $1
		    OR army ILIKE $1
		    OR unit_type ILIKE $1
		    OR EXISTS (
		         SELECT 1 FROM jsonb_array_elements_text(tags) AS tag
		         WHERE tag ILIKE $1
		       )
		 ORDER BY id`,
		pattern)
}

// Stores returns every store ordered by id.
func (r *CatalogRepository) Stores(ctx context.Context) ([]models.Store, error) {
	rows, err := r.db.DB().QueryContext(ctx,
		`SELECT id, name, description, since, logo, owner FROM stores ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("query stores: %w", err)
	}
	defer rows.Close() //nolint:errcheck

	var stores []models.Store
	for rows.Next() {
		var s models.Store
		var owner sql.NullString
		if err := rows.Scan(&s.ID, &s.Name, &s.Description, &s.Since, &s.Logo, &owner); err != nil {
			return nil, fmt.Errorf("scan store: %w", err)
		}
		s.Owner = owner.String
		stores = append(stores, s)
	}
	return stores, rows.Err()
}

// StoreByID returns one store.
func (r *CatalogRepository) StoreByID(ctx context.Context, id int64) (*models.Store, error) {
	var s models.Store
	var owner sql.NullString
	err := r.db.DB().QueryRowContext(ctx,
		`SELECT id, name, description, since, logo, owner FROM stores WHERE id = $1`, id).
		Scan(&s.ID, &s.Name, &s.Description, &s.Since, &s.Logo, &owner)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, catalogdomain.ErrStoreNotFound
		}
		return nil, fmt.Errorf("query store: %w", err)
	}
	s.Owner = owner.String
	return &s, nil
}

// Manufacturers returns every manufacturer ordered by id.
func (r *CatalogRepository) Manufacturers(ctx context.Context) ([]models.Manufacturer, error) {
	rows, err := r.db.DB().QueryContext(ctx,
		`SELECT id, name, description, since, logo, website FROM manufacturers ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("query manufacturers: %w", err)
	}
	defer rows.Close() //nolint:errcheck

	var makers []models.Manufacturer
	for rows.Next() {
		var m models.Manufacturer
		var website sql.NullString
		if err := rows.Scan(&m.ID, &m.Name, &m.Description, &m.Since, &m.Logo, &website); err != nil {
			return nil, fmt.Errorf("scan manufacturer: %w", err)
		}
		m.Website = website.String
		makers = append(makers, m)
	}
	return makers, rows.Err()
}

// ManufacturerByID returns one manufacturer.
func (r *CatalogRepository) ManufacturerByID(ctx context.Context, id int64) (*models.Manufacturer, error) {
	var m models.Manufacturer
	var website sql.NullString
	err := r.db.DB().QueryRowContext(ctx,
		`SELECT id, name, description, since, logo, website FROM manufacturers WHERE id = $1`, id).
		Scan(&m.ID, &m.Name, &m.Description, &m.Since, &m.Logo, &website)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, catalogdomain.ErrManufacturerNotFound
		}
		return nil, fmt.Errorf("query manufacturer: %w", err)
	}
	m.Website = website.String
	return &m, nil
}

func (r *CatalogRepository) queryItems(ctx context.Context, query string, args ...any) ([]models.Item, error) {
	rows, err := r.db.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query items: %w", err)
	}
	defer rows.Close() //nolint:errcheck

	var items []models.Item
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		items = append(items, *item)
	}
	return items, rows.Err()
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanItem(row rowScanner) (*models.Item, error) {
	var item models.Item
	var tags []byte
	var link sql.NullString
	if err := row.Scan(
		&item.ID, &item.Name, &item.GameSystem, &item.Army, &item.UnitType,
		&item.Description, &item.Price, &tags, &item.Image, &item.Format,
		&item.Type, &item.ManufacturerID, &item.Downloads, &link,
	); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(tags, &item.Tags); err != nil {
		return nil, fmt.Errorf("decode tags: %w", err)
	}
	item.Link = link.String
	return &item, nil
}
