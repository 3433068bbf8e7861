package services

import (
	"context"
	"fmt"

	pkgcache "github.com/ghuser/forgemart/pkg/cache"
	"github.com/ghuser/forgemart/services/catalog/domain/models"
	"github.com/ghuser/forgemart/services/catalog/domain/repositories"
)

// CatalogService serves the immutable catalogue: items, manufacturers, and
// store reference data. Item-by-id reads go through the Redis read cache.
type CatalogService struct {
	repo  repositories.CatalogRepository
	cache *pkgcache.CatalogItemCache
}

// NewCatalogService returns a CatalogService wired with the given repository and cache.
func NewCatalogService(repo repositories.CatalogRepository, itemCache *pkgcache.CatalogItemCache) *CatalogService {
	return &CatalogService{repo: repo, cache: itemCache}
}

// ItemByID retrieves a catalogue item using a read-through cache pattern:
//  1. Check Redis first.
//  2. On cache miss (or cache error), query Postgres.
//  3. Asynchronously warm the cache with the Postgres result.
func (s *CatalogService) ItemByID(ctx context.Context, id int64) (*models.Item, error) {
	if s.cache != nil {
		// Misses and cache errors both fall through to Postgres.
		if cached, err := s.cache.Get(ctx, id); err == nil {
			return cachedToItem(cached), nil
		}
	}

	item, err := s.repo.ItemByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get catalog item: %w", err)
	}

	if s.cache != nil {
		go func() {
			_ = s.cache.Set(context.Background(), itemToCached(item))
		}()
	}

	return item, nil
}

// Items returns the full catalogue ordered by id.
func (s *CatalogService) Items(ctx context.Context) ([]models.Item, error) {
	items, err := s.repo.Items(ctx)
	if err != nil {
		return nil, fmt.Errorf("list catalog items: %w", err)
	}
	return items, nil
}

// Search returns catalogue items matching the free-text query.
// An empty query returns the full catalogue.
func (s *CatalogService) Search(ctx context.Context, query string) ([]models.Item, error) {
	if query == "" {
		return s.Items(ctx)
	}
	items, err := s.repo.SearchItems(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("search catalog items: %w", err)
	}
	return items, nil
}

// ItemsByManufacturer returns one manufacturer's catalogue items ordered by id.
func (s *CatalogService) ItemsByManufacturer(ctx context.Context, manufacturerID int64) ([]models.Item, error) {
	items, err := s.repo.ItemsByManufacturer(ctx, manufacturerID)
	if err != nil {
		return nil, fmt.Errorf("list manufacturer items: %w", err)
	}
	return items, nil
}

// ItemsByUnitType returns catalogue items whose unit type matches
// case-insensitively, ordered by id.
func (s *CatalogService) ItemsByUnitType(ctx context.Context, unitType string) ([]models.Item, error) {
	items, err := s.repo.ItemsByUnitType(ctx, unitType)
	if err != nil {
		return nil, fmt.Errorf("list unit type items: %w", err)
	}
	return items, nil
}

// Stores returns every store ordered by id.
func (s *CatalogService) Stores(ctx context.Context) ([]models.Store, error) {
	stores, err := s.repo.Stores(ctx)
	if err != nil {
		return nil, fmt.Errorf("list stores: %w", err)
	}
	return stores, nil
}

// StoreByID returns one store, or domain.ErrStoreNotFound.
func (s *CatalogService) StoreByID(ctx context.Context, id int64) (*models.Store, error) {
	store, err := s.repo.StoreByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get store: %w", err)
	}
	return store, nil
}

// Manufacturers returns every manufacturer ordered by id.
func (s *CatalogService) Manufacturers(ctx context.Context) ([]models.Manufacturer, error) {
	makers, err := s.repo.Manufacturers(ctx)
	if err != nil {
		return nil, fmt.Errorf("list manufacturers: %w", err)
	}
	return makers, nil
}

// ManufacturerByID returns one manufacturer, or domain.ErrManufacturerNotFound.
func (s *CatalogService) ManufacturerByID(ctx context.Context, id int64) (*models.Manufacturer, error) {
	maker, err := s.repo.ManufacturerByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get manufacturer: %w", err)
	}
	return maker, nil
}

func cachedToItem(c *pkgcache.CachedItem) *models.Item {
	return &models.Item{
		ID:             c.ID,
		Name:           c.Name,
		GameSystem:     c.GameSystem,
		Army:           c.Army,
		UnitType:       c.UnitType,
		Description:    c.Description,
		Price:          c.Price,
		Tags:           c.Tags,
		Image:          c.Image,
		Format:         c.Format,
		Type:           c.Type,
		ManufacturerID: c.ManufacturerID,
		Downloads:      c.Downloads,
		Link:           c.Link,
	}
}

func itemToCached(i *models.Item) *pkgcache.CachedItem {
	return &pkgcache.CachedItem{
		ID:             i.ID,
		Name:           i.Name,
		GameSystem:     i.GameSystem,
		Army:           i.Army,
		UnitType:       i.UnitType,
		Description:    i.Description,
		Price:          i.Price,
		Tags:           i.Tags,
		Image:          i.Image,
		Format:         i.Format,
		Type:           i.Type,
		ManufacturerID: i.ManufacturerID,
		Downloads:      i.Downloads,
		Link:           i.Link,
	}
}
