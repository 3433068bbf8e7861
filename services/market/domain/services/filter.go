package services

import (
	"sort"
	"strings"

	"github.com/ghuser/forgemart/services/market/domain/models"
)

// FilterAll is the sentinel selection that matches everything. An empty
// selection means the same thing.
const FilterAll = "all"

// Price buckets. Free matches zero-priced listings, Premium everything else.
const (
	PriceBucketAll     = "all"
	PriceBucketFree    = "free"
	PriceBucketPremium = "premium"
)

// Sort keys. Default preserves input order; popular ranks by download count
// descending. All sorts are stable so equal-key entries keep their relative
// input positions across re-renders.
const (
	SortDefault   = "default"
	SortPopular   = "popular"
	SortPriceAsc  = "price_asc"
	SortPriceDesc = "price_desc"
)

// SearchEntry is one filterable row: a listing joined with the display
// labels the free-text match sees.
type SearchEntry struct {
	Item             models.PricedItem
	StoreName        string
	ManufacturerName string
}

// Criteria is a conjunction of independently optional filters plus a sort
// key. Category fields use FilterAll (or empty) to match everything.
type Criteria struct {
	Query        string
	GameSystem   string
	Army         string
	UnitType     string
	Manufacturer string
	Store        string
	Format       string
	Type         string
	PriceBucket  string
	Sort         string
}

// Options is the per-filter option set offered for the current selections.
// Each category is narrowed by the selections upstream of it only
// (game system, then army, then unit type, then manufacturer).
type Options struct {
	GameSystems   []string
	Armies        []string
	UnitTypes     []string
	Manufacturers []string
}

// FilterSort returns the subset of pool matching every criterion, ordered by
// the requested sort key. Pure: the result is re-derivable identically from
// the same inputs, and is always a subset of pool.
func FilterSort(pool []SearchEntry, c Criteria) []SearchEntry {
	out := make([]SearchEntry, 0, len(pool))
	for _, e := range pool {
		if matches(e, c) {
			out = append(out, e)
		}
	}
	sortEntries(out, c.Sort)
	return out
}

func matches(e SearchEntry, c Criteria) bool {
	if !matchesQuery(e, c.Query) {
		return false
	}
	item := e.Item.Item
	if !selected(c.GameSystem, item.GameSystem) ||
		!selected(c.Army, item.Army) ||
		!selected(c.UnitType, item.UnitType) ||
		!selected(c.Manufacturer, e.ManufacturerName) ||
		!selected(c.Store, e.StoreName) ||
		!selected(c.Format, item.Format) ||
		!selected(c.Type, item.Type) {
		return false
	}
	return matchesPriceBucket(e.Item.Price, c.PriceBucket)
}

// selected reports whether value satisfies a category selection; FilterAll
// and empty selections match everything.
func selected(selection, value string) bool {
	if selection == "" || strings.EqualFold(selection, FilterAll) {
		return true
	}
	return strings.EqualFold(selection, value)
}

// matchesQuery does a case-insensitive substring match over every label a
// shopper can see: name, description, tags, army, unit type, manufacturer,
// and store.
func matchesQuery(e SearchEntry, query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}
	item := e.Item.Item
	fields := []string{
		item.Name, item.Description, item.Army, item.UnitType,
		e.ManufacturerName, e.StoreName,
	}
	fields = append(fields, item.Tags...)
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), q) {
			return true
		}
	}
	return false
}

func matchesPriceBucket(price float64, bucket string) bool {
	switch bucket {
	case PriceBucketFree:
		return price == 0
	case PriceBucketPremium:
		return price > 0
	default:
		return true
	}
}

func sortEntries(entries []SearchEntry, key string) {
	switch key {
	case SortPopular:
		sort.SliceStable(entries, func(i, j int) bool {
			return entries[i].Item.Item.Downloads > entries[j].Item.Item.Downloads
		})
	case SortPriceAsc:
		sort.SliceStable(entries, func(i, j int) bool {
			return entries[i].Item.Price < entries[j].Item.Price
		})
	case SortPriceDesc:
		sort.SliceStable(entries, func(i, j int) bool {
			return entries[i].Item.Price > entries[j].Item.Price
		})
	default:
		// input order
	}
}

// FilterOptions computes the cascading option sets for the current
// selections. Each category is narrowed only by the categories upstream of
// it, so a downstream choice never hides its own siblings.
func FilterOptions(pool []SearchEntry, c Criteria) Options {
	var opts Options
	opts.GameSystems = distinct(pool, Criteria{}, func(e SearchEntry) string {
		return e.Item.Item.GameSystem
	})
	opts.Armies = distinct(pool, Criteria{GameSystem: c.GameSystem}, func(e SearchEntry) string {
		return e.Item.Item.Army
	})
	opts.UnitTypes = distinct(pool, Criteria{GameSystem: c.GameSystem, Army: c.Army}, func(e SearchEntry) string {
		return e.Item.Item.UnitType
	})
	opts.Manufacturers = distinct(pool, Criteria{GameSystem: c.GameSystem, Army: c.Army, UnitType: c.UnitType}, func(e SearchEntry) string {
		return e.ManufacturerName
	})
	return opts
}

// CascadeReset applies the upstream-reset rule: when a category selection
// changes, every category downstream of it returns to FilterAll. prev is the
// previously applied criteria, next the incoming one.
func CascadeReset(prev, next Criteria) Criteria {
	switch {
	case !strings.EqualFold(prev.GameSystem, next.GameSystem):
		next.Army, next.UnitType, next.Manufacturer = FilterAll, FilterAll, FilterAll
	case !strings.EqualFold(prev.Army, next.Army):
		next.UnitType, next.Manufacturer = FilterAll, FilterAll
	case !strings.EqualFold(prev.UnitType, next.UnitType):
		next.Manufacturer = FilterAll
	}
	return next
}

// distinct collects the ordered set of non-empty labels from entries that
// match the narrowing criteria, preserving first-seen order.
func distinct(pool []SearchEntry, narrow Criteria, label func(SearchEntry) string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, e := range pool {
		if !matches(e, narrow) {
			continue
		}
		v := label(e)
		if v == "" {
			continue
		}
		key := strings.ToLower(v)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, v)
	}
	return out
}
