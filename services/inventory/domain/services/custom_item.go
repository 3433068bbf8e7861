// Package services contains stateless domain services for the inventory
// bounded context. They enforce business rules operating purely on domain
// types, with no external dependencies beyond stdlib and the domain layer.
package services

import (
	"fmt"
	"strings"

	catalogmodels "github.com/ghuser/forgemart/services/catalog/domain/models"
	domain "github.com/ghuser/forgemart/services/inventory/domain"
)

// CustomItemDraft is the operator-supplied input for a store-authored item.
type CustomItemDraft struct {
	Name        string
	GameSystem  string
	Army        string
	UnitType    string
	Description string
	Price       float64
	Tags        []string
	Image       string
	Format      string
	Type        string
}

// NewCustomItem validates a draft and builds the custom Item it describes.
// The caller assigns the identifier. Rules:
//   - name, game system, army, unit type, and description are required
//   - price must be a finite non-negative number
//   - when no tags are given, tags default to the lowercased game system,
//     army, and unit type
//
// A custom item always carries manufacturer id 0.
func NewCustomItem(id int64, draft CustomItemDraft) (*catalogmodels.Item, error) {
	for field, value := range map[string]string{
		"name":        draft.Name,
		"game_system": draft.GameSystem,
		"army":        draft.Army,
		"unit_type":   draft.UnitType,
		"description": draft.Description,
	} {
		if strings.TrimSpace(value) == "" {
			return nil, fmt.Errorf("%w: %s is required", domain.ErrInvalidItem, field)
		}
	}

	if price := draft.Price; price < 0 || price != price {
		return nil, domain.ErrInvalidPrice
	}

	tags := draft.Tags
	if len(tags) == 0 {
		tags = []string{
			strings.ToLower(draft.GameSystem),
			strings.ToLower(draft.Army),
			strings.ToLower(draft.UnitType),
		}
	}

	format := draft.Format
	if format == "" {
		format = "3D"
	}
	itemType := draft.Type
	if itemType == "" {
		itemType = "unit"
	}

	return &catalogmodels.Item{
		ID:             id,
		Name:           strings.TrimSpace(draft.Name),
		GameSystem:     strings.TrimSpace(draft.GameSystem),
		Army:           strings.TrimSpace(draft.Army),
		UnitType:       strings.TrimSpace(draft.UnitType),
		Description:    strings.TrimSpace(draft.Description),
		Price:          catalogmodels.RoundPrice(draft.Price),
		Tags:           tags,
		Image:          strings.TrimSpace(draft.Image),
		Format:         format,
		Type:           itemType,
		ManufacturerID: catalogmodels.StoreOriginalManufacturerID,
	}, nil
}
