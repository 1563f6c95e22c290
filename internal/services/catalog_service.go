package services

import (
	"errors"
	"familypoints-backend/internal/database"
	"familypoints-backend/internal/models"
)

var ErrCatalogItemNotFound = errors.New("catalog item not found")

func ListCatalogItems(kind models.CatalogKind) ([]models.CatalogItem, error) {
	var items []models.CatalogItem
	err := database.DB.Where("kind = ?", kind).Order("created_at asc").Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

// CreateCatalogItem stores a new conversion or task. PointsRequired is
// taken as a magnitude; tasks are stored pre-negated, conversions positive,
// matching the historical storage convention.
func CreateCatalogItem(kind models.CatalogKind, name, description string, pointsRequired int, emoji string, category models.CatalogCategory, amount *float64) (*models.CatalogItem, error) {
	points := pointsRequired
	if points < 0 {
		points = -points
	}
	if points == 0 {
		return nil, ErrInvalidPointAmount
	}
	if kind == models.CatalogKindTask {
		points = -points
	}

	item := models.CatalogItem{
		Kind:           kind,
		Name:           name,
		Description:    description,
		PointsRequired: points,
		Emoji:          emoji,
		Category:       category,
		Amount:         amount,
	}
	if err := database.DB.Create(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// DeleteCatalogItem removes a catalog entry. Past transactions referencing
// it by name are untouched.
func DeleteCatalogItem(kind models.CatalogKind, id uint) error {
	result := database.DB.Where("kind = ?", kind).Delete(&models.CatalogItem{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCatalogItemNotFound
	}
	return nil
}
