package services

import (
	"errors"
	"familypoints-backend/internal/database"
	"familypoints-backend/internal/models"
	"fmt"

	"gorm.io/gorm"
)

var (
	ErrConversionNotFound = errors.New("conversion not found")
	ErrInsufficientPoints = errors.New("insufficient points")
)

type ExchangeResult struct {
	Item           models.CatalogItem
	TotalPoints    int
	Required       int
	Current        int
	BankCredited   bool
	CreditedAmount float64
}

// Exchange spends points on a conversion. A negative total blocks every
// exchange, even ones the remaining balance could cover. Money-category
// conversions also credit the bank account with the item's monetary value;
// when no value can be determined the bank is silently left untouched,
// matching the original behavior.
func Exchange(conversionID uint) (*ExchangeResult, error) {
	var item models.CatalogItem
	err := database.DB.Where("kind = ?", models.CatalogKindConversion).First(&item, conversionID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrConversionNotFound
	}
	if err != nil {
		return nil, err
	}

	result := &ExchangeResult{Item: item, Required: item.PointsRequired}
	err = database.DB.Transaction(func(tx *gorm.DB) error {
		current, err := currentPoints(tx)
		if err != nil {
			return err
		}
		result.Current = current
		if current < item.PointsRequired || current < 0 {
			return ErrInsufficientPoints
		}

		total, err := adjustPoints(tx, -item.PointsRequired)
		if err != nil {
			return err
		}
		result.TotalPoints = total

		reason := fmt.Sprintf("Échange: %s", item.Name)
		if err := recordPointTransaction(tx, models.PointTransactionRemove, item.PointsRequired, reason); err != nil {
			return err
		}

		if item.Category != models.CategoryMoney {
			return nil
		}
		amount, ok := item.MonetaryValue()
		if !ok {
			return nil
		}
		if _, err := adjustBalance(tx, amount); err != nil {
			return err
		}
		if err := recordBankTransaction(tx, models.BankTransactionCredit, amount, "Conversion de points"); err != nil {
			return err
		}
		result.BankCredited = true
		result.CreditedAmount = amount
		return nil
	})
	if err != nil {
		return result, err
	}
	invalidatePointsCache()
	return result, nil
}
