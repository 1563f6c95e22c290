package services

import (
	"familypoints-backend/internal/models"
	"testing"

	"github.com/stretchr/testify/assert"
)

func createConversion(t *testing.T, name string, points int, category models.CatalogCategory, amount *float64) *models.CatalogItem {
	t.Helper()
	item, err := CreateCatalogItem(models.CatalogKindConversion, name, "desc", points, "🎁", category, amount)
	assert.NoError(t, err)
	return item
}

func TestExchangeInsufficientPoints(t *testing.T) {
	setupTestDB(t)
	item := createConversion(t, "Cinéma", 50, models.CategoryActivity, nil)

	_, err := AddPoints(20, "chores")
	assert.NoError(t, err)

	_, err = Exchange(item.ID)
	assert.ErrorIs(t, err, ErrInsufficientPoints)

	total, _ := GetTotalPoints()
	assert.Equal(t, 20, total)
}

func TestExchangeBlockedWhileInDebt(t *testing.T) {
	setupTestDB(t)
	item := createConversion(t, "Bonbons", 1, models.CategoryGift, nil)

	_, err := RemovePoints(5, "bêtise")
	assert.NoError(t, err)

	// A negative total blocks every exchange, even a 1-point one.
	_, err = Exchange(item.ID)
	assert.ErrorIs(t, err, ErrInsufficientPoints)
}

func TestExchangeNotFound(t *testing.T) {
	setupTestDB(t)
	_, err := Exchange(12345)
	assert.ErrorIs(t, err, ErrConversionNotFound)
}

func TestExchangeMoneyCreditsBankFromName(t *testing.T) {
	setupTestDB(t)
	item := createConversion(t, "5€ d'argent de poche", 25, models.CategoryMoney, nil)

	_, err := AddPoints(30, "chores")
	assert.NoError(t, err)

	result, err := Exchange(item.ID)
	assert.NoError(t, err)
	assert.Equal(t, 5, result.TotalPoints)
	assert.True(t, result.BankCredited)
	assert.Equal(t, 5.0, result.CreditedAmount)

	balance, _ := GetBalance()
	assert.Equal(t, 5.0, balance)

	bankTxs, _ := ListBankTransactions()
	assert.Len(t, bankTxs, 1)
	assert.Equal(t, models.BankTransactionCredit, bankTxs[0].Type)
	assert.Equal(t, "Conversion de points", bankTxs[0].Reason)

	summary, _ := GetPoints()
	assert.Equal(t, "Échange: 5€ d'argent de poche", summary.Transactions[0].Reason)
}

func TestExchangeMoneyPrefersStructuredAmount(t *testing.T) {
	setupTestDB(t)
	amount := 2.5
	item := createConversion(t, "Argent de poche", 10, models.CategoryMoney, &amount)

	_, err := AddPoints(10, "chores")
	assert.NoError(t, err)

	result, err := Exchange(item.ID)
	assert.NoError(t, err)
	assert.True(t, result.BankCredited)
	assert.Equal(t, 2.5, result.CreditedAmount)
}

func TestExchangeMoneyWithoutAmountSkipsBank(t *testing.T) {
	setupTestDB(t)
	item := createConversion(t, "Argent surprise", 10, models.CategoryMoney, nil)

	_, err := AddPoints(10, "chores")
	assert.NoError(t, err)

	// No parseable amount anywhere: points are spent, bank untouched.
	result, err := Exchange(item.ID)
	assert.NoError(t, err)
	assert.False(t, result.BankCredited)

	balance, _ := GetBalance()
	assert.Equal(t, 0.0, balance)
}

func TestExchangeNonMoneyLeavesBankAlone(t *testing.T) {
	setupTestDB(t)
	item := createConversion(t, "Sortie vélo", 10, models.CategoryActivity, nil)

	_, err := AddPoints(10, "chores")
	assert.NoError(t, err)

	result, err := Exchange(item.ID)
	assert.NoError(t, err)
	assert.Equal(t, 0, result.TotalPoints)

	bankTxs, _ := ListBankTransactions()
	assert.Len(t, bankTxs, 0)
}

func TestTaskStoredPreNegated(t *testing.T) {
	setupTestDB(t)

	task, err := CreateCatalogItem(models.CatalogKindTask, "Ranger sa chambre", "desc", 5, "🧹", models.CategoryActivity, nil)
	assert.NoError(t, err)
	assert.Equal(t, -5, task.PointsRequired)

	// Tasks never show up as exchangeable conversions.
	_, err = Exchange(task.ID)
	assert.ErrorIs(t, err, ErrConversionNotFound)

	conversion, err := CreateCatalogItem(models.CatalogKindConversion, "Cadeau", "desc", -10, "🎁", models.CategoryGift, nil)
	assert.NoError(t, err)
	assert.Equal(t, 10, conversion.PointsRequired)
}

func TestDeleteCatalogItem(t *testing.T) {
	setupTestDB(t)
	item := createConversion(t, "Cinéma", 50, models.CategoryActivity, nil)

	assert.NoError(t, DeleteCatalogItem(models.CatalogKindConversion, item.ID))
	assert.ErrorIs(t, DeleteCatalogItem(models.CatalogKindConversion, item.ID), ErrCatalogItemNotFound)

	// Deleting by the wrong kind does not touch the row
	task, _ := CreateCatalogItem(models.CatalogKindTask, "Vaisselle", "desc", 3, "🍽️", models.CategoryActivity, nil)
	assert.ErrorIs(t, DeleteCatalogItem(models.CatalogKindConversion, task.ID), ErrCatalogItemNotFound)

	items, _ := ListCatalogItems(models.CatalogKindTask)
	assert.Len(t, items, 1)
}
