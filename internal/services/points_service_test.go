package services

import (
	"familypoints-backend/internal/database"
	"familypoints-backend/internal/models"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/glebarez/sqlite"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}

	allModels := []interface{}{
		&models.PointsAccount{},
		&models.PointTransaction{},
		&models.CatalogItem{},
		&models.BankAccount{},
		&models.BankTransaction{},
		&models.FinancialProduct{},
		&models.Investment{},
		&models.DailyBonus{},
		&models.WheelOfFortune{},
		&models.AdminPassword{},
	}
	db.Migrator().DropTable(allModels...)
	if err := db.AutoMigrate(allModels...); err != nil {
		t.Fatalf("failed to migrate database: %v", err)
	}

	database.DB = db
	database.RedisClient = nil
}

func TestAddRemoveRoundTrip(t *testing.T) {
	setupTestDB(t)

	total, err := AddPoints(10, "chore")
	assert.NoError(t, err)
	assert.Equal(t, 10, total)

	total, err = RemovePoints(3, "fine")
	assert.NoError(t, err)
	assert.Equal(t, 7, total)

	summary, err := GetPoints()
	assert.NoError(t, err)
	assert.Equal(t, 7, summary.TotalPoints)
	assert.Len(t, summary.Transactions, 2)

	// Newest first
	assert.Equal(t, models.PointTransactionRemove, summary.Transactions[0].Type)
	assert.Equal(t, 3, summary.Transactions[0].Amount)
	assert.Equal(t, models.PointTransactionAdd, summary.Transactions[1].Type)
	assert.Equal(t, 10, summary.Transactions[1].Amount)
}

func TestRemovePointsGoesNegative(t *testing.T) {
	setupTestDB(t)

	total, err := RemovePoints(5, "punishment")
	assert.NoError(t, err)
	assert.Equal(t, -5, total)

	// Negative amounts are treated by magnitude
	total, err = RemovePoints(-3, "more")
	assert.NoError(t, err)
	assert.Equal(t, -8, total)
}

func TestAddPointsValidation(t *testing.T) {
	setupTestDB(t)

	_, err := AddPoints(0, "nothing")
	assert.ErrorIs(t, err, ErrInvalidPointAmount)

	_, err = AddPoints(-5, "negative")
	assert.ErrorIs(t, err, ErrInvalidPointAmount)

	_, err = AddPoints(5, "   ")
	assert.ErrorIs(t, err, ErrMissingReason)

	_, err = RemovePoints(0, "zero")
	assert.ErrorIs(t, err, ErrInvalidPointAmount)
}

func TestSetPointsRecordsNoHistory(t *testing.T) {
	setupTestDB(t)

	_, err := AddPoints(4, "chore")
	assert.NoError(t, err)

	assert.NoError(t, SetPoints(42))

	summary, err := GetPoints()
	assert.NoError(t, err)
	assert.Equal(t, 42, summary.TotalPoints)
	assert.Len(t, summary.Transactions, 1) // only the original add
}

func TestDeleteTransactionKeepsTotal(t *testing.T) {
	setupTestDB(t)

	_, err := AddPoints(10, "chore")
	assert.NoError(t, err)

	summary, _ := GetPoints()
	assert.NoError(t, DeleteTransaction(summary.Transactions[0].ID))

	summary, _ = GetPoints()
	assert.Equal(t, 10, summary.TotalPoints)
	assert.Len(t, summary.Transactions, 0)

	assert.ErrorIs(t, DeleteTransaction(9999), ErrTransactionNotFound)
}

func TestPointsCache(t *testing.T) {
	setupTestDB(t)

	mr := miniredis.RunT(t)
	database.RedisClient = redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer func() { database.RedisClient = nil }()

	_, err := AddPoints(5, "chore")
	assert.NoError(t, err)

	total, err := GetTotalPoints()
	assert.NoError(t, err)
	assert.Equal(t, 5, total)
	assert.True(t, mr.Exists(pointsCacheKey))

	// Writes invalidate the cached total
	_, err = AddPoints(3, "another chore")
	assert.NoError(t, err)
	assert.False(t, mr.Exists(pointsCacheKey))

	total, err = GetTotalPoints()
	assert.NoError(t, err)
	assert.Equal(t, 8, total)
}
