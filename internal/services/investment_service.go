package services

import (
	"errors"
	"familypoints-backend/internal/database"
	"familypoints-backend/internal/models"
	"fmt"
	"math"
	"time"

	"gorm.io/gorm"
)

var (
	ErrProductNotFound         = errors.New("financial product not found")
	ErrProductInactive         = errors.New("financial product is no longer available")
	ErrInvalidInterestRate     = errors.New("interest rate must be between 0 and 100")
	ErrInvalidDuration         = errors.New("duration must be at least 1 day")
	ErrInvalidInvestmentAmount = errors.New("investment amount must be positive")
	ErrInsufficientBalance     = errors.New("insufficient bank balance")
	ErrInvestmentNotFound      = errors.New("investment not found")
	ErrAlreadyReleased         = errors.New("investment has already been released")
)

// InvestmentView is an active position annotated with its accrual state.
type InvestmentView struct {
	Investment     models.Investment
	CurrentAmount  float64
	InterestEarned float64
	DaysElapsed    int
	TotalDays      int
	Progress       float64
}

// DaysBetween counts whole elapsed days, flooring partial ones.
func DaysBetween(start, end time.Time) int {
	return int(math.Floor(end.Sub(start).Hours() / 24))
}

// CurrentValue compounds a nominal annual rate daily over the floored
// number of elapsed days. This is the exact accrual formula of the original
// system, not a proper day-count convention.
func CurrentValue(initialAmount, annualRate float64, start, now time.Time) float64 {
	days := DaysBetween(start, now)
	if days < 0 {
		days = 0
	}
	dailyRate := annualRate / 100 / 365
	return initialAmount * math.Pow(1+dailyRate, float64(days))
}

func ListActiveInvestments(now time.Time) ([]InvestmentView, error) {
	var investments []models.Investment
	err := database.DB.Where("status = ?", models.InvestmentActive).
		Order("start_date desc").Find(&investments).Error
	if err != nil {
		return nil, err
	}

	views := make([]InvestmentView, 0, len(investments))
	for _, inv := range investments {
		current := CurrentValue(inv.InitialAmount, inv.InterestRate, inv.StartDate, now)
		days := DaysBetween(inv.StartDate, now)
		if days < 0 {
			days = 0
		}
		totalDays := DaysBetween(inv.StartDate, inv.MaturityDate)
		views = append(views, InvestmentView{
			Investment:     inv,
			CurrentAmount:  current,
			InterestEarned: current - inv.InitialAmount,
			DaysElapsed:    days,
			TotalDays:      totalDays,
			Progress:       math.Min(100, float64(days)/float64(totalDays)*100),
		})
	}
	return views, nil
}

// ListMaturedInvestments returns active positions past their maturity date.
// They keep accruing until released; the scheduler only reports them.
func ListMaturedInvestments(now time.Time) ([]models.Investment, error) {
	var investments []models.Investment
	err := database.DB.Where("status = ? AND maturity_date <= ?", models.InvestmentActive, now).
		Find(&investments).Error
	return investments, err
}

// CreateInvestment locks part of the bank balance into a product. The
// product's rate and name are snapshotted so later edits or deletion never
// change a running position.
func CreateInvestment(productID uint, amount float64, now time.Time) (*models.Investment, float64, error) {
	if amount <= 0 {
		return nil, 0, ErrInvalidInvestmentAmount
	}

	var product models.FinancialProduct
	err := database.DB.First(&product, productID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, 0, ErrProductNotFound
	}
	if err != nil {
		return nil, 0, err
	}
	if !product.Active {
		return nil, 0, ErrProductInactive
	}

	var investment models.Investment
	var newBalance float64
	err = database.DB.Transaction(func(tx *gorm.DB) error {
		balance, err := currentBalance(tx)
		if err != nil {
			return err
		}
		if balance < amount {
			return ErrInsufficientBalance
		}

		newBalance, err = adjustBalance(tx, -amount)
		if err != nil {
			return err
		}
		reason := fmt.Sprintf("Investissement: %s", product.Name)
		if err := recordBankTransaction(tx, models.BankTransactionDebit, amount, reason); err != nil {
			return err
		}

		investment = models.Investment{
			ProductID:     product.ID,
			ProductName:   product.Name,
			ProductEmoji:  product.Emoji,
			InterestRate:  product.InterestRate,
			InitialAmount: amount,
			Amount:        amount,
			StartDate:     now,
			MaturityDate:  now.AddDate(0, 0, product.DurationDays),
			Status:        models.InvestmentActive,
		}
		return tx.Create(&investment).Error
	})
	if err != nil {
		return nil, 0, err
	}
	return &investment, newBalance, nil
}

// ReleaseInvestment credits the accrued value back to the bank and freezes
// the position. A completed investment cannot be released twice.
func ReleaseInvestment(id uint, now time.Time) (finalAmount, interestEarned, newBalance float64, err error) {
	var investment models.Investment
	err = database.DB.First(&investment, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, 0, 0, ErrInvestmentNotFound
	}
	if err != nil {
		return 0, 0, 0, err
	}
	if investment.Status == models.InvestmentCompleted {
		return 0, 0, 0, ErrAlreadyReleased
	}

	finalAmount = CurrentValue(investment.InitialAmount, investment.InterestRate, investment.StartDate, now)
	err = database.DB.Transaction(func(tx *gorm.DB) error {
		newBalance, err = adjustBalance(tx, finalAmount)
		if err != nil {
			return err
		}
		reason := fmt.Sprintf("Libération investissement: %s (+ intérêts)", investment.ProductName)
		if err := recordBankTransaction(tx, models.BankTransactionCredit, finalAmount, reason); err != nil {
			return err
		}
		return tx.Model(&investment).Updates(map[string]interface{}{
			"status": models.InvestmentCompleted,
			"amount": finalAmount,
		}).Error
	})
	if err != nil {
		return 0, 0, 0, err
	}
	return finalAmount, finalAmount - investment.InitialAmount, newBalance, nil
}

func ListFinancialProducts() ([]models.FinancialProduct, error) {
	var products []models.FinancialProduct
	if err := database.DB.Order("created_at desc").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func CreateFinancialProduct(name, description, emoji string, interestRate float64, durationDays int) (*models.FinancialProduct, error) {
	if math.IsNaN(interestRate) || interestRate < 0 || interestRate > 100 {
		return nil, ErrInvalidInterestRate
	}
	if durationDays < 1 {
		return nil, ErrInvalidDuration
	}

	product := models.FinancialProduct{
		Name:         name,
		Description:  description,
		Emoji:        emoji,
		InterestRate: interestRate,
		DurationDays: durationDays,
		Active:       true,
	}
	if err := database.DB.Create(&product).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

func DeleteFinancialProduct(id uint) error {
	result := database.DB.Delete(&models.FinancialProduct{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrProductNotFound
	}
	return nil
}
