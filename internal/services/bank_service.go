package services

import (
	"errors"
	"familypoints-backend/internal/database"
	"familypoints-backend/internal/models"
	"math"
	"time"

	"gorm.io/gorm"
)

var (
	ErrInvalidBankAmount       = errors.New("amount must be a positive number")
	ErrBankTransactionNotFound = errors.New("bank transaction not found")
)

// GetBalance returns the current balance, 0 when no account row exists yet.
func GetBalance() (float64, error) {
	return currentBalance(database.DB)
}

// SetBalance overwrites the balance. When createHistory is set and the
// delta is non-zero, a credit/debit row typed from the sign of the delta is
// appended; reason defaults to "Ajout manuel"/"Retrait manuel".
func SetBalance(newBalance float64, createHistory bool, reason string) (float64, error) {
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		oldBalance, err := currentBalance(tx)
		if err != nil {
			return err
		}
		if err := writeBalance(tx, newBalance); err != nil {
			return err
		}

		difference := newBalance - oldBalance
		if !createHistory || difference == 0 {
			return nil
		}

		txType := models.BankTransactionCredit
		defaultReason := "Ajout manuel"
		if difference < 0 {
			txType = models.BankTransactionDebit
			defaultReason = "Retrait manuel"
		}
		if reason == "" {
			reason = defaultReason
		}
		return recordBankTransaction(tx, txType, math.Abs(difference), reason)
	})
	if err != nil {
		return 0, err
	}
	return newBalance, nil
}

// CreditBank adds money to the account and always appends a credit row,
// unlike SetBalance whose history row is conditional.
func CreditBank(amount float64, reason string) (float64, error) {
	if amount <= 0 {
		return 0, ErrInvalidBankAmount
	}
	if reason == "" {
		reason = "Conversion de points"
	}

	var newBalance float64
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		balance, err := adjustBalance(tx, amount)
		if err != nil {
			return err
		}
		newBalance = balance
		return recordBankTransaction(tx, models.BankTransactionCredit, amount, reason)
	})
	if err != nil {
		return 0, err
	}
	return newBalance, nil
}

func ListBankTransactions() ([]models.BankTransaction, error) {
	var transactions []models.BankTransaction
	if err := database.DB.Order("timestamp desc, id desc").Find(&transactions).Error; err != nil {
		return nil, err
	}
	return transactions, nil
}

// DeleteBankTransaction removes a history row only; the balance is
// unaffected.
func DeleteBankTransaction(id uint) error {
	result := database.DB.Delete(&models.BankTransaction{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrBankTransactionNotFound
	}
	return nil
}

func currentBalance(tx *gorm.DB) (float64, error) {
	var account models.BankAccount
	err := tx.Order("created_at desc").First(&account).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return account.Balance, nil
}

func writeBalance(tx *gorm.DB, balance float64) error {
	var account models.BankAccount
	err := tx.Order("created_at desc").First(&account).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return tx.Create(&models.BankAccount{Balance: balance}).Error
	}
	if err != nil {
		return err
	}
	return tx.Model(&account).Update("balance", balance).Error
}

// adjustBalance applies a signed delta inside tx and returns the new
// balance, creating the account row on first write.
func adjustBalance(tx *gorm.DB, delta float64) (float64, error) {
	balance, err := currentBalance(tx)
	if err != nil {
		return 0, err
	}
	balance += delta
	if err := writeBalance(tx, balance); err != nil {
		return 0, err
	}
	return balance, nil
}

func recordBankTransaction(tx *gorm.DB, txType models.BankTransactionType, amount float64, reason string) error {
	record := models.BankTransaction{
		Type:      txType,
		Amount:    amount,
		Reason:    reason,
		Timestamp: time.Now().UnixMilli(),
	}
	return tx.Create(&record).Error
}
