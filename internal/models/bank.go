package models

import "time"

type BankTransactionType string

const (
	BankTransactionCredit BankTransactionType = "credit"
	BankTransactionDebit  BankTransactionType = "debit"
)

// BankAccount is the singleton pocket-money balance, independent from the
// points total except through money-category exchanges. Only investment
// purchases check for a sufficient balance; direct admin edits may set any
// value.
type BankAccount struct {
	ID        uint    `gorm:"primarykey"`
	CreatedAt time.Time
	UpdatedAt time.Time
	Balance   float64 `gorm:"type:decimal(12,2);not null;default:0"`
}

type BankTransaction struct {
	ID        uint                `gorm:"primarykey"`
	CreatedAt time.Time
	Type      BankTransactionType `gorm:"type:varchar(10);not null;index"`
	Amount    float64             `gorm:"type:decimal(12,2);not null"` // magnitude, >= 0
	Reason    string              `gorm:"type:text;not null"`
	Timestamp int64               `gorm:"not null;index"` // epoch ms
}
