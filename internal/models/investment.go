package models

import "time"

type InvestmentStatus string

const (
	InvestmentActive    InvestmentStatus = "active"
	InvestmentCompleted InvestmentStatus = "completed"
)

type FinancialProduct struct {
	ID           uint    `gorm:"primarykey"`
	CreatedAt    time.Time
	Name         string  `gorm:"type:varchar(255);not null"`
	Description  string  `gorm:"type:text;not null"`
	Emoji        string  `gorm:"type:varchar(16)"`
	InterestRate float64 `gorm:"type:decimal(5,2);not null"` // annual, 0-100
	DurationDays int     `gorm:"not null"`
	Active       bool    `gorm:"not null;default:true"`
}

// Investment keeps its ProductID even after the product is deleted, so the
// terms are snapshotted: the rate and name used for accrual are copied at
// creation and later product edits never affect a running position.
type Investment struct {
	ID            uint             `gorm:"primarykey"`
	CreatedAt     time.Time
	ProductID     uint             `gorm:"not null;index"`
	ProductName   string           `gorm:"type:varchar(255);not null"`
	ProductEmoji  string           `gorm:"type:varchar(16)"`
	InterestRate  float64          `gorm:"type:decimal(5,2);not null"`
	InitialAmount float64          `gorm:"type:decimal(12,2);not null"`
	Amount        float64          `gorm:"type:decimal(12,2);not null"` // frozen to the final value on release
	StartDate     time.Time        `gorm:"not null"`
	MaturityDate  time.Time        `gorm:"not null"`
	Status        InvestmentStatus `gorm:"type:varchar(20);not null;index;default:'active'"`
}
