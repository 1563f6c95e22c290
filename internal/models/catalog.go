package models

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

type CatalogKind string

const (
	CatalogKindConversion CatalogKind = "conversion"
	CatalogKindTask       CatalogKind = "task"
)

type CatalogCategory string

const (
	CategoryMoney    CatalogCategory = "money"
	CategoryActivity CatalogCategory = "activity"
	CategoryGift     CatalogCategory = "gift"
)

// CatalogItem covers both reward conversions and payback tasks, which share
// the same shape. PointsRequired keeps the storage convention of the
// original app: positive for conversions, pre-negated for tasks.
type CatalogItem struct {
	ID             uint            `gorm:"primarykey"`
	CreatedAt      time.Time
	Kind           CatalogKind     `gorm:"type:varchar(20);not null;index"`
	Name           string          `gorm:"type:varchar(255);not null"`
	Description    string          `gorm:"type:text;not null"`
	PointsRequired int             `gorm:"not null"`
	Emoji          string          `gorm:"type:varchar(16)"`
	Category       CatalogCategory `gorm:"type:varchar(20);not null"`
	// Structured monetary value for money-category conversions. Legacy rows
	// created before this column keep it nil and fall back to name parsing.
	Amount *float64 `gorm:"type:decimal(12,2)"`
}

var euroAmountRe = regexp.MustCompile(`(\d+(?:[.,]\d+)?)\s*€`)

// MonetaryValue returns the amount to credit to the bank account when a
// money-category conversion is exchanged, and whether one could be
// determined. It prefers the structured Amount column and falls back to the
// historical convention of embedding the amount in the display name
// ("5€ d'argent de poche" -> 5).
func (c *CatalogItem) MonetaryValue() (float64, bool) {
	if c.Amount != nil {
		return *c.Amount, true
	}
	m := euroAmountRe.FindStringSubmatch(c.Name)
	if m == nil {
		return 0, false
	}
	v, err := strconv.ParseFloat(strings.ReplaceAll(m[1], ",", "."), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
