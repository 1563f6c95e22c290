package investments

import "time"

type InvestmentItem struct {
	ID             uint      `json:"id"`
	ProductID      uint      `json:"productId"`
	ProductName    string    `json:"productName"`
	ProductEmoji   string    `json:"productEmoji"`
	InitialAmount  float64   `json:"initialAmount"`
	CurrentAmount  float64   `json:"currentAmount"`
	InterestEarned float64   `json:"interestEarned"`
	StartDate      time.Time `json:"startDate"`
	MaturityDate   time.Time `json:"maturityDate"`
	DaysElapsed    int       `json:"daysElapsed"`
	TotalDays      int       `json:"totalDays"`
	Progress       float64   `json:"progress"`
}

type CreateInvestmentRequest struct {
	ProductID uint     `json:"productId" binding:"required"`
	Amount    *float64 `json:"amount" binding:"required"`
}

type CreateInvestmentResponse struct {
	ID           uint      `json:"id"`
	ProductName  string    `json:"productName"`
	Amount       float64   `json:"amount"`
	MaturityDate time.Time `json:"maturityDate"`
	NewBalance   float64   `json:"newBalance"`
}

type ReleaseRequest struct {
	InvestmentID uint `json:"investmentId" binding:"required"`
}

type ReleaseResponse struct {
	FinalAmount    float64 `json:"finalAmount"`
	InterestEarned float64 `json:"interestEarned"`
	NewBalance     float64 `json:"newBalance"`
}

type ProductItem struct {
	ID           uint    `json:"id"`
	Name         string  `json:"name"`
	Description  string  `json:"description"`
	Emoji        string  `json:"emoji"`
	InterestRate float64 `json:"interestRate"`
	DurationDays int     `json:"durationDays"`
	Active       bool    `json:"active"`
}

type CreateProductRequest struct {
	Name         string   `json:"name" binding:"required"`
	Description  string   `json:"description" binding:"required"`
	Emoji        string   `json:"emoji" binding:"required"`
	InterestRate *float64 `json:"interestRate" binding:"required"`
	DurationDays *int     `json:"durationDays" binding:"required"`
}
