package exchange

type ExchangeRequest struct {
	ConversionID uint `json:"conversionId" binding:"required"`
}

type ExchangeResponse struct {
	TotalPoints    int     `json:"totalPoints"`
	BankCredited   bool    `json:"bankCredited"`
	CreditedAmount float64 `json:"creditedAmount,omitempty"`
}

type InsufficientPointsData struct {
	Required int `json:"required"`
	Current  int `json:"current"`
}
