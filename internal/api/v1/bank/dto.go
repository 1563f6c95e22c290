package bank

type BalanceResponse struct {
	Balance float64 `json:"balance"`
}

type SetBalanceRequest struct {
	Balance           *float64 `json:"balance" binding:"required"`
	CreateTransaction bool     `json:"createTransaction"`
	Reason            string   `json:"reason"`
}

type CreditRequest struct {
	Amount *float64 `json:"amount" binding:"required"`
	Reason string   `json:"reason"`
}

type BankTransactionItem struct {
	ID        uint    `json:"id"`
	Type      string  `json:"type"`
	Amount    float64 `json:"amount"`
	Reason    string  `json:"reason"`
	Timestamp int64   `json:"timestamp"`
}
