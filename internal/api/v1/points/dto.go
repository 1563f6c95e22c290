package points

type TransactionItem struct {
	ID        uint   `json:"id"`
	Type      string `json:"type"`
	Amount    int    `json:"amount"`
	Reason    string `json:"reason"`
	Timestamp int64  `json:"timestamp"`
}

type PointsResponse struct {
	TotalPoints  int               `json:"totalPoints"`
	Transactions []TransactionItem `json:"transactions"`
}

type MutatePointsRequest struct {
	Type   string `json:"type" binding:"required,oneof=add remove"`
	Amount int    `json:"amount" binding:"required"`
	Reason string `json:"reason" binding:"required"`
}

type SetPointsRequest struct {
	TotalPoints *int `json:"totalPoints" binding:"required"`
}

type TotalResponse struct {
	TotalPoints int `json:"totalPoints"`
}
