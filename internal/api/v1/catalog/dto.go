package catalog

type CatalogItemResponse struct {
	ID             uint     `json:"id"`
	Name           string   `json:"name"`
	Description    string   `json:"description"`
	PointsRequired int      `json:"pointsRequired"`
	Emoji          string   `json:"emoji"`
	Category       string   `json:"category"`
	Amount         *float64 `json:"amount,omitempty"`
}

type CreateItemRequest struct {
	Name           string   `json:"name" binding:"required"`
	Description    string   `json:"description" binding:"required"`
	PointsRequired int      `json:"pointsRequired" binding:"required"`
	Emoji          string   `json:"emoji" binding:"required"`
	Category       string   `json:"category" binding:"required,oneof=money activity gift"`
	Amount         *float64 `json:"amount"`
}
