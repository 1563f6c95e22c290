package models

import "time"

type PointTransactionType string

const (
	PointTransactionAdd    PointTransactionType = "add"
	PointTransactionRemove PointTransactionType = "remove"
)

// PointsAccount is a single logical row holding the running total. The
// total can go negative; a negative balance is the "debt" state that makes
// payback tasks meaningful. The newest row wins when several exist.
type PointsAccount struct {
	ID          uint `gorm:"primarykey"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	TotalPoints int `gorm:"not null;default:0"`
}

// PointTransaction is append-only history. Deleting a row does NOT adjust
// the account total; the running total and the history are allowed to
// diverge after admin overrides or deletions.
type PointTransaction struct {
	ID        uint                 `gorm:"primarykey"`
	CreatedAt time.Time
	Type      PointTransactionType `gorm:"type:varchar(10);not null;index"`
	Amount    int                  `gorm:"not null"` // stored magnitude, always >= 0
	Reason    string               `gorm:"type:text;not null"`
	Timestamp int64                `gorm:"not null;index"` // epoch ms
}
