package models

import "time"

// AdminPassword stores the single shared admin secret as a bcrypt hash.
// When no row exists the default password "admin123" applies.
type AdminPassword struct {
	ID        uint `gorm:"primarykey"`
	CreatedAt time.Time
	Hash      string `gorm:"type:varchar(100);not null"`
}
