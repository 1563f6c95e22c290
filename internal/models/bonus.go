package models

import "time"

// DailyBonus marks whether the backfill routine already evaluated a
// calendar day. Date is normalized to midnight.
type DailyBonus struct {
	ID      uint      `gorm:"primarykey"`
	Date    time.Time `gorm:"uniqueIndex;not null"`
	Checked bool      `gorm:"not null;default:false"`
}

// WheelOfFortune is a singleton cooldown marker for the weekly wheel.
type WheelOfFortune struct {
	ID       uint      `gorm:"primarykey"`
	LastUsed time.Time `gorm:"not null"`
}
