package models

import (
	"time"

	"gorm.io/gorm"
)

// Reminder is a stored reminder record, the sink for a valid parse result.
type Reminder struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Title  string     `gorm:"not null" json:"title"`
	DueAt  *time.Time `json:"due_at"`
	Status string     `gorm:"default:pending" json:"status"` // pending, done
	DoneAt *time.Time `json:"done_at"`

	Recurring      bool       `gorm:"default:false" json:"recurring"`
	RecurInterval  int        `json:"recur_interval"`
	RecurFrequency string     `json:"recur_frequency"` // daily, weekly, monthly
	RecurUntil     *time.Time `json:"recur_until"`

	// Where the text came from: typed or voice
	Source string `gorm:"default:typed" json:"source"`
}
