package team

import (
	"time"

	"gorm.io/gorm"
)

// Team is a league club. Stadium is optional, everything else is required.
type Team struct {
	gorm.Model
	Name    string    `json:"name" gorm:"not null;index"`
	City    string    `json:"city" gorm:"not null"`
	Founded time.Time `json:"founded" gorm:"not null"`
	Stadium string    `json:"stadium"`
}
