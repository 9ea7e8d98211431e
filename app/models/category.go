package models

import (
	"time"
)

type Category struct {
	ID        uint   `gorm:"primaryKey;autoIncrement"`
	Name      string `gorm:"size:100;not null;uniqueIndex"`
	Image     string `gorm:"size:255;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
