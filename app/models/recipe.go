package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// IngredientList is stored as a JSON array column so the ordering of
// ingredients survives the round trip.
type IngredientList []string

func (l IngredientList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	b, err := json.Marshal(l)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal ingredients: %w", err)
	}
	return string(b), nil
}

func (l *IngredientList) Scan(src interface{}) error {
	if src == nil {
		*l = nil
		return nil
	}
	var b []byte
	switch v := src.(type) {
	case []byte:
		b = v
	case string:
		b = []byte(v)
	default:
		return fmt.Errorf("unsupported ingredients column type %T", src)
	}
	if err := json.Unmarshal(b, l); err != nil {
		return fmt.Errorf("failed to unmarshal ingredients: %w", err)
	}
	return nil
}

// Recipe.Category is a free-text label matched against Category.Name.
// There is no foreign key: a recipe may carry a label no category has,
// and such recipes simply never show up on a category page.
//
// Name and Description use a binary collation so the FULLTEXT index
// built over them stays diacritic-sensitive.
type Recipe struct {
	ID          uint           `gorm:"primaryKey;autoIncrement"`
	Name        string         `gorm:"type:varchar(255) COLLATE utf8mb4_bin;not null"`
	Description string         `gorm:"type:text COLLATE utf8mb4_bin"`
	Email       string         `gorm:"size:255"`
	Ingredients IngredientList `gorm:"type:json"`
	Category    string         `gorm:"size:100;index"`
	Image       string         `gorm:"size:255"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
