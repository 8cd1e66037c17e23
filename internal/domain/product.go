package domain

import (
	"strings"
	"unicode/utf8"

	"gorm.io/datatypes"
)

const (
	ShortDescMaxLen = 500
	FeatureMaxLen   = 500
)

type Product struct {
	ID            uint64                      `json:"id" gorm:"primaryKey;autoIncrement"`
	Name          string                      `json:"name" gorm:"size:255;not null"`
	Brand         string                      `json:"brand" gorm:"size:255;not null;index"`
	Price         float64                     `json:"price" gorm:"not null"`
	OriginalPrice *float64                    `json:"originalPrice"`
	Category      string                      `json:"category" gorm:"size:255;not null;index"`
	ShortDesc     string                      `json:"shortDesc" gorm:"size:500"`
	Features      datatypes.JSONSlice[string] `json:"features" gorm:"type:json"`
	ImageURL      string                      `json:"imageUrl" gorm:"type:mediumtext"`
}

// Validate checks the required fields in a fixed order and reports the first
// failure only.
func (p *Product) Validate() error {
	switch {
	case isBlank(p.Name):
		return NewValidationError("name", "Product name is required")
	case isBlank(p.Brand):
		return NewValidationError("brand", "Brand is required")
	case p.Price <= 0:
		return NewValidationError("price", "Valid price is required")
	case isBlank(p.Category):
		return NewValidationError("category", "Category is required")
	case utf8.RuneCountInString(p.ShortDesc) > ShortDescMaxLen:
		return NewValidationError("shortDesc", "Short description must be at most 500 characters")
	}
	for _, f := range p.Features {
		if utf8.RuneCountInString(f) > FeatureMaxLen {
			return NewValidationError("features", "Each feature must be at most 500 characters")
		}
	}
	return nil
}

// ReplaceWith overwrites every mutable field with the values from src.
// The identifier is kept.
func (p *Product) ReplaceWith(src *Product) {
	p.Name = src.Name
	p.Brand = src.Brand
	p.Price = src.Price
	p.OriginalPrice = src.OriginalPrice
	p.Category = src.Category
	p.ShortDesc = src.ShortDesc
	p.Features = src.Features
	p.ImageURL = src.ImageURL
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
