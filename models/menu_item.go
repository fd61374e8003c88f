package models

import (
	"time"
)

// MenuItem is a single dish or drink on the menu. IDs and creation
// timestamps are assigned by the store. PriceDisplay is the formatted
// EGP amount, computed at serve time and never persisted.
type MenuItem struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Price        float64   `json:"price"`
	PriceDisplay string    `json:"price_display,omitempty"`
	Category     string    `json:"category"`
	ImageURL     string    `json:"image_url"`
	Description  string    `json:"description"`
	CreatedAt    time.Time `json:"created_at"`
}

// MenuItemRequest is the admin form payload for creating or updating an
// item. Validation runs before any store call is attempted.
type MenuItemRequest struct {
	Name        string  `json:"name" validate:"required"`
	Price       float64 `json:"price" validate:"required,gt=0"`
	Category    string  `json:"category" validate:"required"`
	ImageURL    string  `json:"image_url" validate:"required"`
	Description string  `json:"description"`
}

// CategoryGrouping partitions menu items by category name, each partition
// sorted by item name ascending. Rebuilt fresh on every fetch.
type CategoryGrouping map[string][]MenuItem

// UncategorizedKey is the grouping bucket for items with no category.
const UncategorizedKey = "Uncategorized"

// Recommended category set. Not enforced as an enum: an item carrying any
// other category string is grouped under that literal string.
const (
	CategoryAppetizers = "Appetizers"
	CategoryMainDishes = "Main Dishes"
	CategoryDesserts   = "Desserts"
	CategoryDrinks     = "Drinks"
	CategorySpecials   = "Specials"
	CategorySides      = "Sides"
)

// Categories lists the recommended set in display order.
var Categories = []string{
	CategoryAppetizers,
	CategoryMainDishes,
	CategoryDesserts,
	CategoryDrinks,
	CategorySpecials,
	CategorySides,
}
