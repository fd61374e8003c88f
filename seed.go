package main

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tastehaven/menu_backend/models"
	"github.com/tastehaven/menu_backend/repositories"
)

// Sample dishes for a fresh installation, inserted by `menu_backend seed`.
var sampleMenuItems = []models.MenuItemRequest{
	// Appetizers
	{Name: "Hummus with Pita", Price: 45.0, Category: models.CategoryAppetizers,
		ImageURL: "https://images.unsplash.com/photo-1634487359989-3e90c9432133?q=80&w=764&auto=format&fit=crop"},
	{Name: "Stuffed Vine Leaves", Price: 55.0, Category: models.CategoryAppetizers,
		ImageURL: "https://images.unsplash.com/photo-1632843149101-71f575523b70?q=80&w=1470&auto=format&fit=crop"},
	{Name: "Baba Ganoush", Price: 50.0, Category: models.CategoryAppetizers,
		ImageURL: "https://images.unsplash.com/photo-1505253468034-514d2507d914?q=80&w=880&auto=format&fit=crop"},
	{Name: "Falafel Plate", Price: 60.0, Category: models.CategoryAppetizers,
		ImageURL: "https://images.unsplash.com/photo-1642694358592-e4c8ddd60c6f?q=80&w=1374&auto=format&fit=crop"},

	// Main Dishes
	{Name: "Lamb Kofta", Price: 120.0, Category: models.CategoryMainDishes,
		ImageURL: "https://images.unsplash.com/photo-1529563021893-cc83c992d75d?q=80&w=1470&auto=format&fit=crop"},
	{Name: "Chicken Shawarma", Price: 95.0, Category: models.CategoryMainDishes,
		ImageURL: "https://images.unsplash.com/photo-1664482494979-04fd4d22ec9a?q=80&w=1479&auto=format&fit=crop"},
	{Name: "Koshari", Price: 70.0, Category: models.CategoryMainDishes,
		ImageURL: "https://plus.unsplash.com/premium_photo-1676445217384-de2307fa4a3e?q=80&w=1374&auto=format&fit=crop"},
	{Name: "Molokhia with Chicken", Price: 110.0, Category: models.CategoryMainDishes,
		ImageURL: "https://images.unsplash.com/photo-1668236543090-82eba5ee5976?q=80&w=1470&auto=format&fit=crop"},
	{Name: "Grilled Sea Bass", Price: 160.0, Category: models.CategoryMainDishes,
		ImageURL: "https://images.unsplash.com/photo-1519708227418-c8fd9a32b7a2?q=80&w=1470&auto=format&fit=crop"},

	// Desserts
	{Name: "Kunafa", Price: 65.0, Category: models.CategoryDesserts,
		ImageURL: "https://images.unsplash.com/photo-1621743478914-cc8a86d7e7b5?q=80&w=1374&auto=format&fit=crop"},
	{Name: "Baklava", Price: 55.0, Category: models.CategoryDesserts,
		ImageURL: "https://images.unsplash.com/photo-1566043688454-5436d5f0a367?q=80&w=1374&auto=format&fit=crop"},
	{Name: "Basbousa", Price: 45.0, Category: models.CategoryDesserts,
		ImageURL: "https://images.unsplash.com/photo-1624113122662-78cc4c8203a0?q=80&w=1470&auto=format&fit=crop"},

	// Drinks
	{Name: "Mint Tea", Price: 25.0, Category: models.CategoryDrinks,
		ImageURL: "https://images.unsplash.com/photo-1582735459971-e3f218880bff?q=80&w=1373&auto=format&fit=crop"},
	{Name: "Turkish Coffee", Price: 30.0, Category: models.CategoryDrinks,
		ImageURL: "https://images.unsplash.com/photo-1514432324607-a09d9b4aedda?q=80&w=1374&auto=format&fit=crop"},
	{Name: "Mango Juice", Price: 35.0, Category: models.CategoryDrinks,
		ImageURL: "https://images.unsplash.com/photo-1546173159-315724a31696?q=80&w=1374&auto=format&fit=crop"},
	{Name: "Karkadeh", Price: 30.0, Category: models.CategoryDrinks,
		ImageURL: "https://plus.unsplash.com/premium_photo-1674486188524-68cfcba0a9c2?q=80&w=1470&auto=format&fit=crop"},

	// Specials
	{Name: "Mixed Grill Platter", Price: 220.0, Category: models.CategorySpecials,
		ImageURL: "https://images.unsplash.com/photo-1544025162-d76694265947?q=80&w=1469&auto=format&fit=crop"},
	{Name: "Seafood Tagine", Price: 180.0, Category: models.CategorySpecials,
		ImageURL: "https://images.unsplash.com/photo-1511910849309-0dffb8785146?q=80&w=1470&auto=format&fit=crop"},

	// Sides
	{Name: "Tahini Salad", Price: 40.0, Category: models.CategorySides,
		ImageURL: "https://images.unsplash.com/photo-1512621776951-a57141f2eefd?q=80&w=1470&auto=format&fit=crop"},
	{Name: "Egyptian Rice", Price: 35.0, Category: models.CategorySides,
		ImageURL: "https://images.unsplash.com/photo-1536304993881-ff6e9eefa2a6?q=80&w=1470&auto=format&fit=crop"},
}

func seedMenuItems(ctx context.Context, pool *pgxpool.Pool) error {
	repo := repositories.NewMenuRepository(pool)

	fmt.Println("Starting database seeding...")
	for _, item := range sampleMenuItems {
		if _, err := repo.Insert(ctx, item); err != nil {
			fmt.Printf("Error adding item %q: %v\n", item.Name, err)
			continue
		}
		fmt.Println("Added:", item.Name)
	}
	fmt.Println("Seeding complete.")
	return nil
}
