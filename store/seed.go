package store

import (
	"context"

	"dimzia-storefront/models"
)

// DefaultMenu is the storefront's starting catalog, loaded on first run so a
// fresh deployment has something to sell.
func DefaultMenu() []models.MenuEntry {
	return []models.MenuEntry{
		{ID: "1", Name: "Har Gow", Description: "Translucent shrimp dumplings wrapped in a delicate rice flour skin", Price: 6.50, ImageURL: "https://images.unsplash.com/photo-1563245372-f21724e3856d?auto=format&fit=crop&q=80&w=500", Category: models.CategorySteamed, IsPopular: true},
		{ID: "2", Name: "Siu Mai", Description: "Open-topped pork and shrimp dumplings with thin yellow wrapper", Price: 5.80, ImageURL: "https://images.unsplash.com/photo-1625398407796-82290d602e26?auto=format&fit=crop&q=80&w=500", Category: models.CategorySteamed, IsPopular: true},
		{ID: "3", Name: "BBQ Pork Buns", Description: "Fluffy steamed buns filled with sweet and savory char siu pork", Price: 5.50, ImageURL: "https://images.unsplash.com/photo-1499889808931-317a0255752b?auto=format&fit=crop&q=80&w=500", Category: models.CategorySteamed, IsPopular: true},
		{ID: "4", Name: "Spring Rolls", Description: "Crispy fried rolls with mixed vegetables and shrimp filling", Price: 4.80, ImageURL: "https://images.unsplash.com/photo-1548811256-1296d91ead41?auto=format&fit=crop&q=80&w=500", Category: models.CategoryFried},
		{ID: "5", Name: "Rice Noodle Rolls", Description: "Delicate rice noodle sheets filled with shrimp, beef, or vegetables", Price: 6.20, ImageURL: "https://images.unsplash.com/photo-1585032226651-759b368d7246?auto=format&fit=crop&q=80&w=500", Category: models.CategorySteamed},
		{ID: "6", Name: "Egg Tarts", Description: "Sweet and creamy custard in a flaky pastry shell", Price: 3.90, ImageURL: "https://images.unsplash.com/photo-1624372618117-596b5a127a1f?auto=format&fit=crop&q=80&w=500", Category: models.CategoryDessert, IsPopular: true},
		{ID: "7", Name: "Turnip Cake", Description: "Pan-fried shredded turnip cakes with dried shrimp and Chinese sausage", Price: 5.20, ImageURL: "https://images.unsplash.com/photo-1601234699404-6170bd52adf8?auto=format&fit=crop&q=80&w=500", Category: models.CategoryFried},
		{ID: "8", Name: "Custard Buns", Description: "Steamed buns with rich, flowing salted egg custard center", Price: 5.50, ImageURL: "https://images.unsplash.com/photo-1555126634-323283e090fa?auto=format&fit=crop&q=80&w=500", Category: models.CategorySteamed, IsPopular: true},
		{ID: "9", Name: "Pineapple Buns", Description: "Sweet buns with a crumbly, pineapple-patterned top crust", Price: 4.50, ImageURL: "https://images.unsplash.com/photo-1506224772180-d75b3efbe9be?auto=format&fit=crop&q=80&w=500", Category: models.CategoryBaked},
		{ID: "10", Name: "Dimzia Special", Description: "Chef's special dumpling platter with our signature dipping sauce", Price: 12.90, ImageURL: "https://images.unsplash.com/photo-1541696432-82c6da8ce7bf?auto=format&fit=crop&q=80&w=500", Category: models.CategorySpecial, IsPopular: true},
	}
}

// EnsureSeed loads the default catalog into an empty menu store.
func EnsureSeed(ctx context.Context, s MenuStore) error {
	existing, err := s.ListMenu(ctx, MenuFilter{})
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}
	for _, entry := range DefaultMenu() {
		e := entry
		if err := s.CreateMenuEntry(ctx, &e); err != nil {
			return err
		}
	}
	return nil
}
