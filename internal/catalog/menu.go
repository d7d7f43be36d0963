package catalog

import (
	"github.com/shopspring/decimal"

	"github.com/maxandsherry/storefront/internal/domain"
)

func DefaultMenu() []domain.MenuItem {
	return []domain.MenuItem{
		{
			ID:          1,
			Name:        "Delicious Chocolate Cake",
			Description: "Rich, moist chocolate cake with smooth frosting",
			Price:       decimal.RequireFromString("25.99"),
			Category:    "Desserts",
			Image:       "https://images.unsplash.com/photo-1578985545062-69928b1d9587?w=400&h=300&fit=crop",
			Available:   true,
		},
		{
			ID:          2,
			Name:        "Fresh Garden Salad",
			Description: "Healthy and colorful salad with organic vegetables",
			Price:       decimal.RequireFromString("12.99"),
			Category:    "Salads",
			Image:       "https://images.unsplash.com/photo-1540189549336-e6e99c3679fe?w=400&h=300&fit=crop",
			Available:   true,
		},
		{
			ID:          3,
			Name:        "Classic Italian Pasta",
			Description: "Authentic pasta with homemade tomato sauce",
			Price:       decimal.RequireFromString("18.99"),
			Category:    "Main Course",
			Image:       "https://images.unsplash.com/photo-1621996346565-e3dbc646d9a9?w=400&h=300&fit=crop",
			Available:   true,
		},
		{
			ID:          4,
			Name:        "Gourmet Pizza",
			Description: "Wood-fired pizza with fresh toppings",
			Price:       decimal.RequireFromString("22.99"),
			Category:    "Main Course",
			Image:       "https://images.unsplash.com/photo-1565299624946-b28f40a0ae38?w=400&h=300&fit=crop",
			Available:   true,
		},
		{
			ID:          5,
			Name:        "Breakfast Special",
			Description: "Perfect start to your morning with eggs, bacon, and toast",
			Price:       decimal.RequireFromString("15.99"),
			Category:    "Breakfast",
			Image:       "https://images.unsplash.com/photo-1546069901-ba9599a7e63c?w=400&h=300&fit=crop",
			Available:   true,
		},
		{
			ID:          6,
			Name:        "Classic Burger",
			Description: "Juicy beef burger with all the fixings",
			Price:       decimal.RequireFromString("16.99"),
			Category:    "Main Course",
			Image:       "https://images.unsplash.com/photo-1555939594-58d7cb561ad1?w=400&h=300&fit=crop",
			Available:   true,
		},
	}
}
