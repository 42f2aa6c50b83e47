package catalog

import (
	"strings"

	"github.com/yenrise/milcolores-api/config"
	"github.com/yenrise/milcolores-api/models"
)

// Filter returns the products matching the selected category and the
// case-insensitive search term. An empty search matches everything;
// catalog order is preserved and no ranking is applied.
func Filter(products []models.Product, category, search string) []models.Product {
	term := strings.ToLower(search)
	filtered := make([]models.Product, 0, len(products))
	for _, p := range products {
		matchesCategory := category == config.CategoryAll || p.Category == category
		matchesSearch := strings.Contains(strings.ToLower(p.Name), term)
		if matchesCategory && matchesSearch {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

// CategoryCount pairs a category label with how many products it holds.
type CategoryCount struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}

// CategoryCounts computes the per-category product counts for the menu,
// "Todas" first. The counts consider the category alone; the search term
// plays no part in them.
func CategoryCounts(products []models.Product) []CategoryCount {
	counts := make([]CategoryCount, 0, len(config.Categories)+1)
	counts = append(counts, CategoryCount{Category: config.CategoryAll, Count: len(products)})
	for _, cat := range config.Categories {
		n := 0
		for _, p := range products {
			if p.Category == cat {
				n++
			}
		}
		counts = append(counts, CategoryCount{Category: cat, Count: n})
	}
	return counts
}
