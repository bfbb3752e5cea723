package product

import (
	"net/http"
	"strconv"

	"kitchenly_back_end/internal/catalog"
	"kitchenly_back_end/internal/models"

	"github.com/gin-gonic/gin"
)

// SearchProductsAdvanced recherche avancée avec filtres et tri
func (h *ProductHandler) SearchProductsAdvanced(c *gin.Context) {
	query := c.Query("q")
	category := c.Query("category")
	minPrice := c.Query("min_price")
	maxPrice := c.Query("max_price")
	sortBy := c.DefaultQuery("sort", catalog.SortPopular)
	page := c.DefaultQuery("page", "1")
	limit := c.DefaultQuery("limit", "20")

	pageNum, _ := strconv.Atoi(page)
	limitNum, _ := strconv.Atoi(limit)

	if pageNum < 1 {
		pageNum = 1
	}
	if limitNum < 1 || limitNum > 100 {
		limitNum = 20
	}

	switch sortBy {
	case catalog.SortPopular, catalog.SortPriceAsc, catalog.SortPriceDesc, catalog.SortRating:
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Tri invalide"})
		return
	}

	filter := catalog.Filter{
		Query:    query,
		Category: category,
		SortBy:   sortBy,
	}

	if minPrice != "" {
		v, err := strconv.ParseFloat(minPrice, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Prix minimum invalide"})
			return
		}
		filter.MinPrice = &v
	}
	if maxPrice != "" {
		v, err := strconv.ParseFloat(maxPrice, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Prix maximum invalide"})
			return
		}
		filter.MaxPrice = &v
	}

	results := h.Catalog.Search(filter)
	total := len(results)

	// Pagination
	start := (pageNum - 1) * limitNum
	if start > total {
		start = total
	}
	end := start + limitNum
	if end > total {
		end = total
	}
	pageResults := results[start:end]
	if pageResults == nil {
		pageResults = []models.Product{}
	}

	c.JSON(http.StatusOK, gin.H{
		"products": pageResults,
		"total":    total,
		"page":     pageNum,
		"limit":    limitNum,
	})
}
