package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"ketotrack/backend/internal/models"
	"ketotrack/backend/pkg/log"
)

// foodFilters builds a scope from the request's name and keto_friendly
// query parameters.
func foodFilters(c *gin.Context) func(tx *gorm.DB) *gorm.DB {
	name := strings.TrimSpace(c.Query("name"))
	keto := c.Query("keto_friendly")
	return func(tx *gorm.DB) *gorm.DB {
		if name != "" {
			tx = tx.Where("name ILIKE ?", "%"+name+"%")
		}
		if keto == "true" || keto == "false" {
			tx = tx.Where("keto_friendly = ?", keto == "true")
		}
		return tx
	}
}

// ListFoodsHandler lists reference foods, optionally filtered by name
// and keto friendliness, with pagination.
func ListFoodsHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, pageSize := GetPaginationParams(c)
		ctx := c.Request.Context()
		filters := foodFilters(c)

		var totalItems int64
		if err := db.WithContext(ctx).Model(&models.Food{}).Scopes(filters).Count(&totalItems).Error; err != nil {
			log.L.Error("Failed to count foods", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list foods"})
			return
		}

		var foods []models.Food
		err := db.WithContext(ctx).Model(&models.Food{}).Scopes(filters).
			Order("name asc").
			Scopes(PaginateScope(page, pageSize)).
			Find(&foods).Error
		if err != nil {
			log.L.Error("Failed to list foods", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list foods"})
			return
		}

		c.JSON(http.StatusOK, PaginatedResponse{
			Items:      foods,
			TotalItems: totalItems,
			TotalPages: totalPages(totalItems, pageSize),
			Page:       page,
			PageSize:   pageSize,
		})
	}
}

// ListVegetablesHandler lists reference vegetables with pagination.
func ListVegetablesHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, pageSize := GetPaginationParams(c)
		ctx := c.Request.Context()

		nameFilter := func(tx *gorm.DB) *gorm.DB {
			if name := strings.TrimSpace(c.Query("name")); name != "" {
				tx = tx.Where("name ILIKE ?", "%"+name+"%")
			}
			return tx
		}

		var totalItems int64
		if err := db.WithContext(ctx).Model(&models.Vegetable{}).Scopes(nameFilter).Count(&totalItems).Error; err != nil {
			log.L.Error("Failed to count vegetables", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list vegetables"})
			return
		}

		var vegetables []models.Vegetable
		err := db.WithContext(ctx).Model(&models.Vegetable{}).Scopes(nameFilter).
			Order("name asc").
			Scopes(PaginateScope(page, pageSize)).
			Find(&vegetables).Error
		if err != nil {
			log.L.Error("Failed to list vegetables", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list vegetables"})
			return
		}

		c.JSON(http.StatusOK, PaginatedResponse{
			Items:      vegetables,
			TotalItems: totalItems,
			TotalPages: totalPages(totalItems, pageSize),
			Page:       page,
			PageSize:   pageSize,
		})
	}
}
