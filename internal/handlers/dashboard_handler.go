package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"ketotrack/backend/internal/models"
	"ketotrack/backend/pkg/log"
)

type DashboardSummary struct {
	TotalFoods        int64 `json:"total_foods"`
	KetoFriendlyFoods int64 `json:"keto_friendly_foods"`
	TotalVegetables   int64 `json:"total_vegetables"`
	LowCarbVegetables int64 `json:"low_carb_vegetables"`
}

// lowCarbThreshold is the carbs-per-100g cutoff under which a vegetable
// counts as low carb on the dashboard.
const lowCarbThreshold = 5.0

// DashboardSummaryHandler returns aggregate counts for the dashboard view.
func DashboardSummaryHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		var summary DashboardSummary

		type countQuery struct {
			dest  *int64
			query *gorm.DB
		}
		queries := []countQuery{
			{&summary.TotalFoods, db.WithContext(ctx).Model(&models.Food{})},
			{&summary.KetoFriendlyFoods, db.WithContext(ctx).Model(&models.Food{}).Where("keto_friendly = ?", true)},
			{&summary.TotalVegetables, db.WithContext(ctx).Model(&models.Vegetable{})},
			{&summary.LowCarbVegetables, db.WithContext(ctx).Model(&models.Vegetable{}).Where("carbs_per_100g < ?", lowCarbThreshold)},
		}
		for _, q := range queries {
			if err := q.query.Count(q.dest).Error; err != nil {
				log.L.Error("Failed to build dashboard summary", zap.Error(err))
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build dashboard summary"})
				return
			}
		}

		c.JSON(http.StatusOK, summary)
	}
}
