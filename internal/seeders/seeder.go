package seeders

import (
	"errors"

	"ketotrack/backend/internal/models"
	ktlog "ketotrack/backend/pkg/log"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// SeedInitialData populates the database with the reference content tables.
// Each seeder checks whether the data already exists before inserting.
func SeedInitialData(db *gorm.DB) error {
	log := ktlog.L.Named("SeedInitialData")
	log.Info("Seeding initial data...")

	if err := seedFoods(db); err != nil {
		log.Error("Failed to seed foods", zap.Error(err))
		return err
	}
	if err := seedVegetables(db); err != nil {
		log.Error("Failed to seed vegetables", zap.Error(err))
		return err
	}

	log.Info("Initial data seeding completed successfully.")
	return nil
}

func seedFoods(db *gorm.DB) error {
	foods := []models.Food{
		{Name: "Eggs", CarbsPer100g: 1.1, KetoFriendly: true},
		{Name: "Salmon", CarbsPer100g: 0, KetoFriendly: true},
		{Name: "Chicken breast", CarbsPer100g: 0, KetoFriendly: true},
		{Name: "Beef", CarbsPer100g: 0, KetoFriendly: true},
		{Name: "Butter", CarbsPer100g: 0.1, KetoFriendly: true},
		{Name: "Cheddar cheese", CarbsPer100g: 1.3, KetoFriendly: true},
		{Name: "Almonds", CarbsPer100g: 9.1, KetoFriendly: true},
		{Name: "Walnuts", CarbsPer100g: 7.0, KetoFriendly: true},
		{Name: "Avocado", CarbsPer100g: 8.5, KetoFriendly: true},
		{Name: "Olive oil", CarbsPer100g: 0, KetoFriendly: true},
		{Name: "Greek yogurt", CarbsPer100g: 3.6, KetoFriendly: true},
		{Name: "White rice", CarbsPer100g: 28.2, KetoFriendly: false},
		{Name: "Pasta", CarbsPer100g: 25.0, KetoFriendly: false},
		{Name: "Bread", CarbsPer100g: 49.4, KetoFriendly: false},
		{Name: "Banana", CarbsPer100g: 22.8, KetoFriendly: false},
		{Name: "Potato", CarbsPer100g: 17.5, KetoFriendly: false},
	}

	for _, food := range foods {
		var existing models.Food
		err := db.Where("name = ?", food.Name).First(&existing).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			if err := db.Create(&food).Error; err != nil {
				return err
			}
		} else if err != nil {
			return err
		}
	}
	return nil
}

func seedVegetables(db *gorm.DB) error {
	vegetables := []models.Vegetable{
		{Name: "Spinach", CarbsPer100g: 1.4, KetoFriendly: true},
		{Name: "Broccoli", CarbsPer100g: 4.0, KetoFriendly: true},
		{Name: "Cauliflower", CarbsPer100g: 3.0, KetoFriendly: true},
		{Name: "Zucchini", CarbsPer100g: 2.1, KetoFriendly: true},
		{Name: "Kale", CarbsPer100g: 4.4, KetoFriendly: true},
		{Name: "Cucumber", CarbsPer100g: 3.1, KetoFriendly: true},
		{Name: "Bell pepper", CarbsPer100g: 4.6, KetoFriendly: true},
		{Name: "Asparagus", CarbsPer100g: 1.8, KetoFriendly: true},
		{Name: "Mushrooms", CarbsPer100g: 2.3, KetoFriendly: true},
		{Name: "Carrot", CarbsPer100g: 6.8, KetoFriendly: false},
		{Name: "Sweet corn", CarbsPer100g: 16.3, KetoFriendly: false},
		{Name: "Beetroot", CarbsPer100g: 6.8, KetoFriendly: false},
	}

	for _, veg := range vegetables {
		var existing models.Vegetable
		err := db.Where("name = ?", veg.Name).First(&existing).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			if err := db.Create(&veg).Error; err != nil {
				return err
			}
		} else if err != nil {
			return err
		}
	}
	return nil
}
