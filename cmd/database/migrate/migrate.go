package migration

import (
	entities2 "SnackStock-Backend/entities"
	"fmt"
	"log"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")

	if err := db.AutoMigrate(&entities2.User{}); err != nil {
		log.Fatalf("Error migrating user database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities2.ReceiptScan{}); err != nil {
		log.Fatalf("Error migrating receipt scan database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities2.PantryItem{}); err != nil {
		log.Fatalf("Error migrating pantry item database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities2.RecipeSuggestion{}); err != nil {
		log.Fatalf("Error migrating recipe suggestion database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities2.RecipeCompletion{}); err != nil {
		log.Fatalf("Error migrating recipe completion database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities2.ConsumptionEvent{}); err != nil {
		log.Fatalf("Error migrating consumption event database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities2.UserFlag{}); err != nil {
		log.Fatalf("Error migrating user flag database: %v", err)
		return err
	}

	fmt.Println("Database migration complete")
	return nil
}
