package config

import (
	"SnackStock-Backend/internal/api/handlers"
	"SnackStock-Backend/internal/api/routes"
	"SnackStock-Backend/internal/middleware"
	"SnackStock-Backend/internal/utils"
	"SnackStock-Backend/internal/utils/storage"
	"SnackStock-Backend/pkg/flags"
	"SnackStock-Backend/pkg/inventory"
	"SnackStock-Backend/pkg/jwt"
	"SnackStock-Backend/pkg/recipe"
	"SnackStock-Backend/pkg/stats"
	"SnackStock-Backend/pkg/user"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
)

func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "America/Santiago",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// utils
	s3 := storage.NewAwsS3()

	// Repository
	userRepository := user.NewUserRepository(db)
	inventoryRepository := inventory.NewInventoryRepository(db)
	recipeRepository := recipe.NewRecipeRepository(db)
	statsRepository := stats.NewStatsRepository(db)
	flagsRepository := flags.NewFlagsRepository(db)

	// Service
	jwtService := jwt.NewJWTService()
	userService := user.NewUserService(userRepository, jwtService)
	statsService := stats.NewStatsService(statsRepository, inventoryRepository)
	inventoryService := inventory.NewInventoryService(inventoryRepository, statsService, s3)
	recipeService := recipe.NewRecipeService(recipeRepository, inventoryRepository, statsService)
	flagsService := flags.NewFlagsService(flagsRepository)

	// Handler
	userHandler := handlers.NewUserHandler(userService, validator)
	inventoryHandler := handlers.NewInventoryHandler(inventoryService, validator)
	recipeHandler := handlers.NewRecipeHandler(recipeService, validator)
	statsHandler := handlers.NewStatsHandler(statsService, validator)
	flagsHandler := handlers.NewFlagsHandler(flagsService, validator)

	// routes
	routesConfig := routes.Config{
		App:              app,
		UserHandler:      userHandler,
		InventoryHandler: inventoryHandler,
		RecipeHandler:    recipeHandler,
		StatsHandler:     statsHandler,
		FlagsHandler:     flagsHandler,
		Middleware:       middlewares,
		JWTService:       jwtService,
	}
	routesConfig.Setup()
	return app, nil
}
