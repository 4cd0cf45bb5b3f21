package routes

import (
	"SnackStock-Backend/internal/api/handlers"
	"SnackStock-Backend/internal/middleware"
	"SnackStock-Backend/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App              *fiber.App
	UserHandler      handlers.UserHandler
	InventoryHandler handlers.InventoryHandler
	RecipeHandler    handlers.RecipeHandler
	StatsHandler     handlers.StatsHandler
	FlagsHandler     handlers.FlagsHandler
	Middleware       middleware.Middleware
	JWTService       jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.User()
	c.Inventory()
	c.Recipes()
	c.Stats()
	c.Flags()
	c.GuestRoute()
}

func (c *Config) User() {
	user := c.App.Group("/api/v1/users")
	// user routes
	{
		user.Post("/register", c.UserHandler.Register)
		user.Post("/login", c.UserHandler.Login)
		user.Post("/send_verify", c.UserHandler.SendVerificationEmail)
		user.Get("/verify", c.UserHandler.VerifyEmail)
		user.Get("/me", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.Me)
		user.Patch("/update", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.UpdateUser)
		user.Post("/forget", c.UserHandler.ForgotPassword)
		user.Post("/reset", c.UserHandler.ResetPassword)
	}
}

func (c *Config) Inventory() {
	inventory := c.App.Group("/api/v1/inventory", c.Middleware.AuthMiddleware(c.JWTService))
	inventory.Get("/dashboard", c.InventoryHandler.GetDashboardStats)

	// Basic CRUD operations
	inventory.Post("", c.InventoryHandler.AddPantryItem)
	inventory.Get("", c.InventoryHandler.GetPantryItems)
	inventory.Get("/:id", c.InventoryHandler.GetPantryItemByID)
	inventory.Put("/:id", c.InventoryHandler.UpdatePantryItem)
	inventory.Delete("/:id", c.InventoryHandler.DeletePantryItem)
	inventory.Post("/:id/waste", c.InventoryHandler.MarkAsWasted)

	// Receipt scanning pipeline
	inventory.Post("/receipt-scan", c.InventoryHandler.SubmitReceiptText)
	inventory.Get("/receipt-scan/:id", c.InventoryHandler.GetReceiptScan)
	inventory.Post("/receipt-scan/:id/image", c.InventoryHandler.UploadReceiptImage)
	inventory.Post("/receipt-scan/:id/items", c.InventoryHandler.SaveScannedItems)
}

func (c *Config) Recipes() {
	recipes := c.App.Group("/api/v1/recipes", c.Middleware.AuthMiddleware(c.JWTService))
	recipes.Post("/generate", c.RecipeHandler.GenerateRecipes)
	recipes.Get("", c.RecipeHandler.GetRecipes)
	recipes.Delete("", c.RecipeHandler.ClearRecipes)
	recipes.Patch("/:id/saved", c.RecipeHandler.ToggleSaved)
	recipes.Post("/:id/complete", c.RecipeHandler.CompleteRecipe)
}

func (c *Config) Stats() {
	stats := c.App.Group("/api/v1/stats", c.Middleware.AuthMiddleware(c.JWTService))
	stats.Post("/consumption", c.StatsHandler.RecordConsumption)
	stats.Get("", c.StatsHandler.GetStatistics)
}

func (c *Config) Flags() {
	flags := c.App.Group("/api/v1/flags", c.Middleware.AuthMiddleware(c.JWTService))
	flags.Get("/:key", c.FlagsHandler.GetFlag)
	flags.Put("/:key", c.FlagsHandler.SetFlag)
	flags.Delete("/:key", c.FlagsHandler.RemoveFlag)
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}
