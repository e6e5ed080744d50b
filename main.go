package main

import (
	"log"
	"time"

	"menucard/config"
	authController "menucard/controllers/auth"
	"menucard/database"
	"menucard/repository"
	authRoutes "menucard/routers/authRoutes"
	"menucard/services"
	"menucard/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()

	admins := repository.NewAdminRepository(database.Database.Db)
	otps := repository.NewOtpRepository(database.Database.Db)

	engine := services.NewOtpEngine(otps, config.AppConfig.OtpTTL, config.AppConfig.OtpLength)
	issuer := services.NewResetTokenIssuer(config.AppConfig.JWTKey, config.AppConfig.ResetTokenTTL)
	authController.Auth = services.NewAuthService(admins, engine, issuer, utils.SendGridMailer{}, config.AppConfig.SaltRound)

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE",        // Allowed HTTP methods
		AllowHeaders: "Content-Type,Authorization", // Allowed headers
	}))
	app.Use(helmet.New())
	app.Use(limiter.New(limiter.Config{
		Max:        100,
		Expiration: 10 * time.Minute,
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Welcome to Project Menucard")
	})

	authRoutes.SetupAuthRoutes(app)

	janitor := utils.InitializeOtpJanitor()
	defer janitor.Stop()

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
