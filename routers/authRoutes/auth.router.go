package authRoutes

import (
	authControllers "menucard/controllers/auth"
	authValidators "menucard/validators/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupAuthRoutes(app *fiber.App) {
	adminGroup := app.Group("/api/v1/admin")

	adminGroup.Post("/sign-up", authValidators.Register(), authControllers.Register)
	adminGroup.Post("/login", authValidators.Login(), authControllers.Login)
	adminGroup.Post("/forget-password", authValidators.ForgotPassword(), authControllers.ForgotPassword)
	adminGroup.Post("/verify-otp", authValidators.VerifyOtp(), authControllers.VerifyOtp)
	adminGroup.Post("/reset-password", authValidators.ResetPassword(), authControllers.ResetPassword)
}
