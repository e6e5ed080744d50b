package authController

import (
	"errors"
	"log"
	"strings"

	"menucard/middleware"
	"menucard/services"

	"github.com/gofiber/fiber/v2"
)

// Auth is the service the handlers delegate to. Set once from main
// before routes are registered.
var Auth *services.AuthService

// forgotPasswordMessage is sent whether or not the email is registered,
// so the endpoint cannot be used to enumerate accounts.
const forgotPasswordMessage = "If that email address is registered, an OTP has been sent."

func Register(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedRegister").(*struct {
		FullName        string `json:"full_name"`
		EmailAddress    string `json:"email_address"`
		PhoneNumber     string `json:"phone_number"`
		Password        string `json:"password"`
		ConfirmPassword string `json:"confirm_password"`
		RestaurantName  string `json:"restaurant_name"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	admin, err := Auth.Register(services.RegisterRequest{
		FullName:       reqData.FullName,
		EmailAddress:   reqData.EmailAddress,
		PhoneNumber:    reqData.PhoneNumber,
		Password:       reqData.Password,
		RestaurantName: reqData.RestaurantName,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrEmailTaken):
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "Email address is already registered!", nil)
		case errors.Is(err, services.ErrPhoneTaken):
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "Phone number is already registered!", nil)
		}
		log.Printf("Error registering admin: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to register admin!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Admin created successfully.", admin)
}

func Login(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedLogin").(*struct {
		EmailAddress string `json:"email_address"`
		Password     string `json:"password"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	admin, err := Auth.Login(reqData.EmailAddress, reqData.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid email address or password!", nil)
		}
		log.Printf("Error logging in admin: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to login admin!", nil)
	}

	// Generate login session token
	token, err := middleware.GenerateJWT(admin.ID, admin.FullName, admin.EmailAddress)
	if err != nil {
		log.Printf("Error generating login token: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to generate token", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Admin logged in successfully.", fiber.Map{
		"admin": admin,
		"token": token,
	})
}

func ForgotPassword(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedForgotPassword").(*struct {
		EmailAddress string `json:"email_address"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	err := Auth.ForgotPassword(reqData.EmailAddress)
	switch {
	case err == nil:
		return middleware.JsonResponse(c, fiber.StatusOK, true, forgotPasswordMessage, nil)
	case errors.Is(err, services.ErrAdminNotFound):
		// Unknown addresses get the same answer as known ones.
		return middleware.JsonResponse(c, fiber.StatusOK, true, forgotPasswordMessage, nil)
	case errors.Is(err, services.ErrDelivery):
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to send OTP email!", nil)
	}
	log.Printf("Error starting password reset: %v", err)
	return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Something went wrong!", nil)
}

func VerifyOtp(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedVerifyOtp").(*struct {
		EmailAddress string `json:"email_address"`
		Otp          string `json:"otp"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	resetToken, err := Auth.VerifyOtp(reqData.EmailAddress, reqData.Otp)
	if err != nil {
		if errors.Is(err, services.ErrInvalidOtp) {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid OTP!", nil)
		}
		log.Printf("Error verifying OTP: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "OTP verification failed!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "OTP verified successfully.", fiber.Map{
		"resetToken": resetToken,
	})
}

func ResetPassword(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedResetPassword").(*struct {
		Password        string `json:"password"`
		ConfirmPassword string `json:"confirm_password"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	// An absent or malformed header yields an empty token, which fails
	// authentication inside the orchestrator after the mismatch check.
	token := strings.TrimPrefix(c.Get("Authorization"), "Bearer ")

	err := Auth.ResetPassword(token, reqData.Password, reqData.ConfirmPassword)
	switch {
	case err == nil:
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Password reset successfully.", nil)
	case errors.Is(err, services.ErrPasswordMismatch):
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Passwords do not match!", nil)
	case errors.Is(err, services.ErrInvalidResetToken):
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Invalid or expired reset token!", nil)
	case errors.Is(err, services.ErrOtpNotVerified):
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Invalid or expired OTP!", nil)
	}
	log.Printf("Error resetting password: %v", err)
	return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to reset password!", nil)
}
