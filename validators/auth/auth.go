package authValidator

import (
	"regexp"
	"strings"

	"menucard/middleware"

	"github.com/gofiber/fiber/v2"
)

// Helper to validate email format
func isValidEmail(email string) bool {
	re := regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	return re.MatchString(email)
}

// Helper to validate phone number format
func isValidPhone(phone string) bool {
	re := regexp.MustCompile(`^\+?[0-9]{7,15}$`)
	return re.MatchString(phone)
}

// Helper to validate the six digit OTP format
func isValidOtp(otp string) bool {
	re := regexp.MustCompile(`^\d{6}$`)
	return re.MatchString(otp)
}

// isStrongPassword requires 8-20 characters with at least one uppercase
// letter, one lowercase letter, one digit and one special character
func isStrongPassword(password string) bool {
	if len(password) < 8 || len(password) > 20 {
		return false
	}

	var hasUpper, hasLower, hasDigit, hasSpecial bool
	for _, r := range password {
		switch {
		case r >= 'A' && r <= 'Z':
			hasUpper = true
		case r >= 'a' && r <= 'z':
			hasLower = true
		case r >= '0' && r <= '9':
			hasDigit = true
		case strings.ContainsRune("@$!%#./*?&", r):
			hasSpecial = true
		}
	}
	return hasUpper && hasLower && hasDigit && hasSpecial
}

// Register validator middleware
func Register() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			FullName        string `json:"full_name"`
			EmailAddress    string `json:"email_address"`
			PhoneNumber     string `json:"phone_number"`
			Password        string `json:"password"`
			ConfirmPassword string `json:"confirm_password"`
			RestaurantName  string `json:"restaurant_name"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		// Validate Full Name
		if len(strings.TrimSpace(reqData.FullName)) < 3 {
			errors["full_name"] = "Full name must be at least 3 characters long!"
		} else if len(reqData.FullName) > 50 {
			errors["full_name"] = "Full name must not exceed 50 characters!"
		}

		// Validate Email
		if reqData.EmailAddress == "" || !isValidEmail(reqData.EmailAddress) {
			errors["email_address"] = "Invalid email address!"
		}

		// Validate Phone
		if reqData.PhoneNumber == "" || !isValidPhone(reqData.PhoneNumber) {
			errors["phone_number"] = "Invalid phone number!"
		}

		// Validate Password
		if !isStrongPassword(reqData.Password) {
			errors["password"] = "Password must be 8-20 characters with uppercase, lowercase, number and special character!"
		}

		if reqData.ConfirmPassword != reqData.Password {
			errors["confirm_password"] = "Passwords must match!"
		}

		// Restaurant name is optional
		if reqData.RestaurantName != "" {
			if len(reqData.RestaurantName) < 3 || len(reqData.RestaurantName) > 100 {
				errors["restaurant_name"] = "Restaurant name must be 3-100 characters long!"
			}
		}

		// Respond with errors if any exist
		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		// Pass validated request to the next middleware
		c.Locals("validatedRegister", reqData)
		return c.Next()
	}
}

// Login validator middleware
func Login() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			EmailAddress string `json:"email_address"`
			Password     string `json:"password"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		// Validate Email
		if reqData.EmailAddress == "" || !isValidEmail(reqData.EmailAddress) {
			errors["email_address"] = "Invalid email address!"
		}

		// Validate Password
		if reqData.Password == "" {
			errors["password"] = "Password is required!"
		}

		// Respond with errors if any exist
		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		// Pass validated request to the next middleware
		c.Locals("validatedLogin", reqData)
		return c.Next()
	}
}

// ForgotPassword validator middleware
func ForgotPassword() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			EmailAddress string `json:"email_address"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		// Validate Email
		if reqData.EmailAddress == "" || !isValidEmail(reqData.EmailAddress) {
			errors["email_address"] = "Invalid email address!"
		}

		// Respond with errors if any exist
		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		// Pass validated request to the next middleware
		c.Locals("validatedForgotPassword", reqData)
		return c.Next()
	}
}

// VerifyOtp validator middleware
func VerifyOtp() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			EmailAddress string `json:"email_address"`
			Otp          string `json:"otp"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		// Validate Email
		if reqData.EmailAddress == "" || !isValidEmail(reqData.EmailAddress) {
			errors["email_address"] = "Invalid email address!"
		}

		// Validate OTP code
		if reqData.Otp == "" {
			errors["otp"] = "OTP is required!"
		} else if !isValidOtp(reqData.Otp) {
			errors["otp"] = "OTP must be a 6 digit code!"
		}

		// Respond with errors if any exist
		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		// Pass validated request to the next middleware
		c.Locals("validatedVerifyOtp", reqData)
		return c.Next()
	}
}

// ResetPassword validator middleware. The password/confirm mismatch is
// deliberately not checked here: the orchestrator owns that check and its
// position in the error ordering.
func ResetPassword() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Password        string `json:"password"`
			ConfirmPassword string `json:"confirm_password"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		// Validate Password
		if !isStrongPassword(reqData.Password) {
			errors["password"] = "Password must be 8-20 characters with uppercase, lowercase, number and special character!"
		}

		// Validate Confirm Password
		if reqData.ConfirmPassword == "" {
			errors["confirm_password"] = "Password confirmation is required!"
		}

		// Respond with errors if any exist
		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		// Pass validated request to the next middleware
		c.Locals("validatedResetPassword", reqData)
		return c.Next()
	}
}
