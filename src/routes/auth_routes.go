package routes

import (
	"Backend-Smita/src/controllers"

	"github.com/gofiber/fiber/v2"
)

// authRoutes กำหนดเส้นทางสำหรับ signup/login/OTP/reset password
func authRoutes(app *fiber.App, ac *controllers.AuthController) {
	app.Post("/signup", ac.Signup)
	app.Post("/verify-otp", ac.VerifyOTP)
	app.Post("/login", ac.Login)
	app.Post("/forgot-password", ac.ForgotPassword)
	app.Post("/reset-password", ac.ResetPassword)
}
