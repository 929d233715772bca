package controllers

import (
	"errors"

	"Backend-Smita/src/services/auth"
	"Backend-Smita/src/utils"

	"github.com/gofiber/fiber/v2"
)

type AuthController struct {
	Auth *auth.Service
}

func NewAuthController(a *auth.Service) *AuthController {
	return &AuthController{Auth: a}
}

// Signup สมัครใหม่ + ส่ง OTP ไปทางอีเมล
func (ac *AuthController) Signup(c *fiber.Ctx) error {
	type signupRequest struct {
		Username string `json:"username" validate:"required"`
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required,min=6"`
	}

	var req signupRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Missing fields")
	}
	if err := validate.Struct(req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Missing fields")
	}

	resent, err := ac.Auth.Signup(c.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrEmailExists) {
			return utils.HandleError(c, fiber.StatusBadRequest, "Email already exists")
		}
		return utils.HandleError(c, fiber.StatusInternalServerError, "Error creating user")
	}

	if resent {
		return c.JSON(fiber.Map{"message": "OTP resent to your email!"})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "OTP sent to your email!"})
}

// VerifyOTP ยืนยันอีเมลด้วยรหัส 6 หลัก
func (ac *AuthController) VerifyOTP(c *fiber.Ctx) error {
	type verifyRequest struct {
		Email string `json:"email" validate:"required,email"`
		OTP   string `json:"otp" validate:"required"`
	}

	var req verifyRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Missing fields")
	}
	if err := validate.Struct(req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Missing fields")
	}

	err := ac.Auth.VerifyOTP(c.Context(), req.Email, req.OTP)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrUserNotFound):
			return utils.HandleError(c, fiber.StatusNotFound, "User not found")
		case errors.Is(err, auth.ErrInvalidOTP):
			return utils.HandleError(c, fiber.StatusBadRequest, "Invalid OTP")
		case errors.Is(err, auth.ErrOTPExpired):
			return utils.HandleError(c, fiber.StatusBadRequest, "OTP expired")
		default:
			return utils.HandleError(c, fiber.StatusInternalServerError, "Error verifying OTP")
		}
	}

	return c.JSON(fiber.Map{"message": "OTP verified successfully!"})
}

// Login ออก token ให้เฉพาะบัญชีที่ verify แล้ว
func (ac *AuthController) Login(c *fiber.Ctx) error {
	type loginRequest struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	var req loginRequest
	if err := c.BodyParser(&req); err != nil || req.Email == "" || req.Password == "" {
		return utils.HandleError(c, fiber.StatusBadRequest, "Missing fields")
	}

	token, err := ac.Auth.Login(c.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrNotVerified) {
			return utils.HandleError(c, fiber.StatusForbidden, "Please verify your email first")
		}
		return utils.HandleError(c, fiber.StatusUnauthorized, "Invalid credentials")
	}

	return c.JSON(fiber.Map{"token": token})
}

// ForgotPassword ออก reset token — ตัว token ถูกส่งกลับใน response
// เหมือนระบบเดิม (mobile app เอาไปกรอกในหน้า reset)
func (ac *AuthController) ForgotPassword(c *fiber.Ctx) error {
	type forgotRequest struct {
		Email string `json:"email"`
	}

	var req forgotRequest
	if err := c.BodyParser(&req); err != nil || req.Email == "" {
		return utils.HandleError(c, fiber.StatusBadRequest, "Email is required")
	}

	token, err := ac.Auth.ForgotPassword(c.Context(), req.Email)
	if err != nil {
		if errors.Is(err, auth.ErrUserNotFound) {
			return utils.HandleError(c, fiber.StatusNotFound, "User with this email does not exist")
		}
		return utils.HandleError(c, fiber.StatusInternalServerError, "Error generating reset token")
	}

	return c.JSON(fiber.Map{
		"message":     "Reset token generated successfully!",
		"reset_token": token,
	})
}

// ResetPassword ตั้งรหัสผ่านใหม่ด้วย reset token
func (ac *AuthController) ResetPassword(c *fiber.Ctx) error {
	type resetRequest struct {
		Email           string `json:"email"`
		ResetToken      string `json:"reset_token"`
		NewPassword     string `json:"new_password"`
		ConfirmPassword string `json:"confirm_password"`
	}

	var req resetRequest
	if err := c.BodyParser(&req); err != nil ||
		req.Email == "" || req.ResetToken == "" || req.NewPassword == "" || req.ConfirmPassword == "" {
		return utils.HandleError(c, fiber.StatusBadRequest, "Missing required fields")
	}

	err := ac.Auth.ResetPassword(c.Context(), req.Email, req.ResetToken, req.NewPassword, req.ConfirmPassword)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrPasswordMismatch):
			return utils.HandleError(c, fiber.StatusBadRequest, "Passwords do not match")
		case errors.Is(err, auth.ErrInvalidResetToken):
			return utils.HandleError(c, fiber.StatusBadRequest, "Invalid reset token")
		case errors.Is(err, auth.ErrResetTokenExpired):
			return utils.HandleError(c, fiber.StatusBadRequest, "Reset token has expired")
		default:
			return utils.HandleError(c, fiber.StatusInternalServerError, "Error resetting password")
		}
	}

	return c.JSON(fiber.Map{"message": "Password reset successfully!"})
}
