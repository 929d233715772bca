package controllers

import (
	"Backend-Smita/src/services/admins"
	"Backend-Smita/src/utils"

	"github.com/gofiber/fiber/v2"
)

// requireAdmin — สิทธิ์ admin ผูกกับรายชื่ออีเมลใน ADMIN_EMAILS
func requireAdmin(c *fiber.Ctx) (string, bool) {
	email, _ := c.Locals("email").(string)
	return email, admins.IsAdmin(email)
}

// GetUsers - ดึงข้อมูลผู้ใช้ทั้งหมด (ไม่รวม password)
func GetUsers(c *fiber.Ctx) error {
	if _, ok := requireAdmin(c); !ok {
		return utils.HandleError(c, fiber.StatusForbidden, "Unauthorized")
	}

	users, err := admins.ListUsers(c.Context())
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, "Error fetching users")
	}

	return c.JSON(users)
}

// GetFeedbacks - ดึง feedback ทั้งหมด หรือกรองด้วย ?userId=
func GetFeedbacks(c *fiber.Ctx) error {
	if _, ok := requireAdmin(c); !ok {
		return utils.HandleError(c, fiber.StatusForbidden, "Unauthorized access")
	}

	feedbacks, err := admins.ListFeedbacks(c.Context(), c.Query("userId"))
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, "Error fetching feedbacks")
	}

	return c.JSON(feedbacks)
}

// ResetFeedback - ลบ feedback ทั้งหมด
func ResetFeedback(c *fiber.Ctx) error {
	if _, ok := requireAdmin(c); !ok {
		return utils.HandleError(c, fiber.StatusForbidden, "Unauthorized")
	}

	if err := admins.ResetFeedbacks(c.Context()); err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, "Error resetting feedback")
	}

	return c.JSON(fiber.Map{"message": "All feedback has been reset."})
}
