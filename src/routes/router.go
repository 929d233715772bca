package routes

import (
	"Backend-Smita/src/controllers"

	"github.com/gofiber/fiber/v2"
)

// InitRoutes รวม routes จากแต่ละ module — path ทั้งหมดคงรูปแบบเดิมที่
// mobile app เรียกอยู่ (ไม่มี prefix /api)
func InitRoutes(app *fiber.App, fc *controllers.FormController, ac *controllers.AuthController) {
	authRoutes(app, ac)
	formRoutes(app, fc)
	commentRoutes(app)
	feedbackRoutes(app)
	adminRoutes(app)

	// Route เช็คว่า API ทำงานอยู่
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("✅ API is running...")
	})
}
