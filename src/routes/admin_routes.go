package routes

import (
	"Backend-Smita/src/controllers"
	"Backend-Smita/src/middleware"

	"github.com/gofiber/fiber/v2"
)

// adminRoutes กำหนดเส้นทางฝั่ง admin (เช็คสิทธิ์จาก ADMIN_EMAILS ใน controller)
func adminRoutes(app *fiber.App) {
	admin := app.Group("/admin")
	admin.Use(middleware.AuthJWT)
	admin.Get("/users", controllers.GetUsers)
	admin.Get("/feedbacks", controllers.GetFeedbacks)

	app.Delete("/reset-feedback", middleware.AuthJWT, controllers.ResetFeedback)
}
