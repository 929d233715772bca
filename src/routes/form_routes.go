package routes

import (
	"Backend-Smita/src/controllers"
	"Backend-Smita/src/middleware"

	"github.com/gofiber/fiber/v2"
)

// formRoutes กำหนดเส้นทางของ pipeline ตรวจคัดกรอง
func formRoutes(app *fiber.App, fc *controllers.FormController) {
	app.Post("/form_submit", middleware.AuthJWT, fc.FormSubmit)
	app.Post("/predict", fc.Predict) // เปิด public เหมือนเดิม
}
