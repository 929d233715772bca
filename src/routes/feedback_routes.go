package routes

import (
	"Backend-Smita/src/controllers"
	"Backend-Smita/src/middleware"

	"github.com/gofiber/fiber/v2"
)

// feedbackRoutes กำหนดเส้นทางของแบบประเมิน (ส่งได้ครั้งเดียวต่อผู้ใช้)
func feedbackRoutes(app *fiber.App) {
	app.Get("/check_feedback", middleware.AuthJWT, controllers.CheckFeedback)
	app.Post("/submit_feedback", middleware.AuthJWT, controllers.SubmitFeedback)
}
