package routes

import (
	"Backend-Smita/src/controllers"
	"Backend-Smita/src/middleware"

	"github.com/gofiber/fiber/v2"
)

// commentRoutes กำหนดเส้นทางของ comment thread (keyed ด้วย smitaId)
func commentRoutes(app *fiber.App) {
	app.Post("/add-comment", middleware.AuthJWT, controllers.AddComment)
	app.Get("/get-comments/:smitaId", controllers.GetComments)
	app.Put("/edit-comment/:smitaId", controllers.EditComment)
}
