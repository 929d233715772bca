package main

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"os"
	"time"

	"Backend-Smita/src/classifier"
	"Backend-Smita/src/controllers"
	"Backend-Smita/src/database"
	"Backend-Smita/src/jobs"
	"Backend-Smita/src/routes"
	"Backend-Smita/src/services/auth"
	"Backend-Smita/src/services/email"
	"Backend-Smita/src/services/submissions"
	"Backend-Smita/src/services/uploads"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func main() {

	// เชื่อมต่อกับ MongoDB
	err := database.ConnectMongoDB()
	if err != nil {
		log.Fatalf("Error connecting to the database: %v", err)
	}

	// Redis + Asynq (optional — อีเมลจะส่ง inline ถ้าไม่มี)
	database.InitRedis()
	database.InitAsynq()

	// โมเดลต้องพร้อมก่อนเปิดรับ request — ping ไม่ผ่านคือจบ process
	modelURL := os.Getenv("MODEL_SERVER_URL")
	if modelURL == "" {
		modelURL = "http://localhost:8085"
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	clf, err := classifier.New(ctx, classifier.NewHTTPRunner(modelURL))
	cancel()
	if err != nil {
		log.Fatalf("❌ Classifier not available: %v", err)
	}
	log.Println("✅ Classifier model ready at " + modelURL)

	// Object storage สำหรับรูปที่อัปโหลด
	store, err := uploads.NewMinioStoreFromEnv()
	if err != nil {
		log.Fatalf("❌ Object storage not available: %v", err)
	}

	// SMTP (optional — log warning ถ้า env ไม่ครบ)
	var sender email.MailSender
	if smtp, err := email.NewSMTPSenderFromEnv(); err != nil {
		log.Println("⚠️ SMTP not configured:", err)
	} else {
		sender = smtp
	}
	jobs.StartWorker(sender)

	// ประกอบ services + controllers
	subService := submissions.NewService(store, clf)
	authService := auth.NewService(sender)
	fc := controllers.NewFormController(subService, clf)
	ac := controllers.NewAuthController(authService)

	// สร้าง app instance
	app := fiber.New(fiber.Config{
		BodyLimit: 64 * 1024 * 1024, // รูป 8 บริเวณใน request เดียว
	})

	// ✅ เปิดใช้งาน CORS Middleware
	app.Use(cors.New(cors.Config{
		AllowOrigins:     "*",
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: false, // ❌ ต้องเป็น false ถ้าใช้ "*"
	}))

	// รวม routes จากแต่ละ module
	routes.InitRoutes(app, fc, ac)

	// get url from .env
	appURI := os.Getenv("APP_URI")
	if appURI == "" {
		appURI = "8080" // ใช้ 8080 เป็นค่าเริ่มต้น
	}

	// เริ่มเซิร์ฟเวอร์
	log.Println("Server is running on port " + appURI)
	err = app.Listen(fmt.Sprintf(":%s", url.PathEscape(appURI)))
	if err != nil {
		log.Fatal(err)
	}

}
