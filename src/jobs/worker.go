package jobs

import (
	"context"
	"encoding/json"
	"log"

	"Backend-Smita/src/database"
	"Backend-Smita/src/services/email"

	"github.com/hibiken/asynq"
)

// HandleSendEmailTask ส่งอีเมล OTP/notification หนึ่งฉบับ
func HandleSendEmailTask(sender email.MailSender) asynq.HandlerFunc {
	return func(ctx context.Context, t *asynq.Task) error {
		var p EmailPayload
		if err := json.Unmarshal(t.Payload(), &p); err != nil {
			log.Println("❌ Payload decode error:", err)
			return err
		}

		if err := sender.Send(p.To, p.Subject, p.Body); err != nil {
			log.Println("❌ Failed to send email to", p.To, ":", err)
			return err
		}

		log.Println("✅ Email sent to", p.To)
		return nil
	}
}

// StartWorker รัน asynq worker ใน goroutine — ข้ามถ้าไม่มี Redis
func StartWorker(sender email.MailSender) {
	if database.RedisURI == "" || database.RedisClient == nil {
		log.Println("⚠️ Redis not available. Asynq worker will not start.")
		return
	}
	if sender == nil {
		log.Println("⚠️ SMTP not configured. Asynq worker will not start.")
		return
	}

	srv := asynq.NewServer(
		asynq.RedisClientOpt{Addr: database.RedisURI},
		asynq.Config{Concurrency: 5},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeSendEmail, HandleSendEmailTask(sender))

	go func() {
		if err := srv.Run(mux); err != nil {
			log.Println("❌ Asynq worker stopped:", err)
		}
	}()
	log.Println("✅ Asynq worker started")
}
