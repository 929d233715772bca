package database

import (
	"context"
	"log"
	"os"

	"github.com/redis/go-redis/v9"
)

var (
	RedisClient *redis.Client
	RedisCtx    = context.Background()
	RedisURI    string
)

// InitRedis เชื่อมต่อ Redis — ข้ามไปเลยถ้าไม่ได้ตั้ง REDIS_URI
// (ระบบยังทำงานได้ แค่ส่งอีเมลแบบ synchronous แทน)
func InitRedis() {
	RedisURI = os.Getenv("REDIS_URI")
	if RedisURI == "" {
		log.Println("⚠️ REDIS_URI not set. Email delivery will run inline.")
		return
	}

	RedisClient = redis.NewClient(&redis.Options{
		Addr:     RedisURI, // เช่น localhost:6379
		Password: "",       // ถ้าไม่มีรหัสผ่าน
		DB:       0,
	})
	_, err := RedisClient.Ping(RedisCtx).Result()
	if err != nil {
		log.Println("⚠️ Failed to connect Redis: " + err.Error())
		RedisClient = nil
		return
	}
	log.Println("✅ Redis connected successfully")
}
