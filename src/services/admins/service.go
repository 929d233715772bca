package admins

import (
	"context"
	"os"
	"strings"

	DB "Backend-Smita/src/database"
	"Backend-Smita/src/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// IsAdmin เช็ค email กับรายชื่อใน ADMIN_EMAILS (comma-separated)
func IsAdmin(email string) bool {
	for _, admin := range strings.Split(os.Getenv("ADMIN_EMAILS"), ",") {
		if admin != "" && strings.EqualFold(strings.TrimSpace(admin), email) {
			return true
		}
	}
	return false
}

// ListUsers คืนผู้ใช้ทั้งหมดโดยตัด password ออกที่ projection
func ListUsers(ctx context.Context) ([]models.User, error) {
	cursor, err := DB.UserCollection.Find(ctx, bson.M{},
		options.Find().SetProjection(bson.M{"password": 0}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var users []models.User
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// ListFeedbacks คืน feedback ทั้งหมด (หรือของ userId เดียว) พร้อม join
// username ของเจ้าของเข้าไปในแต่ละรายการ
func ListFeedbacks(ctx context.Context, userID string) ([]models.Feedback, error) {
	filter := bson.M{}
	if userID != "" {
		filter = bson.M{"userId": userID}
	}

	cursor, err := DB.FeedbackCollection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var feedbacks []models.Feedback
	if err := cursor.All(ctx, &feedbacks); err != nil {
		return nil, err
	}

	for i := range feedbacks {
		var user models.User
		err := DB.UserCollection.FindOne(ctx, bson.M{"email": feedbacks[i].UserID}).Decode(&user)
		if err == nil {
			feedbacks[i].Username = user.Username
		} else if err != mongo.ErrNoDocuments {
			return nil, err
		}
	}
	return feedbacks, nil
}

// ResetFeedbacks ลบ feedback ทั้งหมด (admin-only bulk operation)
func ResetFeedbacks(ctx context.Context) error {
	_, err := DB.FeedbackCollection.DeleteMany(ctx, bson.M{})
	return err
}
