package feedbacks

import (
	"context"
	"errors"

	DB "Backend-Smita/src/database"
	"Backend-Smita/src/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

var (
	ErrAlreadySubmitted = errors.New("feedback already submitted")
	ErrInvalidAnswers   = errors.New("all questions must be answered")
)

// AnswerCount จำนวนคำถามของแบบประเมิน
const AnswerCount = 6

// HasSubmitted เช็คว่าผู้ใช้เคยส่ง feedback แล้วหรือยัง
func HasSubmitted(ctx context.Context, userEmail string) (bool, error) {
	count, err := DB.FeedbackCollection.CountDocuments(ctx, bson.M{"userId": userEmail})
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// ValidateAnswers — ต้องตอบครบทั้ง 6 ข้อ ไม่งั้นไม่เขียนอะไรลง storage เลย
func ValidateAnswers(answers []int) error {
	if len(answers) != AnswerCount {
		return ErrInvalidAnswers
	}
	return nil
}

// Submit บันทึก feedback หนึ่งรายการต่อผู้ใช้ — unique index บน userId
// ทำให้เป็น insert-if-absent แบบ atomic ส่งซ้ำจะเจอ duplicate key
func Submit(ctx context.Context, userEmail string, answers []int, textFeedback string) error {
	if err := ValidateAnswers(answers); err != nil {
		return err
	}

	feedback := models.Feedback{
		UserID:       userEmail,
		Answers:      answers,
		TextFeedback: textFeedback,
	}

	_, err := DB.FeedbackCollection.InsertOne(ctx, feedback)
	if mongo.IsDuplicateKeyError(err) {
		return ErrAlreadySubmitted
	}
	return err
}
