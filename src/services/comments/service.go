package comments

import (
	"context"
	"errors"
	"fmt"
	"time"

	DB "Backend-Smita/src/database"
	"Backend-Smita/src/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	ErrSubmissionNotFound = errors.New("submission not found")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidIndex       = errors.New("invalid comment index")
)

// matchedSubmission ใช้ decode ผลของ positional projection form_submissions.$
type matchedSubmission struct {
	FormSubmissions []models.Submission `bson:"form_submissions"`
}

// findBySmitaID หา submission แรกที่ตรง smitaId ข้าม users ทุกคน
func findBySmitaID(ctx context.Context, smitaID string) (*models.Submission, error) {
	var doc matchedSubmission
	err := DB.UserCollection.FindOne(ctx,
		bson.M{"form_submissions.smitaId": smitaID},
		options.FindOne().SetProjection(bson.M{"form_submissions.$": 1}),
	).Decode(&doc)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrSubmissionNotFound
		}
		return nil, err
	}
	if len(doc.FormSubmissions) == 0 {
		return nil, ErrSubmissionNotFound
	}
	return &doc.FormSubmissions[0], nil
}

// AddComment ต่อท้าย comment ใหม่ด้วย $push ตัวเดียว (atomic append)
// ฝั่งที่ถูก validate คือ "ผู้คอมเมนต์" — ไม่เช็คว่า submission เป็นของใคร
func AddComment(ctx context.Context, smitaID, commenterEmail, text string) (*models.Comment, error) {
	var user models.User
	err := DB.UserCollection.FindOne(ctx, bson.M{"email": commenterEmail}).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	username := user.Username
	if username == "" {
		username = "Anonymous"
	}

	comment := models.Comment{
		Username:  username,
		Comment:   text,
		Timestamp: time.Now().UTC(),
	}

	res, err := DB.UserCollection.UpdateOne(ctx,
		bson.M{"form_submissions.smitaId": smitaID},
		bson.M{"$push": bson.M{"form_submissions.$.comments": comment}},
	)
	if err != nil {
		return nil, err
	}
	if res.MatchedCount == 0 {
		return nil, ErrSubmissionNotFound
	}

	return &comment, nil
}

// GetComments คืน comment ทั้งหมดของ submission ตามลำดับ insert
// submission ที่ยังไม่มี comment คืน slice ว่าง ไม่ใช่ error
func GetComments(ctx context.Context, smitaID string) ([]models.Comment, error) {
	sub, err := findBySmitaID(ctx, smitaID)
	if err != nil {
		return nil, err
	}
	if sub.Comments == nil {
		return []models.Comment{}, nil
	}
	return sub.Comments, nil
}

// EditComment แก้ข้อความที่ index ที่ระบุด้วย positional $set ตัวเดียว
// ยิงตรงไปที่ comments.<i> — ไม่เขียน array ทั้งก้อนกลับ จึงไม่มี lost
// update กับ append/edit ที่มาพร้อมกัน เงื่อนไข $exists ใน filter ทำให้
// index เกินขอบเขตไม่แตะ document เลย
func EditComment(ctx context.Context, smitaID string, index int, newText string) (*models.Comment, error) {
	if index < 0 {
		return nil, ErrInvalidIndex
	}

	now := time.Now().UTC()
	commentField := fmt.Sprintf("form_submissions.$.comments.%d", index)

	res, err := DB.UserCollection.UpdateOne(ctx,
		bson.M{"form_submissions": bson.M{"$elemMatch": bson.M{
			"smitaId":                         smitaID,
			fmt.Sprintf("comments.%d", index): bson.M{"$exists": true},
		}}},
		bson.M{"$set": bson.M{
			commentField + ".comment":          newText,
			commentField + ".edited_timestamp": now,
		}},
	)
	if err != nil {
		return nil, err
	}

	if res.MatchedCount == 0 {
		// แยกว่าไม่เจอ submission หรือ index เกิน
		if _, ferr := findBySmitaID(ctx, smitaID); ferr != nil {
			return nil, ferr
		}
		return nil, ErrInvalidIndex
	}

	// อ่านกลับเพื่อเอา comment ฉบับเต็ม (username/timestamp เดิมคงอยู่)
	all, err := GetComments(ctx, smitaID)
	if err != nil {
		return nil, err
	}
	if index >= len(all) {
		return nil, ErrInvalidIndex
	}
	return &all[index], nil
}
