package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Feedback แบบประเมินการใช้งาน — at most one per user, unique index on userId
type Feedback struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	UserID       string             `bson:"userId" json:"userId"` // email ของผู้ใช้
	Answers      []int              `bson:"answers" json:"answers"`
	TextFeedback string             `bson:"textFeedback" json:"textFeedback"`
	Username     string             `bson:"-" json:"username,omitempty"` // joined in by admin listing only
}
