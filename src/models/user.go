package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User บัญชีผู้ใช้งาน (identity = email, unique index)
type User struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Username    string             `bson:"username" json:"username"`
	Email       string             `bson:"email" json:"email"`
	Password    string             `bson:"password" json:"-"`
	Verified    bool               `bson:"verified" json:"verified"`
	OTP         string             `bson:"otp,omitempty" json:"-"`
	OTPExpiry   *time.Time         `bson:"otp_expiry,omitempty" json:"-"`
	ResetToken  string             `bson:"reset_token,omitempty" json:"-"`
	ResetExpiry *time.Time         `bson:"reset_expiry,omitempty" json:"-"`

	// FormSubmissions เก็บแบบ embedded array, insertion-ordered
	FormSubmissions []Submission `bson:"form_submissions,omitempty" json:"form_submissions,omitempty"`
}
