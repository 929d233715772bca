package auth

import (
	"context"
	"errors"
	"log"
	"time"

	DB "Backend-Smita/src/database"
	"Backend-Smita/src/jobs"
	"Backend-Smita/src/models"
	"Backend-Smita/src/services/email"
	"Backend-Smita/src/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrEmailExists        = errors.New("email already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidOTP         = errors.New("invalid OTP")
	ErrOTPExpired         = errors.New("OTP expired")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNotVerified        = errors.New("please verify your email first")
	ErrInvalidResetToken  = errors.New("invalid reset token")
	ErrResetTokenExpired  = errors.New("reset token has expired")
	ErrPasswordMismatch   = errors.New("passwords do not match")
)

const (
	otpTTL   = 10 * time.Minute
	resetTTL = 30 * time.Minute
)

// Service จัดการ signup/OTP/login/reset — mail sender ถูก inject จาก main
type Service struct {
	Mail email.MailSender
}

func NewService(mail email.MailSender) *Service {
	return &Service{Mail: mail}
}

// sendMail enqueue ผ่าน asynq ถ้ามี Redis ไม่งั้นส่งตรงผ่าน SMTP
func (s *Service) sendMail(to, subject, body string) {
	if DB.AsynqClient != nil {
		task, err := jobs.NewSendEmailTask(to, subject, body)
		if err == nil {
			if _, err = DB.AsynqClient.Enqueue(task); err == nil {
				return
			}
		}
		log.Println("⚠️ Failed to enqueue email task, falling back to inline send:", err)
	}
	if s.Mail == nil {
		log.Println("⚠️ SMTP not configured. Mail to", to, "not sent.")
		return
	}
	if err := s.Mail.Send(to, subject, body); err != nil {
		log.Println("❌ Failed to send email to", to, ":", err)
	}
}

// Signup สมัครสมาชิกใหม่พร้อมส่ง OTP — อีเมลที่มีอยู่แต่ยังไม่ verify
// จะได้รับ OTP ใหม่แทน (resent=true)
func (s *Service) Signup(ctx context.Context, username, userEmail, password string) (resent bool, err error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return false, err
	}

	otp := utils.GenerateOTP()
	otpExpiry := time.Now().UTC().Add(otpTTL)

	var existing models.User
	err = DB.UserCollection.FindOne(ctx, bson.M{"email": userEmail}).Decode(&existing)
	if err == nil {
		if existing.Verified {
			return false, ErrEmailExists
		}
		_, err = DB.UserCollection.UpdateOne(ctx,
			bson.M{"email": userEmail},
			bson.M{"$set": bson.M{"otp": otp, "otp_expiry": otpExpiry}},
		)
		if err != nil {
			return false, err
		}
		s.sendMail(userEmail, "Your OTP Code", email.OTPBody(otp))
		return true, nil
	}
	if err != mongo.ErrNoDocuments {
		return false, err
	}

	_, err = DB.UserCollection.InsertOne(ctx, bson.M{
		"username":   username,
		"email":      userEmail,
		"password":   string(hashed),
		"otp":        otp,
		"otp_expiry": otpExpiry,
		"verified":   false,
	})
	if mongo.IsDuplicateKeyError(err) {
		return false, ErrEmailExists
	}
	if err != nil {
		return false, err
	}

	s.sendMail(userEmail, "Your OTP Code", email.OTPBody(otp))
	return false, nil
}

// VerifyOTP ตรวจรหัสแล้ว mark verified พร้อม $unset otp fields
func (s *Service) VerifyOTP(ctx context.Context, userEmail, otp string) error {
	var user models.User
	err := DB.UserCollection.FindOne(ctx, bson.M{"email": userEmail}).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return ErrUserNotFound
		}
		return err
	}

	if user.OTP != otp {
		return ErrInvalidOTP
	}
	if user.OTPExpiry == nil || time.Now().UTC().After(*user.OTPExpiry) {
		return ErrOTPExpired
	}

	_, err = DB.UserCollection.UpdateOne(ctx,
		bson.M{"email": userEmail},
		bson.M{
			"$set":   bson.M{"verified": true},
			"$unset": bson.M{"otp": "", "otp_expiry": ""},
		},
	)
	return err
}

// Login ตรวจรหัสผ่านแล้วออก JWT (identity = email, อายุ 1 ชั่วโมง)
func (s *Service) Login(ctx context.Context, userEmail, password string) (string, error) {
	var user models.User
	err := DB.UserCollection.FindOne(ctx, bson.M{"email": userEmail}).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return "", ErrInvalidCredentials
		}
		return "", err
	}

	if !user.Verified {
		return "", ErrNotVerified
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return "", ErrInvalidCredentials
	}

	return utils.GenerateJWT(user.Email, user.Username)
}

// ForgotPassword ออก reset token อายุ 30 นาที
func (s *Service) ForgotPassword(ctx context.Context, userEmail string) (string, error) {
	count, err := DB.UserCollection.CountDocuments(ctx, bson.M{"email": userEmail})
	if err != nil {
		return "", err
	}
	if count == 0 {
		return "", ErrUserNotFound
	}

	token := utils.GenerateResetToken()
	expiry := time.Now().UTC().Add(resetTTL)

	_, err = DB.UserCollection.UpdateOne(ctx,
		bson.M{"email": userEmail},
		bson.M{"$set": bson.M{"reset_token": token, "reset_expiry": expiry}},
	)
	if err != nil {
		return "", err
	}

	s.sendMail(userEmail, "Password Reset", "Your password reset token is "+token+". It will expire in 30 minutes.")
	return token, nil
}

// ResetPassword ตั้งรหัสใหม่ด้วย token และลบ token ทิ้ง
func (s *Service) ResetPassword(ctx context.Context, userEmail, token, newPassword, confirmPassword string) error {
	if newPassword != confirmPassword {
		return ErrPasswordMismatch
	}

	var user models.User
	err := DB.UserCollection.FindOne(ctx, bson.M{"email": userEmail, "reset_token": token}).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return ErrInvalidResetToken
		}
		return err
	}

	if user.ResetExpiry == nil || time.Now().UTC().After(*user.ResetExpiry) {
		return ErrResetTokenExpired
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	_, err = DB.UserCollection.UpdateOne(ctx,
		bson.M{"email": userEmail},
		bson.M{
			"$set":   bson.M{"password": string(hashed)},
			"$unset": bson.M{"reset_token": "", "reset_expiry": ""},
		},
	)
	return err
}
