package utils

import (
	"crypto/rand"
	"math/big"
)

const tokenAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// GenerateOTP สุ่มรหัส OTP ตัวเลข 6 หลัก
func GenerateOTP() string {
	digits := make([]byte, 6)
	for i := range digits {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			digits[i] = '0'
			continue
		}
		digits[i] = byte('0' + n.Int64())
	}
	return string(digits)
}

// GenerateResetToken สุ่ม token ตัวอักษร+ตัวเลข 32 ตัวสำหรับ reset password
func GenerateResetToken() string {
	token := make([]byte, 32)
	for i := range token {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(tokenAlphabet))))
		if err != nil {
			token[i] = '0'
			continue
		}
		token[i] = tokenAlphabet[n.Int64()]
	}
	return string(token)
}
