package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateOTP(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 20; i++ {
		otp := GenerateOTP()
		require.Len(t, otp, 6)
		for _, ch := range otp {
			assert.True(t, ch >= '0' && ch <= '9', "OTP must be digits only: %q", otp)
		}
		seen[otp] = true
	}
	// สุ่ม 20 ครั้งไม่ควรได้ค่าเดียวกันหมด
	assert.Greater(t, len(seen), 1)
}

func TestGenerateResetToken(t *testing.T) {
	token := GenerateResetToken()
	assert.Len(t, token, 32)
	assert.NotEqual(t, token, GenerateResetToken())
}

func TestJWTRoundTrip(t *testing.T) {
	token, err := GenerateJWT("asha@example.com", "asha")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ParseJWT(token)
	require.NoError(t, err)
	assert.Equal(t, "asha@example.com", claims.Email)
	assert.Equal(t, "asha", claims.Username)
}

func TestParseJWTRejectsGarbage(t *testing.T) {
	_, err := ParseJWT("")
	assert.Error(t, err)

	_, err = ParseJWT("not.a.token")
	assert.Error(t, err)
}
