package feedbacks

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateAnswers(t *testing.T) {
	t.Run("ExactlySixAccepted", func(t *testing.T) {
		assert.NoError(t, ValidateAnswers([]int{5, 4, 3, 5, 5, 4}))
	})

	t.Run("TooFewRejected", func(t *testing.T) {
		assert.ErrorIs(t, ValidateAnswers([]int{1, 2, 3}), ErrInvalidAnswers)
	})

	t.Run("TooManyRejected", func(t *testing.T) {
		assert.ErrorIs(t, ValidateAnswers([]int{1, 2, 3, 4, 5, 6, 7}), ErrInvalidAnswers)
	})

	t.Run("EmptyRejected", func(t *testing.T) {
		assert.ErrorIs(t, ValidateAnswers(nil), ErrInvalidAnswers)
	})
}

func TestSubmitRejectsBadAnswersBeforeAnyWrite(t *testing.T) {
	// validation ต้อง fail ก่อนแตะ storage — collection ยังเป็น nil ในเทสต์นี้
	// ถ้า Submit พยายามเขียนก่อน validate จะ panic ทันที
	err := Submit(context.Background(), "user@example.com", []int{1, 2}, "meh")
	assert.ErrorIs(t, err, ErrInvalidAnswers)
}
