package comments

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEditCommentRejectsNegativeIndex(t *testing.T) {
	// index ติดลบต้องถูกปัดตกก่อนถึง storage (collection เป็น nil ในเทสต์)
	_, err := EditComment(context.Background(), "SMITA-0001", -1, "new text")
	assert.ErrorIs(t, err, ErrInvalidIndex)
}
