package classifier

import (
	"context"
	"errors"
	"image/color"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRunner struct {
	logits  []float32
	runErr  error
	pingErr error
}

func (f *fakeRunner) Run(ctx context.Context, tensor []float32) ([]float32, error) {
	if f.runErr != nil {
		return nil, f.runErr
	}
	return f.logits, nil
}

func (f *fakeRunner) Ping(ctx context.Context) error { return f.pingErr }

func TestNew(t *testing.T) {
	t.Run("PingFailureRefusesStartup", func(t *testing.T) {
		_, err := New(context.Background(), &fakeRunner{pingErr: errors.New("connection refused")})
		assert.Error(t, err)
	})

	t.Run("PingSuccess", func(t *testing.T) {
		svc, err := New(context.Background(), &fakeRunner{})
		require.NoError(t, err)
		assert.NotNil(t, svc)
	})
}

func TestClassify(t *testing.T) {
	img := uniformImage(t, color.RGBA{R: 180, G: 120, B: 90, A: 255}, 50, 50)

	t.Run("LesionWhenIndexOneWins", func(t *testing.T) {
		svc, err := New(context.Background(), &fakeRunner{logits: []float32{0.3, 2.1}})
		require.NoError(t, err)

		res, err := svc.Classify(context.Background(), img)
		require.NoError(t, err)

		assert.Equal(t, LabelLesion, res.Prediction)
		assert.Greater(t, res.Probability, 0.5)
		assert.LessOrEqual(t, res.Probability, 1.0)
		assert.True(t, strings.HasSuffix(res.Confidence, "%"))
	})

	t.Run("NormalWhenIndexZeroWins", func(t *testing.T) {
		svc, err := New(context.Background(), &fakeRunner{logits: []float32{3.0, -1.0}})
		require.NoError(t, err)

		res, err := svc.Classify(context.Background(), img)
		require.NoError(t, err)
		assert.Equal(t, LabelNormal, res.Prediction)
	})

	t.Run("ConfidenceStringRoundTrips", func(t *testing.T) {
		svc, err := New(context.Background(), &fakeRunner{logits: []float32{1.0, 1.8}})
		require.NoError(t, err)

		res, err := svc.Classify(context.Background(), img)
		require.NoError(t, err)

		parsed, err := strconv.ParseFloat(strings.TrimSuffix(res.Confidence, "%"), 64)
		require.NoError(t, err)
		assert.InDelta(t, res.Probability*100, parsed, 0.01)
	})

	t.Run("UndecodableImage", func(t *testing.T) {
		svc, err := New(context.Background(), &fakeRunner{logits: []float32{0, 0}})
		require.NoError(t, err)

		_, err = svc.Classify(context.Background(), []byte("junk"))
		assert.ErrorIs(t, err, ErrImageDecode)
	})

	t.Run("RunnerFailure", func(t *testing.T) {
		svc, err := New(context.Background(), &fakeRunner{runErr: errors.New("boom")})
		require.NoError(t, err)

		_, err = svc.Classify(context.Background(), img)
		assert.Error(t, err)
	})

	t.Run("WrongLogitCount", func(t *testing.T) {
		svc, err := New(context.Background(), &fakeRunner{logits: []float32{0.1, 0.2, 0.3}})
		require.NoError(t, err)

		_, err = svc.Classify(context.Background(), img)
		assert.Error(t, err)
	})
}

func TestSoftmax(t *testing.T) {
	t.Run("SumsToOne", func(t *testing.T) {
		probs := Softmax([]float32{0.5, 2.5})
		assert.InDelta(t, 1.0, probs[0]+probs[1], 1e-9)
		assert.Greater(t, probs[1], probs[0])
	})

	t.Run("LargeLogitsStayFinite", func(t *testing.T) {
		probs := Softmax([]float32{1000, 1002})
		assert.InDelta(t, 1.0, probs[0]+probs[1], 1e-9)
	})

	t.Run("EqualLogits", func(t *testing.T) {
		probs := Softmax([]float32{1.0, 1.0})
		assert.InDelta(t, 0.5, probs[0], 1e-9)
		assert.InDelta(t, 0.5, probs[1], 1e-9)
	})
}

func TestFormatConfidence(t *testing.T) {
	assert.Equal(t, "87.34%", FormatConfidence(0.8734))
	assert.Equal(t, "91.20%", FormatConfidence(0.912))
	assert.Equal(t, "100.00%", FormatConfidence(1.0))
	assert.Equal(t, "0.00%", FormatConfidence(0.0))
}
