package submissions

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"Backend-Smita/src/classifier"
	"Backend-Smita/src/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeStore จำลำดับการ upload และ fail เป็นราย region ได้
// (ภาพในเทสต์ใช้ชื่อ region เป็นเนื้อไฟล์ เพื่อ map ผลกลับได้)
type fakeStore struct {
	failFor map[string]bool
	order   []string
}

func (f *fakeStore) Upload(ctx context.Context, data []byte) (string, error) {
	region := string(data)
	f.order = append(f.order, region)
	if f.failFor[region] {
		return "", errors.New("upload error")
	}
	return "http://cdn.local/smita/" + region + ".jpg", nil
}

type fakeClassifier struct {
	results map[string]*classifier.Result
	failFor map[string]bool
}

func (f *fakeClassifier) Classify(ctx context.Context, imageBytes []byte) (*classifier.Result, error) {
	region := string(imageBytes)
	if f.failFor[region] {
		return nil, errors.New("classification error")
	}
	if r, ok := f.results[region]; ok {
		return r, nil
	}
	return &classifier.Result{Prediction: classifier.LabelNormal, Confidence: "99.00%"}, nil
}

func regionBytes(regions ...string) map[string][]byte {
	files := make(map[string][]byte)
	for _, r := range regions {
		files[r] = []byte(r)
	}
	return files
}

func TestProcessRegions(t *testing.T) {
	t.Run("OnlySuppliedRegionsProcessed", func(t *testing.T) {
		store := &fakeStore{}
		svc := NewService(store, &fakeClassifier{})

		results, skipped := svc.ProcessRegions(context.Background(), regionBytes("dorsal", "upperLip"))

		assert.Len(t, results, 2)
		assert.Empty(t, skipped)
		assert.Contains(t, results, "dorsal")
		assert.Contains(t, results, "upperLip")
		assert.NotContains(t, results, "ventral")
	})

	t.Run("FixedEnumerationOrderNotRequestOrder", func(t *testing.T) {
		store := &fakeStore{}
		svc := NewService(store, &fakeClassifier{})

		// map iteration order สุ่ม แต่ service ต้องวนตาม models.Regions เสมอ
		svc.ProcessRegions(context.Background(),
			regionBytes("lowerArch", "dorsal", "upperLip", "ventral"))

		assert.Equal(t, []string{"dorsal", "ventral", "upperLip", "lowerArch"}, store.order)
	})

	t.Run("UploadFailureSkipsRegionOnly", func(t *testing.T) {
		store := &fakeStore{failFor: map[string]bool{"ventral": true}}
		svc := NewService(store, &fakeClassifier{})

		results, skipped := svc.ProcessRegions(context.Background(), regionBytes("dorsal", "ventral"))

		assert.Len(t, results, 1)
		assert.Contains(t, results, "dorsal")
		assert.Equal(t, []string{"ventral"}, skipped)
	})

	t.Run("ClassifyFailureSkipsRegionOnly", func(t *testing.T) {
		store := &fakeStore{}
		svc := NewService(store, &fakeClassifier{failFor: map[string]bool{"dorsal": true}})

		results, skipped := svc.ProcessRegions(context.Background(), regionBytes("dorsal", "upperLip"))

		assert.Len(t, results, 1)
		assert.Contains(t, results, "upperLip")
		assert.Equal(t, []string{"dorsal"}, skipped)
	})

	t.Run("EmptyInput", func(t *testing.T) {
		svc := NewService(&fakeStore{}, &fakeClassifier{})
		results, skipped := svc.ProcessRegions(context.Background(), nil)
		assert.Empty(t, results)
		assert.Empty(t, skipped)
	})
}

func TestBuildSubmission(t *testing.T) {
	meta := Meta{
		Date:      "2025-03-01",
		SmitaID:   "SMITA-0042",
		FirstName: "Asha",
		LastName:  "Rao",
		Age:       "54",
		Sex:       "F",
		Type:      "screening",
	}

	t.Run("SubsetScenario", func(t *testing.T) {
		// scenario: ส่งเฉพาะ dorsal กับ upperLip — ventral ต้องไม่มี field ใดเลย
		results := map[string]models.RegionResult{
			"dorsal":   {Prediction: "Normal", Confidence: "91.20%", ImageURL: "http://cdn.local/d.jpg"},
			"upperLip": {Prediction: "Normal", Confidence: "88.50%", ImageURL: "http://cdn.local/u.jpg"},
		}

		now := time.Date(2025, 3, 1, 10, 30, 0, 0, time.UTC)
		sub := BuildSubmission(meta, "asha@example.com", results, now)

		assert.Equal(t, "Normal", sub.DorsalPrediction)
		assert.Equal(t, "91.20%", sub.DorsalConfidence)
		assert.Equal(t, "Normal", sub.UpperLipPrediction)
		assert.Equal(t, "88.50%", sub.UpperLipConfidence)
		assert.Empty(t, sub.VentralPrediction)
		assert.Empty(t, sub.VentralConfidence)
		assert.Empty(t, sub.VentralImageURL)

		assert.Equal(t, "asha@example.com", sub.UserEmail)
		assert.Equal(t, now, sub.Timestamp)
		assert.NotNil(t, sub.Comments)
		assert.Empty(t, sub.Comments)

		// JSON ต้องไม่โผล่ key ของ region ที่ไม่ได้ส่ง
		b, err := json.Marshal(sub)
		require.NoError(t, err)
		assert.NotContains(t, string(b), "ventral_")
		assert.Contains(t, string(b), `"dorsal_prediction":"Normal"`)
		assert.Contains(t, string(b), `"dorsal_confidence":"91.20%"`)
		assert.Contains(t, string(b), `"upperLip_confidence":"88.50%"`)
	})

	t.Run("MetadataCopiedVerbatim", func(t *testing.T) {
		sub := BuildSubmission(meta, "asha@example.com", nil, time.Now())

		assert.Equal(t, "SMITA-0042", sub.SmitaID)
		assert.Equal(t, "Asha", sub.FirstName)
		assert.Equal(t, "54", sub.Age) // caller-supplied string เก็บตามเดิม
		assert.Equal(t, "screening", sub.Type)
	})

	t.Run("TimestampIsUTC", func(t *testing.T) {
		loc, err := time.LoadLocation("Asia/Bangkok")
		require.NoError(t, err)

		sub := BuildSubmission(meta, "a@b.c", nil, time.Date(2025, 3, 1, 17, 0, 0, 0, loc))
		assert.Equal(t, time.UTC, sub.Timestamp.Location())
		assert.Equal(t, 10, sub.Timestamp.Hour())
	})
}
