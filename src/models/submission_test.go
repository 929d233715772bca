package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegions(t *testing.T) {
	// ลำดับนี้เป็นสัญญา — ทั้ง pipeline และ mobile app พึ่งพามัน
	assert.Equal(t, []string{
		"dorsal", "ventral", "leftBuccal", "rightBuccal",
		"upperLip", "lowerLip", "upperArch", "lowerArch",
	}, Regions)
}

func TestSubmissionRegionResult(t *testing.T) {
	t.Run("RoundTripAllRegions", func(t *testing.T) {
		var sub Submission
		for i, region := range Regions {
			r := RegionResult{
				Prediction: "Lesion",
				Confidence: "80.00%",
				ImageURL:   "http://cdn.local/" + region + ".jpg",
			}
			ok := sub.SetRegionResult(region, r)
			require.True(t, ok, "region %d (%s)", i, region)

			got, ok := sub.RegionResult(region)
			require.True(t, ok)
			assert.Equal(t, r, got)
		}
	})

	t.Run("UnknownRegionRejected", func(t *testing.T) {
		var sub Submission
		assert.False(t, sub.SetRegionResult("tongue", RegionResult{Prediction: "Normal"}))

		_, ok := sub.RegionResult("tongue")
		assert.False(t, ok)
	})

	t.Run("AbsentRegionReportsNotOK", func(t *testing.T) {
		var sub Submission
		sub.SetRegionResult("dorsal", RegionResult{Prediction: "Normal", Confidence: "90.00%", ImageURL: "u"})

		_, ok := sub.RegionResult("ventral")
		assert.False(t, ok)
	})
}

func TestSubmissionJSONOmitsAbsentRegions(t *testing.T) {
	sub := Submission{SmitaID: "S-1", UserEmail: "a@b.c", Timestamp: time.Now().UTC()}
	sub.SetRegionResult("lowerArch", RegionResult{Prediction: "Lesion", Confidence: "77.10%", ImageURL: "http://x/y.jpg"})

	b, err := json.Marshal(sub)
	require.NoError(t, err)

	s := string(b)
	assert.Contains(t, s, `"lowerArch_prediction":"Lesion"`)
	assert.Contains(t, s, `"lowerArch_image_url":"http://x/y.jpg"`)
	for _, region := range Regions[:7] {
		assert.NotContains(t, s, region+"_prediction")
	}
}

func TestCommentJSON(t *testing.T) {
	t.Run("NoEditTimestampWhenNeverEdited", func(t *testing.T) {
		c := Comment{Username: "asha", Comment: "looks fine", Timestamp: time.Now().UTC()}
		b, err := json.Marshal(c)
		require.NoError(t, err)
		assert.NotContains(t, string(b), "edited_timestamp")
	})

	t.Run("EditTimestampPresentAfterEdit", func(t *testing.T) {
		now := time.Now().UTC()
		c := Comment{Username: "asha", Comment: "updated", Timestamp: now, EditedTimestamp: &now}
		b, err := json.Marshal(c)
		require.NoError(t, err)
		assert.Contains(t, string(b), "edited_timestamp")
	})
}
