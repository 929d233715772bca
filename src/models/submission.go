package models

import (
	"time"
)

// Regions ลำดับตายตัวของบริเวณช่องปากทั้ง 8 จุด — the processing order of a
// form submission always follows this slice, never the request order.
var Regions = []string{
	"dorsal", "ventral", "leftBuccal", "rightBuccal",
	"upperLip", "lowerLip", "upperArch", "lowerArch",
}

// RegionResult ผลการวิเคราะห์ของหนึ่งบริเวณ
type RegionResult struct {
	Prediction string
	Confidence string
	ImageURL   string
}

// Submission หนึ่งการตรวจคัดกรอง เก็บ embedded ใน form_submissions ของ User
// Per-region fields are flattened into `{region}_prediction`,
// `{region}_confidence` and `{region}_image_url` keys; a region whose image
// was not supplied (or failed upload/classification) omits all three.
type Submission struct {
	Date          string `bson:"date" json:"date"`
	SmitaID       string `bson:"smitaId" json:"smitaId"`
	FirstName     string `bson:"firstName" json:"firstName"`
	LastName      string `bson:"lastName" json:"lastName"`
	Prefix        string `bson:"prefix" json:"prefix"`
	Age           string `bson:"age" json:"age"`
	Sex           string `bson:"sex" json:"sex"`
	Religion      string `bson:"religion" json:"religion"`
	MaritalStatus string `bson:"maritalStatus" json:"maritalStatus"`
	Education     string `bson:"education" json:"education"`
	Occupation    string `bson:"occupation" json:"occupation"`
	Income        string `bson:"income" json:"income"`
	PhoneNumber   string `bson:"phoneNumber" json:"phoneNumber"`
	Address       string `bson:"address" json:"address"`
	Type          string `bson:"type" json:"type"`

	DorsalPrediction       string `bson:"dorsal_prediction,omitempty" json:"dorsal_prediction,omitempty"`
	DorsalConfidence       string `bson:"dorsal_confidence,omitempty" json:"dorsal_confidence,omitempty"`
	DorsalImageURL         string `bson:"dorsal_image_url,omitempty" json:"dorsal_image_url,omitempty"`
	VentralPrediction      string `bson:"ventral_prediction,omitempty" json:"ventral_prediction,omitempty"`
	VentralConfidence      string `bson:"ventral_confidence,omitempty" json:"ventral_confidence,omitempty"`
	VentralImageURL        string `bson:"ventral_image_url,omitempty" json:"ventral_image_url,omitempty"`
	LeftBuccalPrediction   string `bson:"leftBuccal_prediction,omitempty" json:"leftBuccal_prediction,omitempty"`
	LeftBuccalConfidence   string `bson:"leftBuccal_confidence,omitempty" json:"leftBuccal_confidence,omitempty"`
	LeftBuccalImageURL     string `bson:"leftBuccal_image_url,omitempty" json:"leftBuccal_image_url,omitempty"`
	RightBuccalPrediction  string `bson:"rightBuccal_prediction,omitempty" json:"rightBuccal_prediction,omitempty"`
	RightBuccalConfidence  string `bson:"rightBuccal_confidence,omitempty" json:"rightBuccal_confidence,omitempty"`
	RightBuccalImageURL    string `bson:"rightBuccal_image_url,omitempty" json:"rightBuccal_image_url,omitempty"`
	UpperLipPrediction     string `bson:"upperLip_prediction,omitempty" json:"upperLip_prediction,omitempty"`
	UpperLipConfidence     string `bson:"upperLip_confidence,omitempty" json:"upperLip_confidence,omitempty"`
	UpperLipImageURL       string `bson:"upperLip_image_url,omitempty" json:"upperLip_image_url,omitempty"`
	LowerLipPrediction     string `bson:"lowerLip_prediction,omitempty" json:"lowerLip_prediction,omitempty"`
	LowerLipConfidence     string `bson:"lowerLip_confidence,omitempty" json:"lowerLip_confidence,omitempty"`
	LowerLipImageURL       string `bson:"lowerLip_image_url,omitempty" json:"lowerLip_image_url,omitempty"`
	UpperArchPrediction    string `bson:"upperArch_prediction,omitempty" json:"upperArch_prediction,omitempty"`
	UpperArchConfidence    string `bson:"upperArch_confidence,omitempty" json:"upperArch_confidence,omitempty"`
	UpperArchImageURL      string `bson:"upperArch_image_url,omitempty" json:"upperArch_image_url,omitempty"`
	LowerArchPrediction    string `bson:"lowerArch_prediction,omitempty" json:"lowerArch_prediction,omitempty"`
	LowerArchConfidence    string `bson:"lowerArch_confidence,omitempty" json:"lowerArch_confidence,omitempty"`
	LowerArchImageURL      string `bson:"lowerArch_image_url,omitempty" json:"lowerArch_image_url,omitempty"`

	UserEmail string    `bson:"user_email" json:"user_email"`
	Timestamp time.Time `bson:"timestamp" json:"timestamp"`
	Comments  []Comment `bson:"comments" json:"comments"`
}

// SetRegionResult ใส่ผลของบริเวณที่ระบุลงใน field แบบ flattened
func (s *Submission) SetRegionResult(region string, r RegionResult) bool {
	switch region {
	case "dorsal":
		s.DorsalPrediction, s.DorsalConfidence, s.DorsalImageURL = r.Prediction, r.Confidence, r.ImageURL
	case "ventral":
		s.VentralPrediction, s.VentralConfidence, s.VentralImageURL = r.Prediction, r.Confidence, r.ImageURL
	case "leftBuccal":
		s.LeftBuccalPrediction, s.LeftBuccalConfidence, s.LeftBuccalImageURL = r.Prediction, r.Confidence, r.ImageURL
	case "rightBuccal":
		s.RightBuccalPrediction, s.RightBuccalConfidence, s.RightBuccalImageURL = r.Prediction, r.Confidence, r.ImageURL
	case "upperLip":
		s.UpperLipPrediction, s.UpperLipConfidence, s.UpperLipImageURL = r.Prediction, r.Confidence, r.ImageURL
	case "lowerLip":
		s.LowerLipPrediction, s.LowerLipConfidence, s.LowerLipImageURL = r.Prediction, r.Confidence, r.ImageURL
	case "upperArch":
		s.UpperArchPrediction, s.UpperArchConfidence, s.UpperArchImageURL = r.Prediction, r.Confidence, r.ImageURL
	case "lowerArch":
		s.LowerArchPrediction, s.LowerArchConfidence, s.LowerArchImageURL = r.Prediction, r.Confidence, r.ImageURL
	default:
		return false
	}
	return true
}

// RegionResult คืนค่าผลของบริเวณที่ระบุ (ok=false เมื่อไม่มีข้อมูลครบสามค่า)
func (s *Submission) RegionResult(region string) (RegionResult, bool) {
	var r RegionResult
	switch region {
	case "dorsal":
		r = RegionResult{s.DorsalPrediction, s.DorsalConfidence, s.DorsalImageURL}
	case "ventral":
		r = RegionResult{s.VentralPrediction, s.VentralConfidence, s.VentralImageURL}
	case "leftBuccal":
		r = RegionResult{s.LeftBuccalPrediction, s.LeftBuccalConfidence, s.LeftBuccalImageURL}
	case "rightBuccal":
		r = RegionResult{s.RightBuccalPrediction, s.RightBuccalConfidence, s.RightBuccalImageURL}
	case "upperLip":
		r = RegionResult{s.UpperLipPrediction, s.UpperLipConfidence, s.UpperLipImageURL}
	case "lowerLip":
		r = RegionResult{s.LowerLipPrediction, s.LowerLipConfidence, s.LowerLipImageURL}
	case "upperArch":
		r = RegionResult{s.UpperArchPrediction, s.UpperArchConfidence, s.UpperArchImageURL}
	case "lowerArch":
		r = RegionResult{s.LowerArchPrediction, s.LowerArchConfidence, s.LowerArchImageURL}
	default:
		return RegionResult{}, false
	}
	if r.Prediction == "" && r.Confidence == "" && r.ImageURL == "" {
		return RegionResult{}, false
	}
	return r, true
}

// Comment หนึ่งความเห็นใน thread ของ Submission — identity คือ index ใน array
type Comment struct {
	Username        string     `bson:"username" json:"username"`
	Comment         string     `bson:"comment" json:"comment"`
	Timestamp       time.Time  `bson:"timestamp" json:"timestamp"`
	EditedTimestamp *time.Time `bson:"edited_timestamp,omitempty" json:"edited_timestamp,omitempty"`
}
