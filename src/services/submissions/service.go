package submissions

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"Backend-Smita/src/classifier"
	DB "Backend-Smita/src/database"
	"Backend-Smita/src/models"
	"Backend-Smita/src/services/uploads"

	"go.mongodb.org/mongo-driver/bson"
)

var (
	ErrUserNotFound   = errors.New("user not found")
	ErrDuplicateSmita = errors.New("a submission with this smitaId already exists")
)

// Classifier คือสัญญาที่ service นี้ต้องการจาก Classifier Adapter
// (*classifier.Service ตัวจริง หรือ fake ในเทสต์)
type Classifier interface {
	Classify(ctx context.Context, imageBytes []byte) (*classifier.Result, error)
}

// Meta ข้อมูลผู้ป่วยจากแบบฟอร์ม — เก็บตามที่ caller ส่งมา ไม่ validate
type Meta struct {
	Date          string
	SmitaID       string
	FirstName     string
	LastName      string
	Prefix        string
	Age           string
	Sex           string
	Religion      string
	MaritalStatus string
	Education     string
	Occupation    string
	Income        string
	PhoneNumber   string
	Address       string
	Type          string
}

// Service ประกอบ pipeline: upload → classify → aggregate → $push
type Service struct {
	Store      uploads.ObjectStore
	Classifier Classifier
}

func NewService(store uploads.ObjectStore, clf Classifier) *Service {
	return &Service{Store: store, Classifier: clf}
}

// ProcessRegions วนตามลำดับตายตัวของ models.Regions (ไม่ใช่ลำดับใน request)
// บริเวณไหน upload หรือ classify ไม่ผ่าน จะถูกตัดออกทั้งบริเวณและรายงานชื่อ
// ไว้ใน skipped — submission โดยรวมยังไปต่อได้
func (s *Service) ProcessRegions(ctx context.Context, files map[string][]byte) (map[string]models.RegionResult, []string) {
	results := make(map[string]models.RegionResult)
	var skipped []string

	for _, region := range models.Regions {
		data, ok := files[region]
		if !ok {
			continue
		}

		url, err := s.Store.Upload(ctx, data)
		if err != nil {
			log.Printf("⚠️ [form_submit] upload failed for %s: %v", region, err)
			skipped = append(skipped, region)
			continue
		}

		res, err := s.Classifier.Classify(ctx, data)
		if err != nil {
			log.Printf("⚠️ [form_submit] classify failed for %s: %v", region, err)
			skipped = append(skipped, region)
			continue
		}

		results[region] = models.RegionResult{
			Prediction: res.Prediction,
			Confidence: res.Confidence,
			ImageURL:   url,
		}
	}
	return results, skipped
}

// BuildSubmission ประกอบ document หนึ่งรายการจาก metadata + ผลราย region
func BuildSubmission(meta Meta, email string, results map[string]models.RegionResult, now time.Time) models.Submission {
	sub := models.Submission{
		Date:          meta.Date,
		SmitaID:       meta.SmitaID,
		FirstName:     meta.FirstName,
		LastName:      meta.LastName,
		Prefix:        meta.Prefix,
		Age:           meta.Age,
		Sex:           meta.Sex,
		Religion:      meta.Religion,
		MaritalStatus: meta.MaritalStatus,
		Education:     meta.Education,
		Occupation:    meta.Occupation,
		Income:        meta.Income,
		PhoneNumber:   meta.PhoneNumber,
		Address:       meta.Address,
		Type:          meta.Type,
		UserEmail:     email,
		Timestamp:     now.UTC(),
		Comments:      []models.Comment{},
	}
	for _, region := range models.Regions {
		if r, ok := results[region]; ok {
			sub.SetRegionResult(region, r)
		}
	}
	return sub
}

// smitaIDUnique — default เปิด ปิดได้ด้วย SMITA_ID_UNIQUE=false สำหรับ
// ข้อมูลเก่าที่มี id ซ้ำ
func smitaIDUnique() bool {
	return os.Getenv("SMITA_ID_UNIQUE") != "false"
}

// Submit รัน pipeline ทั้งเส้นแล้ว $push ลง form_submissions ของผู้ใช้
// (atomic single-document append — เห็นทั้ง record หรือไม่เห็นเลย)
func (s *Service) Submit(ctx context.Context, email string, meta Meta, files map[string][]byte) (*models.Submission, []string, error) {
	if smitaIDUnique() && meta.SmitaID != "" {
		count, err := DB.UserCollection.CountDocuments(ctx, bson.M{"form_submissions.smitaId": meta.SmitaID})
		if err != nil {
			return nil, nil, fmt.Errorf("persistence error: %w", err)
		}
		if count > 0 {
			return nil, nil, ErrDuplicateSmita
		}
	}

	results, skipped := s.ProcessRegions(ctx, files)
	sub := BuildSubmission(meta, email, results, time.Now())

	res, err := DB.UserCollection.UpdateOne(ctx,
		bson.M{"email": email},
		bson.M{"$push": bson.M{"form_submissions": sub}},
	)
	if err != nil {
		return nil, nil, fmt.Errorf("persistence error: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, nil, ErrUserNotFound
	}

	return &sub, skipped, nil
}
