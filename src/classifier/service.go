package classifier

import (
	"context"
	"fmt"
	"math"
)

// Labels — index 1 คือ Lesion ตามโมเดลที่ train มา
const (
	LabelNormal = "Normal"
	LabelLesion = "Lesion"
)

// Result ผลการจำแนกหนึ่งรูป
type Result struct {
	Prediction  string  `json:"prediction"`
	Confidence  string  `json:"confidence"` // เช่น "87.34%"
	Probability float64 `json:"-"`          // ค่าเดียวกันแบบ [0,1]
}

// Service คือ Classifier Adapter — สร้างครั้งเดียวตอน startup แล้ว inject
// ให้ controller/service ใช้ร่วมกัน (read-only หลัง init, ปลอดภัยต่อการ
// เรียกพร้อมกันหลาย request)
type Service struct {
	runner ModelRunner
}

// New ตรวจว่า model runner พร้อมใช้งานก่อนคืน Service —
// ถ้า ping ไม่ผ่าน caller (main) ต้อง fail ทั้ง process
func New(ctx context.Context, runner ModelRunner) (*Service, error) {
	if err := runner.Ping(ctx); err != nil {
		return nil, fmt.Errorf("model not available: %w", err)
	}
	return &Service{runner: runner}, nil
}

// Classify รับ image bytes ดิบ คืน label + confidence
func (s *Service) Classify(ctx context.Context, imageBytes []byte) (*Result, error) {
	tensor, err := PrepareImage(imageBytes)
	if err != nil {
		return nil, err
	}

	logits, err := s.runner.Run(ctx, tensor)
	if err != nil {
		return nil, err
	}
	if len(logits) != 2 {
		return nil, fmt.Errorf("expected 2 logits, got %d", len(logits))
	}

	probs := Softmax(logits)
	pred := 0
	if probs[1] > probs[0] {
		pred = 1
	}

	label := LabelNormal
	if pred == 1 {
		label = LabelLesion
	}

	return &Result{
		Prediction:  label,
		Confidence:  FormatConfidence(probs[pred]),
		Probability: probs[pred],
	}, nil
}

// Softmax แปลง logits เป็น probability distribution (ลบ max กัน overflow)
func Softmax(logits []float32) []float64 {
	max := float64(logits[0])
	for _, v := range logits[1:] {
		if float64(v) > max {
			max = float64(v)
		}
	}

	probs := make([]float64, len(logits))
	var sum float64
	for i, v := range logits {
		probs[i] = math.Exp(float64(v) - max)
		sum += probs[i]
	}
	for i := range probs {
		probs[i] /= sum
	}
	return probs
}

// FormatConfidence แปลง probability เป็น string เปอร์เซ็นต์ทศนิยมสองตำแหน่ง
func FormatConfidence(p float64) string {
	return fmt.Sprintf("%.2f%%", p*100)
}
