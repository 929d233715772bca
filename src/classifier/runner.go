package classifier

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"
)

// ModelRunner รันโมเดลกับ tensor ที่ preprocess แล้ว คืน raw logits
type ModelRunner interface {
	Run(ctx context.Context, tensor []float32) ([]float32, error)
	Ping(ctx context.Context) error
}

type inferRequest struct {
	Shape []int     `json:"shape"`
	Data  []float32 `json:"data"`
}

type inferResponse struct {
	Logits []float32 `json:"logits"`
}

// HTTPRunner เรียก inference sidecar (TorchServe/FastAPI) ผ่าน HTTP —
// ตัวโมเดล efficientnet รันใน process แยก ฝั่ง Go ส่ง tensor ไปเท่านั้น
type HTTPRunner struct {
	base   string
	client *http.Client
}

func NewHTTPRunner(base string) *HTTPRunner {
	return &HTTPRunner{
		base:   base,
		client: &http.Client{Timeout: 30 * time.Second},
	}
}

func (r *HTTPRunner) Run(ctx context.Context, tensor []float32) ([]float32, error) {
	body := inferRequest{
		Shape: []int{1, 3, InputSize, InputSize},
		Data:  tensor,
	}
	b, _ := json.Marshal(body)

	req, err := http.NewRequestWithContext(ctx, "POST", r.base+"/predict", bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := r.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return nil, errors.New("model server returned status " + res.Status)
	}

	var out inferResponse
	if err := json.NewDecoder(res.Body).Decode(&out); err != nil {
		return nil, err
	}
	return out.Logits, nil
}

// Ping ใช้ตอน startup — process ต้องไม่รับ request ถ้าโมเดลยังไม่พร้อม
func (r *HTTPRunner) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, "GET", r.base+"/ping", nil)
	if err != nil {
		return err
	}
	res, err := r.client.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		return errors.New("model server returned status " + res.Status)
	}
	return nil
}
