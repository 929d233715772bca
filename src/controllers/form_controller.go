package controllers

import (
	"errors"
	"io"

	"Backend-Smita/src/classifier"
	"Backend-Smita/src/models"
	"Backend-Smita/src/services/submissions"

	"github.com/gofiber/fiber/v2"
)

// FormController ถือ service ที่ inject มาจาก main (classifier โหลดครั้งเดียว
// ตอน startup แล้วแชร์ read-only ทุก request)
type FormController struct {
	Submissions *submissions.Service
	Classifier  *classifier.Service
}

func NewFormController(sub *submissions.Service, clf *classifier.Service) *FormController {
	return &FormController{Submissions: sub, Classifier: clf}
}

// readRegionFiles ดึงไฟล์รูปราย region จาก multipart form
// region ที่ไม่ได้แนบมาจะไม่มี key ใน map
func readRegionFiles(c *fiber.Ctx, regions []string) (map[string][]byte, error) {
	files := make(map[string][]byte)
	for _, region := range regions {
		fileHeader, err := c.FormFile(region)
		if err != nil || fileHeader == nil {
			continue
		}
		f, err := fileHeader.Open()
		if err != nil {
			return nil, err
		}
		data, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			return nil, err
		}
		files[region] = data
	}
	return files, nil
}

// FormSubmit รับแบบฟอร์มตรวจคัดกรอง + รูปสูงสุด 8 บริเวณ
// หมายเหตุ: endpoint นี้คืน error text ดิบเหมือนของเดิม เพื่อช่วย debug ฝั่ง mobile
func (fc *FormController) FormSubmit(c *fiber.Ctx) error {
	email, _ := c.Locals("email").(string)

	files, err := readRegionFiles(c, models.Regions)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	meta := submissions.Meta{
		Date:          c.FormValue("date"),
		SmitaID:       c.FormValue("smitaId"),
		FirstName:     c.FormValue("firstName"),
		LastName:      c.FormValue("lastName"),
		Prefix:        c.FormValue("prefix"),
		Age:           c.FormValue("age"),
		Sex:           c.FormValue("sex"),
		Religion:      c.FormValue("religion"),
		MaritalStatus: c.FormValue("maritalStatus"),
		Education:     c.FormValue("education"),
		Occupation:    c.FormValue("occupation"),
		Income:        c.FormValue("income"),
		PhoneNumber:   c.FormValue("phoneNumber"),
		Address:       c.FormValue("address"),
		Type:          c.FormValue("type"),
	}

	sub, skipped, err := fc.Submissions.Submit(c.Context(), email, meta, files)
	if err != nil {
		if errors.Is(err, submissions.ErrDuplicateSmita) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
		}
		if errors.Is(err, submissions.ErrUserNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	resp := fiber.Map{
		"message": "Form submitted and stored successfully",
		"data":    sub,
	}
	if len(skipped) > 0 {
		resp["skippedRegions"] = skipped
	}
	return c.JSON(resp)
}

// Predict จำแนกรูปเดียวโดยไม่บันทึกอะไร — เปิด public ไว้ให้หน้าแอปลองผล
func (fc *FormController) Predict(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("image")
	if err != nil || fileHeader == nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "No image file provided"})
	}

	f, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "File is empty"})
	}
	data, err := io.ReadAll(f)
	f.Close()
	if err != nil || len(data) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "File is empty"})
	}

	result, err := fc.Classifier.Classify(c.Context(), data)
	if err != nil {
		if errors.Is(err, classifier.ErrImageDecode) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Error processing image: " + err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{
		"prediction": result.Prediction,
		"confidence": result.Confidence,
	})
}
