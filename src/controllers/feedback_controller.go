package controllers

import (
	"errors"

	"Backend-Smita/src/services/feedbacks"
	"Backend-Smita/src/utils"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// CheckFeedback เช็คว่าผู้ใช้เคยส่งแบบประเมินแล้วหรือยัง
func CheckFeedback(c *fiber.Ctx) error {
	email, _ := c.Locals("email").(string)

	submitted, err := feedbacks.HasSubmitted(c.Context(), email)
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, "Error checking feedback")
	}

	return c.JSON(fiber.Map{"submitted": submitted})
}

// SubmitFeedback บันทึกแบบประเมิน — ต้องตอบครบ 6 ข้อ และส่งได้ครั้งเดียว
func SubmitFeedback(c *fiber.Ctx) error {
	email, _ := c.Locals("email").(string)

	type feedbackRequest struct {
		Answers      []int  `json:"answers" validate:"required,len=6"`
		TextFeedback string `json:"textFeedback"`
	}

	var req feedbackRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input")
	}
	if err := validate.Struct(req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "All questions must be answered.")
	}

	err := feedbacks.Submit(c.Context(), email, req.Answers, req.TextFeedback)
	if err != nil {
		if errors.Is(err, feedbacks.ErrInvalidAnswers) {
			return utils.HandleError(c, fiber.StatusBadRequest, "All questions must be answered.")
		}
		if errors.Is(err, feedbacks.ErrAlreadySubmitted) {
			return utils.HandleError(c, fiber.StatusConflict, "Feedback already submitted")
		}
		return utils.HandleError(c, fiber.StatusInternalServerError, "Error submitting feedback")
	}

	return c.JSON(fiber.Map{"message": "Feedback submitted successfully"})
}
