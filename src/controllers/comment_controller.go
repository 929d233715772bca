package controllers

import (
	"errors"

	"Backend-Smita/src/services/comments"
	"Backend-Smita/src/utils"

	"github.com/gofiber/fiber/v2"
)

// AddComment เพิ่ม comment ใหม่ท้าย thread — รับแบบ form-encoded
// (comment, smitaId) ตามที่ mobile app ส่งมา
func AddComment(c *fiber.Ctx) error {
	commentText := c.FormValue("comment")
	smitaID := c.FormValue("smitaId")

	if commentText == "" || smitaID == "" {
		return utils.HandleError(c, fiber.StatusBadRequest, "Missing required fields")
	}

	email, _ := c.Locals("email").(string)

	comment, err := comments.AddComment(c.Context(), smitaID, email, commentText)
	if err != nil {
		switch {
		case errors.Is(err, comments.ErrUserNotFound):
			return utils.HandleError(c, fiber.StatusNotFound, "User not found")
		case errors.Is(err, comments.ErrSubmissionNotFound):
			return utils.HandleError(c, fiber.StatusNotFound, "Submission not found or comment not added")
		default:
			return utils.HandleError(c, fiber.StatusInternalServerError, "Error adding comment")
		}
	}

	return c.JSON(fiber.Map{
		"message": "Comment added successfully",
		"comment": comment,
	})
}

// GetComments คืน comment ทั้งหมดของ submission ตาม smitaId
func GetComments(c *fiber.Ctx) error {
	smitaID := c.Params("smitaId")

	list, err := comments.GetComments(c.Context(), smitaID)
	if err != nil {
		if errors.Is(err, comments.ErrSubmissionNotFound) {
			return utils.HandleError(c, fiber.StatusNotFound, "Submission not found")
		}
		return utils.HandleError(c, fiber.StatusInternalServerError, "Error fetching comments")
	}

	return c.JSON(fiber.Map{"comments": list})
}

// EditComment แก้ข้อความของ comment ที่ index ที่ระบุ
func EditComment(c *fiber.Ctx) error {
	smitaID := c.Params("smitaId")

	type editRequest struct {
		CommentIndex *int    `json:"comment_index"`
		NewComment   *string `json:"new_comment"`
	}

	var req editRequest
	if err := c.BodyParser(&req); err != nil || req.CommentIndex == nil || req.NewComment == nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Missing required fields")
	}

	comment, err := comments.EditComment(c.Context(), smitaID, *req.CommentIndex, *req.NewComment)
	if err != nil {
		switch {
		case errors.Is(err, comments.ErrSubmissionNotFound):
			return utils.HandleError(c, fiber.StatusNotFound, "Submission not found")
		case errors.Is(err, comments.ErrInvalidIndex):
			return utils.HandleError(c, fiber.StatusBadRequest, "Invalid comment index")
		default:
			return utils.HandleError(c, fiber.StatusInternalServerError, "Error updating comment")
		}
	}

	return c.JSON(fiber.Map{
		"message":         "Comment updated successfully",
		"updated_comment": comment,
	})
}
