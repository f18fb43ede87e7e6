// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/blessing-poultries/backend/internal/application/usecase/contact"
	domainerror "github.com/blessing-poultries/backend/internal/domain/error"
	"github.com/blessing-poultries/backend/internal/integration/entrypoint/dto"
)

// ContactController handles contact message endpoints.
type ContactController struct {
	submitUseCase *contact.SubmitMessageUseCase
	listUseCase   *contact.ListMessagesUseCase
}

// NewContactController creates a new contact controller instance.
func NewContactController(
	submitUseCase *contact.SubmitMessageUseCase,
	listUseCase *contact.ListMessagesUseCase,
) *ContactController {
	return &ContactController{
		submitUseCase: submitUseCase,
		listUseCase:   listUseCase,
	}
}

// Submit handles POST /contact requests from the public site.
func (c *ContactController) Submit(ctx *gin.Context) {
	var req dto.SubmitContactMessageRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingContactFields),
		})
		return
	}

	input := contact.SubmitMessageInput{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Subject: req.Subject,
		Body:    req.Body,
	}

	message, err := c.submitUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleContactError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToContactMessageResponse(message))
}

// List handles GET /contact/messages requests for the admin inbox.
func (c *ContactController) List(ctx *gin.Context) {
	input := contact.ListMessagesInput{}

	if limitStr := ctx.Query("limit"); limitStr != "" {
		if limit, err := strconv.Atoi(limitStr); err == nil {
			input.Limit = limit
		}
	}
	if offsetStr := ctx.Query("offset"); offsetStr != "" {
		if offset, err := strconv.Atoi(offsetStr); err == nil {
			input.Offset = offset
		}
	}

	messages, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleContactError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToContactMessageListResponse(messages))
}

// handleContactError handles contact errors and returns appropriate HTTP responses.
func (c *ContactController) handleContactError(ctx *gin.Context, err error) {
	var contactErr *domainerror.ContactError
	if errors.As(err, &contactErr) {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: contactErr.Message,
			Code:  string(contactErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}
