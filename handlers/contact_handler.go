package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	apperrors "github.com/rebirthstudio/portfolio-backend/errors"
	"github.com/rebirthstudio/portfolio-backend/pkg/contactform"
	"github.com/rebirthstudio/portfolio-backend/types"
)

// ContactHandler handles contact form submissions.
type ContactHandler struct {
	contactService ContactServiceInterface
}

// NewContactHandler creates a new ContactHandler.
func NewContactHandler(contactService ContactServiceInterface) *ContactHandler {
	return &ContactHandler{contactService: contactService}
}

// SubmitContact godoc
// @Summary      Submit the contact form
// @Description  Validates a contact submission and forwards it to the studio by email
// @Tags         contact
// @Accept       json
// @Produce      json
// @Param        body  body      types.ContactRequest   true  "Contact payload"
// @Success      200   {object}  types.ContactResponse
// @Failure      400   {object}  types.ErrorResponse
// @Failure      500   {object}  types.ErrorResponse
// @Router       /api/contact [post]
func (h *ContactHandler) SubmitContact(c *gin.Context) {
	// A missing credential is reported before the body is even looked at.
	if err := h.contactService.ConfigurationError(); err != nil {
		_ = c.Error(err)
		return
	}

	var req types.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperrors.Unexpected(err))
		return
	}

	id, err := h.contactService.SubmitContact(c.Request.Context(), contactform.Submission{
		Name:    req.Name,
		Email:   req.Email,
		Message: req.Message,
	})
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, types.ContactResponse{Success: true, ID: id})
}
