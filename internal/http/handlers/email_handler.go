// Identity capture HTTP handler.
//
// This file exposes the companion endpoint used by the first-time-user
// capture flow:
//   - POST /emails  (register name/email without running an optimization)
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/go-listing-optimizer/internal/services"
)

// RegisterEmailRequest is the JSON payload for pre-registering an identity.
type RegisterEmailRequest struct {
	// Name is the display name (non-empty after trim).
	Name string `json:"name" example:"Jane Seller"`
	// Email must contain an "@"; no further validation is performed.
	Email string `json:"email" example:"seller@example.com"`
}

// RegisterEmailResponse echoes the persisted identity.
type RegisterEmailResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// RegisterEmail godoc
// @ID          registerEmail
// @Summary     Register a user identity
// @Description Stores a self-reported name/email pair so the client can skip the capture form on later visits. Identity is unverified by design.
// @Tags        Emails
// @Accept      json
// @Produce     json
//
// @Param       body  body  handlers.RegisterEmailRequest  true  "Identity payload"
//
// @Success     200  {object}  handlers.RegisterEmailResponse
// @Failure     400  {object}  handlers.ErrorResponse  "Missing name or malformed email"
// @Failure     409  {object}  handlers.ErrorResponse  "Email already registered"
// @Failure     500  {object}  handlers.ErrorResponse  "Storage failure"
// @Router      /emails [post]
func (h *Handlers) RegisterEmail(c *gin.Context) {
	var req RegisterEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid JSON body")
		return
	}

	rec, err := h.emailSvc.Register(c.Request.Context(), req.Name, req.Email)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNameRequired), errors.Is(err, services.ErrEmailInvalid):
			fail(c, http.StatusBadRequest, ErrCodeBadRequest, err.Error())
		case errors.Is(err, services.ErrEmailExists):
			fail(c, http.StatusConflict, ErrCodeConflict, err.Error())
		default:
			fail(c, http.StatusInternalServerError, ErrCodeRegisterFailed, "Failed to store email")
		}
		return
	}

	ok(c, http.StatusOK, RegisterEmailResponse{ID: rec.ID, Name: rec.Name, Email: rec.Email})
}
