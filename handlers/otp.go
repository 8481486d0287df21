package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

// EmailOTPIssuer is implemented by *otp.EmailOTPService.
type EmailOTPIssuer interface {
	RequestEmailOTP(ctx context.Context, email string) error
	VerifyEmailOTP(ctx context.Context, email, code string) error
}

type OTPHandler struct {
	EmailOTP EmailOTPIssuer
}

func NewOTPHandler(issuer EmailOTPIssuer) *OTPHandler {
	return &OTPHandler{EmailOTP: issuer}
}

type emailOTPRequest struct {
	Email string `json:"email" binding:"required"`
}

func (h *OTPHandler) RequestEmailOTP(c *gin.Context) {
	var req emailOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	if err := h.EmailOTP.RequestEmailOTP(c.Request.Context(), req.Email); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusAccepted, gin.H{"message": "OTP sent"})
}

type verifyEmailOTPRequest struct {
	Email string `json:"email" binding:"required"`
	Code  string `json:"code" binding:"required"`
}

func (h *OTPHandler) VerifyEmailOTP(c *gin.Context) {
	var req verifyEmailOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	if err := h.EmailOTP.VerifyEmailOTP(c.Request.Context(), req.Email, req.Code); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"verified": true})
}
