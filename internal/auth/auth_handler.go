package auth

import (
	"net/http"
	"time"

	"go-hr-analytics/internal/shared/response"

	"github.com/gin-gonic/gin"
)

const accessTokenCookie = "access_token"

type Handler struct {
	service      Service
	secureCookie bool
}

func NewHandler(s Service, secureCookie bool) *Handler {
	return &Handler{service: s, secureCookie: secureCookie}
}

func (h *Handler) setTokenCookie(c *gin.Context, token string, expiresAt time.Time) {
	maxAge := int(time.Until(expiresAt).Seconds())
	if token == "" || maxAge < 0 {
		maxAge = -1
	}
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     accessTokenCookie,
		Value:    token,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   h.secureCookie,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	res, err := h.service.Register(c.Request.Context(), req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, res, nil)
}

func (h *Handler) Verify(c *gin.Context) {
	var req VerifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	res, err := h.service.Verify(c.Request.Context(), req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	h.setTokenCookie(c, res.AccessToken, res.ExpiresAt)
	response.Success(c, http.StatusOK, res, nil)
}

func (h *Handler) ResendCode(c *gin.Context) {
	var req EmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	if err := h.service.ResendCode(c.Request.Context(), req.Email); err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Verification code sent"}, nil)
}

func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	res, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	h.setTokenCookie(c, res.AccessToken, res.ExpiresAt)
	response.Success(c, http.StatusOK, res, nil)
}

func (h *Handler) ForgotPassword(c *gin.Context) {
	var req EmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	if err := h.service.ForgotPassword(c.Request.Context(), req.Email); err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "If the email is registered, a reset code has been sent"}, nil)
}

func (h *Handler) ResetPassword(c *gin.Context) {
	var req ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	if err := h.service.ResetPassword(c.Request.Context(), req); err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Password updated"}, nil)
}

func (h *Handler) Me(c *gin.Context) {
	res, err := h.service.GetMe(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, res, nil)
}

func (h *Handler) Logout(c *gin.Context) {
	h.setTokenCookie(c, "", time.Time{})
	response.Success(c, http.StatusOK, gin.H{"message": "Logout success."}, nil)
}
