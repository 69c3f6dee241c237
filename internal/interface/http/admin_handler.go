package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	app "github.com/anujyadav2244/cricriser/internal/application"
	"github.com/anujyadav2244/cricriser/internal/interface/middleware"
	"github.com/anujyadav2244/cricriser/pkg/helpers"
	"github.com/anujyadav2244/cricriser/pkg/response"
	"github.com/anujyadav2244/cricriser/pkg/validation"
)

type AdminHandler struct {
	Svc    *app.AdminService
	Logger *logrus.Logger
}

func NewAdminHandler(svc *app.AdminService, logger *logrus.Logger) *AdminHandler {
	return &AdminHandler{Svc: svc, Logger: logger}
}

type signupRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,pwd"`
}

type verifyOTPRequest struct {
	Email string `json:"email" binding:"required,email"`
	OTP   string `json:"otp" binding:"required"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type forgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type verifyForgotOTPRequest struct {
	Email       string `json:"email" binding:"required,email"`
	OTP         string `json:"otp" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required"`
}

type resetPasswordRequest struct {
	OldPassword string `json:"oldPassword" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required"`
}

func (h *AdminHandler) Signup(c *gin.Context) {
	var req signupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	if err := h.Svc.Signup(c.Request.Context(), req.Name, req.Email, req.Password); err != nil {
		response.Error[any](c, statusFor(err), err.Error(), nil)
		return
	}
	response.Success[any](c, http.StatusCreated, nil, "OTP sent to email!", nil)
}

func (h *AdminHandler) VerifyOTP(c *gin.Context) {
	var req verifyOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	if err := h.Svc.VerifyOTP(c.Request.Context(), req.Email, req.OTP); err != nil {
		response.Error[any](c, statusFor(err), err.Error(), nil)
		return
	}
	response.Success[any](c, http.StatusOK, nil, "Email verified successfully!", nil)
}

func (h *AdminHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	res, err := h.Svc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		response.Error[any](c, statusFor(err), err.Error(), nil)
		return
	}
	response.Success(c, http.StatusOK, res, "login successful", map[string]any{"expires_at": res.Expiry})
}

func (h *AdminHandler) ForgotPassword(c *gin.Context) {
	var req forgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	if err := h.Svc.ForgotPassword(c.Request.Context(), req.Email); err != nil {
		response.Error[any](c, statusFor(err), err.Error(), nil)
		return
	}
	response.Success[any](c, http.StatusOK, nil, "OTP sent to email!", nil)
}

func (h *AdminHandler) VerifyForgotOTP(c *gin.Context) {
	var req verifyForgotOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	if err := h.Svc.VerifyForgotOTP(c.Request.Context(), req.Email, req.OTP, req.NewPassword); err != nil {
		response.Error[any](c, statusFor(err), err.Error(), nil)
		return
	}
	response.Success[any](c, http.StatusOK, nil, "Password updated successfully!", nil)
}

func (h *AdminHandler) ResetPassword(c *gin.Context) {
	var req resetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	adminID := c.GetString(middleware.CtxAdminIDKey)
	if err := h.Svc.ResetPassword(c.Request.Context(), adminID, req.OldPassword, req.NewPassword); err != nil {
		response.Error[any](c, statusFor(err), err.Error(), nil)
		return
	}
	response.Success[any](c, http.StatusOK, nil, "Password updated successfully!", nil)
}

func (h *AdminHandler) Me(c *gin.Context) {
	adminID := c.GetString(middleware.CtxAdminIDKey)
	p, err := h.Svc.Profile(c.Request.Context(), adminID)
	if err != nil {
		response.Error[any](c, statusFor(err), err.Error(), nil)
		return
	}
	response.Success(c, http.StatusOK, p, "profile", nil)
}

func (h *AdminHandler) UpdateProfile(c *gin.Context) {
	var req app.UpdateProfileInput
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	adminID := c.GetString(middleware.CtxAdminIDKey)
	p, err := h.Svc.UpdateProfile(c.Request.Context(), adminID, req)
	if err != nil {
		response.Error[any](c, statusFor(err), err.Error(), nil)
		return
	}
	response.Success(c, http.StatusOK, p, "Profile updated successfully", nil)
}

func (h *AdminHandler) Logout(c *gin.Context) {
	v, exists := c.Get(middleware.CtxClaimsKey)
	claims, ok := v.(*helpers.Claims)
	if !exists || !ok {
		response.Error[any](c, http.StatusUnauthorized, "invalid or expired token", nil)
		return
	}
	if err := h.Svc.Logout(c.Request.Context(), claims); err != nil {
		response.Error[any](c, statusFor(err), err.Error(), nil)
		return
	}
	response.Success[any](c, http.StatusOK, map[string]any{"logged_out": true}, "Logged out successfully", nil)
}

func (h *AdminHandler) Delete(c *gin.Context) {
	adminID := c.GetString(middleware.CtxAdminIDKey)
	if err := h.Svc.DeleteAccount(c.Request.Context(), adminID); err != nil {
		response.Error[any](c, statusFor(err), err.Error(), nil)
		return
	}
	response.Success[any](c, http.StatusOK, nil, "User account deleted successfully", nil)
}
