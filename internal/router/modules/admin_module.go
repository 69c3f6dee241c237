package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/anujyadav2244/cricriser/internal/container"
	handlers "github.com/anujyadav2244/cricriser/internal/interface/http"
	"github.com/anujyadav2244/cricriser/internal/interface/middleware"
	"github.com/anujyadav2244/cricriser/pkg/helpers"
)

// AdminModule wires the account endpoints.
// Public: signup, verify-otp, login, forgot-password, verify-forgot-otp
// Protected: me, update-profile, reset-password, logout, delete
type AdminModule struct {
	Handler *handlers.AdminHandler
	JWT     *helpers.JWTManager
}

func NewAdminModule(h *handlers.AdminHandler, jwt *helpers.JWTManager) *AdminModule {
	return &AdminModule{Handler: h, JWT: jwt}
}

func (m *AdminModule) Register(rg *gin.RouterGroup) {
	// Public endpoints with per-IP rate limits; OTP sends are the tightest.
	signupLimiter := middleware.RateLimit(container.GetRedis(), 5, time.Minute, middleware.KeyByIPAndPath(), nil)
	loginLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIP(), nil)
	otpLimiter := middleware.RateLimit(container.GetRedis(), 30, time.Minute, middleware.KeyByIPAndPath(), nil)

	rg.POST("/admin/signup", signupLimiter, m.Handler.Signup)
	rg.POST("/admin/verify-otp", otpLimiter, m.Handler.VerifyOTP)
	rg.POST("/admin/login", loginLimiter, m.Handler.Login)
	rg.POST("/admin/forgot-password", signupLimiter, m.Handler.ForgotPassword)
	rg.POST("/admin/verify-forgot-otp", otpLimiter, m.Handler.VerifyForgotOTP)

	auth := rg.Group("/")
	auth.Use(middleware.Auth(m.JWT, container.GetSessions()))
	auth.Use(middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByAdminID(), nil))
	{
		auth.GET("/admin/me", m.Handler.Me)
		auth.PUT("/admin/update-profile", m.Handler.UpdateProfile)
		auth.PUT("/admin/reset-password", m.Handler.ResetPassword)
		auth.POST("/admin/logout", m.Handler.Logout)
		auth.DELETE("/admin/delete", m.Handler.Delete)
	}
}
