package templates

import (
	"bytes"
	"embed"
	"fmt"
	htmpl "html/template"
	"time"
)

//go:embed *.tmpl
var FS embed.FS

// Template names understood by the email worker.
const (
	SignupOTP = "signup_otp"
	ResetOTP  = "reset_otp"
)

// OTPData is the data shape for the OTP templates.
type OTPData struct {
	Name      string `json:"Name"`
	Email     string `json:"Email"`
	Code      string `json:"Code"`
	AppName   string `json:"AppName"`
	ExpiresIn string `json:"ExpiresIn"`
}

// NewOTPData builds template data for an OTP email.
func NewOTPData(appName, name, email, code string, ttl time.Duration) OTPData {
	return OTPData{
		Name:      name,
		Email:     email,
		Code:      code,
		AppName:   appName,
		ExpiresIn: fmt.Sprintf("%d minutes", int(ttl.Minutes())),
	}
}

// Map converts the data to the loose shape carried on the email queue.
func (d OTPData) Map() map[string]any {
	return map[string]any{
		"Name":      d.Name,
		"Email":     d.Email,
		"Code":      d.Code,
		"AppName":   d.AppName,
		"ExpiresIn": d.ExpiresIn,
	}
}

// Subject returns the subject line for a template name.
func Subject(template string) string {
	switch template {
	case SignupOTP:
		return "Verify your email address"
	case ResetOTP:
		return "Reset your password"
	default:
		return "Notification"
	}
}

var tmpl = htmpl.Must(htmpl.ParseFS(FS, "*.tmpl"))

// RenderHTML renders the named template with data coming off the queue.
func RenderHTML(name string, data map[string]any) (string, error) {
	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, name+".tmpl", data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// RenderText renders a plain-text fallback body.
func RenderText(name string, data map[string]any) string {
	code, _ := data["Code"].(string)
	expires, _ := data["ExpiresIn"].(string)
	switch name {
	case SignupOTP:
		return fmt.Sprintf("Your verification code is %s. It expires in %s.", code, expires)
	case ResetOTP:
		return fmt.Sprintf("Your password reset code is %s. It expires in %s.", code, expires)
	default:
		return ""
	}
}
