package notifications

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
)

var (
	//go:embed templates/reset_password.html
	emailTemplates embed.FS

	resetPasswordTemplate = template.Must(template.New("reset_password.html").ParseFS(emailTemplates, "templates/reset_password.html"))
)

// BuildResetEmail renders the password reset email. userName may be empty.
// Returns the HTML body and a plain-text alternative carrying the reset URL.
func BuildResetEmail(resetURL, userName string) (bodyHTML, bodyText string, err error) {
	var buf bytes.Buffer
	data := struct {
		ResetURL string
		UserName string
	}{ResetURL: resetURL, UserName: userName}

	if err := resetPasswordTemplate.Execute(&buf, data); err != nil {
		return "", "", fmt.Errorf("render password reset template: %w", err)
	}

	greeting := "Hi"
	if userName != "" {
		greeting = "Hi " + userName
	}
	bodyText = fmt.Sprintf("%s,\n\nWe received a request to reset your KetoTrack password.\n\nReset link (valid for 1 hour, single use): %s\n\nIf you did not request this, you can ignore this email.\n", greeting, resetURL)

	return buf.String(), bodyText, nil
}
