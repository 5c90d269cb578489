package validators

import (
	"fmt"
	"os"
	"regexp"

	"github.com/google/uuid"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

func IsValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// GenerateResetToken returns a single-use opaque token for the reset flow.
func GenerateResetToken() string {
	return uuid.NewString()
}

// BuildResetLink points the recipient at the front-end reset page.
func BuildResetLink(token string) string {
	base := os.Getenv("RESET_URL_BASE")
	if base == "" {
		base = "http://localhost:3000"
	}
	return fmt.Sprintf("%s/reset-password?token=%s", base, token)
}

func SendPasswordResetEmail(toEmail string, resetLink string) error {
	from := mail.NewEmail("MediTriage", os.Getenv("SENDGRID_FROM_EMAIL"))
	to := mail.NewEmail("", toEmail)
	subject := "Password Reset Request"
	plainTextContent := "We received a request to reset your password. Open the link below to choose a new one. The link expires in 1 hour.\n\n" + resetLink
	htmlContent := fmt.Sprintf(`<p>We received a request to reset your password.</p>
<p><a href="%s">Reset your password</a></p>
<p>The link expires in 1 hour. If you did not request this, you can ignore this email.</p>`, resetLink)

	message := mail.NewSingleEmail(from, subject, to, plainTextContent, htmlContent)
	client := sendgrid.NewSendClient(os.Getenv("SENDGRID_API_KEY"))

	response, err := client.Send(message)
	if err != nil {
		return err
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("sendgrid returned status %d: %s", response.StatusCode, response.Body)
	}
	return nil
}
