package utils

import (
	"fmt"
	"log"

	"menucard/config"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// SendGridMailer delivers transactional mail through the SendGrid API.
// It satisfies services.Mailer.
type SendGridMailer struct{}

func (SendGridMailer) SendOtpEmail(email, otp string) error {
	from := mail.NewEmail("Chop Central", config.AppConfig.EmailSender)
	to := mail.NewEmail("", email)
	subject := "Your Password Reset OTP"

	plainText := fmt.Sprintf("Use this OTP to reset your password: %s. It expires in 10 minutes.", otp)
	htmlBody := fmt.Sprintf(`
		<html>
			<body style="font-family: Arial, sans-serif; background-color: #f4f4f4; padding: 20px;">
				<div style="max-width: 500px; margin: auto; background-color: #ffffff; border-radius: 8px; padding: 30px; box-shadow: 0 2px 8px rgba(0, 0, 0, 0.1);">
					<h2 style="color: #333333; text-align: center;">Chop Central Password Reset</h2>
					<p style="font-size: 16px; color: #555555; text-align: center;">Use this OTP to reset your password:</p>
					<h1 style="text-align: center; color: #4CAF50; font-size: 40px; margin: 20px 0;">%s</h1>
					<p style="font-size: 14px; color: #999999; text-align: center;"><em>Expires in 10 minutes.</em></p>
					<p style="font-size: 14px; color: #999999; text-align: center;">Do not share this OTP with anyone.</p>
				</div>
			</body>
		</html>
	`, otp)

	message := mail.NewSingleEmail(from, subject, to, plainText, htmlBody)
	client := sendgrid.NewSendClient(config.AppConfig.SendGridApiKey)

	resp, err := client.Send(message)
	if err != nil {
		log.Printf("Error sending OTP email: %v", err)
		return err
	}
	if resp.StatusCode >= 400 {
		log.Printf("Failed to send OTP email, response code: %d", resp.StatusCode)
		return fmt.Errorf("failed to send OTP email, code: %d", resp.StatusCode)
	}

	log.Println("OTP email sent successfully to", email)
	return nil
}
