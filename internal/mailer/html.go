package mailer

import (
	"fmt"
	"strings"
)

// ActivateAccountHTML - письмо с ссылкой активации аккаунта
func ActivateAccountHTML(firstname, activationLink string) (string, string) {
	subject := "MyBlog - Activate Your Account"
	html := fmt.Sprintf(`
		<!DOCTYPE html>
		<html lang="en">
		<head>
			<meta charset="UTF-8">
			<title>Activate Your Account</title>
		</head>
		<body style="background-color: #f8f9fa; font-family: 'Helvetica Neue', Arial, sans-serif;">
			<div style="max-width: 600px; margin: 40px auto; background-color: #ffffff; border: 1px solid #dee2e6; border-radius: 5px; padding: 30px;">
				<h2 style="text-align: center;">Activate Your Account</h2>
				<p>Hello %s,</p>
				<p>Thank you for signing up with MyBlog! To complete your registration and activate your account, please click the button below:</p>
				<div style="text-align: center; margin: 24px 0;">
					<a href="%s" style="background-color: #28a745; color: #ffffff; padding: 12px 24px; border-radius: 4px; text-decoration: none;">Activate Account</a>
				</div>
				<p>If you did not sign up for an account, please disregard this email or let us know.</p>
				<p>Welcome to the MyBlog community!</p>
				<p>Best regards,<br>The MyBlog Team</p>
				<hr>
				<p style="text-align: center; font-size: 0.875rem; color: #6c757d;">If the button above doesn't work, copy and paste the following link into your browser:</p>
				<p style="text-align: center; font-size: 0.875rem;"><a href="%s">%s</a></p>
				<p style="text-align: center; font-size: 0.875rem; color: #6c757d;">&copy; 2024 MyBlog. All rights reserved.</p>
			</div>
		</body>
		</html>
	`, capitalize(firstname), activationLink, activationLink, activationLink)
	return html, subject
}

// VerificationEmailHTML - письмо со ссылкой подтверждения (сброс пароля, смена email)
func VerificationEmailHTML(firstname, resetLink string) (string, string) {
	subject := "MyBlog - Reset Password"
	html := fmt.Sprintf(`
		<!DOCTYPE html>
		<html lang="en">
		<head>
			<meta charset="UTF-8">
			<title>Password Reset</title>
		</head>
		<body style="background-color: #f8f9fa; padding: 20px; font-family: 'Helvetica Neue', Arial, sans-serif;">
			<div style="max-width: 600px; margin: 0 auto; background-color: #ffffff; border-radius: 5px; padding: 30px;">
				<h2 style="background-color: #28a745; color: #ffffff; text-align: center; padding: 12px;">Password Reset</h2>
				<p>Hello %s,</p>
				<p>We received a request to reset your password. Click the button below to reset it:</p>
				<div style="text-align: center; margin: 24px 0;">
					<a href="%s" style="background-color: #28a745; color: #ffffff; padding: 12px 24px; border-radius: 4px; text-decoration: none;">Reset Password</a>
				</div>
				<p>If you did not request a password reset, please ignore this email.</p>
				<p>Thank you,<br>MyBlog</p>
				<p style="text-align: center; font-size: 0.875rem; color: #6c757d;">&copy; 2024 MyBlog. All rights reserved.</p>
			</div>
		</body>
		</html>
	`, capitalize(firstname), resetLink)
	return html, subject
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}
