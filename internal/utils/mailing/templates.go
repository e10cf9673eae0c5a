package mailing

import (
	"bytes"
	"html/template"
)

var (
	verificationTemplate = template.Must(template.New("verification").Parse(`<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; background-color: #f4f4f4; padding: 20px;">
  <div style="max-width: 600px; margin: 0 auto; background: #ffffff; border-radius: 8px; padding: 24px;">
    <h2 style="color: #333333;">Verify your email</h2>
    <p>Thank you for signing up with FoodHub. Use the code below to verify your email address:</p>
    <p style="font-size: 28px; font-weight: bold; letter-spacing: 6px; text-align: center;">{{.Token}}</p>
    <p>This code expires in 24 hours. If you did not create an account, you can ignore this email.</p>
  </div>
</body>
</html>`))

	welcomeTemplate = template.Must(template.New("welcome").Parse(`<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; background-color: #f4f4f4; padding: 20px;">
  <div style="max-width: 600px; margin: 0 auto; background: #ffffff; border-radius: 8px; padding: 24px;">
    <h2 style="color: #333333;">Welcome to FoodHub, {{.Name}}!</h2>
    <p>Your email is verified. Browse our categories, fill your cart and enjoy your meal.</p>
  </div>
</body>
</html>`))

	passwordResetTemplate = template.Must(template.New("reset").Parse(`<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; background-color: #f4f4f4; padding: 20px;">
  <div style="max-width: 600px; margin: 0 auto; background: #ffffff; border-radius: 8px; padding: 24px;">
    <h2 style="color: #333333;">Reset your password</h2>
    <p>We received a request to reset your password. Click the button below to choose a new one:</p>
    <p style="text-align: center;">
      <a href="{{.ResetURL}}" style="background: #f97316; color: #ffffff; padding: 12px 24px; border-radius: 6px; text-decoration: none;">Reset Password</a>
    </p>
    <p>This link expires in 1 hour. If you did not request a reset, ignore this email.</p>
  </div>
</body>
</html>`))

	resetSuccessTemplate = template.Must(template.New("reset-success").Parse(`<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; background-color: #f4f4f4; padding: 20px;">
  <div style="max-width: 600px; margin: 0 auto; background: #ffffff; border-radius: 8px; padding: 24px;">
    <h2 style="color: #333333;">Password reset successful</h2>
    <p>Your password has been changed. If this was not you, contact support immediately.</p>
  </div>
</body>
</html>`))
)

func render(t *template.Template, data any) (string, error) {
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
