package mail

import "fmt"

const (
	welcomeSubject = "Welcome to JnanaSetu!"
	resetSubject   = "Password Reset Request - JnanaSetu"
)

// WelcomeBody returns the plain-text welcome message body.
func WelcomeBody(name string) string {
	return fmt.Sprintf(`Hi %s,

Welcome to JnanaSetu! We're excited to have you on board.

Best regards,
The JnanaSetu Team
`, name)
}

// ResetBody returns the HTML password-reset message body. The reset link
// carries a one-hour, reset-purpose token; anyone holding the link can set
// a new password for the account until the token expires.
func ResetBody(resetLink string) string {
	return fmt.Sprintf(`<html>
  <body style='font-family: Arial, sans-serif; background: #f9f9f9; padding: 20px;'>
    <div style='max-width: 400px; margin: auto; background: #fff; border-radius: 8px; box-shadow: 0 2px 8px #eee; padding: 24px;'>
      <h2 style='color: #16a34a; text-align:center;'>Password Reset Request</h2>
      <p>We received a request to reset your password. Click the button below to set a new password:</p>
      <div style='text-align:center; margin: 24px 0;'>
        <a href='%s' style='display: inline-block; background: #16a34a; color: #fff; padding: 12px 24px; border-radius: 4px; text-decoration: none; font-weight: bold;'>Reset Password</a>
      </div>
      <p>If you did not request this, you can safely ignore this email.</p>
      <hr style='margin: 24px 0;'>
      <p style='font-size: 12px; color: #888; text-align:center;'>Need help? <a href='mailto:support@jnanasetu.com'>Contact support</a></p>
    </div>
  </body>
</html>
`, resetLink)
}
