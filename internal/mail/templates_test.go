package mail

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWelcomeBody(t *testing.T) {
	body := WelcomeBody("Alice Example")
	assert.Contains(t, body, "Hi Alice Example,")
	assert.Contains(t, body, "Welcome to JnanaSetu!")
}

func TestResetBody(t *testing.T) {
	link := "http://localhost:5173/reset-password?token=abc123"
	body := ResetBody(link)
	assert.Contains(t, body, "href='"+link+"'")
	assert.Contains(t, body, "Password Reset Request")
	assert.Contains(t, body, "you can safely ignore this email")
}
