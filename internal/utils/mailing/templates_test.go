package mailing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender_Templates(t *testing.T) {
	body, err := render(verificationTemplate, map[string]string{"Token": "123456"})
	require.NoError(t, err)
	assert.Contains(t, body, "123456")

	body, err = render(welcomeTemplate, map[string]string{"Name": "Ana <b>"})
	require.NoError(t, err)
	assert.Contains(t, body, "Ana &lt;b&gt;")

	body, err = render(passwordResetTemplate, map[string]string{"ResetURL": "http://localhost:5173/reset-password/abc"})
	require.NoError(t, err)
	assert.Contains(t, body, "http://localhost:5173/reset-password/abc")

	_, err = render(resetSuccessTemplate, nil)
	require.NoError(t, err)
}

func TestSend_InvalidPort(t *testing.T) {
	m := NewMailer(MailConfig{SMTPHost: "localhost", SMTPPort: "not-a-port"})
	err := m.SendResetSuccessEmail("someone@example.com")
	assert.ErrorContains(t, err, "invalid SMTP port")
}
