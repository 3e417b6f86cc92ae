package utils

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/videoforge/backend/config"
)

func TestMain(m *testing.M) {
	config.SetForTesting(config.AppConfig{
		JWTSecret: "0123456789abcdef0123456789abcdef",
	})
	os.Exit(m.Run())
}

func TestGenerateAndParseToken(t *testing.T) {
	token, err := GenerateToken("u1", "tester", time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "u1", claims.UserID)
	assert.Equal(t, "tester", claims.Username)
}

func TestParseTokenRejectsGarbage(t *testing.T) {
	_, err := ParseToken("not.a.token")
	assert.Error(t, err)
}

func TestSanitizePlainStripsMarkup(t *testing.T) {
	assert.Equal(t, "hello", SanitizePlain("<script>alert(1)</script>hello"))
	assert.Equal(t, "bold", SanitizePlain("<b>bold</b>"))
}
