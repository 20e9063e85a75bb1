package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParse(t *testing.T) {
	tok, err := Generate("secret", "gestao", "u-1", "Maria", "company-1", time.Hour)
	require.NoError(t, err)

	claims, err := Parse("secret", tok)
	require.NoError(t, err)
	assert.Equal(t, "u-1", claims.UserID)
	assert.Equal(t, "Maria", claims.UserName)
	assert.Equal(t, "company-1", claims.CompanyID)
}

func TestParse_Failures(t *testing.T) {
	tok, err := Generate("secret", "gestao", "u-1", "Maria", "company-1", time.Hour)
	require.NoError(t, err)

	_, err = Parse("other-secret", tok)
	assert.Error(t, err)

	expired, err := Generate("secret", "gestao", "u-1", "Maria", "company-1", -time.Minute)
	require.NoError(t, err)
	_, err = Parse("secret", expired)
	assert.Error(t, err)

	noCompany, err := Generate("secret", "gestao", "u-1", "Maria", "", time.Hour)
	require.NoError(t, err)
	_, err = Parse("secret", noCompany)
	assert.Error(t, err)

	_, err = Generate("", "gestao", "u-1", "Maria", "company-1", time.Hour)
	assert.Error(t, err)
}
