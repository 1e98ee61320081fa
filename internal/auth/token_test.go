package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ec-shop/storefront-api/internal/domain"
)

func TestIssueVerify_RoundTrip(t *testing.T) {
	tm := NewTokenManager("test-secret", 7*24*time.Hour)

	token, expiresAt, err := tm.Issue("user-1", domain.RoleVendor)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(7*24*time.Hour), expiresAt, time.Minute)

	claims, ok := tm.Verify(token)
	require.True(t, ok)
	assert.Equal(t, "user-1", claims.SubjectID)
	assert.Equal(t, domain.RoleVendor, claims.Role)
}

func TestVerify_Expired(t *testing.T) {
	tm := NewTokenManager("test-secret", time.Hour)
	issued := time.Now()
	tm.now = func() time.Time { return issued }

	token, _, err := tm.Issue("user-1", domain.RoleCustomer)
	require.NoError(t, err)

	// Still valid just before expiry.
	tm.now = func() time.Time { return issued.Add(59 * time.Minute) }
	_, ok := tm.Verify(token)
	assert.True(t, ok)

	// Invalid just after, with no grace period.
	tm.now = func() time.Time { return issued.Add(61 * time.Minute) }
	_, ok = tm.Verify(token)
	assert.False(t, ok)
}

func TestVerify_WrongSecret(t *testing.T) {
	issuer := NewTokenManager("secret-a", time.Hour)
	verifier := NewTokenManager("secret-b", time.Hour)

	token, _, err := issuer.Issue("user-1", domain.RoleCustomer)
	require.NoError(t, err)

	_, ok := verifier.Verify(token)
	assert.False(t, ok)
}

func TestVerify_Tampered(t *testing.T) {
	tm := NewTokenManager("test-secret", time.Hour)
	token, _, err := tm.Issue("user-1", domain.RoleCustomer)
	require.NoError(t, err)

	// Flip a character in the payload segment.
	tampered := []byte(token)
	mid := len(tampered) / 2
	if tampered[mid] == 'a' {
		tampered[mid] = 'b'
	} else {
		tampered[mid] = 'a'
	}

	_, ok := tm.Verify(string(tampered))
	assert.False(t, ok)
}

func TestVerify_Garbage(t *testing.T) {
	tm := NewTokenManager("test-secret", time.Hour)

	for _, input := range []string{"", "not-a-token", "a.b.c"} {
		_, ok := tm.Verify(input)
		assert.False(t, ok, "input %q", input)
	}
}

func TestVerify_UnknownRoleRejected(t *testing.T) {
	tm := NewTokenManager("test-secret", time.Hour)

	token, _, err := tm.Issue("user-1", "superuser")
	require.NoError(t, err)

	_, ok := tm.Verify(token)
	assert.False(t, ok)
}
