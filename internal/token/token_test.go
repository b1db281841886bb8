package token

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/vkurdin/study-organizer/internal/errs"
)

func TestManager_IssueVerify_RoundTrip(t *testing.T) {
	t.Parallel()

	m := NewManager([]byte("test-key"), time.Hour)

	tok, err := m.Issue(42, "alice")
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	claims, err := m.Verify(tok)
	require.NoError(t, err)
	require.Equal(t, int64(42), claims.UserID)
	require.Equal(t, "alice", claims.Username)
	require.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, time.Minute)
}

func TestManager_Verify_Expired(t *testing.T) {
	t.Parallel()

	m := NewManager([]byte("test-key"), -time.Minute)
	tok, err := m.Issue(1, "bob")
	require.NoError(t, err)

	_, err = m.Verify(tok)
	require.ErrorIs(t, err, errs.ErrUnauthorized)
}

func TestManager_Verify_WrongKey(t *testing.T) {
	t.Parallel()

	tok, err := NewManager([]byte("key-a"), time.Hour).Issue(1, "bob")
	require.NoError(t, err)

	_, err = NewManager([]byte("key-b"), time.Hour).Verify(tok)
	require.ErrorIs(t, err, errs.ErrUnauthorized)
}

func TestManager_Verify_Garbage(t *testing.T) {
	t.Parallel()

	m := NewManager([]byte("test-key"), time.Hour)
	_, err := m.Verify("not.a.token")
	require.ErrorIs(t, err, errs.ErrUnauthorized)
}
