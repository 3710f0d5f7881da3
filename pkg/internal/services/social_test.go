package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func TestResolveSocialIdentityAdoptsLinkedAccount(t *testing.T) {
	useTestDatabase(t)

	owner := mustAccount(t, "alice")
	_, err := NewSocialLink(owner, "github", "uid-1", datatypes.JSONMap{"login": "alice"})
	require.NoError(t, err)

	resolution, err := ResolveSocialIdentity("github", "uid-1", nil, nil)
	require.NoError(t, err)

	require.NotNil(t, resolution.User)
	assert.Equal(t, owner.ID, resolution.User.ID)
	require.NotNil(t, resolution.Social)
	assert.False(t, resolution.IsNew)
	assert.False(t, resolution.NewAssociation)
}

func TestResolveSocialIdentityConflictTerminatesSession(t *testing.T) {
	useTestDatabase(t)

	owner := mustAccount(t, "alice")
	intruder := mustAccount(t, "bob")

	_, err := NewSocialLink(owner, "github", "uid-1", nil)
	require.NoError(t, err)

	session, err := NewSession(intruder)
	require.NoError(t, err)

	resolution, err := ResolveSocialIdentity("github", "uid-1", &intruder, &session)
	require.NoError(t, err)

	// The in-session user is kept on the resolution even though the
	// link belongs to someone else; only the session is killed.
	require.NotNil(t, resolution.User)
	assert.Equal(t, intruder.ID, resolution.User.ID)
	assert.False(t, resolution.IsNew)

	_, err = GetSessionWithToken(session.Token)
	assert.Error(t, err)
}

func TestResolveSocialIdentityUnknownLink(t *testing.T) {
	useTestDatabase(t)

	account := mustAccount(t, "alice")
	session, err := NewSession(account)
	require.NoError(t, err)

	resolution, err := ResolveSocialIdentity("github", "uid-404", &account, &session)
	require.NoError(t, err)

	assert.Nil(t, resolution.User)
	assert.Nil(t, resolution.Social)
	assert.True(t, resolution.IsNew)
	assert.False(t, resolution.NewAssociation)

	_, err = GetSessionWithToken(session.Token)
	assert.Error(t, err)
}

func TestSocialLinkUniqueness(t *testing.T) {
	useTestDatabase(t)

	alice := mustAccount(t, "alice")
	bob := mustAccount(t, "bob")

	_, err := NewSocialLink(alice, "github", "uid-1", nil)
	require.NoError(t, err)

	_, err = NewSocialLink(bob, "github", "uid-1", nil)
	assert.Error(t, err)

	// Same uid on another provider is a distinct identity.
	_, err = NewSocialLink(bob, "gitlab", "uid-1", nil)
	assert.NoError(t, err)
}
