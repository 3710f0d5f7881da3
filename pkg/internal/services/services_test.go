package services

import (
	"testing"

	"github.com/solarvale/agora/pkg/internal/models"
	"github.com/solarvale/agora/pkg/internal/testbed"
	"github.com/stretchr/testify/require"
)

// useTestDatabase points database.C at a fresh in-memory database so
// every test starts from a clean slate.
func useTestDatabase(t *testing.T) {
	testbed.UseTestDatabase(t)
}

func mustAccount(t *testing.T, username string) models.Account {
	t.Helper()

	account, err := NewAccount(username, username+"@example.com", "pw123")
	require.NoError(t, err)
	return account
}

func mustPoll(t *testing.T, owner models.Account, title string, choices ...string) models.Poll {
	t.Helper()

	poll := models.Poll{
		Title:      title,
		Visibility: true,
		AccountID:  owner.ID,
	}
	for _, choice := range choices {
		poll.Options = append(poll.Options, models.PollOption{ChoiceText: choice})
	}

	poll, err := NewPoll(poll)
	require.NoError(t, err)
	return poll
}

func optionByText(t *testing.T, poll models.Poll, text string) models.PollOption {
	t.Helper()

	for _, option := range poll.Options {
		if option.ChoiceText == text {
			return option
		}
	}
	t.Fatalf("poll %q has no option %q", poll.Title, text)
	return models.PollOption{}
}
