package services

import (
	"errors"
	"testing"

	"github.com/solarvale/agora/pkg/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestNewPollRequiresTitle(t *testing.T) {
	useTestDatabase(t)

	_, err := NewPoll(models.Poll{Visibility: true})
	assert.Error(t, err)
}

func TestListPollExcludesHidden(t *testing.T) {
	useTestDatabase(t)

	owner := mustAccount(t, "alice")
	visible := mustPoll(t, owner, "Color?", "Red", "Blue")
	hidden := mustPoll(t, owner, "Season?", "Summer", "Winter")
	require.NoError(t, HidePoll(hidden))

	polls, err := ListPoll(20, 0)
	require.NoError(t, err)
	require.Len(t, polls, 1)
	assert.Equal(t, visible.ID, polls[0].ID)
}

func TestPollOptionUniqueWithinPoll(t *testing.T) {
	useTestDatabase(t)

	owner := mustAccount(t, "alice")
	poll := mustPoll(t, owner, "Color?", "Red")

	_, err := AddPollOption(poll, "Red")
	assert.True(t, errors.Is(err, gorm.ErrDuplicatedKey))

	// The same choice text is fine on another poll.
	other := mustPoll(t, owner, "Season?", "Summer")
	_, err = AddPollOption(other, "Red")
	assert.NoError(t, err)
}

func TestGetPollMetric(t *testing.T) {
	useTestDatabase(t)

	bob := mustAccount(t, "bob")
	carol := mustAccount(t, "carol")
	poll := mustPoll(t, bob, "Color?", "Red", "Blue")
	red := optionByText(t, poll, "Red")

	FlushPollMetric(poll)

	_, err := CastVote(bob, poll, red)
	require.NoError(t, err)
	_, err = CastVote(carol, poll, red)
	require.NoError(t, err)

	metric := GetPollMetric(poll)
	assert.EqualValues(t, 2, metric.TotalVote)
	assert.EqualValues(t, 2, metric.ByOptions["Red"])
	assert.EqualValues(t, 0, metric.ByOptions["Blue"])

	// Served from cache until the next vote flushes it.
	again := GetPollMetric(poll)
	assert.Equal(t, metric, again)
}

func TestCategoryLifecycle(t *testing.T) {
	useTestDatabase(t)

	category, err := NewCategory("colors", "Colors", "Questions about colors")
	require.NoError(t, err)

	found, err := GetCategory("colors")
	require.NoError(t, err)
	assert.Equal(t, category.ID, found.ID)

	same, err := GetCategoryOrCreate("colors", "Colors")
	require.NoError(t, err)
	assert.Equal(t, category.ID, same.ID)

	fresh, err := GetCategoryOrCreate("seasons", "Seasons")
	require.NoError(t, err)
	assert.NotEqual(t, category.ID, fresh.ID)

	require.NoError(t, DeleteCategory(fresh))
	_, err = GetCategory("seasons")
	assert.Error(t, err)
}
