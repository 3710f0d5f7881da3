package graph

import (
	"fmt"
	"testing"

	"github.com/graphql-go/graphql"
	"github.com/solarvale/agora/pkg/internal/models"
	"github.com/solarvale/agora/pkg/internal/services"
	"github.com/solarvale/agora/pkg/internal/testbed"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPollResultsQuery(t *testing.T) {
	testbed.UseTestDatabase(t)

	voter, err := services.NewAccount("bob", "bob@example.com", "pw123")
	require.NoError(t, err)

	poll, err := services.NewPoll(models.Poll{
		Title:      "Color?",
		Visibility: true,
		AccountID:  voter.ID,
		Options: []models.PollOption{
			{ChoiceText: "Red"},
			{ChoiceText: "Blue"},
		},
	})
	require.NoError(t, err)

	_, err = services.CastVote(voter, poll, poll.Options[0])
	require.NoError(t, err)

	schema, err := NewSchema()
	require.NoError(t, err)

	result := graphql.Do(graphql.Params{
		Schema: schema,
		RequestString: fmt.Sprintf(
			`{ poll(id: %d) { title totalVote options { choiceText votes } } }`,
			poll.ID,
		),
	})
	require.Empty(t, result.Errors)

	data := result.Data.(map[string]interface{})
	queried := data["poll"].(map[string]interface{})
	assert.Equal(t, "Color?", queried["title"])
	assert.Equal(t, 1, queried["totalVote"])
}
