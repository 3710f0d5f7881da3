package graph

import (
	"fmt"

	"github.com/graphql-go/graphql"
	"github.com/solarvale/agora/pkg/internal/services"
)

var optionType = graphql.NewObject(
	graphql.ObjectConfig{
		Name: "PollOption",
		Fields: graphql.Fields{
			"id": &graphql.Field{
				Type: graphql.Int,
			},
			"choiceText": &graphql.Field{
				Type: graphql.String,
			},
			"votes": &graphql.Field{
				Type: graphql.Int,
			},
		},
	},
)

var pollType = graphql.NewObject(
	graphql.ObjectConfig{
		Name: "Poll",
		Fields: graphql.Fields{
			"id": &graphql.Field{
				Type: graphql.Int,
			},
			"title": &graphql.Field{
				Type: graphql.String,
			},
			"description": &graphql.Field{
				Type: graphql.String,
			},
			"totalVote": &graphql.Field{
				Type: graphql.Int,
			},
			"options": &graphql.Field{
				Type: graphql.NewList(optionType),
			},
		},
	},
)

var queryType = graphql.NewObject(
	graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"poll": &graphql.Field{
				Type: pollType,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{
						Type: graphql.NewNonNull(graphql.Int),
					},
				},
				Resolve: func(params graphql.ResolveParams) (interface{}, error) {
					id, _ := params.Args["id"].(int)
					poll, err := services.GetPoll(uint(id))
					if err != nil {
						return nil, fmt.Errorf("error getting poll %d: %s", id, err)
					}
					metric := services.GetPollMetric(poll)
					options := make([]map[string]interface{}, 0, len(poll.Options))
					for _, option := range poll.Options {
						options = append(options, map[string]interface{}{
							"id":         option.ID,
							"choiceText": option.ChoiceText,
							"votes":      option.Votes,
						})
					}
					return map[string]interface{}{
						"id":          poll.ID,
						"title":       poll.Title,
						"description": poll.Description,
						"totalVote":   metric.TotalVote,
						"options":     options,
					}, nil
				},
			},
			"pollResults": &graphql.Field{
				Type: graphql.NewList(optionType),
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{
						Type: graphql.NewNonNull(graphql.Int),
					},
				},
				Resolve: func(params graphql.ResolveParams) (interface{}, error) {
					id, _ := params.Args["id"].(int)
					poll, err := services.GetPoll(uint(id))
					if err != nil {
						return nil, fmt.Errorf("error getting poll %d: %s", id, err)
					}
					options := make([]map[string]interface{}, 0, len(poll.Options))
					for _, option := range poll.Options {
						options = append(options, map[string]interface{}{
							"id":         option.ID,
							"choiceText": option.ChoiceText,
							"votes":      option.Votes,
						})
					}
					return options, nil
				},
			},
		},
	},
)

func NewSchema() (graphql.Schema, error) {
	return graphql.NewSchema(graphql.SchemaConfig{
		Query: queryType,
	})
}
