package graph

import (
	"net/http"

	"github.com/graphql-go/handler"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

// Server exposes the read-only GraphQL surface on its own listener,
// next to the main REST API.
type Server struct {
	mux *http.ServeMux
}

func NewServer() *Server {
	schema, err := NewSchema()
	if err != nil {
		log.Fatal().Err(err).Msg("An error occurred when building the graphql schema.")
	}

	mux := http.NewServeMux()
	mux.Handle("/graphql", handler.New(&handler.Config{
		Schema:   &schema,
		Pretty:   true,
		GraphiQL: true,
	}))

	return &Server{mux}
}

func (v *Server) Listen() {
	if err := http.ListenAndServe(viper.GetString("graph_bind"), v.mux); err != nil {
		log.Fatal().Err(err).Msg("An error occurred when starting the graphql server.")
	}
}
