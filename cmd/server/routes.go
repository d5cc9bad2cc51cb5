package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/go-chi/docgen"
	"github.com/phrazzld/news-api/internal/api"
	"github.com/spf13/cobra"
)

func newRoutesCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "routes",
		Short: "Print the route table",
		RunE: func(cmd *cobra.Command, args []string) error {
			return printRoutes(cmd.OutOrStdout(), asJSON)
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON instead of Markdown")

	return cmd
}

// printRoutes documents the router. Handlers are built without services
// because docgen only walks the route tree.
func printRoutes(w io.Writer, asJSON bool) error {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	r := newRouter(api.Handlers{
		Topics:    api.NewTopicHandler(nil, log),
		Articles:  api.NewArticleHandler(nil, log),
		Comments:  api.NewCommentHandler(nil, log),
		Users:     api.NewUserHandler(nil, log),
		Endpoints: api.NewEndpointHandler(nil, log),
	}, log, true)

	if asJSON {
		_, err := fmt.Fprintln(w, docgen.JSONRoutesDoc(r))
		return err
	}

	_, err := fmt.Fprintln(w, docgen.MarkdownRoutesDoc(r, docgen.MarkdownOpts{
		ProjectPath: "github.com/phrazzld/news-api",
		Intro:       "Routes served by news-api.",
	}))
	return err
}
