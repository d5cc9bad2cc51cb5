package main

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommand(t *testing.T) {
	root := newRootCmd()

	names := make([]string, 0, len(root.Commands()))
	for _, c := range root.Commands() {
		names = append(names, c.Name())
	}
	assert.ElementsMatch(t, []string{"serve", "seed", "routes"}, names)
	assert.NotNil(t, root.PersistentFlags().Lookup("config"))
}

func TestRoutesCommand_Markdown(t *testing.T) {
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"routes"})

	require.NoError(t, root.Execute())

	doc := out.String()
	for _, route := range []string{"/api/articles", "/api/articles/{article_id}/comments", "/api/comments/{comment_id}", "/health"} {
		assert.Contains(t, doc, route)
	}
}

func TestRoutesCommand_JSON(t *testing.T) {
	var out bytes.Buffer

	require.NoError(t, printRoutes(&out, true))

	assert.True(t, json.Valid(out.Bytes()), "routes --json must print valid JSON")
	assert.Contains(t, out.String(), "/api")
}

func TestSeedCommand_ConfigError(t *testing.T) {
	t.Setenv("NEWS_DATABASE_URL", "")
	root := newRootCmd()
	root.SetArgs([]string{"seed", "--config", "does-not-exist.yaml"})

	err := root.Execute()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load configuration")
}
