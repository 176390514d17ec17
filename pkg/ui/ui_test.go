package ui_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/arthur-debert/minifiles/pkg/errors"
	"github.com/arthur-debert/minifiles/pkg/explorer"
	"github.com/arthur-debert/minifiles/pkg/types"
	"github.com/arthur-debert/minifiles/pkg/ui"
	"github.com/beevik/etree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

var plan = []types.Action{
	types.Rename("/tmp/x/a.txt", "/tmp/x/b.txt"),
	types.Delete("/tmp/x/c.txt", "/trash/c.txt"),
	types.Create("/tmp/y/newdir/"),
	types.Move("/tmp/x/d.txt", "/tmp/y/d.txt"),
}

func TestTextRenderer_Plan(t *testing.T) {
	var buf bytes.Buffer
	r, err := ui.NewRenderer(ui.FormatText, &buf)
	require.NoError(t, err)

	require.NoError(t, r.RenderPlan(plan))

	expected := "CONFIRM FILE SYSTEM ACTIONS\n" +
		"\n" +
		"/tmp/x\n" +
		"  RENAME │ a.txt => b.txt\n" +
		"  DELETE │ c.txt (to trash)\n" +
		"  MOVE   │ d.txt => /tmp/y/d.txt\n" +
		"\n" +
		"/tmp/y\n" +
		"  CREATE │ newdir (directory)\n"
	assert.Equal(t, expected, buf.String())
}

func TestTextRenderer_Results(t *testing.T) {
	var buf bytes.Buffer
	r, err := ui.NewRenderer(ui.FormatText, &buf)
	require.NoError(t, err)

	results := []types.ActionResult{
		{Action: plan[0], Success: true},
		{Action: types.Create("/tmp/x/taken"), Skipped: true, Error: errors.New(errors.ErrAlreadyExists, "exists")},
		{Action: types.Delete("/tmp/x/gone", ""), Error: errors.New(errors.ErrNotFound, "gone")},
	}
	require.NoError(t, r.RenderResults(results))

	out := buf.String()
	assert.Contains(t, out, "ok   RENAME │ /tmp/x/a.txt => /tmp/x/b.txt\n")
	assert.Contains(t, out, "skip CREATE │ /tmp/x/taken (file): [ALREADY_EXISTS] exists\n")
	assert.Contains(t, out, "FAIL DELETE │ /tmp/x/gone (permanently): [NOT_FOUND] gone\n")
	assert.Contains(t, out, "3 actions, 1 failed, 1 skipped")
}

func TestTextRenderer_Listings(t *testing.T) {
	var buf bytes.Buffer
	r, err := ui.NewRenderer(ui.FormatText, &buf)
	require.NoError(t, err)

	require.NoError(t, r.RenderListings([]explorer.Listing{
		{Dir: "/tmp/x", Lines: []string{"/1/a.txt", "/2/sub/"}},
		{Dir: "/tmp/x/sub", Lines: nil},
	}))

	assert.Equal(t, "/tmp/x\n/1/a.txt\n/2/sub/\n\n/tmp/x/sub\n", buf.String())
}

func TestTerminalRenderer_Plan(t *testing.T) {
	var buf bytes.Buffer
	r, err := ui.NewRenderer(ui.FormatTerminal, &buf)
	require.NoError(t, err)

	require.NoError(t, r.RenderPlan(plan))

	out := buf.String()
	for _, verb := range []string{"RENAME", "DELETE", "MOVE", "CREATE"} {
		assert.Contains(t, out, verb)
	}
	assert.Contains(t, out, "CONFIRM FILE SYSTEM ACTIONS")
}

func TestJSONRenderer_Plan(t *testing.T) {
	var buf bytes.Buffer
	r, err := ui.NewRenderer(ui.FormatJSON, &buf)
	require.NoError(t, err)

	require.NoError(t, r.RenderPlan(plan))

	var doc struct {
		Groups []struct {
			Dir     string         `json:"dir"`
			Actions []types.Action `json:"actions"`
		} `json:"groups"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))
	require.Len(t, doc.Groups, 2)
	assert.Equal(t, "/tmp/x", doc.Groups[0].Dir)
	assert.Equal(t, types.ActionRename, doc.Groups[0].Actions[0].Kind)
	assert.Equal(t, "/trash/c.txt", doc.Groups[0].Actions[1].TrashTo)
}

func TestYAMLRenderer_Results(t *testing.T) {
	var buf bytes.Buffer
	r, err := ui.NewRenderer(ui.FormatYAML, &buf)
	require.NoError(t, err)

	require.NoError(t, r.RenderResults([]types.ActionResult{
		{Action: plan[0], Success: true},
		{Action: plan[1], Error: errors.New(errors.ErrNotFound, "gone")},
	}))

	var docs []map[string]interface{}
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &docs))
	require.Len(t, docs, 2)
	assert.Equal(t, true, docs[0]["success"])
	assert.Equal(t, "NOT_FOUND", docs[1]["code"])
}

func TestXMLRenderer_Plan(t *testing.T) {
	var buf bytes.Buffer
	r, err := ui.NewRenderer(ui.FormatXML, &buf)
	require.NoError(t, err)

	require.NoError(t, r.RenderPlan(plan))

	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromBytes(buf.Bytes()))
	groups := doc.FindElements("./plan/group")
	require.Len(t, groups, 2)
	assert.Equal(t, "/tmp/x", groups[0].SelectAttrValue("dir", ""))

	rename := groups[0].SelectElement("action")
	require.NotNil(t, rename)
	assert.Equal(t, "rename", rename.SelectAttrValue("kind", ""))
	assert.Equal(t, "/tmp/x/b.txt", rename.SelectAttrValue("to", ""))
}

func TestXMLRenderer_Results(t *testing.T) {
	var buf bytes.Buffer
	r, err := ui.NewRenderer(ui.FormatXML, &buf)
	require.NoError(t, err)

	require.NoError(t, r.RenderResults([]types.ActionResult{
		{Action: plan[0], Success: true},
		{Action: plan[1], Error: errors.New(errors.ErrNotFound, "gone")},
	}))

	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromBytes(buf.Bytes()))
	results := doc.FindElements("./results/result")
	require.Len(t, results, 2)
	assert.Equal(t, "true", results[0].SelectAttrValue("success", ""))
	failure := results[1].SelectElement("error")
	require.NotNil(t, failure)
	assert.Equal(t, "NOT_FOUND", failure.SelectAttrValue("code", ""))
}
