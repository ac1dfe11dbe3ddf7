package protodocs

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `{
  "enums": [{"enumType": "EventSubscription", "enumIdentifiers": []}],
  "events": [{"eventType": "CurrentProgramSceneChanged"}],
  "requests": [
    {"requestType": "GetVersion", "category": "general", "description": "a < b"},
    {"requestType": "GetSceneList", "category": "scenes"},
    {"requestType": "GetSceneItemList", "category": "scene items"},
    {"requestType": "GetStats", "category": "general"}
  ]
}`

func writeSample(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "protocol.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestSplit(t *testing.T) {
	out := filepath.Join(t.TempDir(), "protocol_split")

	paths, err := Split(writeSample(t, sample), out)
	require.NoError(t, err)

	var names []string
	for _, p := range paths {
		names = append(names, filepath.Base(p))
	}
	assert.Equal(t, []string{"enums.json", "events.json", "general.json", "scene_items.json", "scenes.json"}, names)

	raw, err := os.ReadFile(filepath.Join(out, "general.json"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(raw), "{\n  \"requests\": [\n    {"), string(raw))
	assert.False(t, strings.HasSuffix(string(raw), "\n"))
	assert.Contains(t, string(raw), "a < b")

	var general struct {
		Requests []struct {
			RequestType string `json:"requestType"`
		} `json:"requests"`
	}
	require.NoError(t, json.Unmarshal(raw, &general))
	require.Len(t, general.Requests, 2)
	assert.Equal(t, "GetVersion", general.Requests[0].RequestType)
	assert.Equal(t, "GetStats", general.Requests[1].RequestType)

	raw, err = os.ReadFile(filepath.Join(out, "enums.json"))
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"enumType": "EventSubscription"`)
}

func TestSplitErrors(t *testing.T) {
	out := t.TempDir()

	_, err := Split(filepath.Join(out, "missing.json"), out)
	assert.Error(t, err)

	_, err = Split(writeSample(t, `{"enums": []}`), out)
	assert.ErrorContains(t, err, "missing requests")

	_, err = Split(writeSample(t, `{"requests": [{"requestType": "GetVersion"}]}`), out)
	assert.ErrorContains(t, err, "missing category")

	_, err = Split(writeSample(t, `{"requests": [{"requestType": "X", "category": "events"}]}`), out)
	assert.ErrorContains(t, err, "collides")

	_, err = Split(writeSample(t, `not json`), out)
	assert.Error(t, err)
}
