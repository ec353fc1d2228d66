package llmjson

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtract_BareArray(t *testing.T) {
	out := Extract([]byte(`["a", "b"]`))
	assert.JSONEq(t, `["a","b"]`, string(out))
}

func TestExtract_FencedJSON(t *testing.T) {
	out := Extract([]byte("```json\n[\"a\", \"b\"]\n```"))
	assert.JSONEq(t, `["a","b"]`, string(out))
}

func TestExtract_FenceWithoutLanguage(t *testing.T) {
	out := Extract([]byte("```\n{\"tags\": [\"a\"]}\n```"))
	assert.JSONEq(t, `{"tags":["a"]}`, string(out))
}

func TestExtract_ProseAroundArray(t *testing.T) {
	out := Extract([]byte(`Here are the tags: ["auth", "login"] — hope that helps!`))
	assert.JSONEq(t, `["auth","login"]`, string(out))
}

func TestExtract_WhitespacePassthrough(t *testing.T) {
	out := Extract([]byte("  \n[1, 2]\n  "))
	assert.JSONEq(t, `[1,2]`, string(out))
}
