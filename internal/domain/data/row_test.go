package data

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"
)

func TestNewRowKeepsArgumentOrder(t *testing.T) {
	r := NewRow(C("name", "Ana"), C("age", 30), C("active", true))

	assert.DeepEqual(t, r.Names(), []string{"name", "age", "active"})
	assert.Equal(t, r.Len(), 3)
	assert.Equal(t, r.Value("age"), 30)
}

func TestNewRowRepeatedNameOverwrites(t *testing.T) {
	r := NewRow(C("a", 1), C("b", 2), C("a", 3))

	assert.DeepEqual(t, r.Names(), []string{"a", "b"})
	assert.Equal(t, r.Value("a"), 3)
}

func TestAddField(t *testing.T) {
	var r Row
	r.AddField("x", 1.5)
	r.AddField("y", "z")
	r.AddField("x", 2.5)

	v, ok := r.Get("x")
	assert.Assert(t, ok)
	assert.Equal(t, v, 2.5)
	assert.DeepEqual(t, r.Names(), []string{"x", "y"})
	assert.Assert(t, !r.Has("missing"))
}

func TestFromMapSortsKeys(t *testing.T) {
	r := FromMap(map[string]interface{}{"b": 2, "a": 1, "c": 3})

	assert.DeepEqual(t, r.Names(), []string{"a", "b", "c"})
}

func TestCopyIsIndependent(t *testing.T) {
	orig := NewRow(C("name", "Ana"))
	cp := orig.Copy()
	cp.AddField("name", "Bob")
	cp.AddField("age", 3)

	assert.Equal(t, orig.Value("name"), "Ana")
	assert.Equal(t, orig.Len(), 1)

	m := orig.Map()
	m["name"] = "Eve"
	assert.Equal(t, orig.Value("name"), "Ana")
}

func TestMarshalJSONKeepsOrder(t *testing.T) {
	r := NewRow(C("name", "Ana"), C("age", 30), C("score", 1.5), C("ok", false))

	b, err := json.Marshal(r)
	assert.NilError(t, err)
	assert.Equal(t, string(b), `{"name":"Ana","age":30,"score":1.5,"ok":false}`)
}

func TestUnmarshalJSON(t *testing.T) {
	var r Row
	err := json.Unmarshal([]byte(`{"z":"last","age":30,"score":1.5,"ok":true}`), &r)
	assert.NilError(t, err)

	assert.DeepEqual(t, r.Names(), []string{"z", "age", "score", "ok"})
	assert.Equal(t, r.Value("age"), json.Number("30"))
	assert.Equal(t, r.Value("score"), json.Number("1.5"))
	assert.Equal(t, r.Value("ok"), true)
}

func TestUnmarshalJSONRejectsNonObject(t *testing.T) {
	var r Row
	err := json.Unmarshal([]byte(`[1,2]`), &r)

	assert.Check(t, is.ErrorContains(err, "JSON object"))
}

func TestLogValue(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	logger.Info("found", "row", NewRow(C("name", "Ana"), C("age", 30)))

	assert.Check(t, is.Contains(buf.String(), "row.name=Ana row.age=30"))
}
