package libdiff

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/spatch/encode"
	"github.com/signadot/spatch/ir"
	"github.com/signadot/spatch/jsonpatch"
	"github.com/signadot/spatch/parse"
)

func node(t *testing.T, s string) *ir.Node {
	t.Helper()
	if s == "" {
		return nil
	}
	n, err := parse.Parse([]byte(s))
	if err != nil {
		t.Fatalf("parse %s: %v", s, err)
	}
	return n
}

func patchJSON(t *testing.T, p jsonpatch.Patch) string {
	t.Helper()
	d, err := p.MarshalJSON()
	if err != nil {
		t.Fatal(err)
	}
	return string(d)
}

func TestDiff(t *testing.T) {
	tests := []struct {
		name   string
		left   string
		right  string
		schema string
		want   string
	}{
		{
			name:   "keyed remove",
			left:   `{"foo":[{"id":"abc","count":2},{"id":"bla","count":3}]}`,
			right:  `{"foo":[{"id":"abc","count":2}]}`,
			schema: `{"properties":{"foo":{"indexKey":"id","items":{"type":"object"}}}}`,
			want:   `[{"op":"remove","path":"/foo/[id=bla]"}]`,
		},
		{
			name:  "truncate",
			left:  `["a","b","c","d"]`,
			right: `["a","b"]`,
			want:  `[{"op":"remove","path":"/3"},{"op":"remove","path":"/2"}]`,
		},
		{
			name:  "majority changed",
			left:  `{"a":1,"b":2,"c":3,"d":4}`,
			right: `{"a":10,"b":20,"c":30,"d":4}`,
			want:  `[{"op":"replace","path":"","value":{"a":10,"b":20,"c":30,"d":4}}]`,
		},
		{
			name:  "equal size keeps member ops",
			left:  `{"a":1,"b":0,"c":"xxxxxxxxxxxxxxxxx"}`,
			right: `{"a":2,"c":"xxxxxxxxxxxxxxxxx"}`,
			want:  `[{"op":"replace","path":"/a","value":2},{"op":"remove","path":"/b"}]`,
		},
		{
			name:  "one byte smaller replaces",
			left:  `{"a":1,"b":0,"c":"xxxxxxxxxxxxxxxx"}`,
			right: `{"a":2,"c":"xxxxxxxxxxxxxxxx"}`,
			want:  `[{"op":"replace","path":"","value":{"a":2,"c":"xxxxxxxxxxxxxxxx"}}]`,
		},
		{
			name:  "remove front",
			left:  `["a","b","c"]`,
			right: `["c"]`,
			want:  `[{"op":"remove","path":"/0"},{"op":"remove","path":"/0"}]`,
		},
		{
			name:  "append",
			left:  `[1]`,
			right: `[1,2,3]`,
			want:  `[{"op":"add","path":"/-","value":2},{"op":"add","path":"/-","value":3}]`,
		},
		{
			name:  "insert front",
			left:  `[3]`,
			right: `[1,2,3]`,
			want:  `[{"op":"add","path":"/0","value":2},{"op":"add","path":"/0","value":1}]`,
		},
		{
			name:  "positional shrink",
			left:  `[1,2,3]`,
			right: `[1,5]`,
			want:  `[{"op":"replace","path":"/1","value":5},{"op":"remove","path":"/2"}]`,
		},
		{
			name:  "positional grow",
			left:  `[1,2]`,
			right: `[3,4,5]`,
			want:  `[{"op":"replace","path":"/0","value":3},{"op":"replace","path":"/1","value":4},{"op":"add","path":"/-","value":5}]`,
		},
		{
			name:  "members",
			left:  `{"keep":"a long value that stays","a":1}`,
			right: `{"keep":"a long value that stays","b":2}`,
			want:  `[{"op":"add","path":"/b","value":2},{"op":"remove","path":"/a"}]`,
		},
		{
			name:  "nested member",
			left:  `{"x":{"y":1,"z":"unchanged"}}`,
			right: `{"x":{"y":2,"z":"unchanged"}}`,
			want:  `[{"op":"replace","path":"/x/y","value":2}]`,
		},
		{
			name:  "type change",
			left:  `{"a":1,"b":"stays the same"}`,
			right: `{"a":"1","b":"stays the same"}`,
			want:  `[{"op":"replace","path":"/a","value":"1"}]`,
		},
		{
			name:  "int to float",
			left:  `1`,
			right: `1.0`,
			want:  `[{"op":"replace","path":"","value":1.0}]`,
		},
		{
			name:  "escaped member",
			left:  `{"a/b":{"c~d":[1]},"other":"long enough to keep member ops"}`,
			right: `{"a/b":{"c~d":[1,2]},"other":"long enough to keep member ops"}`,
			want:  `[{"op":"add","path":"/a~1b/c~0d/-","value":2}]`,
		},
		{
			name:  "unaddressable member",
			left:  `{"a[0]":1,"b":"long enough to keep member ops"}`,
			right: `{"a[0]":2,"b":"long enough to keep member ops"}`,
			want:  `[{"op":"replace","path":"","value":{"a[0]":2,"b":"long enough to keep member ops"}}]`,
		},
		{
			name:   "keyed reorder add modify",
			left:   `[{"id":"a","v":1},{"id":"b","v":2},{"id":"c","v":3}]`,
			right:  `[{"id":"c","v":3},{"id":"a","v":9},{"id":"d","v":4}]`,
			schema: `{"indexKey":"id"}`,
			want: `[{"op":"remove","path":"/[id=b]"},` +
				`{"op":"add","path":"/-","value":{"id":"d","v":4}},` +
				`{"op":"move","path":"/0","from":"/[id=c]"},` +
				`{"op":"replace","path":"/[id=a]/v","value":9}]`,
		},
		{
			name:   "index key not usable in a filter",
			left:   `[{"a b":"x"}]`,
			right:  `[{"a b":"y"}]`,
			schema: `{"indexKey":"a b"}`,
			want:   `[{"op":"replace","path":"/0/a b","value":"y"}]`,
		},
		{
			name:   "non-string index key in schema",
			left:   `[1,2]`,
			right:  `[1]`,
			schema: `{"indexKey":7}`,
			want:   `[{"op":"remove","path":"/1"}]`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			left, right := node(t, tt.left), node(t, tt.right)
			p, errs := Diff(left, right, node(t, tt.schema))
			if !errs.IsEmpty() {
				t.Fatalf("unexpected diff errors: %v", errs)
			}
			if diff := cmp.Diff(tt.want, patchJSON(t, p)); diff != "" {
				t.Errorf("patch (-want +got):\n%s", diff)
			}
			got, err := jsonpatch.Apply(left, p)
			if err != nil {
				t.Fatalf("apply: %v", err)
			}
			if !ir.Equal(got, right) {
				t.Errorf("apply gave %s, want %s", encode.MustString(got), tt.right)
			}
			if s := encode.MustString(left); s != encode.MustString(node(t, tt.left)) {
				t.Errorf("diff modified left: %s", s)
			}
		})
	}
}

func TestDiffEqualIsEmpty(t *testing.T) {
	tests := []struct {
		doc    string
		schema string
	}{
		{`null`, ``},
		{`"s"`, `{"indexKey":"id"}`},
		{`{"b":1,"a":[1,{"c":null}]}`, ``},
		{`[{"id":"a"},{"id":"b","n":[1,2]}]`, `{"indexKey":"id","items":{"properties":{"n":{"indexKey":"k"}}}}`},
		{`[{"id":"a"},{"id":"a"}]`, `{"indexKey":"id"}`},
	}
	for _, tt := range tests {
		t.Run(tt.doc, func(t *testing.T) {
			p, _ := Diff(node(t, tt.doc), node(t, tt.doc), node(t, tt.schema))
			if len(p) != 0 {
				t.Errorf("diff of equal documents: %s", patchJSON(t, p))
			}
			if p == nil {
				t.Error("empty patch is nil")
			}
		})
	}
	p, _ := Diff(node(t, `{"a":1,"b":2}`), node(t, `{"b":2,"a":1}`), nil)
	if len(p) != 0 {
		t.Errorf("member order produced a patch: %s", patchJSON(t, p))
	}
}

func TestDiffRoundTrip(t *testing.T) {
	schema := `{
	  "properties": {
	    "users": {
	      "indexKey": "name",
	      "items": {"properties": {"roles": {"indexKey": "role"}}}
	    }
	  }
	}`
	tests := []struct {
		name   string
		left   string
		right  string
		schema string
	}{
		{"scalars to containers", `{"a":1,"b":[1]}`, `{"a":{"x":1},"b":"s"}`, ""},
		{"nested arrays", `[[1,2],[3],[]]`, `[[2],[3,4],[5],[6]]`, ""},
		{"empty to full", `[]`, `[1,{"a":null}]`, ""},
		{"full to empty", `{"a":[1,2,3]}`, `{"a":[]}`, ""},
		{"root type change", `{"a":1}`, `[1]`, ""},
		{
			"keyed nested",
			`{"users":[{"name":"ann","roles":[{"role":"admin"},{"role":"dev","since":1}]},{"name":"bob","roles":[]}]}`,
			`{"users":[{"name":"cat","roles":[]},{"name":"ann","roles":[{"role":"dev","since":2},{"role":"ops"}]}],"v":2}`,
			schema,
		},
		{
			"keyed shuffle",
			`{"users":[{"name":"a"},{"name":"b"},{"name":"c"},{"name":"d"}]}`,
			`{"users":[{"name":"d"},{"name":"b"},{"name":"a"},{"name":"e"},{"name":"c"}]}`,
			schema,
		},
		{
			"keyed empty",
			`{"users":[{"name":"a"}]}`,
			`{"users":[]}`,
			schema,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			left, right := node(t, tt.left), node(t, tt.right)
			p, errs := Diff(left, right, node(t, tt.schema))
			if !errs.IsEmpty() {
				t.Fatalf("diff errors: %v", errs)
			}
			got, err := jsonpatch.Apply(left, p)
			if err != nil {
				t.Fatalf("apply %s: %v", patchJSON(t, p), err)
			}
			if !ir.Equal(got, right) {
				t.Errorf("patch %s gave %s", patchJSON(t, p), encode.MustString(got))
			}
		})
	}
}

func TestDiffPatchIsIndependent(t *testing.T) {
	left := node(t, `{"a":[1]}`)
	right := node(t, `{"a":[1,{"b":2}],"c":{"d":3}}`)
	p, _ := Diff(left, right, nil)
	for _, op := range p {
		if op.Value != nil {
			op.Value.Type = ir.NullType
		}
	}
	if s := encode.MustString(right); s != `{"a":[1,{"b":2}],"c":{"d":3}}` {
		t.Errorf("patch shares nodes with right: %s", s)
	}
}
