package spath

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []Segment
	}{
		{
			name:  "empty path",
			input: "",
			want:  nil,
		},
		{
			name:  "root field",
			input: "/",
			want:  []Segment{Field("")},
		},
		{
			name:  "simple fields",
			input: "/foo/bar",
			want:  []Segment{Field("foo"), Field("bar")},
		},
		{
			name:  "empty middle segment",
			input: "/foo//bar",
			want:  []Segment{Field("foo"), Field(""), Field("bar")},
		},
		{
			name:  "trailing slash",
			input: "/foo/",
			want:  []Segment{Field("foo"), Field("")},
		},
		{
			name:  "index and append",
			input: "/a/0/-",
			want:  []Segment{Field("a"), Field("0"), Field("-")},
		},
		{
			name:  "escapes",
			input: "/a~1b/c~0d/~01",
			want:  []Segment{Field("a/b"), Field("c~d"), Field("~1")},
		},
		{
			name:  "filter",
			input: "/foo/[id=abc]",
			want:  []Segment{Field("foo"), Filter(Condition{Key: "id", Value: "abc"})},
		},
		{
			name:  "filter with many conditions",
			input: "/foo/[id=abc,kind=x-y,n=3]/count",
			want: []Segment{
				Field("foo"),
				Filter(
					Condition{Key: "id", Value: "abc"},
					Condition{Key: "kind", Value: "x-y"},
					Condition{Key: "n", Value: "3"}),
				Field("count"),
			},
		},
		{
			name:  "whitespace",
			input: "/ a / b/ [ id = foo ] /c ",
			want: []Segment{
				Field(" a "),
				Field(" b"),
				Filter(Condition{Key: "id", Value: "foo"}),
				Field("c "),
			},
		},
		{
			name:  "whitespace around commas",
			input: "/[a = 1 , b= two words ]",
			want: []Segment{
				Filter(Condition{Key: "a", Value: "1"}, Condition{Key: "b", Value: "two words"}),
			},
		},
		{
			name:  "filter value with slash",
			input: "/[path=a/b]",
			want:  []Segment{Filter(Condition{Key: "path", Value: "a/b"})},
		},
		{
			name:  "unicode ident",
			input: "/[clé_1=v]",
			want:  []Segment{Filter(Condition{Key: "clé_1", Value: "v"})},
		},
		{
			name:  "unicode field",
			input: "/héllo wörld",
			want:  []Segment{Field("héllo wörld")},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			if err != nil {
				t.Fatalf("Parse(%q) error: %v", tt.input, err)
			}
			if diff := cmp.Diff(tt.want, got.Segments()); diff != "" {
				t.Errorf("Parse(%q) mismatch (-want +got):\n%s", tt.input, diff)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantPos int
		wantMsg string
	}{
		{
			name:    "no leading slash",
			input:   "foo",
			wantPos: 0,
			wantMsg: "expected a path starting with '/'",
		},
		{
			name:    "bracket mid segment",
			input:   "/foo[bar=baz]/field3",
			wantPos: 4,
			wantMsg: "'[' may only appear at the start of a segment",
		},
		{
			name:    "unterminated filter",
			input:   "/foo[bar=baz",
			wantPos: 4,
			wantMsg: "unexpected '['",
		},
		{
			name:    "unterminated filter at segment start",
			input:   "/[id=a",
			wantPos: 1,
			wantMsg: "unexpected '['",
		},
		{
			name:    "empty filter",
			input:   "/a/[]",
			wantPos: 3,
			wantMsg: "unexpected '['",
		},
		{
			name:    "missing value",
			input:   "/[id=]",
			wantPos: 1,
			wantMsg: "unexpected '['",
		},
		{
			name:    "trailing comma",
			input:   "/[id=a,]",
			wantPos: 1,
			wantMsg: "unexpected '['",
		},
		{
			name:    "bad escape",
			input:   "/a~2",
			wantPos: 2,
			wantMsg: "unexpected character '~'",
		},
		{
			name:    "trailing tilde",
			input:   "/a~",
			wantPos: 2,
			wantMsg: "unexpected character '~'",
		},
		{
			name:    "text after filter",
			input:   "/[id=a]x",
			wantPos: 7,
			wantMsg: "unexpected character 'x'",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.input)
			var pe *PathError
			if !errors.As(err, &pe) {
				t.Fatalf("Parse(%q) error = %v, want *PathError", tt.input, err)
			}
			if pe.Pos != tt.wantPos {
				t.Errorf("Pos = %d, want %d", pe.Pos, tt.wantPos)
			}
			if !strings.Contains(pe.Msg, tt.wantMsg) {
				t.Errorf("Msg = %q, want it to contain %q", pe.Msg, tt.wantMsg)
			}
			if !strings.HasPrefix(err.Error(), "invalid syntax at position ") {
				t.Errorf("Error() = %q", err.Error())
			}
		})
	}
}

func TestStringRoundTrip(t *testing.T) {
	inputs := []string{
		"",
		"/",
		"/foo//bar",
		"/a~1b/c~0d",
		"/foo/[id=abc]/count",
		"/foo/[id=abc,kind=x]/-",
		"/ a /b ",
		"/[path=a/b]",
	}
	for _, in := range inputs {
		p, err := Parse(in)
		if err != nil {
			t.Fatalf("Parse(%q): %v", in, err)
		}
		if got := p.String(); got != in {
			t.Errorf("Parse(%q).String() = %q", in, got)
		}
	}
}

func TestCanonicalString(t *testing.T) {
	p := MustParse("/ [ id = foo ] /x")
	if got, want := p.String(), "/[id=foo]/x"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestMarshalText(t *testing.T) {
	p := Root().PushField("a/b").PushFilter("id", "x")
	d, err := p.MarshalText()
	if err != nil {
		t.Fatal(err)
	}
	if string(d) != "/a~1b/[id=x]" {
		t.Errorf("MarshalText = %q", d)
	}
	var q Spath
	if err := q.UnmarshalText(d); err != nil {
		t.Fatal(err)
	}
	if !q.Equal(p) {
		t.Errorf("UnmarshalText = %s, want %s", q, p)
	}
	if err := q.UnmarshalText([]byte("nope")); err == nil {
		t.Error("UnmarshalText(nope) succeeded")
	}
}
