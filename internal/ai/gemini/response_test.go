package gemini

import (
	"testing"
)

func TestParseObject(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		raw     string
		wantKey string
		wantErr bool
	}{
		{name: "plain", raw: `{"a": 1}`, wantKey: "a"},
		{name: "code fence", raw: "```json\n{\"a\": 1}\n```", wantKey: "a"},
		{name: "bare fence", raw: "```\n{\"a\": 1}\n```", wantKey: "a"},
		{name: "surrounding prose", raw: "Here you go:\n{\"a\": {\"b\": 2}}\nThanks!", wantKey: "a"},
		{name: "raw newline in string", raw: "{\"a\": \"line one\nline two\"}", wantKey: "a"},
		{name: "empty", raw: "  ", wantErr: true},
		{name: "array", raw: `[1, 2]`, wantErr: true},
		{name: "garbage", raw: "not json", wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			data, err := parseObject(tc.raw)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %v", data)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if _, ok := data[tc.wantKey]; !ok {
				t.Fatalf("expected key %q in %v", tc.wantKey, data)
			}
		})
	}
}

func TestEscapeControlInStrings(t *testing.T) {
	t.Parallel()

	in := "{\"a\": \"x\ny\t\\\"q\\\"\",\n\"b\": 1}"
	want := "{\"a\": \"x\\ny\\t\\\"q\\\"\",\n\"b\": 1}"

	if got := escapeControlInStrings(in); got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}
