package resume

import "testing"

func TestDetectImpact(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		input  string
		expect bool
	}{
		{name: "achievement verb", input: Normalize("Increased revenue by 20%"), expect: true},
		{name: "managed headcount", input: Normalize("Managed 12 engineers"), expect: true},
		{name: "spelled percentage", input: Normalize("Cut costs by 15 percent"), expect: true},
		{name: "raw percentage", input: "latency down 35%", expect: true},
		{name: "raw dollar amount", input: "$2M in annual savings", expect: true},
		{name: "no metrics", input: Normalize("Wrote documentation for the team"), expect: false},
		{name: "empty", input: "", expect: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := DetectImpact(tt.input); got != tt.expect {
				t.Fatalf("expected %v, got %v", tt.expect, got)
			}
		})
	}
}
