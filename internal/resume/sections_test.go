package resume

import (
	"encoding/json"
	"slices"
	"testing"
)

func TestSplitSections(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		input  string
		expect Sections
	}{
		{
			name:   "empty",
			input:  "",
			expect: Sections{},
		},
		{
			name:  "skills then education",
			input: "Skills\nGo, Python, Docker\nEducation\nBS Computer Science, MIT",
			expect: Sections{
				{Name: "skills", Body: "go python docker"},
				{Name: "education", Body: "bs computer science mit"},
			},
		},
		{
			name:  "content before first heading",
			input: "Jane Doe\njane@example.com\nExperience\nAcme Corp",
			expect: Sections{
				{Name: HeaderSection, Body: "jane doe\njane@example.com"},
				{Name: "experience", Body: "acme corp"},
			},
		},
		{
			name:  "long lines are not headings",
			input: "I have extensive experience building distributed systems for large customers worldwide",
			expect: Sections{
				{Name: HeaderSection, Body: "i have extensive experience building distributed systems for large customers worldwide"},
			},
		},
		{
			name:  "repeated heading keeps last body",
			input: "Skills\ngo\nProjects\nchat bot\nSkills\nrust",
			expect: Sections{
				{Name: "skills", Body: "rust"},
				{Name: "projects", Body: "chat bot"},
			},
		},
		{
			name:  "empty section is dropped",
			input: "Summary\nSkills\npython",
			expect: Sections{
				{Name: "skills", Body: "python"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := SplitSections(Normalize(tt.input))
			if got == nil {
				t.Fatalf("expected non-nil sections")
			}
			if !slices.Equal(got, tt.expect) {
				t.Fatalf("expected %+v, got %+v", tt.expect, got)
			}
		})
	}
}

func TestSectionsGetAndNames(t *testing.T) {
	t.Parallel()

	sections := SplitSections(Normalize("Skills\nGo\nEducation\nBS"))

	body, ok := sections.Get("skills")
	if !ok || body != "go" {
		t.Fatalf("expected skills body go, got %q (found=%v)", body, ok)
	}

	if _, ok := sections.Get("projects"); ok {
		t.Fatalf("did not expect projects section")
	}

	if names := sections.Names(); !slices.Equal(names, []string{"skills", "education"}) {
		t.Fatalf("unexpected names: %v", names)
	}
}

func TestSectionsMarshalJSON(t *testing.T) {
	t.Parallel()

	sections := Sections{{Name: "skills", Body: "go"}, {Name: "education", Body: "bs \"cs\""}}

	data, err := json.Marshal(sections)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expect := `{"skills":"go","education":"bs \"cs\""}`
	if string(data) != expect {
		t.Fatalf("expected %s, got %s", expect, data)
	}

	empty, err := json.Marshal(Sections{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(empty) != "{}" {
		t.Fatalf("expected {}, got %s", empty)
	}
}
