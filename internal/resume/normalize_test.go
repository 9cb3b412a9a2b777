package resume

import "testing"

func TestNormalize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		input  string
		expect string
	}{
		{name: "empty", input: "", expect: ""},
		{name: "whitespace only", input: "  \n\t \r\n ", expect: ""},
		{name: "lowercases and strips punctuation", input: "Hello, World!", expect: "hello world"},
		{name: "keeps allowed symbols", input: "C++ & C# / Node.js @ home", expect: "c++ c# node.js @ home"},
		{name: "crlf and blank lines", input: "Skills\r\n\r\n  Go ,  Python \r\nEducation", expect: "skills\ngo python\neducation"},
		{name: "keeps list markers", input: "• Led team\n* Built API\n1) Shipped v2", expect: "• led team\n* built api\n1) shipped v2"},
		{name: "unicode dashes become hyphens", input: "2015 – 2017, 2018—2020", expect: "2015 - 2017 2018-2020"},
		{name: "exposed marker is canonical", input: "(-5) items", expect: "- 5 items"},
		{name: "bare numbered marker", input: "1) ©\nExperience\n3) ★", expect: "1\nexperience\n3"},
		{name: "bare dotted marker", input: "2. !!!", expect: "2."},
		{name: "bare bullet glyph", input: "• ©", expect: "•"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Normalize(tt.input); got != tt.expect {
				t.Fatalf("expected %q, got %q", tt.expect, got)
			}
		})
	}
}

func TestNormalizeIsIdempotent(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"",
		"Jane DOE — Senior Engineer\r\n\r\n• Increased revenue by 20%!!",
		"1) First\n2. Second\n3.5 GPA",
		"(-5) items\n--flag\n- \n•",
		"Email: jane@example.com | Phone: (555) 123-4567",
		"  ▸ Built   C++/Go   services\t\t(AWS)  ",
		"1) ©",
		"a\n1)\t*",
		"2) !!!",
		"Experience\n3) ★",
		"4. ?\n• ©",
	}

	for _, input := range inputs {
		once := Normalize(input)
		if twice := Normalize(once); twice != once {
			t.Fatalf("normalize is not idempotent for %q: %q != %q", input, twice, once)
		}
	}
}
