package htmltext

import "testing"

func TestDecodeEntities(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "Named ampersand",
			input: "Design &amp; Typography",
			want:  "Design & Typography",
		},
		{
			name:  "Numeric dash",
			input: "Natječaj &#8211; plakat",
			want:  "Natječaj – plakat",
		},
		{
			name:  "Non-breaking space",
			input: "rok:&nbsp;15.1.2026.",
			want:  "rok: 15.1.2026.",
		},
		{
			name:  "Unknown entity passes through",
			input: "caf&eacute; &unknown;",
			want:  "caf&eacute; &unknown;",
		},
		{
			name:  "Already decoded text unchanged",
			input: "Design & Typography",
			want:  "Design & Typography",
		},
		{
			name:  "Mixed quotes",
			input: "&#8220;Zgraf&#8221; &#039;26",
			want:  "“Zgraf” '26",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DecodeEntities(tt.input); got != tt.want {
				t.Errorf("DecodeEntities(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestDecodeEntitiesIdempotent(t *testing.T) {
	input := "Design &amp; Typography &#8211; rok:&nbsp;danas"
	once := DecodeEntities(input)
	twice := DecodeEntities(once)
	if once != twice {
		t.Errorf("DecodeEntities is not idempotent: %q != %q", once, twice)
	}
}

func TestStripTags(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "Simple markup",
			input: "<p>Hello <b>world</b></p>",
			want:  "Hello world",
		},
		{
			name:  "Collapses whitespace",
			input: "<div>\n  one\n\ttwo  </div>",
			want:  "one two",
		},
		{
			name:  "No markup",
			input: "plain text",
			want:  "plain text",
		},
		{
			name:  "Entities left alone",
			input: "<span>a &amp; b</span>",
			want:  "a &amp; b",
		},
		{
			name:  "Empty",
			input: "",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StripTags(tt.input); got != tt.want {
				t.Errorf("StripTags(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
