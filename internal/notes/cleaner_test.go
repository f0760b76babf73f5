package notes

import "testing"

func TestClean(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{
			name: "capitalizes and punctuates",
			raw:  "the mitochondria is the powerhouse of the cell",
			want: "The mitochondria is the powerhouse of the cell.",
		},
		{
			name: "keeps existing punctuation",
			raw:  "is water wet?\nyes!\nfine.",
			want: "Is water wet?\n\nYes!\n\nFine.",
		},
		{
			name: "drops blank lines and trims",
			raw:  "  first point  \n\n   \n  second point ",
			want: "First point.\n\nSecond point.",
		},
		{
			name: "empty input",
			raw:  "   \n \n",
			want: "",
		},
		{
			name: "already capitalized",
			raw:  "Newton's first law",
			want: "Newton's first law.",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Clean(tt.raw); got != tt.want {
				t.Errorf("Clean(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}
