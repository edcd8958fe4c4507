// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package restore

import "testing"

func TestRestore(t *testing.T) {
	tests := []struct {
		name string
		in   string
		sep  string
		want string
	}{
		{"empty", "", "\n", ""},
		{"empty with custom separator", "", "<br>", ""},
		{"plain sentences", "Foo. Bar! Baz?", "\n", "Foo.\nBar!\nBaz?"},
		{"existing breaks are normalized first", "Foo.\n\nBar!", "\n", "Foo.\nBar!"},
		{
			"lost boundary without punctuation",
			"die zellmembran ist selektiv permeabelSie besteht aus einer lipiddoppelschicht",
			"\n",
			"die zellmembran ist selektiv permeabel\nSie besteht aus einer lipiddoppelschicht",
		},
		{
			"acronym survives flat",
			"gegründet wurde die NATO im jahr 1949.",
			"\n",
			"gegründet wurde die NATO im jahr 1949.",
		},
		{
			"punctuation and case boundaries combined",
			"Erstens: die lunge. Zweitens das herzDrittens die leber",
			"<br>",
			"Erstens: die lunge.<br>Zweitens das herz<br>Drittens die leber",
		},
		{"all uppercase", "ABC DEF", "\n", "ABC DEF"},
		{"whitespace only", "  \n ", "\n", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Restore(tt.in, tt.sep); got != tt.want {
				t.Errorf("Restore(%q, %q) = %q, want %q", tt.in, tt.sep, got, tt.want)
			}
		})
	}
}

// Restore with no uppercase and no terminal punctuation reduces to trimming,
// regardless of separator.
func TestRestoreLowercaseIdentity(t *testing.T) {
	in := "nur kleinbuchstaben ohne satzende"
	for _, sep := range []string{"\n", " | ", ""} {
		if got := Restore(in, sep); got != in {
			t.Errorf("Restore(%q, %q) = %q, want input unchanged", in, sep, got)
		}
	}
}
