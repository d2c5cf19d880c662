//go:build unit

package sanitize

import (
	"regexp"
	"testing"
)

func TestSlug(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"lowercases", "Buddhism", "buddhism"},
		{"keeps digits and hyphens", "zen-buddhism-101", "zen-buddhism-101"},
		{"strips symbols", "Abc123!?", "abc123"},
		{"strips spaces", "  early church  ", "earlychurch"},
		{"strips diacritics", "Jöhn Doe", "jhndoe"},
		{"empty stays empty", "", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Slug(tc.in); got != tc.want {
				t.Errorf("Slug(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestSlugAlphabetAndIdempotence(t *testing.T) {
	allowed := regexp.MustCompile(`^[a-z0-9-]*$`)
	inputs := []string{"Hello World!", "ÅÄÖ", "a_b.c/d", "UPPER-lower-42", "", "---", "see you @ 10:30"}
	for _, in := range inputs {
		got := Slug(in)
		if !allowed.MatchString(got) {
			t.Errorf("Slug(%q) = %q contains characters outside [a-z0-9-]", in, got)
		}
		if Slug(got) != got {
			t.Errorf("Slug is not idempotent for %q: %q != %q", in, Slug(got), got)
		}
	}
}

func TestContent(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"keeps free text punctuation", "Hello there! See ch. 3: verses 1;2 @noon", "Hello there! See ch. 3: verses 1;2 @noon"},
		{"keeps nordic vowels", "Hyvää päivää", "Hyvää päivää"},
		{"strips quotes and brackets", `He said "go" (now)`, "He said go now"},
		{"strips markup", "<script>alert(1)</script>fine", "fine"},
		{"strips tags but keeps text", "<b>bold</b> words", "bold words"},
		{"empty stays empty", "", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Content(tc.in); got != tc.want {
				t.Errorf("Content(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestContentIdempotence(t *testing.T) {
	inputs := []string{"Hi!", "a & b", "plain text with:\npunctuation; and @handles.", "Jöhn's \"quote\"", ""}
	for _, in := range inputs {
		once := Content(in)
		if twice := Content(once); twice != once {
			t.Errorf("Content is not idempotent for %q: %q != %q", in, twice, once)
		}
	}
}

func TestName(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"keeps diacritics and hyphens", "Jöhn-Doe Åberg", "Jöhn-Doe Åberg"},
		{"strips symbols", "J0hn! D<oe>", "Jhn Doe"},
		{"strips digits", "agent 007", "agent "},
		{"empty stays empty", "", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Name(tc.in); got != tc.want {
				t.Errorf("Name(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}
