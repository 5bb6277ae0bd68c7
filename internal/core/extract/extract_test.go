package extract_test

import (
	"testing"

	"draftforge/internal/core/extract"
)

const sampleID = "1fc5a2fa-a754-8079-8e1f-ffb9ac24b700"

func TestNormalizeIdempotent(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"<p>hello&nbsp;world</p>",
		"plain already",
		"line\r\nbreaks\nhere",
		"  padded   runs\tof space  ",
		"<div>PageID: " + sampleID + "</div>",
	}
	for _, in := range inputs {
		once := extract.Normalize(in)
		twice := extract.Normalize(once)
		if once != twice {
			t.Fatalf("normalize not idempotent for %q: %q != %q", in, once, twice)
		}
	}
}

func TestPageIDFromMarkup(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		text string
		want string
	}{
		{
			"wrapped in tags and entities",
			"<p>PageID:&nbsp;<b>" + sampleID + "</b></p>",
			sampleID,
		},
		{
			"case preserved",
			"see 1FC5A2FA-A754-8079-8E1F-FFB9AC24B700 please",
			"1FC5A2FA-A754-8079-8E1F-FFB9AC24B700",
		},
		{
			"first of several wins",
			sampleID + " and 2005a2fa-a754-8022-a17c-fcb4b09e8b55",
			sampleID,
		},
		{
			"split across line breaks stays intact",
			"before\r\n" + sampleID + "\nafter",
			sampleID,
		},
		{"no id", "<p>nothing to see</p>", ""},
		{"empty", "", ""},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := extract.PageID(tc.text); got != tc.want {
				t.Fatalf("PageID(%q) = %q want %q", tc.text, got, tc.want)
			}
		})
	}
}

func TestPageIDObeysNormalization(t *testing.T) {
	t.Parallel()

	raw := "<span>PageID:&nbsp;" + sampleID + "</span>"
	if extract.PageID(raw) != extract.PageID(extract.Normalize(raw)) {
		t.Fatalf("extraction must agree on raw and normalized input")
	}
}

func TestQuestionStripsTagAndMention(t *testing.T) {
	t.Parallel()

	got := extract.Question("Q: 와이파이 비밀번호? <div>@bot</div>")
	want := "Q: 와이파이 비밀번호?"
	if got != want {
		t.Fatalf("Question = %q want %q", got, want)
	}
}

func TestQuestionKeepsIDIntact(t *testing.T) {
	t.Parallel()

	text := "<div>@bot</div> " + sampleID
	if extract.PageID(text) != sampleID {
		t.Fatalf("uuid must survive mention stripping unchanged")
	}
}

func TestQuestionEmptyAfterStripping(t *testing.T) {
	t.Parallel()

	if got := extract.Question("<div>@bot</div>"); got != "" {
		t.Fatalf("expected empty question got %q", got)
	}
}
