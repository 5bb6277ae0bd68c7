// Package extract scrapes a document reference out of free-form channel text.
//
// Channel messages arrive as HTML-ish markup with entities and mention tags
// wrapped around the thing we actually want: a page id in canonical UUID
// shape. Normalization strips the noise, then the first UUID-shaped
// substring wins. This is a best-effort scrape, not a parser
package extract

import (
	"regexp"
	"strings"

	"github.com/google/uuid"
)

var (
	tagPattern    = regexp.MustCompile(`<[^>]+>`)
	breakPattern  = regexp.MustCompile(`[\r\n]+`)
	spacePattern  = regexp.MustCompile(`\s+`)
	pageIDPattern = regexp.MustCompile(`[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}`)
	mentionPat    = regexp.MustCompile(`@[^ ]+`)
)

// Normalize flattens channel markup into plain text: tags out, &nbsp; to
// space, line breaks to spaces, whitespace runs collapsed, trimmed.
// Idempotent: normalizing already-normalized text is a no-op
func Normalize(text string) string {
	plain := tagPattern.ReplaceAllString(text, " ")
	plain = strings.ReplaceAll(plain, "&nbsp;", " ")
	plain = breakPattern.ReplaceAllString(plain, " ")
	plain = spacePattern.ReplaceAllString(plain, " ")
	return strings.TrimSpace(plain)
}

// PageID returns the first canonical UUID found in the normalized form of
// text, verbatim in case and hyphenation, or "" when none is present.
// Whether the id names a live document is the reader's problem, not ours
func PageID(text string) string {
	m := pageIDPattern.FindString(Normalize(text))
	if m == "" {
		return ""
	}
	// the pattern is shape-only; let the uuid package reject degenerate
	// variants like an all-hex string with misplaced hyphens
	if _, err := uuid.Parse(m); err != nil {
		return ""
	}
	return m
}

// Question strips markup and the bot mention from a question-channel message,
// leaving only the user's question text
func Question(text string) string {
	plain := tagPattern.ReplaceAllString(text, " ")
	plain = strings.ReplaceAll(plain, "&nbsp;", " ")
	// only the first mention is the bot tag; later @s may be part of the question
	if loc := mentionPat.FindStringIndex(plain); loc != nil {
		plain = plain[:loc[0]] + plain[loc[1]:]
	}
	plain = spacePattern.ReplaceAllString(plain, " ")
	return strings.TrimSpace(plain)
}
