// Package fence extracts tagged fenced code blocks from model replies.
//
// A transformation reply must carry exactly two payloads: a ```json block
// holding the structured analysis object and a ```typescript block holding
// the generated source. Anything outside the fences is prose and ignored.
package fence

import (
	"encoding/json"
	"regexp"
	"strings"

	"draftforge/internal/platform/errors"
)

// Distinguished parse failures. Callers branch on these to decide whether
// a reply is salvageable or the whole transformation must be retried.
var (
	ErrMissingJSONBlock = errors.New(errors.ErrorCodeTransform, "reply has no ```json block")
	ErrMissingCodeBlock = errors.New(errors.ErrorCodeTransform, "reply has no ```typescript block")
)

// A newline after the tag is usual but not required; single-line fences
// like ```json{...}``` are accepted.
var (
	jsonFencePat = regexp.MustCompile("(?is)```json\\s*(.*?)\\s*```")
	codeFencePat = regexp.MustCompile("(?is)```(?:typescript|ts)\\s*(.*?)\\s*```")
	bareFencePat = regexp.MustCompile("(?s)```\\s*(.*?)\\s*```")
)

// Reply is the parsed payload of a model response.
type Reply struct {
	// Spec holds the decoded ```json block. Keys are the document's
	// original section headings, values are free-form.
	Spec map[string]any

	// SpecRaw is the exact text inside the ```json fence.
	SpecRaw string

	// Code is the text inside the ```typescript fence.
	Code string
}

// Parse splits a model reply into its JSON and code payloads.
//
// The first ```json fence is decoded into Spec; a missing fence or a body
// that is not a JSON object yields ErrMissingJSONBlock. The code payload is
// the first ```typescript (or ```ts) fence, falling back to the first
// untagged fence that is not the JSON one. Both payloads are required.
func Parse(reply string) (Reply, error) {
	var out Reply

	jloc := jsonFencePat.FindStringSubmatchIndex(reply)
	if jloc == nil {
		return out, ErrMissingJSONBlock
	}
	out.SpecRaw = strings.TrimSpace(reply[jloc[2]:jloc[3]])

	var spec map[string]any
	if err := json.Unmarshal([]byte(out.SpecRaw), &spec); err != nil {
		return out, errors.Wrap(err, errors.ErrorCodeTransform, "```json block is not a JSON object")
	}
	out.Spec = spec

	if cm := codeFencePat.FindStringSubmatch(reply); cm != nil {
		out.Code = strings.TrimSpace(cm[1])
		if out.Code == "" {
			return out, ErrMissingCodeBlock
		}
		return out, nil
	}

	// Untagged fallback: some replies fence the code without a language tag.
	// The JSON fence is cut out first so the remaining backticks pair up.
	rest := reply[:jloc[0]] + reply[jloc[1]:]
	for _, m := range bareFencePat.FindAllStringSubmatch(rest, -1) {
		body := strings.TrimSpace(m[1])
		if body == "" {
			continue
		}
		out.Code = body
		return out, nil
	}

	return out, ErrMissingCodeBlock
}
