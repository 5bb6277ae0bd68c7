// Package codegen deterministically renders a draft JavaScript program from a
// specification object, without any model call. Same spec in, same text out.
package codegen

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/dop251/goja"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	pstrings "draftforge/internal/platform/strings"
)

// Field is one declared input or output of the specified feature.
type Field struct {
	Key  string `json:"key"`
	Type string `json:"type"`
	Desc string `json:"desc"`
}

// Spec is the structured feature description the synthesizer consumes.
// Field values stay in the document's original language; only identifiers
// derived from them are translated.
type Spec struct {
	Name     string  // 기능명
	Overview string  // 개요
	Detail   string  // 기능 상세설명
	Flow     []string // 기능 Flow
	Inputs   []Field // 예상 input
	Outputs  []Field // 예상 output
}

// Section labels of the specification object, matched by exact string.
const (
	keyName     = "기능명"
	keyOverview = "개요"
	keyDetail   = "기능 상세설명"
	keyFlow     = "기능 Flow"
	keyInputs   = "예상 input"
	keyOutputs  = "예상 output"
)

// SpecFromMap adapts a decoded JSON object to a Spec. Unknown keys are
// ignored; malformed field entries are skipped rather than failing the call.
func SpecFromMap(m map[string]any) Spec {
	var s Spec
	if v, ok := m[keyName].(string); ok {
		s.Name = v
	}
	if v, ok := m[keyOverview].(string); ok {
		s.Overview = v
	}
	if v, ok := m[keyDetail].(string); ok {
		s.Detail = v
	}
	switch v := m[keyFlow].(type) {
	case []any:
		for _, step := range v {
			if t, ok := step.(string); ok {
				s.Flow = append(s.Flow, t)
			}
		}
	case string:
		s.Flow = []string{v}
	}
	s.Inputs = fieldsFrom(m[keyInputs])
	s.Outputs = fieldsFrom(m[keyOutputs])
	return s
}

func fieldsFrom(v any) []Field {
	items, ok := v.([]any)
	if !ok {
		return nil
	}
	out := make([]Field, 0, len(items))
	for _, it := range items {
		obj, ok := it.(map[string]any)
		if !ok {
			continue
		}
		var f Field
		f.Key, _ = obj["key"].(string)
		f.Type, _ = obj["type"].(string)
		f.Desc, _ = obj["desc"].(string)
		out = append(out, f)
	}
	return out
}

// keywordPair is one bilingual substitution. Substitution is ordered and
// repeated-longest-first is NOT applied: an earlier shorter keyword can eat
// the prefix of a later longer one, which then falls through to the
// positional fallback. The table order is part of the deterministic contract.
type keywordPair struct {
	ko, en string
}

var keywordTable = []keywordPair{
	{"버튼", "button"},
	{"클릭", "click"},
	{"여부", "state"},
	{"색상", "color"},
	{"텍스트", "text"},
	{"실행", "run"},
	{"실행중", "running"},
	{"테스트", "test"},
	{"페이지", "page"},
	{"중앙", "center"},
	{"생성", "create"},
	{"이벤트", "event"},
	{"핸들링", "handle"},
	{"함수", "function"},
	{"결과", "result"},
	{"상태", "state"},
	{"출력", "output"},
	{"입력", "input"},
}

var (
	hangulPat  = regexp.MustCompile(`[가-힣]`)
	nonWordPat = regexp.MustCompile(`[^a-zA-Z0-9가-힣_\s]`)
	titleCaser = cases.Title(language.English, cases.NoLower)
)

// englishName translates s through the keyword table and camel-cases the
// result. Any Hangul surviving the table means the label is outside the
// table's coverage; the whole derivation is discarded for fallback.
func englishName(s, fallback string) string {
	out := s
	for _, p := range keywordTable {
		out = strings.ReplaceAll(out, p.ko, p.en)
	}
	if hangulPat.MatchString(out) {
		return fallback
	}
	return camelCase(out)
}

func camelCase(s string) string {
	words := strings.Fields(nonWordPat.ReplaceAllString(s, " "))
	var b strings.Builder
	for i, w := range words {
		if i == 0 {
			b.WriteString(lowerFirst(w))
			continue
		}
		b.WriteString(titleCaser.String(w))
	}
	return b.String()
}

func lowerFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToLower(r)) + s[size:]
}

// nameSet hands out unique identifiers by appending a numeric suffix to a
// taken base. Variable and function namespaces are tracked separately.
type nameSet map[string]struct{}

func (ns nameSet) claim(base string) string {
	name := base
	for i := 1; ; i++ {
		if _, taken := ns[name]; !taken {
			ns[name] = struct{}{}
			return name
		}
		name = fmt.Sprintf("%s%d", base, i)
	}
}

// fallbackProgram is emitted when the rendered draft fails the syntax check.
const fallbackProgram = `// 에러 발생으로 인해 기본 코드 반환
function init() {
  console.log("기본 코드 실행");
}

init();`

// Synthesize renders draft JavaScript for spec. It never fails: if the
// rendered text does not compile, the fixed fallback program is returned.
func Synthesize(spec Spec) string {
	vars := nameSet{}
	funcs := nameSet{}

	inputs := renameFields(spec.Inputs, "input", vars)
	outputs := renameFields(spec.Outputs, "output", vars)

	// The derived feature name participates in helper-name uniqueness even
	// though the emitted entry point is always init.
	funcs.claim(featureName(spec))

	var b strings.Builder
	b.WriteString(docHeader(spec, inputs, outputs))
	b.WriteString("\n")
	b.WriteString(stateVars(inputs))
	b.WriteString("\n\n")

	buttons := buttonInputs(inputs)
	triads := make([]triad, len(buttons))
	for i, in := range buttons {
		triads[i] = triad{
			field:    in,
			elemVar:  fmt.Sprintf("button%d", i+1),
			create:   funcs.claim("createButton"),
			setStyle: funcs.claim("setButtonStyle"),
		}
	}
	for i := range triads {
		b.WriteString(triads[i].creation())
	}
	b.WriteString("\n")
	for i := range triads {
		triads[i].handle = funcs.claim("handleClick")
		b.WriteString(triads[i].handler())
	}
	b.WriteString("\n")
	for i := range triads {
		triads[i].center = funcs.claim("centerButton")
		b.WriteString(triads[i].placement())
	}
	b.WriteString("\n")
	b.WriteString(entryPoint(triads))

	code := b.String()
	if _, err := goja.Compile("draft.js", code, false); err != nil {
		return fallbackProgram
	}
	return code
}

func renameFields(fields []Field, positional string, used nameSet) []Field {
	out := make([]Field, len(fields))
	for i, f := range fields {
		name := englishName(f.Key, fmt.Sprintf("%s%d", positional, i+1))
		f.Key = used.claim(name)
		out[i] = f
	}
	return out
}

// featureName derives the top-level name from the explicit name field, then
// the first word of the overview, then the first word of the detail text.
func featureName(spec Spec) string {
	const dflt = "mainFeature"
	switch {
	case spec.Name != "":
		return englishName(spec.Name, dflt)
	case spec.Overview != "":
		return englishName(pstrings.FirstWord(spec.Overview), dflt)
	case spec.Detail != "":
		return englishName(pstrings.FirstWord(spec.Detail), dflt)
	}
	return dflt
}

// docHeader transcribes the spec's readable fields verbatim. Original
// language text is allowed here; only identifiers were translated.
func docHeader(spec Spec, inputs, outputs []Field) string {
	var b strings.Builder
	b.WriteString("/**\n")
	if spec.Overview != "" {
		fmt.Fprintf(&b, " * %s: %s\n", keyOverview, spec.Overview)
	}
	if spec.Detail != "" {
		fmt.Fprintf(&b, " * %s: %s\n", keyDetail, spec.Detail)
	}
	if len(spec.Flow) > 0 {
		fmt.Fprintf(&b, " * %s: %s\n", keyFlow, strings.Join(spec.Flow, " → "))
	}
	if len(inputs) > 0 {
		fmt.Fprintf(&b, " * %s: %s\n", keyInputs, fieldSummary(inputs))
	}
	if len(outputs) > 0 {
		fmt.Fprintf(&b, " * %s: %s\n", keyOutputs, fieldSummary(outputs))
	}
	b.WriteString(" */\n")
	return b.String()
}

func fieldSummary(fields []Field) string {
	parts := make([]string, len(fields))
	for i, f := range fields {
		parts[i] = fmt.Sprintf("%s(%s): %s", f.Key, f.Type, f.Desc)
	}
	return strings.Join(parts, ", ")
}

// stateVars declares one mutable variable per input, initialized to the
// falsy value of its declared type.
func stateVars(inputs []Field) string {
	lines := make([]string, len(inputs))
	for i, f := range inputs {
		zero := "''"
		if f.Type == "boolean" {
			zero = "false"
		}
		lines[i] = fmt.Sprintf("let %s = %s;", f.Key, zero)
	}
	return strings.Join(lines, "\n")
}

func buttonInputs(inputs []Field) []Field {
	var out []Field
	for _, f := range inputs {
		if strings.Contains(strings.ToLower(f.Key), "button") {
			out = append(out, f)
		}
	}
	return out
}

// triad holds the helper names for one button-like input.
type triad struct {
	field    Field
	elemVar  string
	create   string
	setStyle string
	handle   string
	center   string
}

func (t *triad) creation() string {
	return fmt.Sprintf(`
// %[1]s 생성 함수
function %[2]s() {
  const %[3]s = document.createElement("button");
  %[4]s(%[3]s);
  %[3]s.textContent = "테스트 실행";
  return %[3]s;
}

// %[1]s 스타일 설정 함수
function %[4]s(%[3]s) {
  %[3]s.style.backgroundColor = "red";
  %[3]s.style.color = "white";
  %[3]s.style.fontSize = "1.5rem";
  %[3]s.style.padding = "1rem 2rem";
  %[3]s.style.border = "none";
  %[3]s.style.borderRadius = "8px";
  %[3]s.style.cursor = "pointer";
}`, t.field.Key, t.create, t.elemVar, t.setStyle)
}

func (t *triad) handler() string {
	return fmt.Sprintf(`
// %[1]s 클릭 이벤트 핸들링 함수
function %[2]s(%[3]s) {
  %[1]s = true;
  %[3]s.style.backgroundColor = "green";
  %[3]s.textContent = "실행중";
  %[3]s.disabled = true;
}`, t.field.Key, t.handle, t.elemVar)
}

func (t *triad) placement() string {
	return fmt.Sprintf(`
// %[1]s를 페이지 중앙에 배치하는 함수
function %[2]s(%[3]s) {
  const container = document.createElement("div");
  container.style.display = "flex";
  container.style.justifyContent = "center";
  container.style.alignItems = "center";
  container.style.height = "100vh";
  container.appendChild(%[3]s);
  document.body.appendChild(container);
}`, t.field.Key, t.center, t.elemVar)
}

// entryPoint wires every triad in creation order and invokes itself once.
func entryPoint(triads []triad) string {
	var body strings.Builder
	for i, t := range triads {
		if i > 0 {
			body.WriteString("\n  ")
		}
		fmt.Fprintf(&body,
			"const %[1]s = %[2]s();\n  %[1]s.addEventListener(\"click\", () => %[3]s(%[1]s));\n  %[4]s(%[1]s);",
			t.elemVar, t.create, t.handle, t.center)
	}
	return fmt.Sprintf(`
// 메인 함수
function init() {
  %s
}

// 초기화
init();`, body.String())
}
