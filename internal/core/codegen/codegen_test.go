package codegen_test

import (
	"strings"
	"testing"

	"draftforge/internal/core/codegen"
)

func buttonSpec() codegen.Spec {
	return codegen.Spec{
		Overview: "테스트 실행 버튼 만들기",
		Detail:   "페이지 가운데에 테스트 실행 버튼을 생성",
		Flow:     []string{"1. 버튼을 클릭한다", "2. 버튼의 색상과 텍스트가 toggle 된다"},
		Inputs:   []codegen.Field{{Key: "버튼", Type: "boolean", Desc: "버튼의 초기 상태"}},
	}
}

func TestSynthesizeDeterministic(t *testing.T) {
	t.Parallel()

	spec := buttonSpec()
	first := codegen.Synthesize(spec)
	second := codegen.Synthesize(spec)
	if first != second {
		t.Fatalf("synthesis must be a pure function of the spec")
	}
}

func TestSynthesizeButtonTriad(t *testing.T) {
	t.Parallel()

	code := codegen.Synthesize(buttonSpec())

	// exactly one state variable, falsy for its boolean type
	if got := strings.Count(code, "let "); got != 1 {
		t.Fatalf("expected exactly one state variable got %d\n%s", got, code)
	}
	if !strings.Contains(code, "let button = false;") {
		t.Fatalf("boolean input must default to false\n%s", code)
	}

	// one creation/click/center triad
	for _, fn := range []string{"function createButton()", "function handleClick(", "function centerButton("} {
		if strings.Count(code, fn) != 1 {
			t.Fatalf("expected exactly one %q\n%s", fn, code)
		}
	}

	// the entry point wires the triad in creation, click, placement order
	// and then runs unconditionally
	init := code[strings.Index(code, "function init()"):]
	create := strings.Index(init, "createButton()")
	click := strings.Index(init, "addEventListener(\"click\"")
	center := strings.Index(init, "centerButton(")
	if create < 0 || click < 0 || center < 0 || !(create < click && click < center) {
		t.Fatalf("entry point out of order (create=%d click=%d center=%d)\n%s", create, click, center, init)
	}
	if !strings.HasSuffix(strings.TrimSpace(code), "init();") {
		t.Fatalf("entry point must be invoked last\n%s", code)
	}
}

func TestSynthesizeCollisionSuffix(t *testing.T) {
	t.Parallel()

	spec := codegen.Spec{
		Overview: "버튼",
		Inputs: []codegen.Field{
			{Key: "버튼", Type: "boolean"},
			{Key: "버튼", Type: "boolean"},
		},
	}
	code := codegen.Synthesize(spec)

	if !strings.Contains(code, "let button = false;") || !strings.Contains(code, "let button1 = false;") {
		t.Fatalf("colliding keys must differ only by a numeric suffix\n%s", code)
	}
	if strings.Count(code, "function createButton") != 2 {
		t.Fatalf("each button-like input gets its own triad\n%s", code)
	}
}

func TestSynthesizePositionalFallback(t *testing.T) {
	t.Parallel()

	spec := codegen.Spec{
		Overview: "잔액 조회",
		Inputs:   []codegen.Field{{Key: "잔액", Type: "string"}},
		Outputs:  []codegen.Field{{Key: "잔액표시", Type: "string"}},
	}
	code := codegen.Synthesize(spec)

	// untranslatable keys fall back to positional names; outputs share the
	// input namespace so no suffixing is needed here
	if !strings.Contains(code, "let input1 = '';") {
		t.Fatalf("untranslatable input must become input1\n%s", code)
	}
	if !strings.Contains(code, "output1(string)") {
		t.Fatalf("untranslatable output must become output1 in the header\n%s", code)
	}
}

func TestSynthesizeDocHeaderVerbatim(t *testing.T) {
	t.Parallel()

	spec := buttonSpec()
	code := codegen.Synthesize(spec)

	if !strings.Contains(code, "* 개요: 테스트 실행 버튼 만들기") {
		t.Fatalf("overview must be transcribed verbatim\n%s", code)
	}
	if !strings.Contains(code, "1. 버튼을 클릭한다 → 2. 버튼의 색상과 텍스트가 toggle 된다") {
		t.Fatalf("flow steps must be joined in order\n%s", code)
	}
}

func TestSpecFromMap(t *testing.T) {
	t.Parallel()

	m := map[string]any{
		"개요":      "테스트 실행 버튼 만들기",
		"기능 상세설명": "상세",
		"기능 Flow": []any{"1. 클릭", "2. 토글"},
		"예상 input": []any{
			map[string]any{"key": "버튼", "type": "boolean", "desc": "초기 상태"},
			"not an object",
		},
		"예상 output": []any{
			map[string]any{"key": "결과", "type": "string"},
		},
		"ignored": 42,
	}
	spec := codegen.SpecFromMap(m)

	if spec.Overview != "테스트 실행 버튼 만들기" || spec.Detail != "상세" {
		t.Fatalf("text fields not adapted: %#v", spec)
	}
	if len(spec.Flow) != 2 || spec.Flow[1] != "2. 토글" {
		t.Fatalf("flow not adapted: %#v", spec.Flow)
	}
	if len(spec.Inputs) != 1 || spec.Inputs[0].Key != "버튼" {
		t.Fatalf("malformed input entries must be skipped: %#v", spec.Inputs)
	}
	if len(spec.Outputs) != 1 || spec.Outputs[0].Type != "string" {
		t.Fatalf("outputs not adapted: %#v", spec.Outputs)
	}
}
