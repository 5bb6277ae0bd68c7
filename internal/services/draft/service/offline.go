package service

import (
	"encoding/json"

	"draftforge/internal/core/codegen"
	perr "draftforge/internal/platform/errors"
	"draftforge/internal/services/draft/domain"
)

// synthesize is the offline path: the document body must itself be the
// specification object, and the code is rendered locally without a model.
// Synthesis never fails on its own output; a failed syntax check inside
// codegen substitutes the fixed fallback program
func (s *Svc) synthesize(bodyText string) (domain.Artifact, error) {
	var spec map[string]any
	if err := json.Unmarshal([]byte(bodyText), &spec); err != nil {
		return domain.Artifact{}, perr.Wrap(err, perr.ErrorCodeTransform, "offline body is not a specification object")
	}
	code := codegen.Synthesize(codegen.SpecFromMap(spec))
	return domain.Artifact{Spec: spec, SpecRaw: bodyText, Code: code}, nil
}
