package module

import dom "draftforge/internal/services/draft/domain"

// Ports holds the ports exposed by the draft module
type Ports struct {
	Transformer dom.TransformPort
}
