package module

import dom "draftforge/internal/services/pages/domain"

// Ports holds the ports exposed by the pages module
type Ports struct {
	Reader dom.ReaderPort
}
