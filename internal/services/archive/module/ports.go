package module

import dom "draftforge/internal/services/archive/domain"

// Ports holds the ports exposed by the archive module
type Ports struct {
	Writer dom.WriterPort
}
