package module

import dom "draftforge/internal/services/answers/domain"

// Ports holds the ports exposed by the answers module
type Ports struct {
	Answerer dom.AnswerPort
}
