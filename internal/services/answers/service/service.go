// Package service implements question answering over the QA document
package service

import (
	"context"
	"fmt"
	"strings"

	"draftforge/internal/adapters/openai"
	perr "draftforge/internal/platform/errors"
	"draftforge/internal/services/answers/domain"
	pagesdom "draftforge/internal/services/pages/domain"
)

// qaPrompt instructs the model to answer strictly from the document. The
// instruction stays in the document's language on purpose; answers quote
// the document verbatim
const qaPrompt = `아래 Notion 페이지 내용을 참고해서, 반드시 문서 내에서 근거를 찾아서 답변해.
문서에 없는 정보는 반드시 '문서 내에 해당 정보가 없습니다'라고 답해.
질문과 문서 내 표현이 다르더라도, 의미가 같으면 답변해.
예를 들어, '와이파이'와 'wifi'는 같은 의미다.
문서에 표, 리스트, 코드블록이 있으면 그 내용도 참고해서 답변해.

예시:
Q: 우리 와이파이 정보 알려줘
A: wifi: metsakuur_13F
password: 20200101
...

Notion Page Title: %s

Notion Page Content:
%s

Question: %s

Answer:`

// Completer is the subset of the model client the answerer consumes
type Completer interface {
	Complete(ctx context.Context, req openai.Request) (string, error)
}

// Service implements domain.AnswerPort
type Service interface {
	domain.AnswerPort
}

// Config controls the answerer
type Config struct {
	// QAPageID is the fixed document questions are answered from
	QAPageID string
}

// Svc answers questions from the QA document
type Svc struct {
	reader pagesdom.ReaderPort
	model  Completer
	cfg    Config
}

// New constructs the service
func New(reader pagesdom.ReaderPort, model Completer, cfg Config) *Svc {
	return &Svc{reader: reader, model: model, cfg: cfg}
}

// Answer reads the QA document and asks the model to answer strictly from it
func (s *Svc) Answer(ctx context.Context, question string) (string, error) {
	if s.cfg.QAPageID == "" {
		return "", perr.Unavailablef("qa page is not configured")
	}
	content, err := s.reader.GetContent(ctx, s.cfg.QAPageID)
	if err != nil {
		return "", err
	}

	reply, err := s.model.Complete(ctx, openai.Request{
		Messages: []openai.Message{
			{Role: "system", Content: "You are a helpful assistant."},
			{Role: "user", Content: fmt.Sprintf(qaPrompt, content.Title, content.BodyText, question)},
		},
		MaxTokens:   500,
		Temperature: 0.2,
	})
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(reply), nil
}
