package rag

import "fmt"

// InvalidQueryError means the request was rejected before any outbound
// call: empty query text or k outside the allowed range.
type InvalidQueryError struct {
	Reason string
}

func (e *InvalidQueryError) Error() string {
	return "invalid query: " + e.Reason
}

// RetrievalError wraps a failed vector index lookup (embedding call,
// unreachable database, malformed rows). Never retried.
type RetrievalError struct {
	Err error
}

func (e *RetrievalError) Error() string {
	return fmt.Sprintf("retrieval failed: %v", e.Err)
}

func (e *RetrievalError) Unwrap() error {
	return e.Err
}

// GenerationError wraps a failed or empty LLM completion. Retrieval may
// have succeeded; the request still fails as a whole.
type GenerationError struct {
	Err error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("generation failed: %v", e.Err)
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}
