package context

import (
	"fmt"
	"strings"

	"ecommerce-rag-be/pkg/rag"
)

// Assemble formats retrieved reviews into the context block fed to the
// LLM. Pure function: one "Product: .../Review: ..." block per item, in
// rank order, blank line between blocks.
//
// ok is false when items is empty; the caller must then skip generation
// entirely and answer with rag.DeclineMessage.
func Assemble(items []rag.RetrievedItem) (block string, ok bool) {
	if len(items) == 0 {
		return "", false
	}

	blocks := make([]string, len(items))
	for i, item := range items {
		blocks[i] = fmt.Sprintf("Product: %s\nReview: %s", item.Summary, item.Snippet)
	}
	return strings.Join(blocks, "\n\n"), true
}
