package context

import (
	"strings"
	"testing"

	"ecommerce-rag-be/pkg/rag"
)

func TestAssemble(t *testing.T) {
	tests := []struct {
		name      string
		items     []rag.RetrievedItem
		wantBlock string
		wantOk    bool
	}{
		{
			name:      "no items",
			items:     nil,
			wantBlock: "",
			wantOk:    false,
		},
		{
			name:      "empty slice",
			items:     []rag.RetrievedItem{},
			wantBlock: "",
			wantOk:    false,
		},
		{
			name: "single item",
			items: []rag.RetrievedItem{
				{Summary: "Great coffee", Snippet: "Subject: Great coffee\nReview: Best beans ever"},
			},
			wantBlock: "Product: Great coffee\nReview: Subject: Great coffee\nReview: Best beans ever",
			wantOk:    true,
		},
		{
			name: "multiple items keep rank order",
			items: []rag.RetrievedItem{
				{Summary: "First", Snippet: "snippet one"},
				{Summary: "Second", Snippet: "snippet two"},
			},
			wantBlock: "Product: First\nReview: snippet one\n\nProduct: Second\nReview: snippet two",
			wantOk:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			block, ok := Assemble(tt.items)

			if ok != tt.wantOk {
				t.Errorf("ok = %v, want %v", ok, tt.wantOk)
			}
			if block != tt.wantBlock {
				t.Errorf("block = %q, want %q", block, tt.wantBlock)
			}
		})
	}
}

func TestAssembleBlockCount(t *testing.T) {
	items := []rag.RetrievedItem{
		{Summary: "a", Snippet: "x"},
		{Summary: "b", Snippet: "y"},
		{Summary: "c", Snippet: "z"},
	}

	block, ok := Assemble(items)
	if !ok {
		t.Fatal("expected ok for non-empty items")
	}

	blocks := strings.Split(block, "\n\n")
	if len(blocks) != len(items) {
		t.Errorf("block count = %d, want %d", len(blocks), len(items))
	}
}
