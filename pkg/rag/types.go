package rag

// Query is a single retrieval request. Built per incoming HTTP request and
// discarded afterwards; the pipeline never mutates it.
type Query struct {
	Text string
	K    int
}

// RetrievedItem is one normalized hit from the vector index.
// Rating is the review's 1-5 star score from the corpus metadata, NOT a
// relevance measure; Similarity carries the actual cosine similarity.
type RetrievedItem struct {
	ProductID  string
	Rating     int
	Summary    string
	Snippet    string
	UserID     string
	Similarity float64
}

// RetrievalResult bundles the query with its ranked hits.
// Items preserves the index ordering (closest first) and is empty, never
// nil, when the index has nothing for the query.
type RetrievalResult struct {
	Query string
	Items []RetrievedItem
}

// GroundedAnswer is the chat pipeline output. Context is exactly the item
// set that fed generation; when it is empty the Answer is DeclineMessage
// and the LLM was never called.
type GroundedAnswer struct {
	Query   string
	Answer  string
	Context []RetrievedItem
}

// DeclineMessage is returned verbatim when retrieval comes back empty.
const DeclineMessage = "I couldn't find any relevant products in the database."
