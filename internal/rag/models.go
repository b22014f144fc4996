package rag

// RetrievalDepth is how many chunks are pulled from the index per question.
const RetrievalDepth = 3

// DocChunk
// A passage of the indexed corpus as returned by the vector index.
type DocChunk struct {
	ID      int64   `json:"id"`
	Content string  `json:"content"`
	Source  string  `json:"source"`
	Score   float64 `json:"score"`
}

// Prompt is the payload handed to the answer generator: the system
// instruction with the retrieved context stuffed in, plus the user question.
type Prompt struct {
	System   string
	Question string
}

// Text renders the prompt as a single completion string.
func (p Prompt) Text() string {
	return "System: " + p.System + "\nHuman: " + p.Question
}

// Answer is the outcome of one question. Generated is false when the model
// produced no answer text.
type Answer struct {
	Question  string
	Text      string
	Generated bool
	Sources   []DocChunk
}

// AskRequest
// Payload da API /ask.
type AskRequest struct {
	Question string `json:"question"`
}

// AskResponse is the success body of /ask.
type AskResponse struct {
	Answer string `json:"answer"`
}

// ErrorResponse is the body of every error-shaped /ask response.
type ErrorResponse struct {
	Error string `json:"error"`
}
