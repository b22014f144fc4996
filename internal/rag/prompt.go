package rag

import "strings"

const systemInstruction = "You are an assistant for question-answering tasks. " +
	"Use the following pieces of retrieved context to answer " +
	"the question. If you don't know the answer, say that you " +
	"don't know. Use three sentences maximum and keep the " +
	"answer concise."

// BuildPrompt stuffs the chunk contents into the system instruction, one
// blank line between chunks, and pairs it with the question.
func BuildPrompt(question string, chunks []DocChunk) Prompt {
	contents := make([]string, 0, len(chunks))
	for _, c := range chunks {
		contents = append(contents, c.Content)
	}

	var sys strings.Builder
	sys.WriteString(systemInstruction)
	sys.WriteString("\n\n")
	sys.WriteString(strings.Join(contents, "\n\n"))

	return Prompt{
		System:   sys.String(),
		Question: question,
	}
}
