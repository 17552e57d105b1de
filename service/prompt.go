package service

import "fmt"

// DefaultMaxContextChars bounds how much document text is embedded in a
// prompt, keeping token usage flat regardless of document size.
const DefaultMaxContextChars = 3000

// NoDocumentMessage is returned in place of a generated answer when no
// document has been uploaded yet. The completion provider is never called in
// that case.
const NoDocumentMessage = "No PDF content available. Please upload a PDF first."

const truncationMarker = "..."

const promptTemplate = `Based on the following PDF content, please answer the user's question accurately:

PDF Content:
%s

User Question: %s

Please provide a helpful and concise answer based only on the information available in the PDF content. If the answer cannot be found in the PDF, please state that clearly.`

// PromptComposer builds completion prompts from the stored document text and
// a user question. Truncation is a plain prefix cut, no chunking or ranking.
type PromptComposer struct {
	maxContextChars int
}

func NewPromptComposer(maxContextChars int) *PromptComposer {
	if maxContextChars <= 0 {
		maxContextChars = DefaultMaxContextChars
	}
	return &PromptComposer{maxContextChars: maxContextChars}
}

// Compose embeds the (possibly truncated) document text and the verbatim
// question into the fixed prompt template. The caller guarantees a non-empty
// question; empty-context handling lives in the answer service.
func (c *PromptComposer) Compose(question, context string) string {
	if len(context) > c.maxContextChars {
		context = context[:c.maxContextChars] + truncationMarker
	}
	return fmt.Sprintf(promptTemplate, context, question)
}
