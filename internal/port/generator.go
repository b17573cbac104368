package port

import "context"

// Part is one element of a multimodal generation request: either prompt text or
// inline PDF bytes (base64-encoded, as stored in the upload rows).
type Part struct {
	Text    string
	PDFData string
}

// TextPart builds a text part.
func TextPart(text string) Part {
	return Part{Text: text}
}

// PDFPart builds an inline PDF part from base64-encoded bytes.
func PDFPart(data string) Part {
	return Part{PDFData: data}
}

// Generator abstracts the generative-AI provider: parts in, text out. The API
// key is a per-call argument because the credential is resolved per run from the
// settings store with an environment fallback. Calls are fallible and may return
// non-JSON text even when JSON was requested; callers own the parsing.
type Generator interface {
	Generate(ctx context.Context, apiKey string, parts []Part) (string, error)
}
