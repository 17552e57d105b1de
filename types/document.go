package types

// PDFData is the result of extracting a PDF: its plain text and page count.
type PDFData struct {
	Text     string
	NumPages int
}

// DocumentContext holds the extracted text of the currently active document.
// There is at most one live instance, owned by the context store; a new
// upload replaces it whole.
type DocumentContext struct {
	Text      string
	PageCount int
}
