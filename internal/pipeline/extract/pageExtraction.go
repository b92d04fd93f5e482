package extract

import (
	"errors"
	"strings"
	"time"

	"github.com/dslipak/pdf"
	"github.com/lu4p/cat"
)

// extractPDF concatenates page text with newline separators, reading order
// only. Pages that fail to parse are skipped; a file that fails to open
// degrades to "".
func extractPDF(path string) string {
	f, err := pdf.Open(path)
	if err != nil {
		logger.Error("failed opening pdf file", "path", path, "error", err)
		return ""
	}

	var text strings.Builder
	numPages := f.NumPage()
	logger.Debug("extractPDF", "number of pages", numPages)
	for i := 1; i <= numPages; i++ {
		page := f.Page(i)
		if page.V.IsNull() {
			continue
		}

		content, err := protectExtract(page)
		if err != nil {
			// keep going with the remaining pages
			logger.Error("Error parsing page content", "page", i, "error", err)
			continue
		}

		text.WriteString(content)
		text.WriteString("\n")
	}
	return text.String()
}

// extractDocFamily reads a .doc/.docx/.rtf/.odt file; cat already joins
// paragraphs with newlines.
func extractDocFamily(path string) string {
	text, err := cat.File(path)
	if err != nil {
		logger.Error("Error extracting content from doc", "path", path, "error", err)
		return ""
	}
	return text
}

// protectExtract guards against the pdf library hanging on pathological
// files: one page gets at most ten seconds.
func protectExtract(page pdf.Page) (string, error) {
	type result struct {
		content string
		err     error
	}
	resChan := make(chan result, 1)

	go func() {
		content, err := page.GetPlainText(nil)
		resChan <- result{content, err}
	}()
	select {
	case r := <-resChan:
		return r.content, r.err
	case <-time.After(time.Second * 10):
		return "", errors.New("timeout")
	}
}
