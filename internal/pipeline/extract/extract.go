package extract

import (
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/jaynikam2005/ai-resume-job-matcher/pkg/logger_i"
)

type DocType string

var (
	PDF   DocType = "PDF"
	DOCX  DocType = "DOCX"
	PLAIN DocType = "PLAIN"
)

var logger = logger_i.NewLogger("Text Extraction")

// Text converts raw document bytes into a newline-delimited string. Dispatch
// is purely by filename extension; anything that is not PDF or a Word-family
// format is decoded as UTF-8 with invalid bytes replaced. A malformed PDF or
// DOCX degrades to "" so the downstream stages produce an empty record and a
// low score instead of failing the request.
func Text(data []byte, filename string) string {
	switch docType(filename) {
	case PDF, DOCX:
		return extractViaTempFile(data, filename)
	default:
		return decodePlain(data)
	}
}

// File extracts from a document already on disk, same degradation contract.
func File(path string) string {
	switch docType(path) {
	case PDF:
		return extractPDF(path)
	case DOCX:
		return extractDocFamily(path)
	default:
		data, err := os.ReadFile(path)
		if err != nil {
			logger.Error("failed reading plain text file", "path", path, "error", err)
			return ""
		}
		return decodePlain(data)
	}
}

func docType(filename string) DocType {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return PDF
	case ".doc", ".docx", ".rtf", ".odt":
		return DOCX
	default:
		return PLAIN
	}
}

// The pdf and cat readers are file based, so byte input goes through a
// temporary file that is removed before returning.
func extractViaTempFile(data []byte, filename string) string {
	tmp, err := os.CreateTemp("", "resume-*"+strings.ToLower(filepath.Ext(filename)))
	if err != nil {
		logger.Error("failed creating temp file for extraction", "error", err)
		return ""
	}
	path := tmp.Name()
	defer os.Remove(path)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		logger.Error("failed writing temp file for extraction", "error", err)
		return ""
	}
	if err := tmp.Close(); err != nil {
		logger.Error("failed closing temp file for extraction", "error", err)
		return ""
	}

	return File(path)
}

// decodePlain replaces undecodable bytes rather than failing.
func decodePlain(data []byte) string {
	if utf8.Valid(data) {
		return string(data)
	}
	return strings.ToValidUTF8(string(data), string(utf8.RuneError))
}
