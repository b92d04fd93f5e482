package extract

import (
	"strings"
	"testing"
)

func TestText_PlainPassthrough(t *testing.T) {
	content := "Jane Doe\njane@example.com\n"
	if got := Text([]byte(content), "resume.txt"); got != content {
		t.Errorf("plain text altered: %q", got)
	}
}

func TestText_UnknownExtensionTreatedAsPlain(t *testing.T) {
	content := "some resume body"
	if got := Text([]byte(content), "resume.xyz"); got != content {
		t.Errorf("unknown extension altered content: %q", got)
	}
}

func TestText_InvalidUTF8Replaced(t *testing.T) {
	got := Text([]byte{0x48, 0x69, 0xff, 0xfe}, "resume.txt")
	if !strings.HasPrefix(got, "Hi") {
		t.Errorf("valid prefix lost: %q", got)
	}
	if strings.ContainsRune(got, 0xff) {
		t.Errorf("invalid byte survived: %q", got)
	}
}

func TestText_MalformedPDFDegradesToEmpty(t *testing.T) {
	if got := Text([]byte("not a pdf"), "resume.pdf"); got != "" {
		t.Errorf("malformed pdf should degrade to empty, got %q", got)
	}
}

func TestText_MalformedDocxDegradesToEmpty(t *testing.T) {
	if got := Text([]byte("not a zip archive"), "resume.docx"); got != "" {
		t.Errorf("malformed docx should degrade to empty, got %q", got)
	}
}

func TestDocType_Dispatch(t *testing.T) {
	tests := []struct {
		filename string
		want     DocType
	}{
		{"a.pdf", PDF},
		{"a.PDF", PDF},
		{"a.docx", DOCX},
		{"a.doc", DOCX},
		{"a.rtf", DOCX},
		{"a.odt", DOCX},
		{"a.txt", PLAIN},
		{"noextension", PLAIN},
	}

	for _, tt := range tests {
		if got := docType(tt.filename); got != tt.want {
			t.Errorf("%s got %v, want %v", tt.filename, got, tt.want)
		}
	}
}
