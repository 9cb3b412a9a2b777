// Package document turns uploaded résumé files (PDF, DOCX, DOC, plain text) into
// plain text for feature extraction.
package document

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/gabriel-vasile/mimetype"
)

// DefaultMaxBytes is the upload limit of the original web form.
const DefaultMaxBytes = 2 << 20

var (
	ErrUnsupportedFormat = errors.New("unsupported file type: upload a PDF, DOC, DOCX or TXT file")
	ErrTooLarge          = errors.New("file exceeds the upload size limit")
	ErrEmpty             = errors.New("file is empty")
)

// Format is a supported input format.
type Format string

const (
	FormatText Format = "txt"
	FormatDOCX Format = "docx"
	FormatDOC  Format = "doc"
	FormatPDF  Format = "pdf"
)

var mimeFormats = map[string]Format{
	"text/plain":         FormatText,
	"application/pdf":    FormatPDF,
	"application/msword": FormatDOC,
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": FormatDOCX,
}

var extFormats = map[string]Format{
	".txt":  FormatText,
	".text": FormatText,
	".pdf":  FormatPDF,
	".doc":  FormatDOC,
	".docx": FormatDOCX,
}

// Loader extracts text from document bytes.
type Loader struct {
	maxBytes int64
	pdf      *pdfExtractor
}

// Option configures a Loader.
type Option func(*Loader)

// WithMaxBytes overrides DefaultMaxBytes. Non-positive values disable the limit.
func WithMaxBytes(n int64) Option {
	return func(l *Loader) {
		l.maxBytes = n
	}
}

// WithCommandRunner replaces the runner used to call pdftotext.
func WithCommandRunner(runner CommandRunner) Option {
	return func(l *Loader) {
		l.pdf.runner = runner
	}
}

func NewLoader(opts ...Option) *Loader {
	l := &Loader{
		maxBytes: DefaultMaxBytes,
		pdf:      newPDFExtractor(execRunner{}),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// MaxBytes returns the configured size limit.
func (l *Loader) MaxBytes() int64 {
	return l.maxBytes
}

// Load returns the text content of a document. The format is resolved from the
// declared MIME type, then the file extension, then the content itself.
func (l *Loader) Load(ctx context.Context, content []byte, filename, declaredMIME string) (string, error) {
	if l.maxBytes > 0 && int64(len(content)) > l.maxBytes {
		return "", fmt.Errorf("%w (%d > %d bytes)", ErrTooLarge, len(content), l.maxBytes)
	}
	if len(content) == 0 {
		return "", ErrEmpty
	}

	format, err := ResolveFormat(content, filename, declaredMIME)
	if err != nil {
		return "", err
	}

	var text string
	switch format {
	case FormatText:
		text = toValidUTF8(content)
	case FormatDOCX:
		text, err = extractDOCX(content)
	case FormatDOC:
		text, err = extractDOC(content)
	case FormatPDF:
		text, err = l.pdf.extract(ctx, content)
	}
	if err != nil {
		return "", fmt.Errorf("extract %s text from %q: %w", format, filename, err)
	}

	return strings.TrimSpace(text), nil
}

// ResolveFormat decides how content should be read.
func ResolveFormat(content []byte, filename, declaredMIME string) (Format, error) {
	if mediaType := baseMediaType(declaredMIME); mediaType != "" {
		if format, ok := mimeFormats[mediaType]; ok {
			return format, nil
		}
	}

	if format, ok := extFormats[strings.ToLower(filepath.Ext(filename))]; ok {
		return format, nil
	}

	detected := mimetype.Detect(content)
	for m := detected; m != nil; m = m.Parent() {
		if format, ok := mimeFormats[baseMediaType(m.String())]; ok {
			return format, nil
		}
	}

	return "", fmt.Errorf("%w (detected %s)", ErrUnsupportedFormat, detected.String())
}

func baseMediaType(v string) string {
	if idx := strings.IndexByte(v, ';'); idx >= 0 {
		v = v[:idx]
	}
	return strings.ToLower(strings.TrimSpace(v))
}

func toValidUTF8(b []byte) string {
	s := string(b)
	s = strings.TrimPrefix(s, "\ufeff")
	if utf8.ValidString(s) {
		return s
	}
	return strings.ToValidUTF8(s, "")
}
