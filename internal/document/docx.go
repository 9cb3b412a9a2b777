package document

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

const documentPart = "word/document.xml"

var errNotDOCX = errors.New("not a docx archive")

// extractDOCX reads paragraph text from word/document.xml, one paragraph per line,
// in document order. Table cell paragraphs appear where the table sits.
func extractDOCX(content []byte) (string, error) {
	reader, err := zip.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return "", errNotDOCX
	}

	for _, file := range reader.File {
		if file.Name != documentPart {
			continue
		}

		rc, err := file.Open()
		if err != nil {
			return "", fmt.Errorf("open %s: %w", documentPart, err)
		}
		data, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return "", fmt.Errorf("read %s: %w", documentPart, err)
		}

		return parseDocumentXML(data)
	}

	return "", fmt.Errorf("%w: %s missing", errNotDOCX, documentPart)
}

// parseDocumentXML walks the part token by token so that body paragraphs, table
// cells and hyperlink runs keep their relative order. Tabs and breaks only count
// inside runs; w:tab also appears in paragraph properties as a tab stop.
func parseDocumentXML(data []byte) (string, error) {
	decoder := xml.NewDecoder(bytes.NewReader(data))

	var (
		lines    []string
		line     strings.Builder
		runDepth int
		inText   bool
	)

	for {
		tok, err := decoder.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return "", fmt.Errorf("parse %s: %w", documentPart, err)
		}

		switch el := tok.(type) {
		case xml.StartElement:
			switch el.Name.Local {
			case "r":
				runDepth++
			case "t":
				inText = runDepth > 0
			case "tab":
				if runDepth > 0 {
					line.WriteByte('\t')
				}
			case "br", "cr":
				if runDepth > 0 {
					line.WriteByte('\n')
				}
			}
		case xml.EndElement:
			switch el.Name.Local {
			case "r":
				if runDepth > 0 {
					runDepth--
				}
			case "t":
				inText = false
			case "p":
				lines = append(lines, line.String())
				line.Reset()
			}
		case xml.CharData:
			if inText {
				line.Write(el)
			}
		}
	}

	if line.Len() > 0 {
		lines = append(lines, line.String())
	}

	return strings.Join(lines, "\n"), nil
}

// extractDOC handles legacy Word uploads. Many ".doc" files are really DOCX
// archives; anything else is read as text with binary noise dropped.
func extractDOC(content []byte) (string, error) {
	text, err := extractDOCX(content)
	if err == nil {
		return text, nil
	}
	if !errors.Is(err, errNotDOCX) {
		return "", err
	}

	return printableText(content), nil
}

func printableText(content []byte) string {
	s := toValidUTF8(content)
	return strings.Map(func(r rune) rune {
		switch {
		case r == '\n' || r == '\t':
			return r
		case r == '\r':
			return '\n'
		case r < 0x20 || r == 0x7f || r == utf8.RuneError:
			return ' '
		default:
			return r
		}
	}, s)
}
