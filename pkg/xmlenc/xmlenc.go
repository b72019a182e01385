// Package xmlenc renders values as indented XML under a caller-chosen root
// element.
package xmlenc

import (
	"bytes"
	"encoding/xml"
	"fmt"
)

func Pretty(root string, v any) (string, error) {
	var buf bytes.Buffer
	buf.WriteString(xml.Header)

	enc := xml.NewEncoder(&buf)
	enc.Indent("", "  ")
	if err := enc.EncodeElement(v, xml.StartElement{Name: xml.Name{Local: root}}); err != nil {
		return "", fmt.Errorf("encode %s: %w", root, err)
	}
	if err := enc.Close(); err != nil {
		return "", err
	}
	buf.WriteString("\n")
	return buf.String(), nil
}
