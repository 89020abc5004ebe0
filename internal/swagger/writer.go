package swagger

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
)

// Write re-emits doc on w in the requested formatting mode, followed by a
// newline. The document is never unmarshaled; content passes through
// verbatim.
func Write(w io.Writer, doc json.RawMessage, format Format) error {
	var buf bytes.Buffer
	var err error
	if format == FormatIndented {
		err = json.Indent(&buf, doc, "", "  ")
	} else {
		err = json.Compact(&buf, doc)
	}
	if err != nil {
		return fmt.Errorf("failed to serialize swagger document: %w", err)
	}
	buf.WriteByte('\n')
	if _, err := w.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("failed to write swagger document: %w", err)
	}
	return nil
}
