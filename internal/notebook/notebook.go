// Package notebook implements the Jupyter nbformat 4 data model: parsing,
// serialization, and cell-level manipulation of .ipynb documents.
package notebook

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for notebook operations.
var (
	ErrEmptyInput   = errors.New("notebook input is empty")
	ErrInvalidJSON  = errors.New("notebook is not valid JSON")
	ErrMissingField = errors.New("notebook missing required field")
)

// Cell type constants from the nbformat spec.
const (
	CellTypeMarkdown = "markdown"
	CellTypeCode     = "code"
	CellTypeRaw      = "raw"
)

// Output type constants from the nbformat spec.
const (
	OutputTypeStream        = "stream"
	OutputTypeDisplayData   = "display_data"
	OutputTypeExecuteResult = "execute_result"
	OutputTypeError         = "error"
)

// MultilineString decodes nbformat fields that may be either a single JSON
// string or an array of line strings. It always marshals back as an array of
// lines to match what Jupyter itself writes.
type MultilineString string

// UnmarshalJSON accepts both the string and []string encodings.
func (m *MultilineString) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*m = MultilineString(s)
		return nil
	}

	var lines []string
	if err := json.Unmarshal(data, &lines); err != nil {
		return fmt.Errorf("decoding multiline string: %w", err)
	}
	*m = MultilineString(strings.Join(lines, ""))
	return nil
}

// MarshalJSON writes the string split into lines, each keeping its trailing
// newline, matching Jupyter's canonical encoding.
func (m MultilineString) MarshalJSON() ([]byte, error) {
	return json.Marshal(splitLines(string(m)))
}

// String returns the joined content.
func (m MultilineString) String() string {
	return string(m)
}

// splitLines splits s after each newline, keeping the newline attached.
func splitLines(s string) []string {
	if s == "" {
		return []string{}
	}
	var lines []string
	for {
		i := strings.IndexByte(s, '\n')
		if i < 0 {
			lines = append(lines, s)
			break
		}
		lines = append(lines, s[:i+1])
		s = s[i+1:]
		if s == "" {
			break
		}
	}
	return lines
}

// MIMEBundle maps MIME types to output payloads. Values are either
// MultilineString content (text and base64 image data) or arbitrary JSON
// (application/json outputs), so they are kept as raw messages.
type MIMEBundle map[string]json.RawMessage

// Text decodes the payload for the given MIME type as multiline text.
// Returns "" and false if the type is absent or not text-shaped.
func (b MIMEBundle) Text(mimeType string) (string, bool) {
	raw, ok := b[mimeType]
	if !ok {
		return "", false
	}
	var m MultilineString
	if err := json.Unmarshal(raw, &m); err != nil {
		return "", false
	}
	return string(m), true
}

// Output is a single execution output of a code cell.
type Output struct {
	OutputType     string          `json:"output_type"`
	Name           string          `json:"name,omitempty"`            // stream: "stdout" or "stderr"
	Text           MultilineString `json:"text,omitempty"`            // stream
	Data           MIMEBundle      `json:"data,omitempty"`            // display_data, execute_result
	Metadata       json.RawMessage `json:"metadata,omitempty"`        // display_data, execute_result
	ExecutionCount *int            `json:"execution_count,omitempty"` // execute_result
	EName          string          `json:"ename,omitempty"`           // error
	EValue         string          `json:"evalue,omitempty"`          // error
	Traceback      []string        `json:"traceback,omitempty"`       // error
}

// Cell is a single notebook cell.
type Cell struct {
	CellType       string          `json:"cell_type"`
	Source         MultilineString `json:"source"`
	Metadata       json.RawMessage `json:"metadata,omitempty"`
	Outputs        []Output        `json:"outputs,omitempty"`
	ExecutionCount *int            `json:"execution_count,omitempty"`
	Attachments    json.RawMessage `json:"attachments,omitempty"`
}

// KernelSpec identifies the kernel the notebook was written for.
type KernelSpec struct {
	Name        string `json:"name,omitempty"`
	DisplayName string `json:"display_name,omitempty"`
	Language    string `json:"language,omitempty"`
}

// LanguageInfo describes the notebook's programming language.
type LanguageInfo struct {
	Name          string `json:"name,omitempty"`
	Version       string `json:"version,omitempty"`
	FileExtension string `json:"file_extension,omitempty"`
}

// Metadata holds notebook-level metadata. Unknown keys are preserved in
// Extra so Split round-trips documents without losing information.
type Metadata struct {
	KernelSpec   *KernelSpec   `json:"kernelspec,omitempty"`
	LanguageInfo *LanguageInfo `json:"language_info,omitempty"`
	Title        string        `json:"title,omitempty"`
}

// Notebook is a parsed .ipynb document.
type Notebook struct {
	Cells         []Cell          `json:"cells"`
	Metadata      Metadata        `json:"metadata"`
	NBFormat      int             `json:"nbformat"`
	NBFormatMinor int             `json:"nbformat_minor"`
	rawMetadata   json.RawMessage // original metadata, preserved on marshal
}

// Language returns the notebook's language name, preferring language_info
// over kernelspec, defaulting to "python".
func (nb *Notebook) Language() string {
	if nb.Metadata.LanguageInfo != nil && nb.Metadata.LanguageInfo.Name != "" {
		return nb.Metadata.LanguageInfo.Name
	}
	if nb.Metadata.KernelSpec != nil && nb.Metadata.KernelSpec.Language != "" {
		return nb.Metadata.KernelSpec.Language
	}
	return "python"
}

// requiredFields are the top-level keys a valid nbformat document carries.
var requiredFields = []string{"cells", "nbformat", "nbformat_minor"}

// Parse decodes and validates an .ipynb document.
func Parse(data []byte) (*Notebook, error) {
	if len(data) == 0 {
		return nil, ErrEmptyInput
	}

	// Structural validation first: required keys must be present even when
	// their values are zero (e.g. an empty cells array is fine).
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidJSON, err)
	}
	for _, field := range requiredFields {
		if _, ok := raw[field]; !ok {
			return nil, fmt.Errorf("%w: %q", ErrMissingField, field)
		}
	}

	var nb Notebook
	if err := json.Unmarshal(data, &nb); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidJSON, err)
	}
	nb.rawMetadata = raw["metadata"]

	return &nb, nil
}

// Marshal serializes the notebook back to indented JSON. The original
// notebook-level metadata block is written through untouched when present.
func Marshal(nb *Notebook) ([]byte, error) {
	type wire struct {
		Cells         []Cell          `json:"cells"`
		Metadata      json.RawMessage `json:"metadata"`
		NBFormat      int             `json:"nbformat"`
		NBFormatMinor int             `json:"nbformat_minor"`
	}

	meta := nb.rawMetadata
	if meta == nil {
		var err error
		meta, err = json.Marshal(nb.Metadata)
		if err != nil {
			return nil, fmt.Errorf("encoding metadata: %w", err)
		}
	}

	cells := nb.Cells
	if cells == nil {
		cells = []Cell{}
	}

	out, err := json.MarshalIndent(wire{
		Cells:         cells,
		Metadata:      meta,
		NBFormat:      nb.NBFormat,
		NBFormatMinor: nb.NBFormatMinor,
	}, "", " ")
	if err != nil {
		return nil, fmt.Errorf("encoding notebook: %w", err)
	}
	return out, nil
}
