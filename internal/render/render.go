// Package render converts a parsed notebook into a standalone HTML5
// document: markdown cells through Goldmark, code cells through Chroma,
// and execution outputs by MIME type.
package render

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html"
	"strings"

	"github.com/alecthomas/chroma/v2"
	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	goldmarkhtml "github.com/yuin/goldmark/renderer/html"

	"github.com/nbkit/ipynb2pdf/internal/notebook"
)

// ErrRender indicates cell rendering failed.
var ErrRender = errors.New("cell rendering failed")

// chromaStyleName is the Chroma color scheme used for code cells.
const chromaStyleName = "github"

// mimePriority orders MIME types for rich outputs: the first type present
// in a bundle wins, matching the classic notebook export.
var mimePriority = []string{
	"text/html",
	"image/svg+xml",
	"image/png",
	"image/jpeg",
	"image/gif",
	"text/latex",
	"text/plain",
}

// htmlShell wraps the rendered cells in a complete HTML5 document.
// The empty <style> block is the injection point for stylesheets.
const htmlShell = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>%s</title>
<style>
%s</style>
</head>
<body>
<div class="container">
%s</div>
</body>
</html>`

// Renderer converts notebooks to HTML documents.
type Renderer struct {
	md          goldmark.Markdown
	formatter   *chromahtml.Formatter
	chromaStyle *chroma.Style
}

// New creates a Renderer with GFM markdown extensions and class-based
// syntax highlighting.
func New() *Renderer {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM, // Tables, strikethrough, autolinks, task lists
			extension.Footnote,
			highlighting.NewHighlighting(
				highlighting.WithStyle(chromaStyleName),
				highlighting.WithFormatOptions(
					chromahtml.WithClasses(true), // CSS classes, styled by the shared chroma stylesheet
				),
			),
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
		goldmark.WithRendererOptions(
			goldmarkhtml.WithXHTML(),
			// Note: WithUnsafe() intentionally NOT used. Raw HTML inside
			// markdown cells is dropped rather than passed to Chrome.
		),
	)

	style := styles.Get(chromaStyleName)
	if style == nil {
		style = styles.Fallback
	}

	return &Renderer{
		md:          md,
		formatter:   chromahtml.New(chromahtml.WithClasses(true)),
		chromaStyle: style,
	}
}

// ToHTML renders the notebook as a standalone HTML5 document.
// The context is checked between cells so large notebooks can be cancelled.
func (r *Renderer) ToHTML(ctx context.Context, nb *notebook.Notebook) (string, error) {
	var body bytes.Buffer
	lang := nb.Language()

	for i, cell := range nb.Cells {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		if err := r.renderCell(&body, cell, lang); err != nil {
			return "", fmt.Errorf("%w: cell %d: %v", ErrRender, i, err)
		}
	}

	css, err := r.highlightCSS()
	if err != nil {
		return "", err
	}

	title := nb.Metadata.Title
	if title == "" {
		title = "Notebook"
	}

	return fmt.Sprintf(htmlShell, html.EscapeString(title), css, body.String()), nil
}

// highlightCSS generates the Chroma class stylesheet shared by markdown
// code fences and code cells.
func (r *Renderer) highlightCSS() (string, error) {
	var buf bytes.Buffer
	if err := r.formatter.WriteCSS(&buf, r.chromaStyle); err != nil {
		return "", fmt.Errorf("%w: writing highlight CSS: %v", ErrRender, err)
	}
	return buf.String(), nil
}

// renderCell dispatches on cell type.
func (r *Renderer) renderCell(w *bytes.Buffer, cell notebook.Cell, lang string) error {
	switch cell.CellType {
	case notebook.CellTypeMarkdown:
		return r.renderMarkdownCell(w, cell)
	case notebook.CellTypeCode:
		return r.renderCodeCell(w, cell, lang)
	case notebook.CellTypeRaw:
		renderRawCell(w, cell)
		return nil
	default:
		// Unknown cell types are skipped rather than failing the document.
		return nil
	}
}

// renderMarkdownCell converts a markdown cell via Goldmark.
func (r *Renderer) renderMarkdownCell(w *bytes.Buffer, cell notebook.Cell) error {
	w.WriteString(`<div class="cell markdown-cell">` + "\n")
	if err := r.md.Convert([]byte(cell.Source.String()), w); err != nil {
		return err
	}
	w.WriteString("</div>\n")
	return nil
}

// renderCodeCell highlights the source and renders its outputs.
func (r *Renderer) renderCodeCell(w *bytes.Buffer, cell notebook.Cell, lang string) error {
	w.WriteString(`<div class="cell code-cell">` + "\n")
	w.WriteString(fmt.Sprintf(`<div class="prompt input-prompt">In&nbsp;[%s]:</div>`+"\n", promptNumber(cell.ExecutionCount)))

	w.WriteString(`<div class="input-area">` + "\n")
	if err := r.highlight(w, cell.Source.String(), lang); err != nil {
		return err
	}
	w.WriteString("</div>\n")

	for _, output := range cell.Outputs {
		renderOutput(w, output)
	}

	w.WriteString("</div>\n")
	return nil
}

// highlight writes source code as Chroma-highlighted HTML.
func (r *Renderer) highlight(w *bytes.Buffer, source, lang string) error {
	lexer := lexers.Get(lang)
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	iterator, err := lexer.Tokenise(nil, source)
	if err != nil {
		return err
	}
	return r.formatter.Format(w, r.chromaStyle, iterator)
}

// renderRawCell writes raw cell content escaped. Raw cells carry arbitrary
// target-format text; escaping keeps them visible without trusting them.
func renderRawCell(w *bytes.Buffer, cell notebook.Cell) {
	w.WriteString(`<div class="cell raw-cell"><pre>`)
	w.WriteString(html.EscapeString(cell.Source.String()))
	w.WriteString("</pre></div>\n")
}

// renderOutput writes a single execution output.
func renderOutput(w *bytes.Buffer, output notebook.Output) {
	switch output.OutputType {
	case notebook.OutputTypeStream:
		class := "output-stream"
		if output.Name == "stderr" {
			class += " stderr"
		}
		fmt.Fprintf(w, `<div class="output"><pre class="%s">%s</pre></div>`+"\n",
			class, html.EscapeString(output.Text.String()))

	case notebook.OutputTypeError:
		traceback := StripANSI(strings.Join(output.Traceback, "\n"))
		if traceback == "" {
			traceback = output.EName + ": " + output.EValue
		}
		fmt.Fprintf(w, `<div class="output"><pre class="output-error">%s</pre></div>`+"\n",
			html.EscapeString(traceback))

	case notebook.OutputTypeExecuteResult:
		fmt.Fprintf(w, `<div class="prompt output-prompt">Out[%s]:</div>`+"\n", promptNumber(output.ExecutionCount))
		renderData(w, output.Data)

	case notebook.OutputTypeDisplayData:
		renderData(w, output.Data)
	}
}

// renderData writes the richest available representation of a MIME bundle.
func renderData(w *bytes.Buffer, data notebook.MIMEBundle) {
	for _, mimeType := range mimePriority {
		content, ok := data.Text(mimeType)
		if !ok {
			continue
		}

		switch mimeType {
		case "text/html", "image/svg+xml":
			// Kernel-produced rich output, passed through as-is.
			fmt.Fprintf(w, `<div class="output output-html">%s</div>`+"\n", content)
		case "image/png", "image/jpeg", "image/gif":
			// Base64 payload inlined as a data URI so the file:// page
			// needs no sibling resource files.
			encoded := strings.Map(dropWhitespace, content)
			fmt.Fprintf(w, `<div class="output"><img src="data:%s;base64,%s" /></div>`+"\n", mimeType, encoded)
		case "text/latex":
			fmt.Fprintf(w, `<div class="output output-latex">%s</div>`+"\n", html.EscapeString(content))
		default: // text/plain
			fmt.Fprintf(w, `<div class="output"><pre>%s</pre></div>`+"\n", html.EscapeString(content))
		}
		return
	}
}

// dropWhitespace removes newlines and spaces from base64 payloads, which
// nbformat stores line-wrapped.
func dropWhitespace(r rune) rune {
	if r == '\n' || r == '\r' || r == ' ' {
		return -1
	}
	return r
}

// promptNumber formats an execution count for In[n]/Out[n] prompts.
// A nil count (never-executed cell) renders as a blank prompt.
func promptNumber(count *int) string {
	if count == nil {
		return "&nbsp;"
	}
	return fmt.Sprintf("%d", *count)
}
