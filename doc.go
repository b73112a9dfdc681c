// Package ipynb2pdf converts Jupyter Notebook documents to PDF using
// headless Chrome.
//
// # Quick Start
//
// Create a converter, convert a notebook, and close when done:
//
//	conv, err := ipynb2pdf.NewConverter()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer conv.Close()
//
//	data, _ := os.ReadFile("analysis.ipynb")
//	result, err := conv.Convert(ctx, ipynb2pdf.Input{Notebook: data})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("analysis.pdf", result.PDF, 0644)
//
// The result contains both the PDF bytes (result.PDF) and the intermediate
// HTML (result.HTML) for debugging. Use Input.HTMLOnly to skip PDF generation.
//
// # Conversion Pipeline
//
// The conversion process follows these stages:
//
//  1. Notebook parsing (nbformat 4 JSON)
//  2. Cell rendering to HTML (markdown via Goldmark, code via Chroma,
//     outputs by MIME type)
//  3. CSS injection (embedded "classic" stylesheet or custom CSS)
//  4. PDF rendering via headless Chrome (go-rod)
//
// # Configuration
//
// Use functional options to customize the converter:
//
//	conv, err := ipynb2pdf.NewConverter(
//	    ipynb2pdf.WithTimeout(2 * time.Minute),
//	    ipynb2pdf.WithStyle("classic"),
//	)
//
// Per-conversion options are passed via Input:
//
//	result, err := conv.Convert(ctx, ipynb2pdf.Input{
//	    Notebook: data,
//	    CSS:      "body { font-size: 14px; }",
//	    Page:     &ipynb2pdf.PageSettings{Size: "a4", Orientation: "landscape"},
//	})
//
// # Browser Requirements
//
// PDF generation requires Chrome/Chromium. The go-rod library automatically
// downloads a managed Chromium instance on first run (~/.cache/rod/browser/).
//
// For containers and CI environments, set ROD_NO_SANDBOX=1 to disable the
// Chrome sandbox. Use ROD_BROWSER_BIN to specify a custom Chrome binary.
package ipynb2pdf
