package assembly

import (
	"bytes"
	"fmt"
	"html"

	"github.com/gomarkdown/markdown"
	mdhtml "github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"

	"questgen/domain/assessment"
)

const pageShell = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>%s</title>
<style>
body { font-family: Georgia, 'Times New Roman', serif; max-width: 46rem; margin: 2rem auto; padding: 0 1rem; color: #1a1a1a; }
h1 { text-align: center; font-size: 1.6rem; margin-bottom: 1.2rem; }
h2 { font-size: 1.05rem; border-bottom: 1px solid #999; padding-bottom: 0.2rem; margin-top: 1.6rem; }
p { line-height: 1.55; }
ul { margin-top: 0.3rem; }
hr { border: none; border-top: 1px dashed #999; margin: 2.5rem 0; }
@media print {
  body { margin: 0.5in; max-width: none; }
  hr { page-break-after: always; visibility: hidden; margin: 0; }
}
</style>
</head>
<body>
%s</body>
</html>
`

// RenderHTML renders the assessment as a standalone printable page. The
// horizontal rule before the answer key becomes a page break in print.
func RenderHTML(a *assessment.Assessment) []byte {
	md := []byte(RenderMarkdown(a))

	p := parser.NewWithExtensions(parser.CommonExtensions)
	doc := p.Parse(md)
	renderer := mdhtml.NewRenderer(mdhtml.RendererOptions{Flags: mdhtml.CommonFlags})
	body := markdown.Render(doc, renderer)

	var buf bytes.Buffer
	fmt.Fprintf(&buf, pageShell, html.EscapeString(a.Title), body)
	return buf.Bytes()
}
