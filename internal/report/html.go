package report

import (
	"fmt"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"

	domainReport "longstat/domain/report"
)

// htmlShell wraps the rendered body in a self-contained page so the file
// opens in a browser without any assets next to it.
const htmlShell = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>AnAge Longevity Analysis Report</title>
<style>
body { font-family: Georgia, serif; max-width: 60rem; margin: 2rem auto; padding: 0 1rem; color: #222; }
table { border-collapse: collapse; margin: 1rem 0; }
th, td { border: 1px solid #bbb; padding: 0.3rem 0.7rem; text-align: left; }
th { background: #f0f0f0; }
code { background: #f5f5f5; padding: 0.1rem 0.3rem; }
</style>
</head>
<body>
%s</body>
</html>
`

// renderHTML renders the markdown document through gomarkdown and wraps it
// in the minimal shell above.
func renderHTML(rep *domainReport.Report) []byte {
	md := renderMarkdown(rep)

	p := parser.NewWithExtensions(parser.CommonExtensions | parser.Tables)
	doc := p.Parse(md)

	renderer := html.NewRenderer(html.RendererOptions{Flags: html.CommonFlags})
	body := markdown.Render(doc, renderer)

	return []byte(fmt.Sprintf(htmlShell, body))
}
