package ui

import (
	"embed"
	"html/template"

	"github.com/gomarkdown/markdown"
	mdhtml "github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
)

// renderHelp converts the embedded instructions markdown into HTML once at
// startup; the result is reused on every page render.
func renderHelp(files embed.FS) (template.HTML, error) {
	source, err := files.ReadFile("help/instructions.md")
	if err != nil {
		return "", err
	}

	p := parser.NewWithExtensions(parser.CommonExtensions)
	renderer := mdhtml.NewRenderer(mdhtml.RendererOptions{
		Flags: mdhtml.CommonFlags,
	})
	return template.HTML(markdown.ToHTML(source, p, renderer)), nil
}
