// Package docs renders the embedded API guide.
package docs

import (
	"bytes"
	_ "embed"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

//go:embed api.md
var apiGuide []byte

const page = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Chatbot MCP API</title>
<style>
body { font-family: system-ui, sans-serif; max-width: 52rem; margin: 2rem auto; padding: 0 1rem; line-height: 1.5; }
pre { background: #f4f4f4; padding: 0.75rem; overflow-x: auto; }
table { border-collapse: collapse; }
td, th { border: 1px solid #ccc; padding: 0.25rem 0.5rem; }
</style>
</head>
<body>
%s</body>
</html>
`

// Markdown returns the raw guide
func Markdown() []byte {
	return apiGuide
}

// RenderHTML converts the guide to a standalone HTML page
func RenderHTML() ([]byte, error) {
	md := goldmark.New(goldmark.WithExtensions(extension.GFM))

	var body bytes.Buffer
	if err := md.Convert(apiGuide, &body); err != nil {
		return nil, fmt.Errorf("failed to render API guide: %w", err)
	}
	return []byte(fmt.Sprintf(page, body.String())), nil
}
