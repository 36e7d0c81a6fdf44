package export

import (
	"bytes"
	"fmt"
	"html"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/abhisek/pathplanner/internal/roadmap"
)

var md = goldmark.New(goldmark.WithExtensions(extension.GFM))

// sanitizer keeps the rendered body to plain document markup. Resource
// titles and URLs come from scraped pages, so scripts, event handlers
// and javascript: links are dropped. Task-list checkboxes stay.
var sanitizer = func() *bluemonday.Policy {
	p := bluemonday.UGCPolicy()
	p.AllowElements("input")
	p.AllowAttrs("type").Matching(bluemonday.SpaceSeparatedTokens).OnElements("input")
	p.AllowAttrs("checked", "disabled").OnElements("input")
	return p
}()

const htmlPage = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>%s</title>
<style>
body { font-family: system-ui, sans-serif; max-width: 48rem; margin: 2rem auto; line-height: 1.5; }
h2 { border-bottom: 1px solid #ddd; padding-bottom: .25rem; }
li input { margin-right: .5rem; }
</style>
</head>
<body>
%s</body>
</html>
`

// HTML renders plan as a standalone HTML page suitable for printing
// to PDF.
func HTML(plan *roadmap.Plan, opts Options) ([]byte, error) {
	var body bytes.Buffer
	if err := md.Convert([]byte(Markdown(plan, opts)), &body); err != nil {
		return nil, fmt.Errorf("render html: %w", err)
	}
	clean := sanitizer.SanitizeBytes(body.Bytes())
	return fmt.Appendf(nil, htmlPage, html.EscapeString(opts.title()), clean), nil
}
