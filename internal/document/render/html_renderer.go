package render

import (
	"bytes"
	"html/template"

	"github.com/smallbiznis/folio/internal/document/domain"
)

const documentHTMLTemplate = `<!doctype html>
<html lang="en">
<head>
  <meta charset="utf-8" />
  <title>{{.Heading}}</title>
  <style>
    body {
      margin: 0;
      padding: 40px;
      font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, Helvetica, Arial, sans-serif;
      color: #1a1f36;
      background: #f7f9fc;
    }
    .document-card {
      background: #ffffff;
      max-width: 640px;
      margin: 0 auto;
      padding: 48px;
      box-shadow: 0 2px 5px rgba(0,0,0,0.04);
      border-radius: 4px;
    }
    h1 {
      margin: 0 0 32px;
      font-size: 24px;
      font-weight: 700;
    }
    h2 {
      margin: 24px 0 8px;
      font-size: 12px;
      text-transform: uppercase;
      letter-spacing: 0.3px;
      color: #8792a2;
    }
    .row {
      display: flex;
      justify-content: space-between;
      padding: 6px 0;
      border-bottom: 1px solid #f0f2f5;
      font-size: 14px;
    }
    .row-label { color: #697386; padding-right: 24px; }
    .row-value { text-align: right; }
    a { color: #006aff; text-decoration: none; }
  </style>
</head>
<body>
  <div class="document-card">
    <h1>{{.Heading}}</h1>
    {{range .Sections}}
      {{if .Heading}}<h2>{{.Heading}}</h2>{{end}}
      {{range .Rows}}
      <div class="row">
        {{if .Label}}<span class="row-label">{{.Label}}</span>{{end}}
        <span class="row-value">
          {{- if .Link}}<a href="{{.Link}}">{{.Value}}</a>
          {{- else if .Lines}}{{range $i, $line := .Lines}}{{if $i}}<br>{{end}}{{$line}}{{end}}
          {{- else}}{{.Value}}{{end -}}
        </span>
      </div>
      {{end}}
    {{end}}
  </div>
</body>
</html>
`

// Renderer turns an assembled document into a display format. Multi-line
// values are joined here, not by the assembler.
type Renderer interface {
	RenderHTML(doc domain.Document) (string, error)
}

type HTMLRenderer struct {
	tpl *template.Template
}

func NewRenderer() Renderer {
	return &HTMLRenderer{
		tpl: template.Must(template.New("document").Parse(documentHTMLTemplate)),
	}
}

func (r *HTMLRenderer) RenderHTML(doc domain.Document) (string, error) {
	var buf bytes.Buffer
	if err := r.tpl.Execute(&buf, doc); err != nil {
		return "", err
	}
	return buf.String(), nil
}
