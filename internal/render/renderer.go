package render

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	htmltemplate "html/template"
	"io/fs"
	"os"

	"github.com/shopspring/decimal"
)

// Names of the templates in the local set.
const (
	BillTemplate    = "bill.html"
	ReceiptTemplate = "receipt.html"
)

//go:embed templates/*.html
var builtin embed.FS

// ErrTemplateNotFound is returned when a name is absent from the local template set.
var ErrTemplateNotFound = errors.New("template not found")

// Renderer turns a template and a render context into markup.
type Renderer interface {
	// RenderFile renders a template from the local set with contextual HTML escaping.
	RenderFile(name string, data any) (string, error)
}

// TemplateRenderer is the default Renderer. It is safe for concurrent use.
type TemplateRenderer struct {
	set *htmltemplate.Template
}

var _ Renderer = (*TemplateRenderer)(nil)

var funcs = htmltemplate.FuncMap{
	"money": money,
}

// New parses the local template set. When dir is empty the built-in templates are used,
// otherwise every *.html file in dir.
func New(dir string) (*TemplateRenderer, error) {
	var fsys fs.FS
	if dir == "" {
		sub, err := fs.Sub(builtin, "templates")
		if err != nil {
			return nil, err
		}
		fsys = sub
	} else {
		fsys = os.DirFS(dir)
	}

	set, err := htmltemplate.New("").Funcs(funcs).ParseFS(fsys, "*.html")
	if err != nil {
		return nil, fmt.Errorf("parse template set: %w", err)
	}
	return &TemplateRenderer{set: set}, nil
}

func (r *TemplateRenderer) RenderFile(name string, data any) (string, error) {
	tpl := r.set.Lookup(name)
	if tpl == nil {
		return "", fmt.Errorf("%w: %s", ErrTemplateNotFound, name)
	}
	var buf bytes.Buffer
	if err := tpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render %s: %w", name, err)
	}
	return buf.String(), nil
}

func money(d decimal.Decimal) string {
	return d.StringFixed(2)
}
