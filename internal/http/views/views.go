// Package views holds the HTML templates for the listing and form pages.
package views

import (
	"embed"
	"html/template"
	"net/url"

	"busstation/internal/registry"
)

//go:embed templates/*.html
var files embed.FS

// Row is one record prepared for the listing page.
type Row struct {
	ID     int64
	Values []string
}

// FormField pairs a field descriptor with its current value.
type FormField struct {
	registry.Field
	Value string
}

func Rows(recs []registry.Record) []Row {
	out := make([]Row, 0, len(recs))
	for _, rec := range recs {
		out = append(out, Row{ID: rec.GetID(), Values: registry.Display(rec)})
	}
	return out
}

// FormFields pairs t's fields with rec's values. A nil rec yields blanks.
func FormFields(t registry.Table, rec registry.Record) []FormField {
	var vals []string
	if rec != nil {
		vals = registry.Display(rec)
	}
	out := make([]FormField, 0, len(t.Fields))
	for i, f := range t.Fields {
		ff := FormField{Field: f}
		if i < len(vals) {
			ff.Value = vals[i]
		}
		out = append(out, ff)
	}
	return out
}

var funcs = template.FuncMap{
	"pathEscape": url.PathEscape,
	"step": func(k registry.Kind) string {
		if k == registry.KindDecimal {
			return "any"
		}
		return "1"
	},
	"isText": func(k registry.Kind) bool { return k == registry.KindText },
}

// Load parses every embedded template.
func Load() (*template.Template, error) {
	return template.New("").Funcs(funcs).ParseFS(files, "templates/*.html")
}
