package exporters

import (
	"bytes"
	"context"
	"embed"
	"text/template"

	"github.com/pkg/errors"

	"github.com/varaeff/wordcheck.api/enums"
)

//go:embed templates/words.txt
var exportTemplates embed.FS

var wordTemplates = template.Must(template.New("exports").ParseFS(exportTemplates, "templates/*.txt"))

type Exporter interface {
	Export(ctx context.Context, words []string) error
}

type Outcome struct {
	Status  enums.ExportStatus
	Words   []string
	Content string
	Err     error
}

// Render returns the words one per line, without a trailing newline.
func Render(words []string) (string, error) {
	var buf bytes.Buffer
	if err := wordTemplates.ExecuteTemplate(&buf, "words.txt", words); err != nil {
		return "", errors.Wrap(err, "render words")
	}
	return buf.String(), nil
}

// Run hands words to exp when send is set. A failed export is reported in the
// outcome and not retried.
func Run(ctx context.Context, exp Exporter, words []string, send bool) Outcome {
	if words == nil {
		words = []string{}
	}
	if len(words) == 0 {
		return Outcome{Status: enums.ExportStatusEmpty, Words: words}
	}

	content, err := Render(words)
	if err != nil {
		return Outcome{Status: enums.ExportStatusFailed, Words: words, Err: err}
	}

	out := Outcome{Status: enums.ExportStatusCollected, Words: words, Content: content}
	if !send {
		return out
	}

	if exp == nil {
		out.Status = enums.ExportStatusFailed
		out.Err = errors.New("export: no exporter configured")
		return out
	}

	if err := exp.Export(ctx, words); err != nil {
		out.Status = enums.ExportStatusFailed
		out.Err = err
		return out
	}

	out.Status = enums.ExportStatusCopied
	return out
}
