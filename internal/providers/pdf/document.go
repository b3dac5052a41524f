package pdf

import (
	"bytes"
	"context"
	"io"
	"strings"

	"github.com/gosimple/slug"
	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/smallbiznis/folio/internal/document/domain"
)

type PDFProvider struct{}

func New() Provider {
	return &PDFProvider{}
}

// Generate walks the document model section by section, preserving row
// order exactly as assembled.
func (p *PDFProvider) Generate(ctx context.Context, doc domain.Document) (io.Reader, error) {
	cfg := config.NewBuilder().
		WithPageNumber(props.PageNumber{
			Pattern: "Page {current} of {total}",
			Place:   props.RightBottom,
		}).
		Build()

	m := maroto.New(cfg)

	m.AddRow(20,
		text.NewCol(12, string(doc.Heading), props.Text{
			Size:  20,
			Style: fontstyle.Bold,
			Align: align.Left,
		}),
	)

	for _, section := range doc.Sections {
		if section.Heading != "" {
			m.AddRow(10,
				text.NewCol(12, section.Heading, props.Text{
					Size:  11,
					Style: fontstyle.Bold,
					Top:   3,
				}),
			)
		}
		for _, row := range section.Rows {
			addRow(m, row)
		}
	}

	generated, err := m.Generate()
	if err != nil {
		return nil, err
	}

	return bytes.NewReader(generated.GetBytes()), nil
}

func addRow(m core.Maroto, row domain.Row) {
	value := row.Value
	if len(row.Lines) > 0 {
		value = strings.Join(row.Lines, "\n")
	}

	height := float64(8 + 4*len(row.Lines))
	if row.Label != nil {
		m.AddRow(height,
			text.NewCol(4, *row.Label, props.Text{Size: 9, Color: labelColor}),
			text.NewCol(8, value, props.Text{Size: 9, Align: align.Right}),
		)
		return
	}
	m.AddRow(height,
		col.New(12).Add(text.New(value, props.Text{Size: 9})),
	)
}

// Filename derives the download name for a generated PDF.
func Filename(doc domain.Document, orderNumber string) string {
	return slug.Make(strings.ToLower(string(doc.Heading))+"-"+orderNumber) + ".pdf"
}

var labelColor = &props.Color{Red: 105, Green: 115, Blue: 134}
