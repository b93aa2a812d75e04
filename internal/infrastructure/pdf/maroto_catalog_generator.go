// Package pdf implementa la exportación del catálogo público de una tienda
// como documento imprimible.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre de la tienda  │  Slug + plan                │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Producto | Categoría | Stock | Precio               │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: total de productos                                  │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/FotoStock-api/internal/application/catalog"
	"github.com/jhoicas/FotoStock-api/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 10, Green: 25, Blue: 47}
	colorAccent  = &props.Color{Red: 0, Green: 216, Blue: 169}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

var _ catalog.PDFGenerator = (*MarotoCatalogGenerator)(nil)

// MarotoCatalogGenerator implementa catalog.PDFGenerator usando Maroto v2.
type MarotoCatalogGenerator struct{}

// NewMarotoCatalogGenerator construye el generador.
func NewMarotoCatalogGenerator() *MarotoCatalogGenerator { return &MarotoCatalogGenerator{} }

// GenerateCatalogPDF genera el PDF del catálogo y devuelve sus bytes.
func (g *MarotoCatalogGenerator) GenerateCatalogPDF(
	_ context.Context,
	store *entity.Store,
	products []*entity.Product,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Catálogo "+store.Name, true).
		WithAuthor(store.Name, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(store))
	m.AddRows(line.NewRow(2, props.Line{Color: colorAccent, Thickness: 0.5}))
	m.AddRows(tableHeaderRow())
	for _, p := range products {
		m.AddRows(productRow(p))
	}
	m.AddRows(line.NewRow(2, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow(len(products)))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("generar PDF del catálogo: %w", err)
	}
	return doc.GetBytes(), nil
}

func headerRow(store *entity.Store) core.Row {
	return row.New(14).Add(
		col.New(8).Add(
			text.New(store.Name, props.Text{
				Size: 16, Style: fontstyle.Bold, Color: colorPrimary,
			}),
			text.New("fotostock.app/"+store.Slug, props.Text{
				Top: 8, Size: 8, Color: colorGray,
			}),
		),
		col.New(4).Add(
			text.New("Catálogo de productos", props.Text{
				Size: 10, Align: align.Right, Color: colorGray,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	header := props.Text{Size: 9, Style: fontstyle.Bold, Color: colorPrimary}
	return row.New(7).Add(
		text.NewCol(6, "Producto", header),
		text.NewCol(2, "Categoría", header),
		text.NewCol(1, "Stock", headerAlign(header, align.Right)),
		text.NewCol(3, "Precio", headerAlign(header, align.Right)),
	)
}

func productRow(p *entity.Product) core.Row {
	cell := props.Text{Size: 8}
	price := "$ " + p.EffectivePrice().StringFixed(2)
	if p.PromotionalPrice != nil {
		price += " (promo)"
	}
	return row.New(6).Add(
		text.NewCol(6, p.Name, cell),
		text.NewCol(2, p.Category, cell),
		text.NewCol(1, fmt.Sprintf("%d", p.StockQuantity), headerAlign(cell, align.Right)),
		text.NewCol(3, price, headerAlign(cell, align.Right)),
	)
}

func footerRow(total int) core.Row {
	return row.New(6).Add(
		text.NewCol(12, fmt.Sprintf("%d productos", total), props.Text{
			Size: 8, Color: colorGray, Align: align.Right,
		}),
	)
}

func headerAlign(base props.Text, a align.Type) props.Text {
	base.Align = a
	return base
}
