// Package pdf implementa a geração da proposta comercial (orçamento) em PDF.
//
// Layout da página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Empresa + CNPJ  │  N° Orçamento + Data + Validade  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  CLIENTE: Razão social + CNPJ + contato                     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABELA: Qtd | Peça (modelo/tecido/cor/tam) | Unit | Total  │
//	│  TABELA: Personalizações  |  TABELA: Itens avulsos          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTAIS: Subtotais / Desconto / TOTAL / Entrada / Entrega   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: condições, prazo em dias úteis, dados bancários    │
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

	appbudget "github.com/Luiz-H456/botezini/internal/application/budget"
	"github.com/Luiz-H456/botezini/internal/domain/entity"
	"github.com/Luiz-H456/botezini/pkg/format"
)

// ── Paleta ────────────────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 15, Green: 82, Blue: 60}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

var _ appbudget.PDFGenerator = (*MarotoPDFGenerator)(nil)

// MarotoPDFGenerator implementa budget.PDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct{}

// NewMarotoPDFGenerator constrói o gerador.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

// GenerateBudgetPDF gera o PDF da proposta e devolve seus bytes.
func (g *MarotoPDFGenerator) GenerateBudgetPDF(
	_ context.Context,
	b *entity.Budget,
	company *entity.CompanyProfile,
	client *entity.Client,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Orçamento "+b.SerialNumber, true).
		WithAuthor(company.Name, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(b, company))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(clientRow(client))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(sectionTitleRow("PEÇAS"))
	m.AddRows(itemsHeaderRow())
	for _, r := range itemRows(b.Items) {
		m.AddRows(r)
	}

	if len(b.Customizations) > 0 {
		m.AddRows(sectionTitleRow("PERSONALIZAÇÕES"))
		for _, r := range customizationRows(b.Customizations) {
			m.AddRows(r)
		}
	}
	if len(b.Extras) > 0 {
		m.AddRows(sectionTitleRow("ITENS AVULSOS"))
		for _, r := range extraRows(b.Extras) {
			m.AddRows(r)
		}
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(b))
	m.AddRows(line.NewRow(2))
	for _, r := range footerRows(b, company) {
		m.AddRows(r)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: gerar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Seções ────────────────────────────────────────────────────────────────────

// headerRow: empresa + CNPJ (esq) e número + data + validade (dir).
func headerRow(b *entity.Budget, company *entity.CompanyProfile) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New(nonEmpty(company.Name, "—"), props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("CNPJ: "+nonEmpty(format.CNPJ(company.CNPJ), "—"), props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("ORÇAMENTO", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(b.SerialNumber, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
			}),
			text.New(fmt.Sprintf("Data: %s   Validade: %d dias", format.Date(b.Date), b.ValidityDays), props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

// clientRow: dados do cliente.
func clientRow(client *entity.Client) core.Row {
	return row.New(14).Add(
		col.New(12).Add(
			text.New("CLIENTE", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(nonEmpty(client.CompanyName, "—"), props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
			text.New(fmt.Sprintf("CNPJ: %s   |   Contato: %s   |   Tel: %s",
				nonEmpty(format.CNPJ(client.CNPJ), "—"),
				nonEmpty(client.ContactPerson, "—"),
				nonEmpty(format.Phone(client.Phone), "—"),
			), props.Text{Size: 8, Top: 12, Color: colorGray}),
		),
	)
}

func sectionTitleRow(title string) core.Row {
	return row.New(7).Add(col.New(12).Add(
		text.New(title, props.Text{
			Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 2,
		}),
	))
}

// itemsHeaderRow: cabeçalho da tabela de peças.
func itemsHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Top: 1, Left: 1, Right: 1,
		}))
	}
	return row.New(6).Add(
		h("Qtd", 1, align.Center),
		h("Peça", 6, align.Left),
		h("Unitário", 2, align.Right),
		h("Total", 3, align.Right),
	)
}

// itemRows: uma linha por peça, com as variações concatenadas.
func itemRows(items []entity.BudgetItem) []core.Row {
	result := make([]core.Row, 0, len(items))
	for _, it := range items {
		desc := it.ProductName
		if detail := joinNonEmpty(it.Model, it.Fabric, it.Color, it.Size); detail != "" {
			desc += " (" + detail + ")"
		}
		result = append(result, row.New(6).Add(
			col.New(1).Add(text.New(fmt.Sprintf("%d", it.Quantity), props.Text{
				Size: 8, Align: align.Center, Top: 1,
			})),
			col.New(6).Add(text.New(desc, props.Text{
				Size: 8, Align: align.Left, Top: 1, Left: 1,
			})),
			col.New(2).Add(text.New(format.Currency(it.UnitPrice), props.Text{
				Size: 8, Align: align.Right, Top: 1, Right: 1,
			})),
			col.New(3).Add(text.New(format.Currency(it.Total), props.Text{
				Size: 8, Align: align.Right, Top: 1, Right: 1,
			})),
		))
	}
	return result
}

// customizationRows: uma linha por serviço de personalização.
func customizationRows(list []entity.BudgetCustomization) []core.Row {
	result := make([]core.Row, 0, len(list))
	for _, c := range list {
		desc := customizationLabel(c.Type)
		if c.Description != "" {
			desc += " — " + c.Description
		}
		if c.Position != "" {
			desc += " (" + c.Position + ")"
		}
		result = append(result, row.New(6).Add(
			col.New(1).Add(text.New(fmt.Sprintf("%d", c.Quantity), props.Text{
				Size: 8, Align: align.Center, Top: 1,
			})),
			col.New(6).Add(text.New(desc, props.Text{
				Size: 8, Align: align.Left, Top: 1, Left: 1,
			})),
			col.New(2).Add(text.New(format.Currency(c.UnitPrice), props.Text{
				Size: 8, Align: align.Right, Top: 1, Right: 1,
			})),
			col.New(3).Add(text.New(format.Currency(c.Total), props.Text{
				Size: 8, Align: align.Right, Top: 1, Right: 1,
			})),
		))
	}
	return result
}

// extraRows: uma linha por item avulso.
func extraRows(list []entity.BudgetExtra) []core.Row {
	result := make([]core.Row, 0, len(list))
	for _, e := range list {
		result = append(result, row.New(6).Add(
			col.New(1).Add(text.New(fmt.Sprintf("%d", e.Quantity), props.Text{
				Size: 8, Align: align.Center, Top: 1,
			})),
			col.New(6).Add(text.New(e.Description, props.Text{
				Size: 8, Align: align.Left, Top: 1, Left: 1,
			})),
			col.New(2).Add(text.New(format.Currency(e.UnitPrice), props.Text{
				Size: 8, Align: align.Right, Top: 1, Right: 1,
			})),
			col.New(3).Add(text.New(format.Currency(e.Total), props.Text{
				Size: 8, Align: align.Right, Top: 1, Right: 1,
			})),
		))
	}
	return result
}

// totalsRow: bloco de totais alinhado à direita, com a divisão entrada/entrega.
func totalsRow(b *entity.Budget) core.Row {
	label := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2,
		})
	}
	value := func(s string) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1})
	}
	grandLabel := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 2,
		})
	}
	grandValue := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 1,
		})
	}

	return row.New(34).Add(
		col.New(4),
		col.New(4).Add(
			label("Subtotal peças:"),
			label("Personalizações:"),
			label("Itens avulsos:"),
			label("Desconto:"),
			grandLabel("TOTAL:"),
			label(fmt.Sprintf("Entrada (%s%%):", b.DownPaymentPercent.StringFixed(0))),
			label("Na entrega:"),
		),
		col.New(4).Add(
			value(format.Currency(b.SubtotalItems)),
			value(format.Currency(b.SubtotalCustomizations)),
			value(format.Currency(b.SubtotalExtras)),
			value("- "+format.Currency(b.Discount)),
			grandValue(format.Currency(b.TotalAmount)),
			value(format.Currency(b.DownPaymentValue)),
			value(format.Currency(b.DeliveryPaymentValue)),
		),
	)
}

// footerRows: condições comerciais e dados bancários.
func footerRows(b *entity.Budget, company *entity.CompanyProfile) []core.Row {
	rows := []core.Row{
		row.New(10).Add(col.New(12).Add(
			text.New("CONDIÇÕES", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf(
				"Prazo de produção: %d dias úteis após confirmação da entrada.   Proposta válida por %d dias.",
				b.DeliveryTimeDays, b.ValidityDays,
			), props.Text{Size: 8, Top: 6, Color: colorGray}),
		)),
	}

	if company.PixKey != "" || company.BankName != "" {
		rows = append(rows, row.New(12).Add(col.New(12).Add(
			text.New("DADOS PARA PAGAMENTO", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("PIX: %s   |   %s  Ag. %s  Conta %s  (%s)",
				nonEmpty(company.PixKey, "—"),
				nonEmpty(company.BankName, "—"),
				nonEmpty(company.BankAgency, "—"),
				nonEmpty(company.BankAccount, "—"),
				nonEmpty(company.BankHolder, "—"),
			), props.Text{Size: 8, Top: 6, Color: colorGray}),
		)))
	}

	if b.Notes != "" {
		rows = append(rows, row.New(10).Add(col.New(12).Add(
			text.New("Observações: "+b.Notes, props.Text{Size: 7.5, Color: colorGray, Top: 2}),
		)))
	}
	return rows
}

// ── helpers ───────────────────────────────────────────────────────────────────

func customizationLabel(t string) string {
	switch t {
	case entity.CustomizationEmbroidery:
		return "Bordado"
	case entity.CustomizationScreenPrint:
		return "Serigrafia"
	case entity.CustomizationDTF:
		return "DTF"
	}
	return "Personalização"
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// joinNonEmpty concatena os campos preenchidos separados por " / ".
func joinNonEmpty(parts ...string) string {
	out := ""
	for _, p := range parts {
		if p == "" {
			continue
		}
		if out != "" {
			out += " / "
		}
		out += p
	}
	return out
}
