// Package xmlexport gera o arquivo XML de lançamentos enviado ao contador:
// um documento por período com receitas e despesas, datas de competência,
// vencimento e pagamento, e os vínculos com categorias e centros de custo.
package xmlexport

import (
	"fmt"

	"github.com/beevik/etree"

	"github.com/Luiz-H456/botezini/internal/application/finance"
	"github.com/Luiz-H456/botezini/internal/domain/entity"
)

var _ finance.Exporter = (*Exporter)(nil)

// Exporter serializa lançamentos com etree.
type Exporter struct{}

// NewExporter constrói o exportador.
func NewExporter() *Exporter { return &Exporter{} }

// ExportTransactions monta o XML e devolve seus bytes, indentado para
// conferência manual.
func (e *Exporter) ExportTransactions(company *entity.CompanyProfile, txs []*entity.Transaction) ([]byte, error) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement("ExportacaoContabil")
	root.CreateAttr("versao", "1.0")

	emp := root.CreateElement("Empresa")
	emp.CreateElement("RazaoSocial").SetText(company.Name)
	emp.CreateElement("CNPJ").SetText(company.CNPJ)

	list := root.CreateElement("Lancamentos")
	list.CreateAttr("total", fmt.Sprintf("%d", len(txs)))
	for _, t := range txs {
		l := list.CreateElement("Lancamento")
		l.CreateAttr("id", t.ID)
		l.CreateAttr("tipo", t.Type)
		l.CreateElement("Descricao").SetText(t.Description)
		l.CreateElement("Valor").SetText(t.Amount.StringFixed(2))
		l.CreateElement("Competencia").SetText(t.Date)
		if t.DueDate != "" {
			l.CreateElement("Vencimento").SetText(t.DueDate)
		}
		if t.PaymentDate != "" {
			l.CreateElement("Pagamento").SetText(t.PaymentDate)
		}
		if t.CategoryID != "" {
			l.CreateElement("Categoria").SetText(t.CategoryID)
		}
		if t.CostCenterID != "" {
			l.CreateElement("CentroDeCusto").SetText(t.CostCenterID)
		}
		if t.ReferenceID != "" {
			l.CreateElement("Referencia").SetText(t.ReferenceID)
		}
		if t.IsRecurring {
			parc := l.CreateElement("Parcela")
			parc.CreateAttr("numero", fmt.Sprintf("%d", t.InstallmentNumber))
			parc.CreateAttr("de", fmt.Sprintf("%d", t.TotalInstallments))
		}
		l.CreateElement("Quitado").SetText(boolStr(t.IsPaid))
	}

	doc.Indent(2)
	out, err := doc.WriteToBytes()
	if err != nil {
		return nil, fmt.Errorf("serializar exportação: %w", err)
	}
	return out, nil
}

func boolStr(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
