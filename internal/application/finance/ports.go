package finance

import "github.com/Luiz-H456/botezini/internal/domain/entity"

// Exporter serializa os lançamentos do período num arquivo para o contador.
type Exporter interface {
	ExportTransactions(company *entity.CompanyProfile, txs []*entity.Transaction) ([]byte, error)
}
