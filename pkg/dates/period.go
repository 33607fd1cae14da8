package dates

import "time"

// Period define a granularidade de classificação de datas em relatórios.
type Period string

// Períodos suportados nos filtros do financeiro e do dashboard.
const (
	PeriodDay      Period = "DAY"
	PeriodWeek     Period = "WEEK"
	PeriodMonth    Period = "MONTH"
	PeriodQuarter  Period = "QUARTER"
	PeriodSemester Period = "SEMESTER"
	PeriodYear     Period = "YEAR"
	PeriodAll      Period = "ALL"
)

// ParsePeriod normaliza uma string de filtro para Period. Valor desconhecido
// ou vazio vira PeriodAll (filtro aberto).
func ParsePeriod(s string) Period {
	switch Period(s) {
	case PeriodDay, PeriodWeek, PeriodMonth, PeriodQuarter, PeriodSemester, PeriodYear, PeriodAll:
		return Period(s)
	}
	return PeriodAll
}

// InPeriod reporta se targetStr cai no balde de period que contém refStr.
//
// Regras:
//   - PeriodAll sempre inclui.
//   - target vazio/malformado sempre inclui: registro incompleto não é
//     excluído de relatório, é política deliberada.
//   - WEEK é a janela domingo–sábado que contém a referência.
//   - QUARTER e SEMESTER são alinhados ao calendário (trimestres iniciam em
//     jan/abr/jul/out; semestres em jan/jul).
func InPeriod(targetStr string, period Period, refStr string) bool {
	if period == PeriodAll {
		return true
	}
	target, ok := Parse(targetStr)
	if !ok {
		return true
	}
	ref, ok := Parse(refStr)
	if !ok {
		ref = Today()
	}

	switch period {
	case PeriodDay:
		return target == ref
	case PeriodMonth:
		return target.Year == ref.Year && target.Month == ref.Month
	case PeriodYear:
		return target.Year == ref.Year
	case PeriodQuarter:
		qStart := ((ref.Month-1)/3)*3 + 1
		return target.Year == ref.Year && target.Month >= qStart && target.Month < qStart+3
	case PeriodSemester:
		sStart := ((ref.Month-1)/6)*6 + 1
		return target.Year == ref.Year && target.Month >= sStart && target.Month < sStart+6
	case PeriodWeek:
		// Janela domingo..sábado contendo ref.
		refT := ref.time()
		weekStart := refT.AddDate(0, 0, -int(refT.Weekday()))
		weekEnd := weekStart.AddDate(0, 0, 6)
		t := target.time()
		return !t.Before(weekStart) && !t.After(weekEnd)
	}
	return false
}

// InCurrentPeriod é InPeriod com referência = hoje.
func InCurrentPeriod(targetStr string, period Period) bool {
	return InPeriod(targetStr, period, TodayStr())
}

// PeriodLabel retorna o rótulo pt-BR do mês de uma data, ex.: "Março 2026".
// Usado nos cabeçalhos do dashboard.
func PeriodLabel(t time.Time) string {
	months := [...]string{
		"Janeiro", "Fevereiro", "Março", "Abril", "Maio", "Junho",
		"Julho", "Agosto", "Setembro", "Outubro", "Novembro", "Dezembro",
	}
	return months[t.Month()-1] + " " + t.Format("2006")
}
