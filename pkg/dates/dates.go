// Package dates implementa a aritmética de calendário usada por orçamentos,
// pedidos e financeiro: soma de meses com clamp de dia, dias úteis,
// classificação por período e verificação de validade.
//
// Todas as funções operam sobre strings ISO `YYYY-MM-DD` (formato de
// persistência e de API). Entrada malformada nunca gera erro: é devolvida
// como veio ou tratada como "não excluída", para tolerar formulários
// parcialmente preenchidos.
package dates

import (
	"fmt"
	"regexp"
	"time"
)

var isoDatePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}`)

// Date é uma data de calendário validada (ano/mês/dia). Construída via Parse;
// a aritmética interna não revalida.
type Date struct {
	Year  int
	Month int // 1-12
	Day   int // 1-31
}

// Parse valida e converte uma string `YYYY-MM-DD` (prefixo de timestamps ISO
// é aceito). Retorna ok=false para entrada vazia ou malformada.
func Parse(s string) (Date, bool) {
	if len(s) < 10 || !isoDatePattern.MatchString(s) {
		return Date{}, false
	}
	t, err := time.ParseInLocation("2006-01-02", s[:10], time.Local)
	if err != nil {
		return Date{}, false
	}
	return Date{Year: t.Year(), Month: int(t.Month()), Day: t.Day()}, true
}

// Today retorna a data de hoje no relógio local.
func Today() Date {
	now := time.Now()
	return Date{Year: now.Year(), Month: int(now.Month()), Day: now.Day()}
}

// String devolve a forma ISO `YYYY-MM-DD`.
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// time converte para time.Time ancorado ao meio-dia local. A âncora de 12:00
// evita off-by-one ao atravessar mudanças de horário de verão no passo
// dia a dia.
func (d Date) time() time.Time {
	return time.Date(d.Year, time.Month(d.Month), d.Day, 12, 0, 0, 0, time.Local)
}

func fromTime(t time.Time) Date {
	return Date{Year: t.Year(), Month: int(t.Month()), Day: t.Day()}
}

// DaysInMonth retorna o número de dias do mês de d.
func (d Date) DaysInMonth() int {
	return daysInMonth(d.Year, d.Month)
}

func daysInMonth(year, month int) int {
	// Dia zero do mês seguinte = último dia do mês pedido.
	return time.Date(year, time.Month(month)+1, 0, 12, 0, 0, 0, time.Local).Day()
}

// AddMonths soma n meses de calendário (n pode ser negativo). O dia é
// preservado, exceto quando excede o tamanho do mês destino: aí é reduzido
// para o último dia válido (31/jan + 1 mês = 28 ou 29/fev, nunca março).
func (d Date) AddMonths(n int) Date {
	total := d.Year*12 + (d.Month - 1) + n
	year := floorDiv(total, 12)
	month := total - year*12 + 1

	day := d.Day
	if max := daysInMonth(year, month); day > max {
		day = max
	}
	return Date{Year: year, Month: month, Day: day}
}

// WithDay substitui o dia, com clamp para [1, dias do mês].
func (d Date) WithDay(targetDay int) Date {
	if targetDay < 1 {
		targetDay = 1
	}
	if max := d.DaysInMonth(); targetDay > max {
		targetDay = max
	}
	return Date{Year: d.Year, Month: d.Month, Day: targetDay}
}

// AddDays soma n dias corridos (n pode ser negativo).
func (d Date) AddDays(n int) Date {
	return fromTime(d.time().AddDate(0, 0, n))
}

// AddBusinessDays avança n dias úteis (seg–sex); sábados e domingos são
// pulados e não contam para n. Pré-condição: n >= 0.
func (d Date) AddBusinessDays(n int) Date {
	cur := d.time()
	for added := 0; added < n; {
		cur = cur.AddDate(0, 0, 1)
		if wd := cur.Weekday(); wd != time.Saturday && wd != time.Sunday {
			added++
		}
	}
	return fromTime(cur)
}

// Before reporta se d é estritamente anterior a other.
func (d Date) Before(other Date) bool {
	if d.Year != other.Year {
		return d.Year < other.Year
	}
	if d.Month != other.Month {
		return d.Month < other.Month
	}
	return d.Day < other.Day
}

// floorDiv divisão inteira com arredondamento para baixo (o operador / de Go
// trunca em direção a zero, o que quebra meses negativos).
func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

// ─────────────────────────────────────────────────────────────────────────────
// API de strings — contrato tolerante para dados de formulário
// ─────────────────────────────────────────────────────────────────────────────

// TodayStr retorna a data de hoje como string ISO.
func TodayStr() string {
	return Today().String()
}

// AddMonths soma n meses a uma data ISO. Entrada malformada ou vazia é
// devolvida sem alteração.
func AddMonths(dateStr string, n int) string {
	d, ok := Parse(dateStr)
	if !ok {
		return dateStr
	}
	return d.AddMonths(n).String()
}

// SetDayPreservingMonth define o dia de uma data ISO sem estourar o mês.
// Ex.: SetDayPreservingMonth("2023-02-10", 31) == "2023-02-28". Entrada
// malformada é devolvida sem alteração.
func SetDayPreservingMonth(dateStr string, targetDay int) string {
	d, ok := Parse(dateStr)
	if !ok {
		return dateStr
	}
	return d.WithDay(targetDay).String()
}

// AddBusinessDays avança n dias úteis a partir de uma data ISO. Entrada vazia
// ou malformada retorna vazio. Pré-condição: n >= 0.
func AddBusinessDays(dateStr string, n int) string {
	d, ok := Parse(dateStr)
	if !ok {
		return ""
	}
	return d.AddBusinessDays(n).String()
}

// CountBusinessDays conta os dias úteis no intervalo (start, end] — start
// exclusivo, end inclusivo. Retorna 0 quando end <= start ou quando qualquer
// lado está vazio/malformado.
func CountBusinessDays(startStr, endStr string) int {
	start, ok := Parse(startStr)
	if !ok {
		return 0
	}
	end, ok := Parse(endStr)
	if !ok {
		return 0
	}
	if !start.Before(end) {
		return 0
	}
	count := 0
	cur := start.time()
	target := end.time()
	for cur.Before(target) {
		cur = cur.AddDate(0, 0, 1)
		if wd := cur.Weekday(); wd != time.Saturday && wd != time.Sunday {
			count++
		}
	}
	return count
}

// IsExpired reporta se passaram estritamente mais de validityDays dias
// inteiros desde dateStr até hoje. Data vazia ou malformada nunca expira —
// ausência de data não é vencimento.
func IsExpired(dateStr string, validityDays int) bool {
	return IsExpiredAt(dateStr, validityDays, Today())
}

// IsExpiredAt é IsExpired com data de referência explícita (relatórios e
// testes).
func IsExpiredAt(dateStr string, validityDays int, ref Date) bool {
	issued, ok := Parse(dateStr)
	if !ok {
		return false
	}
	// Âncora de meio-dia garante que a diferença fica a menos de 1h de um
	// múltiplo de 24h mesmo cruzando horário de verão; Round fecha a conta.
	elapsed := int(ref.time().Sub(issued.time()).Round(24*time.Hour) / (24 * time.Hour))
	return elapsed > validityDays
}
