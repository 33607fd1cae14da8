package dates_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Luiz-H456/botezini/pkg/dates"
)

// ─────────────────────────────────────────────────────────────────────────────
// AddMonths
// ─────────────────────────────────────────────────────────────────────────────

func TestAddMonths_ClampFimDeMes(t *testing.T) {
	// 2024 é bissexto: 31/jan + 1 mês = 29/fev, nunca março.
	assert.Equal(t, "2024-02-29", dates.AddMonths("2024-01-31", 1))
	assert.Equal(t, "2023-02-28", dates.AddMonths("2023-01-31", 1))
	assert.Equal(t, "2023-04-30", dates.AddMonths("2023-03-31", 1))
}

func TestAddMonths_ViradaDeAno(t *testing.T) {
	assert.Equal(t, "2024-01-15", dates.AddMonths("2023-11-15", 2))
	assert.Equal(t, "2022-12-15", dates.AddMonths("2023-02-15", -2))
	assert.Equal(t, "2020-03-10", dates.AddMonths("2023-03-10", -36))
}

func TestAddMonths_EntradaMalformadaDevolvidaSemAlteracao(t *testing.T) {
	assert.Equal(t, "", dates.AddMonths("", 3))
	assert.Equal(t, "31/01/2024", dates.AddMonths("31/01/2024", 1))
	assert.Equal(t, "sem-data", dates.AddMonths("sem-data", 1))
}

// Ida e volta: o dia pode só diminuir (igual quando não houve clamp).
func TestAddMonths_IdaEVoltaNuncaAumentaODia(t *testing.T) {
	cases := []struct {
		date string
		n    int
	}{
		{"2024-01-31", 1},
		{"2024-03-31", 1},
		{"2023-05-15", 7},
		{"2024-08-30", -6},
		{"2023-12-31", 2},
	}
	for _, tc := range cases {
		orig, ok := dates.Parse(tc.date)
		require.True(t, ok)

		roundTrip := dates.AddMonths(dates.AddMonths(tc.date, tc.n), -tc.n)
		back, ok := dates.Parse(roundTrip)
		require.True(t, ok, "ida e volta deve produzir data válida: %s", roundTrip)

		assert.Equal(t, orig.Year, back.Year, "%s %+d", tc.date, tc.n)
		assert.Equal(t, orig.Month, back.Month, "%s %+d", tc.date, tc.n)
		assert.LessOrEqual(t, back.Day, orig.Day, "%s %+d", tc.date, tc.n)
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// SetDayPreservingMonth
// ─────────────────────────────────────────────────────────────────────────────

func TestSetDayPreservingMonth(t *testing.T) {
	assert.Equal(t, "2023-02-28", dates.SetDayPreservingMonth("2023-02-10", 31))
	assert.Equal(t, "2024-02-29", dates.SetDayPreservingMonth("2024-02-10", 31))
	assert.Equal(t, "2023-04-30", dates.SetDayPreservingMonth("2023-04-02", 31))
	assert.Equal(t, "2023-06-05", dates.SetDayPreservingMonth("2023-06-20", 5))
	assert.Equal(t, "2023-06-01", dates.SetDayPreservingMonth("2023-06-20", 0))
}

// ─────────────────────────────────────────────────────────────────────────────
// Dias úteis
// ─────────────────────────────────────────────────────────────────────────────

func TestAddBusinessDays_PulaFimDeSemana(t *testing.T) {
	// 05/01/2024 é sexta-feira: o próximo dia útil é segunda 08/01.
	assert.Equal(t, "2024-01-08", dates.AddBusinessDays("2024-01-05", 1))
	assert.Equal(t, "2024-01-12", dates.AddBusinessDays("2024-01-05", 5))
	assert.Equal(t, "2024-01-05", dates.AddBusinessDays("2024-01-05", 0))
	// Partindo de sábado, 1 dia útil cai na segunda.
	assert.Equal(t, "2024-01-08", dates.AddBusinessDays("2024-01-06", 1))
}

func TestAddBusinessDays_EntradaVazia(t *testing.T) {
	assert.Equal(t, "", dates.AddBusinessDays("", 3))
}

func TestCountBusinessDays(t *testing.T) {
	assert.Equal(t, 1, dates.CountBusinessDays("2024-01-05", "2024-01-08"))
	assert.Equal(t, 5, dates.CountBusinessDays("2024-01-05", "2024-01-12"))
	// Semana inteira dentro do intervalo: sáb/dom não contam.
	assert.Equal(t, 10, dates.CountBusinessDays("2024-01-01", "2024-01-15"))
}

func TestCountBusinessDays_IntervaloVazioOuInvertido(t *testing.T) {
	assert.Equal(t, 0, dates.CountBusinessDays("2024-01-08", "2024-01-08"))
	assert.Equal(t, 0, dates.CountBusinessDays("2024-01-08", "2024-01-05"))
	assert.Equal(t, 0, dates.CountBusinessDays("", "2024-01-05"))
	assert.Equal(t, 0, dates.CountBusinessDays("2024-01-05", ""))
}

// AddBusinessDays e CountBusinessDays são inversos para n > 0.
func TestBusinessDays_SomaEContagemConsistentes(t *testing.T) {
	start := "2024-02-07" // quarta-feira
	for n := 1; n <= 15; n++ {
		end := dates.AddBusinessDays(start, n)
		assert.Equal(t, n, dates.CountBusinessDays(start, end), "n=%d end=%s", n, end)
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Períodos
// ─────────────────────────────────────────────────────────────────────────────

func TestInPeriod_Trimestre(t *testing.T) {
	// Ambas em Q1.
	assert.True(t, dates.InPeriod("2024-03-15", dates.PeriodQuarter, "2024-02-01"))
	// Abril já é Q2.
	assert.False(t, dates.InPeriod("2024-04-01", dates.PeriodQuarter, "2024-02-01"))
	assert.False(t, dates.InPeriod("2023-02-15", dates.PeriodQuarter, "2024-02-01"))
}

func TestInPeriod_Semestre(t *testing.T) {
	assert.True(t, dates.InPeriod("2024-06-30", dates.PeriodSemester, "2024-01-10"))
	assert.False(t, dates.InPeriod("2024-07-01", dates.PeriodSemester, "2024-01-10"))
	assert.True(t, dates.InPeriod("2024-12-31", dates.PeriodSemester, "2024-07-01"))
}

func TestInPeriod_Semana_DomingoASabado(t *testing.T) {
	// 2024-01-10 é quarta; a semana vai de domingo 07 a sábado 13.
	ref := "2024-01-10"
	assert.True(t, dates.InPeriod("2024-01-07", dates.PeriodWeek, ref))
	assert.True(t, dates.InPeriod("2024-01-13", dates.PeriodWeek, ref))
	assert.False(t, dates.InPeriod("2024-01-06", dates.PeriodWeek, ref))
	assert.False(t, dates.InPeriod("2024-01-14", dates.PeriodWeek, ref))
}

func TestInPeriod_DiaMesAno(t *testing.T) {
	assert.True(t, dates.InPeriod("2024-05-20", dates.PeriodDay, "2024-05-20"))
	assert.False(t, dates.InPeriod("2024-05-21", dates.PeriodDay, "2024-05-20"))
	assert.True(t, dates.InPeriod("2024-05-01", dates.PeriodMonth, "2024-05-20"))
	assert.False(t, dates.InPeriod("2024-06-01", dates.PeriodMonth, "2024-05-20"))
	assert.True(t, dates.InPeriod("2024-01-01", dates.PeriodYear, "2024-12-31"))
}

func TestInPeriod_InclusivoPorPadrao(t *testing.T) {
	// ALL inclui tudo; data vazia nunca é excluída de relatório.
	assert.True(t, dates.InPeriod("1999-01-01", dates.PeriodAll, "2024-05-20"))
	assert.True(t, dates.InPeriod("", dates.PeriodMonth, "2024-05-20"))
	assert.True(t, dates.InPeriod("rabisco", dates.PeriodWeek, "2024-05-20"))
}

func TestParsePeriod(t *testing.T) {
	assert.Equal(t, dates.PeriodQuarter, dates.ParsePeriod("QUARTER"))
	assert.Equal(t, dates.PeriodAll, dates.ParsePeriod(""))
	assert.Equal(t, dates.PeriodAll, dates.ParsePeriod("quinzena"))
}

// ─────────────────────────────────────────────────────────────────────────────
// Validade
// ─────────────────────────────────────────────────────────────────────────────

func TestIsExpired(t *testing.T) {
	ref, ok := dates.Parse("2024-05-20")
	require.True(t, ok)

	// Emitida hoje nunca está vencida com validade >= 0.
	assert.False(t, dates.IsExpiredAt("2024-05-20", 0, ref))
	assert.False(t, dates.IsExpiredAt("2024-05-20", 15, ref))

	// Vence só quando passam estritamente mais dias que a validade.
	assert.False(t, dates.IsExpiredAt("2024-05-10", 10, ref))
	assert.True(t, dates.IsExpiredAt("2024-05-09", 10, ref))

	// Sem data de emissão, nunca vencida.
	assert.False(t, dates.IsExpiredAt("", 10, ref))
	assert.False(t, dates.IsExpiredAt("data-livre", 10, ref))
}

func TestIsExpired_HojeComRelogioReal(t *testing.T) {
	today := dates.TodayStr()
	assert.False(t, dates.IsExpired(today, 0))

	elevenDaysAgo := dates.Today().AddDays(-11).String()
	assert.True(t, dates.IsExpired(elevenDaysAgo, 10))
	assert.False(t, dates.IsExpired(elevenDaysAgo, 11))
}

func TestParse(t *testing.T) {
	d, ok := dates.Parse("2024-02-29")
	require.True(t, ok)
	assert.Equal(t, "2024-02-29", d.String())

	// Timestamps ISO são aceitos pelo prefixo.
	d, ok = dates.Parse("2024-02-29T15:04:05Z")
	require.True(t, ok)
	assert.Equal(t, 29, d.Day)

	_, ok = dates.Parse("2023-02-29") // não existe em ano comum
	assert.False(t, ok)
	_, ok = dates.Parse("2023-13-01")
	assert.False(t, ok)
	_, ok = dates.Parse("")
	assert.False(t, ok)
}
