// Package format concentra a formatação pt-BR de apresentação: máscaras de
// CNPJ e telefone, moeda BRL e data DD/MM/YYYY. O núcleo do sistema sempre
// trafega datas ISO e valores decimal; a localização acontece só aqui.
package format

import (
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/Luiz-H456/botezini/pkg/dates"
)

var ptBR = message.NewPrinter(language.BrazilianPortuguese)

// Currency formata um valor como moeda brasileira, ex.: "R$ 1.234,56".
func Currency(v decimal.Decimal) string {
	f, _ := v.Float64()
	return ptBR.Sprintf("R$ %v", number.Decimal(f,
		number.MinFractionDigits(2),
		number.MaxFractionDigits(2),
	))
}

// Date converte uma data ISO para DD/MM/YYYY. Entrada vazia vira "-";
// entrada que não casa com o padrão ISO é devolvida como veio.
func Date(dateStr string) string {
	if dateStr == "" {
		return "-"
	}
	d, ok := dates.Parse(dateStr)
	if !ok {
		return dateStr
	}
	s := d.String() // YYYY-MM-DD normalizado
	return s[8:10] + "/" + s[5:7] + "/" + s[0:4]
}

// CNPJ aplica a máscara 00.000.000/0000-00 sobre os dígitos da entrada.
// Entrada incompleta é mascarada até onde os dígitos alcançam.
func CNPJ(v string) string {
	d := digits(v)
	if len(d) > 14 {
		d = d[:14]
	}
	var b strings.Builder
	for i, r := range d {
		switch i {
		case 2, 5:
			b.WriteByte('.')
		case 8:
			b.WriteByte('/')
		case 12:
			b.WriteByte('-')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Phone aplica a máscara (00) 00000-0000 (ou 0000-0000 para fixo) sobre os
// dígitos da entrada.
func Phone(v string) string {
	d := digits(v)
	if len(d) > 11 {
		d = d[:11]
	}
	if len(d) <= 2 {
		return d
	}
	rest := d[2:]
	if len(rest) <= 4 {
		return "(" + d[:2] + ") " + rest
	}
	split := len(rest) - 4
	return "(" + d[:2] + ") " + rest[:split] + "-" + rest[split:]
}

func digits(v string) string {
	var b strings.Builder
	for _, r := range v {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
