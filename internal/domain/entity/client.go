package entity

import "time"

// Client representa um cliente (pessoa jurídica na maioria dos casos).
type Client struct {
	ID            string
	CompanyName   string
	Category      string
	CNPJ          string
	ContactPerson string
	Email         string
	Phone         string
	Address       string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Supplier representa um fornecedor de insumos (tecidos, aviamentos,
// personalização terceirizada). Mesma forma do cliente, cadastro separado.
type Supplier struct {
	ID            string
	CompanyName   string
	Category      string
	CNPJ          string
	ContactPerson string
	Email         string
	Phone         string
	Address       string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
