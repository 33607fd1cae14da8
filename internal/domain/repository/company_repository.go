package repository

import "github.com/Luiz-H456/botezini/internal/domain/entity"

// CompanyRepository persiste o cadastro único da empresa.
type CompanyRepository interface {
	// Get devolve o perfil da empresa, ou nil se ainda não foi preenchido.
	Get() (*entity.CompanyProfile, error)
	// Save cria ou substitui o perfil (upsert do registro único).
	Save(profile *entity.CompanyProfile) error
}
