package dto

// NavigateRequest pedido de navegação de visão, com termo de busca opcional
// carregado para a visão de destino.
type NavigateRequest struct {
	View       string `json:"view" validate:"required"`
	SearchTerm string `json:"search_term"`
}

// SessionStateResponse fotografia da guarda de sessão para o front.
type SessionStateResponse struct {
	State      string `json:"state"` // loading | authenticated | unauthenticated
	View       string `json:"view"`
	Role       string `json:"role,omitempty"`
	RoleLabel  string `json:"role_label,omitempty"`
	UserName   string `json:"user_name,omitempty"`
	SearchTerm string `json:"search_term,omitempty"` // consumido nesta resposta
}
