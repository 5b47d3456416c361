package httpapi

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
	"github.com/joseotaviopc/api-ari/internal/server/models"
)

// Password length is bounded above by what bcrypt can hash.
const (
	minPasswordLen = 6
	maxPasswordLen = 72
	maxNameLen     = 120
)

// LoginRequest represents the login request payload.
type LoginRequest struct {
	Email    string `json:"email" example:"alice@prisma.io"`
	Password string `json:"password" example:"password123"`
}

func (r LoginRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email, validation.Required, is.Email),
		validation.Field(&r.Password, validation.Required, validation.Length(minPasswordLen, 0)),
	)
}

// RegisterRequest represents the registration payload; POST /users takes the
// same shape.
type RegisterRequest struct {
	Email    string `json:"email" example:"alice@prisma.io"`
	Password string `json:"password" example:"password123"`
	Name     string `json:"name" example:"Alice"`
}

func (r RegisterRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email, validation.Required, is.Email, validation.Length(0, 255)),
		validation.Field(&r.Password, validation.Required, validation.Length(minPasswordLen, maxPasswordLen)),
		validation.Field(&r.Name, validation.Required, validation.Length(1, maxNameLen)),
	)
}

// UpdateUserRequest represents a partial user update. Omitted fields are
// left unchanged.
type UpdateUserRequest struct {
	Name     *string `json:"name,omitempty" example:"Alicia"`
	IsActive *bool   `json:"isActive,omitempty" example:"true"`
	Password *string `json:"password,omitempty" example:"n3w-pass"`
}

func (r UpdateUserRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.NilOrNotEmpty, validation.Length(1, maxNameLen)),
		validation.Field(&r.Password, validation.NilOrNotEmpty, validation.Length(minPasswordLen, maxPasswordLen)),
	)
}

func (r UpdateUserRequest) patch() models.UserPatch {
	return models.UserPatch{Name: r.Name, IsActive: r.IsActive, Password: r.Password}
}

// LoginResponse carries the signed access token.
type LoginResponse struct {
	AccessToken string `json:"accessToken"`
}

// ClienteRequest is the payload of POST /cliente. Money is in centavos.
type ClienteRequest struct {
	PessoaID          int64      `json:"idPessoa" example:"101"`
	VendedorID        *int64     `json:"idVendedor,omitempty" example:"201"`
	LimiteCredito     int64      `json:"limiteCredito" example:"100050"`
	Ativo             *bool      `json:"ativo,omitempty" example:"true"`
	Observacao        *string    `json:"observacao,omitempty" example:"Cliente prefere contato por e-mail."`
	Score             *int32     `json:"score,omitempty" example:"750"`
	UltimaCompra      *time.Time `json:"ultimaCompra,omitempty"`
	ValorUltimaCompra *int64     `json:"valorUltimaCompra,omitempty" example:"15075"`
	Negativado        bool       `json:"negativado" example:"false"`
	Bloqueado         bool       `json:"bloqueado" example:"false"`
}

func (r ClienteRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.PessoaID, validation.Required, validation.Min(1)),
		validation.Field(&r.VendedorID, validation.Min(1)),
		validation.Field(&r.LimiteCredito, validation.Min(0)),
		validation.Field(&r.Observacao, validation.Length(0, 500)),
		validation.Field(&r.ValorUltimaCompra, validation.Min(0)),
	)
}

func (r ClienteRequest) model() *models.Cliente {
	ativo := true
	if r.Ativo != nil {
		ativo = *r.Ativo
	}
	return &models.Cliente{
		PessoaID:          r.PessoaID,
		VendedorID:        r.VendedorID,
		LimiteCredito:     r.LimiteCredito,
		Ativo:             ativo,
		Observacao:        r.Observacao,
		Score:             r.Score,
		UltimaCompra:      r.UltimaCompra,
		ValorUltimaCompra: r.ValorUltimaCompra,
		Negativado:        r.Negativado,
		Bloqueado:         r.Bloqueado,
	}
}

// UpdateClienteRequest is a partial update of a cliente.
type UpdateClienteRequest struct {
	PessoaID          *int64     `json:"idPessoa,omitempty"`
	VendedorID        *int64     `json:"idVendedor,omitempty"`
	LimiteCredito     *int64     `json:"limiteCredito,omitempty"`
	Ativo             *bool      `json:"ativo,omitempty"`
	Observacao        *string    `json:"observacao,omitempty"`
	Score             *int32     `json:"score,omitempty"`
	UltimaCompra      *time.Time `json:"ultimaCompra,omitempty"`
	ValorUltimaCompra *int64     `json:"valorUltimaCompra,omitempty"`
	Negativado        *bool      `json:"negativado,omitempty"`
	Bloqueado         *bool      `json:"bloqueado,omitempty"`
}

func (r UpdateClienteRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.PessoaID, validation.Min(1)),
		validation.Field(&r.VendedorID, validation.Min(1)),
		validation.Field(&r.LimiteCredito, validation.Min(0)),
		validation.Field(&r.Observacao, validation.Length(0, 500)),
		validation.Field(&r.ValorUltimaCompra, validation.Min(0)),
	)
}

func (r UpdateClienteRequest) patch() models.ClientePatch {
	return models.ClientePatch{
		PessoaID:          r.PessoaID,
		VendedorID:        r.VendedorID,
		LimiteCredito:     r.LimiteCredito,
		Ativo:             r.Ativo,
		Observacao:        r.Observacao,
		Score:             r.Score,
		UltimaCompra:      r.UltimaCompra,
		ValorUltimaCompra: r.ValorUltimaCompra,
		Negativado:        r.Negativado,
		Bloqueado:         r.Bloqueado,
	}
}

// BaseRequest creates a base.
type BaseRequest struct {
	Nome  string `json:"nome" example:"Filial Norte"`
	Ativo *bool  `json:"ativo,omitempty" example:"true"`
}

func (r BaseRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Nome, validation.Required, validation.Length(1, maxNameLen)),
	)
}

// UpdateBaseRequest is a partial update of a base.
type UpdateBaseRequest struct {
	Nome  *string `json:"nome,omitempty"`
	Ativo *bool   `json:"ativo,omitempty"`
}

func (r UpdateBaseRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Nome, validation.NilOrNotEmpty, validation.Length(1, maxNameLen)),
	)
}
