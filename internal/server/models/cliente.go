package models

import "time"

// Cliente is a customer of a base (tenant). Money amounts are stored in
// centavos.
type Cliente struct {
	ID                int64      `gorm:"primaryKey" json:"id" example:"1"`
	BaseID            int64      `gorm:"column:id_base;not null" json:"idBase" example:"1"`
	PessoaID          int64      `gorm:"column:id_pessoa;not null" json:"idPessoa" example:"101"`
	VendedorID        *int64     `gorm:"column:id_vendedor" json:"idVendedor" example:"201"`
	LimiteCredito     int64      `gorm:"column:limite_credito;not null" json:"limiteCredito" example:"100050"`
	Ativo             bool       `gorm:"column:ativo;not null" json:"ativo" example:"true"`
	Observacao        *string    `gorm:"column:observacao;size:500" json:"observacao" example:"Cliente prefere contato por e-mail."`
	Score             *int32     `gorm:"column:score" json:"score" example:"750"`
	UltimaCompra      *time.Time `gorm:"column:ultima_compra" json:"ultimaCompra"`
	ValorUltimaCompra *int64     `gorm:"column:valor_ultima_compra" json:"valorUltimaCompra" example:"15075"`
	Negativado        bool       `gorm:"column:negativado;not null" json:"negativado" example:"false"`
	Bloqueado         bool       `gorm:"column:bloqueado;not null" json:"bloqueado" example:"false"`
	CriadoEm          time.Time  `gorm:"column:criado_em;autoCreateTime" json:"criadoEm"`
	AtualizadoEm      time.Time  `gorm:"column:atualizado_em;autoUpdateTime" json:"atualizadoEm"`
}

func (Cliente) TableName() string { return "clientes" }

// ClientePatch carries the mutable fields of a cliente; nil means unchanged.
type ClientePatch struct {
	PessoaID          *int64
	VendedorID        *int64
	LimiteCredito     *int64
	Ativo             *bool
	Observacao        *string
	Score             *int32
	UltimaCompra      *time.Time
	ValorUltimaCompra *int64
	Negativado        *bool
	Bloqueado         *bool
}

// Apply copies the set fields of p onto c.
func (p ClientePatch) Apply(c *Cliente) {
	if p.PessoaID != nil {
		c.PessoaID = *p.PessoaID
	}
	if p.VendedorID != nil {
		c.VendedorID = p.VendedorID
	}
	if p.LimiteCredito != nil {
		c.LimiteCredito = *p.LimiteCredito
	}
	if p.Ativo != nil {
		c.Ativo = *p.Ativo
	}
	if p.Observacao != nil {
		c.Observacao = p.Observacao
	}
	if p.Score != nil {
		c.Score = p.Score
	}
	if p.UltimaCompra != nil {
		c.UltimaCompra = p.UltimaCompra
	}
	if p.ValorUltimaCompra != nil {
		c.ValorUltimaCompra = p.ValorUltimaCompra
	}
	if p.Negativado != nil {
		c.Negativado = *p.Negativado
	}
	if p.Bloqueado != nil {
		c.Bloqueado = *p.Bloqueado
	}
}
