package models

import "time"

// Base is a tenant. Users and clientes belong to exactly one base.
type Base struct {
	ID        int64     `gorm:"primaryKey" json:"id" example:"1"`
	Nome      string    `gorm:"size:120;uniqueIndex;not null" json:"nome" example:"Matriz"`
	Ativo     bool      `gorm:"not null" json:"ativo" example:"true"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (Base) TableName() string { return "bases" }

// BasePatch carries the mutable fields of a base; nil means unchanged.
type BasePatch struct {
	Nome  *string
	Ativo *bool
}

// Apply copies the set fields of p onto b.
func (p BasePatch) Apply(b *Base) {
	if p.Nome != nil {
		b.Nome = *p.Nome
	}
	if p.Ativo != nil {
		b.Ativo = *p.Ativo
	}
}
