package memory

import (
	"context"

	"github.com/joseotaviopc/api-ari/internal/common"
	"github.com/joseotaviopc/api-ari/internal/server/models"
)

type clienteRepo struct {
	s *store
}

func (r *clienteRepo) List(ctx context.Context, baseID int64) ([]models.Cliente, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	out := []models.Cliente{}
	for _, id := range sortedKeys(r.s.clientes) {
		if c := r.s.clientes[id]; c.BaseID == baseID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *clienteRepo) Get(ctx context.Context, baseID, id int64) (*models.Cliente, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	c, ok := r.s.clientes[id]
	if !ok || c.BaseID != baseID {
		return nil, common.ErrorNotFound
	}
	return &c, nil
}

func (r *clienteRepo) Create(ctx context.Context, c *models.Cliente) (*models.Cliente, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.bases[c.BaseID]; !ok {
		return nil, foreignKeyViolation("clientes_id_base_fkey")
	}
	now := r.s.now()
	c.ID = r.s.id("clientes")
	c.CriadoEm, c.AtualizadoEm = now, now
	r.s.clientes[c.ID] = *c
	return c, nil
}

func (r *clienteRepo) Update(ctx context.Context, c *models.Cliente) (*models.Cliente, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	old, ok := r.s.clientes[c.ID]
	if !ok || old.BaseID != c.BaseID {
		return nil, common.ErrorNotFound
	}
	c.CriadoEm = old.CriadoEm
	c.AtualizadoEm = r.s.now()
	r.s.clientes[c.ID] = *c
	return c, nil
}

func (r *clienteRepo) Delete(ctx context.Context, baseID, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	c, ok := r.s.clientes[id]
	if !ok || c.BaseID != baseID {
		return common.ErrorNotFound
	}
	delete(r.s.clientes, id)
	return nil
}
