package memory

import (
	"context"

	"github.com/joseotaviopc/api-ari/internal/common"
	"github.com/joseotaviopc/api-ari/internal/server/models"
)

type baseRepo struct {
	s *store
}

func (r *baseRepo) List(ctx context.Context) ([]models.Base, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	out := make([]models.Base, 0, len(r.s.bases))
	for _, id := range sortedKeys(r.s.bases) {
		out = append(out, r.s.bases[id])
	}
	return out, nil
}

func (r *baseRepo) Get(ctx context.Context, id int64) (*models.Base, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	b, ok := r.s.bases[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return &b, nil
}

func (r *baseRepo) Create(ctx context.Context, b *models.Base) (*models.Base, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if r.nomeTaken(0, b.Nome) {
		return nil, uniqueViolation("bases_nome_key")
	}
	now := r.s.now()
	b.ID = r.s.id("bases")
	b.CreatedAt, b.UpdatedAt = now, now
	r.s.bases[b.ID] = *b
	return b, nil
}

func (r *baseRepo) Update(ctx context.Context, b *models.Base) (*models.Base, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	old, ok := r.s.bases[b.ID]
	if !ok {
		return nil, common.ErrorNotFound
	}
	if r.nomeTaken(b.ID, b.Nome) {
		return nil, uniqueViolation("bases_nome_key")
	}
	b.CreatedAt = old.CreatedAt
	b.UpdatedAt = r.s.now()
	r.s.bases[b.ID] = *b
	return b, nil
}

func (r *baseRepo) Delete(ctx context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.bases[id]; !ok {
		return common.ErrorNotFound
	}
	for _, u := range r.s.users {
		if u.BaseID == id {
			return foreignKeyViolation("ari_users_id_base_fkey")
		}
	}
	for _, c := range r.s.clientes {
		if c.BaseID == id {
			return foreignKeyViolation("clientes_id_base_fkey")
		}
	}
	delete(r.s.bases, id)
	return nil
}

func (r *baseRepo) nomeTaken(self int64, nome string) bool {
	for id, b := range r.s.bases {
		if id != self && b.Nome == nome {
			return true
		}
	}
	return false
}
