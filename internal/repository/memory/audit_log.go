package memory

import (
	"context"

	"github.com/AlexCL0320/backend-banco-angeles/internal/domain/entity"
	domainRepo "github.com/AlexCL0320/backend-banco-angeles/internal/domain/repository"
)

type auditLogRepository struct {
	s *Store
}

func NewAuditLogRepository(s *Store) domainRepo.AuditLogRepository {
	return &auditLogRepository{s: s}
}

func (r *auditLogRepository) Create(_ context.Context, log *entity.AuditLog) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	log.ID = r.s.nextID("audit_logs")
	log.CreatedAt = r.s.now()
	r.s.auditLogs = append(r.s.auditLogs, *log)
	return nil
}

// FindAll pages through the logs newest first.
func (r *auditLogRepository) FindAll(_ context.Context, limit, offset int) ([]entity.AuditLog, int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	total := len(r.s.auditLogs)
	out := []entity.AuditLog{}
	for i := total - 1 - offset; i >= 0 && len(out) < limit; i-- {
		out = append(out, r.s.auditLogs[i])
	}
	return out, int64(total), nil
}

func (r *auditLogRepository) FindByID(_ context.Context, id int64) (*entity.AuditLog, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, log := range r.s.auditLogs {
		if log.ID == id {
			return &log, nil
		}
	}
	return nil, nil
}
