package persistence

import (
	"context"

	"gorm.io/gorm"

	"github.com/agence/backend/internal/domain/consultant"
	"github.com/agence/backend/internal/domain/shared"
	"github.com/agence/backend/internal/infrastructure/persistence/models"
)

// GormConsultantRepository implements consultant.Repository using GORM
type GormConsultantRepository struct {
	db *gorm.DB
}

// NewGormConsultantRepository creates a new GormConsultantRepository
func NewGormConsultantRepository(db *gorm.DB) *GormConsultantRepository {
	return &GormConsultantRepository{db: db}
}

// List returns one page of eligible consultants ordered by co_usuario.
// Total is counted over the same scope with the window removed.
func (r *GormConsultantRepository) List(ctx context.Context, params shared.PageParams) (shared.Page[consultant.Consultant], error) {
	params = params.Normalize()

	var total int64
	if err := r.scopedQuery(ctx).Count(&total).Error; err != nil {
		return shared.Page[consultant.Consultant]{}, err
	}

	var userModels []models.UserModel
	if err := r.scopedQuery(ctx).
		Order("cao_usuario.co_usuario").
		Limit(params.Limit).
		Offset(params.Offset).
		Find(&userModels).Error; err != nil {
		return shared.Page[consultant.Consultant]{}, err
	}

	consultants := make([]consultant.Consultant, len(userModels))
	for i, model := range userModels {
		consultants[i] = model.ToDomain()
	}
	return shared.NewPage(consultants, total, params), nil
}

// scopedQuery restricts cao_usuario to users holding an active consultant
// permission on the CAO system.
func (r *GormConsultantRepository) scopedQuery(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Model(&models.UserModel{}).
		Joins("INNER JOIN permissao_sistema ON cao_usuario.co_usuario = permissao_sistema.co_usuario").
		Where("permissao_sistema.co_sistema = ?", consultant.SystemID).
		Where("permissao_sistema.in_ativo = ?", consultant.ActiveFlag).
		Where("permissao_sistema.co_tipo_usuario IN ?", consultant.RoleCodes)
}

// Ensure GormConsultantRepository implements consultant.Repository
var _ consultant.Repository = (*GormConsultantRepository)(nil)
