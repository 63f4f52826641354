package repository

import (
	"crmserver/internal/domain/entity"
	"errors"

	"gorm.io/gorm"
)

type DefaultInteractionRepository struct {
	db *gorm.DB
}

func NewInteractionRepository(db *gorm.DB) *DefaultInteractionRepository {
	return &DefaultInteractionRepository{db: db}
}

func (r *DefaultInteractionRepository) FindByID(id int) (*entity.Interaction, error) {
	var interaction entity.Interaction
	err := r.db.First(&interaction, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}
	return &interaction, nil
}

func (r *DefaultInteractionRepository) FindByProjectID(projectID int) ([]*entity.Interaction, error) {
	var interactions []*entity.Interaction
	err := r.db.
		Where("project_id = ?", projectID).
		Order("published_at DESC").
		Find(&interactions).Error
	if err != nil {
		return nil, err
	}
	return interactions, nil
}

// FindByManagerID backs the "my interactions" listing.
func (r *DefaultInteractionRepository) FindByManagerID(managerID int64) ([]*entity.Interaction, error) {
	var interactions []*entity.Interaction
	err := r.db.
		Where("manager_id = ?", managerID).
		Order("published_at DESC").
		Find(&interactions).Error
	if err != nil {
		return nil, err
	}
	return interactions, nil
}

func (r *DefaultInteractionRepository) Save(interaction *entity.Interaction) error {
	return r.db.Save(interaction).Error
}

func (r *DefaultInteractionRepository) Delete(interaction *entity.Interaction) error {
	return r.db.Delete(interaction).Error
}
