package repository

import (
	"crmserver/internal/domain/entity"
	"errors"

	"gorm.io/gorm"
)

type DefaultProjectRepository struct {
	db *gorm.DB
}

func NewProjectRepository(db *gorm.DB) *DefaultProjectRepository {
	return &DefaultProjectRepository{db: db}
}

func (r *DefaultProjectRepository) FindByID(id int) (*entity.Project, error) {
	var project entity.Project
	err := r.db.First(&project, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}
	return &project, nil
}

func (r *DefaultProjectRepository) FindByCompanyID(companyID int) ([]*entity.Project, error) {
	var projects []*entity.Project
	err := r.db.
		Where("company_id = ?", companyID).
		Order("start_date").
		Find(&projects).Error
	if err != nil {
		return nil, err
	}
	return projects, nil
}

func (r *DefaultProjectRepository) Save(project *entity.Project) error {
	return r.db.Save(project).Error
}

// Delete removes the project together with its interactions.
func (r *DefaultProjectRepository) Delete(project *entity.Project) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("project_id = ?", project.ID).Delete(&entity.Interaction{}).Error; err != nil {
			return err
		}
		return tx.Delete(project).Error
	})
}

func (r *DefaultProjectRepository) CountInteractions(projectID int) (int64, error) {
	var total int64
	err := r.db.Model(&entity.Interaction{}).
		Where("project_id = ?", projectID).
		Count(&total).Error
	return total, err
}
