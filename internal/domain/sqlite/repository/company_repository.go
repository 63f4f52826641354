package repository

import (
	"crmserver/internal/domain/entity"
	"errors"

	"gorm.io/gorm"
)

type DefaultCompanyRepository struct {
	db *gorm.DB
}

func NewCompanyRepository(db *gorm.DB) *DefaultCompanyRepository {
	return &DefaultCompanyRepository{db: db}
}

func (r *DefaultCompanyRepository) FindPage(offset, limit int) ([]*entity.Company, error) {
	var companies []*entity.Company
	err := r.db.
		Order("name").
		Offset(offset).
		Limit(limit).
		Find(&companies).Error
	if err != nil {
		return nil, err
	}
	return companies, nil
}

func (r *DefaultCompanyRepository) FindByID(id int) (*entity.Company, error) {
	var company entity.Company
	err := r.db.
		Preload("Phones").
		Preload("Emails").
		Preload("Projects").
		First(&company, id).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}
	return &company, nil
}

// CreateWithContacts persists the company first and only then its contact
// rows, since the children need the freshly assigned company ID. Validation
// is expected to be fully done before this is called; nothing here is
// allowed to fail on user input.
func (r *DefaultCompanyRepository) CreateWithContacts(company *entity.Company, phones []*entity.Phone, emails []*entity.Email) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(company).Error; err != nil {
			return err
		}

		for _, phone := range phones {
			phone.CompanyID = company.ID
			if err := tx.Create(phone).Error; err != nil {
				return err
			}
		}

		for _, email := range emails {
			email.CompanyID = company.ID
			if err := tx.Create(email).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// UpdateWithContacts rewrites the parent row and applies the contact diff:
// rows in the delete lists are removed, rows with an ID are rewritten in
// place, rows without one are inserted against the already-known company ID.
// Every targeted row must belong to this company; an unknown or foreign ID
// aborts the whole save with gorm.ErrRecordNotFound.
func (r *DefaultCompanyRepository) UpdateWithContacts(
	company *entity.Company,
	phones []*entity.Phone,
	emails []*entity.Email,
	deletePhoneIDs []int,
	deleteEmailIDs []int,
) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(company).Error; err != nil {
			return err
		}

		if len(deletePhoneIDs) > 0 {
			err := tx.
				Where("company_id = ?", company.ID).
				Delete(&entity.Phone{}, deletePhoneIDs).Error
			if err != nil {
				return err
			}
		}

		if len(deleteEmailIDs) > 0 {
			err := tx.
				Where("company_id = ?", company.ID).
				Delete(&entity.Email{}, deleteEmailIDs).Error
			if err != nil {
				return err
			}
		}

		for _, phone := range phones {
			if phone.ID > 0 {
				res := tx.Model(&entity.Phone{}).
					Where("id = ? AND company_id = ?", phone.ID, company.ID).
					Update("number", phone.Number)
				if res.Error != nil {
					return res.Error
				}
				if res.RowsAffected == 0 {
					return gorm.ErrRecordNotFound
				}
				continue
			}

			phone.CompanyID = company.ID
			if err := tx.Create(phone).Error; err != nil {
				return err
			}
		}

		for _, email := range emails {
			if email.ID > 0 {
				res := tx.Model(&entity.Email{}).
					Where("id = ? AND company_id = ?", email.ID, company.ID).
					Update("address", email.Address)
				if res.Error != nil {
					return res.Error
				}
				if res.RowsAffected == 0 {
					return gorm.ErrRecordNotFound
				}
				continue
			}

			email.CompanyID = company.ID
			if err := tx.Create(email).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// Delete removes the company and everything hanging off it: phones, emails,
// projects and the interactions of those projects.
func (r *DefaultCompanyRepository) Delete(company *entity.Company) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		projectIDs := tx.Model(&entity.Project{}).
			Select("id").
			Where("company_id = ?", company.ID)

		if err := tx.Where("project_id IN (?)", projectIDs).Delete(&entity.Interaction{}).Error; err != nil {
			return err
		}

		if err := tx.Where("company_id = ?", company.ID).Delete(&entity.Project{}).Error; err != nil {
			return err
		}

		if err := tx.Where("company_id = ?", company.ID).Delete(&entity.Phone{}).Error; err != nil {
			return err
		}

		if err := tx.Where("company_id = ?", company.ID).Delete(&entity.Email{}).Error; err != nil {
			return err
		}

		return tx.Delete(company).Error
	})
}

func (r *DefaultCompanyRepository) Count() (int64, error) {
	var total int64
	err := r.db.Model(&entity.Company{}).Count(&total).Error
	return total, err
}

// CountProjects returns companyID -> number of projects for the given
// companies. Companies without projects are simply absent from the map.
func (r *DefaultCompanyRepository) CountProjects(companyIDs []int) (map[int]int64, error) {
	counts := map[int]int64{}
	if len(companyIDs) == 0 {
		return counts, nil
	}

	var rows []struct {
		CompanyID int
		Total     int64
	}
	err := r.db.Model(&entity.Project{}).
		Select("company_id, COUNT(*) AS total").
		Where("company_id IN ?", companyIDs).
		Group("company_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		counts[row.CompanyID] = row.Total
	}
	return counts, nil
}
