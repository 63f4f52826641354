package repository

import (
	"crmserver/internal/domain/entity"
	"path/filepath"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "test.db")
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&entity.User{},
		&entity.Company{},
		&entity.Phone{},
		&entity.Email{},
		&entity.Project{},
		&entity.Interaction{},
		&entity.Connection{},
	)
	require.NoError(t, err)
	return db
}

func seedCompany(t *testing.T, repo *DefaultCompanyRepository, name string) *entity.Company {
	t.Helper()

	company := &entity.Company{
		Name:               name,
		DirectorName:       "Jane",
		DirectorSurname:    "Doe",
		DirectorPatronymic: "X",
		About:              "Anvils",
		Location:           "Berlin",
		OwnerID:            1,
		CreatedAt:          1000,
	}
	require.NoError(t, repo.CreateWithContacts(company, nil, nil))
	return company
}

func TestCreateWithContactsAssignsChildren(t *testing.T) {
	repo := NewCompanyRepository(newTestDB(t))

	company := &entity.Company{
		Name:               "Acme",
		DirectorName:       "Jane",
		DirectorSurname:    "Doe",
		DirectorPatronymic: "X",
		About:              "Anvils",
		Location:           "Berlin",
		OwnerID:            1,
		CreatedAt:          1000,
	}
	phones := []*entity.Phone{{Number: "123456789012"}}
	emails := []*entity.Email{{Address: "a@b.com"}}

	require.NoError(t, repo.CreateWithContacts(company, phones, emails))
	require.NotZero(t, company.ID)

	found, err := repo.FindByID(company.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	require.Len(t, found.Phones, 1)
	require.Len(t, found.Emails, 1)
	require.Equal(t, company.ID, found.Phones[0].CompanyID)
	require.Equal(t, "123456789012", found.Phones[0].Number)
	require.Equal(t, "a@b.com", found.Emails[0].Address)
	require.Nil(t, found.UpdatedAt)
}

func TestFindByIDMissingReturnsNil(t *testing.T) {
	repo := NewCompanyRepository(newTestDB(t))

	found, err := repo.FindByID(12345)
	require.NoError(t, err)
	require.Nil(t, found)
}

func TestFindPageOrdersByName(t *testing.T) {
	repo := NewCompanyRepository(newTestDB(t))
	seedCompany(t, repo, "Zulu")
	seedCompany(t, repo, "Alpha")
	seedCompany(t, repo, "Mike")

	page, err := repo.FindPage(0, 2)
	require.NoError(t, err)
	require.Len(t, page, 2)
	require.Equal(t, "Alpha", page[0].Name)
	require.Equal(t, "Mike", page[1].Name)

	rest, err := repo.FindPage(2, 2)
	require.NoError(t, err)
	require.Len(t, rest, 1)
	require.Equal(t, "Zulu", rest[0].Name)

	total, err := repo.Count()
	require.NoError(t, err)
	require.EqualValues(t, 3, total)
}

func TestUpdateWithContactsAppliesDiff(t *testing.T) {
	repo := NewCompanyRepository(newTestDB(t))

	company := &entity.Company{
		Name:               "Acme",
		DirectorName:       "Jane",
		DirectorSurname:    "Doe",
		DirectorPatronymic: "X",
		About:              "Anvils",
		Location:           "Berlin",
		OwnerID:            1,
		CreatedAt:          1000,
	}
	p1 := &entity.Phone{Number: "111111111111"}
	p2 := &entity.Phone{Number: "222222222222"}
	require.NoError(t, repo.CreateWithContacts(company, []*entity.Phone{p1, p2}, nil))

	// Drop p1, rewrite p2 in place, insert p3
	updatedAt := "2026-08-31"
	company.UpdatedAt = &updatedAt
	rewrite := &entity.Phone{ID: p2.ID, Number: "444444444444"}
	p3 := &entity.Phone{Number: "333333333333"}
	err := repo.UpdateWithContacts(company, []*entity.Phone{rewrite, p3}, nil, []int{p1.ID}, nil)
	require.NoError(t, err)

	found, err := repo.FindByID(company.ID)
	require.NoError(t, err)
	require.Len(t, found.Phones, 2)

	numbers := []string{found.Phones[0].Number, found.Phones[1].Number}
	require.ElementsMatch(t, []string{"444444444444", "333333333333"}, numbers)
	require.NotNil(t, found.UpdatedAt)
	require.Equal(t, "2026-08-31", *found.UpdatedAt)
}

func TestUpdateWithContactsScopesDeletesToCompany(t *testing.T) {
	repo := NewCompanyRepository(newTestDB(t))

	mine := seedCompany(t, repo, "Mine")
	other := seedCompany(t, repo, "Other")

	foreign := &entity.Phone{CompanyID: other.ID, Number: "999999999999"}
	require.NoError(t, repo.db.Create(foreign).Error)

	// Delete list names a row owned by another company; it must survive
	err := repo.UpdateWithContacts(mine, nil, nil, []int{foreign.ID}, nil)
	require.NoError(t, err)

	found, err := repo.FindByID(other.ID)
	require.NoError(t, err)
	require.Len(t, found.Phones, 1)
}

func TestUpdateWithContactsScopesRewritesToCompany(t *testing.T) {
	repo := NewCompanyRepository(newTestDB(t))

	mine := seedCompany(t, repo, "Mine")
	other := seedCompany(t, repo, "Other")

	foreign := &entity.Phone{CompanyID: other.ID, Number: "999999999999"}
	require.NoError(t, repo.db.Create(foreign).Error)

	// A slot targeting a row owned by another company must abort the save,
	// not reassign the row
	rewrite := &entity.Phone{ID: foreign.ID, Number: "000000000000"}
	err := repo.UpdateWithContacts(mine, []*entity.Phone{rewrite}, nil, nil, nil)
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)

	found, err := repo.FindByID(other.ID)
	require.NoError(t, err)
	require.Len(t, found.Phones, 1)
	require.Equal(t, "999999999999", found.Phones[0].Number)
	require.Equal(t, other.ID, found.Phones[0].CompanyID)
}

func TestUpdateWithContactsUnknownChildID(t *testing.T) {
	db := newTestDB(t)
	repo := NewCompanyRepository(db)
	company := seedCompany(t, repo, "Acme")

	ghost := &entity.Phone{ID: 4242, Number: "123456789012"}
	err := repo.UpdateWithContacts(company, []*entity.Phone{ghost}, nil, nil, nil)
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)

	// The unknown ID must not be silently inserted either
	var phones int64
	require.NoError(t, db.Model(&entity.Phone{}).Count(&phones).Error)
	require.Zero(t, phones)
}

func TestDeleteCascadesThroughProjects(t *testing.T) {
	db := newTestDB(t)
	repo := NewCompanyRepository(db)

	company := seedCompany(t, repo, "Acme")
	require.NoError(t, db.Create(&entity.Phone{CompanyID: company.ID, Number: "123456789012"}).Error)
	require.NoError(t, db.Create(&entity.Email{CompanyID: company.ID, Address: "a@b.com"}).Error)

	project := &entity.Project{
		CompanyID: company.ID,
		Name:      "Rollout",
		About:     "Phase one",
		StartDate: "2026-01-01",
		EndDate:   "2026-06-01",
		Status:    entity.StatusInDevelopment,
		CreatedAt: 1000,
		UpdatedAt: 1000,
	}
	require.NoError(t, db.Create(project).Error)
	require.NoError(t, db.Create(&entity.Interaction{
		ProjectID:   project.ID,
		ManagerID:   1,
		Method:      entity.MethodLetter,
		Rating:      entity.RatingGood,
		About:       "Kickoff call",
		PublishedAt: 1000,
	}).Error)

	require.NoError(t, repo.Delete(company))

	var companies, phones, emails, projects, interactions int64
	require.NoError(t, db.Model(&entity.Company{}).Count(&companies).Error)
	require.NoError(t, db.Model(&entity.Phone{}).Count(&phones).Error)
	require.NoError(t, db.Model(&entity.Email{}).Count(&emails).Error)
	require.NoError(t, db.Model(&entity.Project{}).Count(&projects).Error)
	require.NoError(t, db.Model(&entity.Interaction{}).Count(&interactions).Error)

	require.Zero(t, companies)
	require.Zero(t, phones)
	require.Zero(t, emails)
	require.Zero(t, projects)
	require.Zero(t, interactions)
}

func TestCountProjects(t *testing.T) {
	db := newTestDB(t)
	repo := NewCompanyRepository(db)

	busy := seedCompany(t, repo, "Busy")
	idle := seedCompany(t, repo, "Idle")

	for i := 0; i < 3; i++ {
		require.NoError(t, db.Create(&entity.Project{
			CompanyID: busy.ID,
			Name:      "P",
			About:     "A",
			StartDate: "2026-01-01",
			EndDate:   "2026-06-01",
			Status:    entity.StatusCompleted,
			CreatedAt: 1000,
			UpdatedAt: 1000,
		}).Error)
	}

	counts, err := repo.CountProjects([]int{busy.ID, idle.ID})
	require.NoError(t, err)
	require.EqualValues(t, 3, counts[busy.ID])
	require.NotContains(t, counts, idle.ID)
}
