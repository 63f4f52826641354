package repository

import (
	"crmserver/internal/domain/entity"
	"testing"

	"github.com/stretchr/testify/require"
)

func seedProject(t *testing.T, repo *DefaultProjectRepository, companyID int, name, startDate string) *entity.Project {
	t.Helper()

	project := &entity.Project{
		CompanyID: companyID,
		Name:      name,
		About:     "About",
		StartDate: startDate,
		EndDate:   "2026-12-31",
		Status:    entity.StatusInDevelopment,
		CreatedAt: 1000,
		UpdatedAt: 1000,
	}
	require.NoError(t, repo.Save(project))
	return project
}

func TestProjectDeleteRemovesInteractions(t *testing.T) {
	db := newTestDB(t)
	repo := NewProjectRepository(db)

	project := seedProject(t, repo, 1, "Rollout", "2026-01-01")
	other := seedProject(t, repo, 1, "Audit", "2026-02-01")

	interactions := NewInteractionRepository(db)
	require.NoError(t, interactions.Save(&entity.Interaction{
		ProjectID: project.ID, ManagerID: 1, Method: entity.MethodLetter,
		Rating: entity.RatingGood, About: "Call", PublishedAt: 1000,
	}))
	require.NoError(t, interactions.Save(&entity.Interaction{
		ProjectID: other.ID, ManagerID: 1, Method: entity.MethodRequest,
		Rating: entity.RatingAverage, About: "Mail", PublishedAt: 2000,
	}))

	require.NoError(t, repo.Delete(project))

	gone, err := repo.FindByID(project.ID)
	require.NoError(t, err)
	require.Nil(t, gone)

	left, err := interactions.FindByProjectID(project.ID)
	require.NoError(t, err)
	require.Empty(t, left)

	// The sibling project's interactions are untouched
	kept, err := interactions.FindByProjectID(other.ID)
	require.NoError(t, err)
	require.Len(t, kept, 1)
}

func TestFindByCompanyIDOrdersByStartDate(t *testing.T) {
	repo := NewProjectRepository(newTestDB(t))
	seedProject(t, repo, 1, "Later", "2026-06-01")
	seedProject(t, repo, 1, "Earlier", "2026-01-01")
	seedProject(t, repo, 2, "Elsewhere", "2026-03-01")

	projects, err := repo.FindByCompanyID(1)
	require.NoError(t, err)
	require.Len(t, projects, 2)
	require.Equal(t, "Earlier", projects[0].Name)
	require.Equal(t, "Later", projects[1].Name)
}

func TestInteractionsOrderedByPublication(t *testing.T) {
	db := newTestDB(t)
	repo := NewInteractionRepository(db)

	require.NoError(t, repo.Save(&entity.Interaction{
		ProjectID: 1, ManagerID: 5, Method: entity.MethodLetter,
		Rating: entity.RatingGood, About: "First", PublishedAt: 1000,
	}))
	require.NoError(t, repo.Save(&entity.Interaction{
		ProjectID: 1, ManagerID: 5, Method: entity.MethodWebsite,
		Rating: entity.RatingBad, About: "Second", PublishedAt: 2000,
	}))

	byProject, err := repo.FindByProjectID(1)
	require.NoError(t, err)
	require.Len(t, byProject, 2)
	require.Equal(t, "Second", byProject[0].About)

	byManager, err := repo.FindByManagerID(5)
	require.NoError(t, err)
	require.Len(t, byManager, 2)
	require.Equal(t, "Second", byManager[0].About)
}

func TestCountInteractions(t *testing.T) {
	db := newTestDB(t)
	projects := NewProjectRepository(db)
	interactions := NewInteractionRepository(db)

	project := seedProject(t, projects, 1, "Rollout", "2026-01-01")
	require.NoError(t, interactions.Save(&entity.Interaction{
		ProjectID: project.ID, ManagerID: 1, Method: entity.MethodLetter,
		Rating: entity.RatingGood, About: "Call", PublishedAt: 1000,
	}))

	total, err := projects.CountInteractions(project.ID)
	require.NoError(t, err)
	require.EqualValues(t, 1, total)
}
