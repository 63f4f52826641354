package service

import (
	"crmserver/internal/contract"
	"crmserver/internal/domain/entity"
	"crmserver/internal/utils/apierror"
	"testing"

	"github.com/stretchr/testify/require"
)

type fakeInteractionRepo struct {
	interactions map[int]*entity.Interaction
	nextID       int
}

func newFakeInteractionRepo() *fakeInteractionRepo {
	return &fakeInteractionRepo{interactions: map[int]*entity.Interaction{}, nextID: 1}
}

func (f *fakeInteractionRepo) FindByID(id int) (*entity.Interaction, error) {
	return f.interactions[id], nil
}

func (f *fakeInteractionRepo) FindByProjectID(projectID int) ([]*entity.Interaction, error) {
	var out []*entity.Interaction
	for _, interaction := range f.interactions {
		if interaction.ProjectID == projectID {
			out = append(out, interaction)
		}
	}
	return out, nil
}

func (f *fakeInteractionRepo) FindByManagerID(managerID int64) ([]*entity.Interaction, error) {
	var out []*entity.Interaction
	for _, interaction := range f.interactions {
		if interaction.ManagerID == managerID {
			out = append(out, interaction)
		}
	}
	return out, nil
}

func (f *fakeInteractionRepo) Save(interaction *entity.Interaction) error {
	if interaction.ID == 0 {
		interaction.ID = f.nextID
		f.nextID++
	}
	f.interactions[interaction.ID] = interaction
	return nil
}

func (f *fakeInteractionRepo) Delete(interaction *entity.Interaction) error {
	delete(f.interactions, interaction.ID)
	return nil
}

type fakeProjectRepo struct {
	projects map[int]*entity.Project
}

func (f *fakeProjectRepo) FindByID(id int) (*entity.Project, error) { return f.projects[id], nil }
func (f *fakeProjectRepo) FindByCompanyID(companyID int) ([]*entity.Project, error) {
	return nil, nil
}
func (f *fakeProjectRepo) Save(project *entity.Project) error   { return nil }
func (f *fakeProjectRepo) Delete(project *entity.Project) error { return nil }
func (f *fakeProjectRepo) CountInteractions(projectID int) (int64, error) {
	return 0, nil
}

func newTestInteractionService(t *testing.T, repo *fakeInteractionRepo, projects *fakeProjectRepo) *DefaultInteractionService {
	t.Helper()
	feed := NewFeedService(noopConnRepo{}, noopGateway{})
	return NewInteractionService(repo, projects, feed, newTestEditor(t).Validate)
}

func TestCreateInteractionStampsPublication(t *testing.T) {
	repo := newFakeInteractionRepo()
	projects := &fakeProjectRepo{projects: map[int]*entity.Project{1: {ID: 1, CompanyID: 1}}}
	svc := newTestInteractionService(t, repo, projects)

	req := &contract.CreateInteractionRequest{
		Method: "LETTER",
		Rating: 4,
		About:  "Kickoff call",
	}

	resp, apierr := svc.CreateInteraction(&entity.User{ID: 9}, 1, req)
	require.Nil(t, apierr)
	require.EqualValues(t, 9, resp.ManagerID)
	require.Equal(t, "LETTER", resp.Method)
	require.NotEmpty(t, resp.PublishedAt)
	require.NotZero(t, repo.interactions[resp.ID].PublishedAt)
}

func TestCreateInteractionUnknownProject(t *testing.T) {
	svc := newTestInteractionService(t, newFakeInteractionRepo(), &fakeProjectRepo{projects: map[int]*entity.Project{}})

	req := &contract.CreateInteractionRequest{Method: "LETTER", Rating: 4, About: "Call"}
	resp, apierr := svc.CreateInteraction(&entity.User{ID: 9}, 42, req)
	require.Nil(t, resp)
	require.Equal(t, apierror.NotFoundError, apierr)
}

func TestCreateInteractionRejectsUnknownMethod(t *testing.T) {
	projects := &fakeProjectRepo{projects: map[int]*entity.Project{1: {ID: 1}}}
	svc := newTestInteractionService(t, newFakeInteractionRepo(), projects)

	req := &contract.CreateInteractionRequest{Method: "CARRIER_PIGEON", Rating: 4, About: "Call"}
	resp, apierr := svc.CreateInteraction(&entity.User{ID: 9}, 1, req)
	require.Nil(t, resp)

	se, ok := apierr.(*apierror.StructuredError)
	require.True(t, ok)
	require.Contains(t, se.Errors, "method")
}

func TestUpdateInteractionKeepsPublication(t *testing.T) {
	repo := newFakeInteractionRepo()
	projects := &fakeProjectRepo{projects: map[int]*entity.Project{1: {ID: 1}}}
	svc := newTestInteractionService(t, repo, projects)

	created, apierr := svc.CreateInteraction(&entity.User{ID: 9}, 1, &contract.CreateInteractionRequest{
		Method: "LETTER",
		Rating: 4,
		About:  "Kickoff call",
	})
	require.Nil(t, apierr)
	stamped := repo.interactions[created.ID].PublishedAt

	method := "WEBSITE"
	rating := 5
	resp, apierr := svc.UpdateInteraction(&entity.User{ID: 9}, created.ID, &contract.UpdateInteractionRequest{
		Method: &method,
		Rating: &rating,
	})
	require.Nil(t, apierr)
	require.Equal(t, "WEBSITE", resp.Method)
	require.Equal(t, 5, resp.Rating)
	require.Equal(t, "Kickoff call", resp.About)
	require.Equal(t, stamped, repo.interactions[created.ID].PublishedAt)
}

func TestDeleteInteractionMissing(t *testing.T) {
	svc := newTestInteractionService(t, newFakeInteractionRepo(), &fakeProjectRepo{})
	require.Equal(t, apierror.NotFoundError, svc.DeleteInteraction(&entity.User{ID: 9}, 77))
}
