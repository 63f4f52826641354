package service

import (
	"context"
	"crmserver/internal/contract"
	"crmserver/internal/domain/entity"
	"crmserver/internal/domain/events"
	"crmserver/internal/utils"
	"crmserver/internal/utils/apierror"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/gommon/log"
)

type ProjectRepository interface {
	FindByID(id int) (*entity.Project, error)
	FindByCompanyID(companyID int) ([]*entity.Project, error)
	Save(project *entity.Project) error
	Delete(project *entity.Project) error
	CountInteractions(projectID int) (int64, error)
}

// DefaultProjectService has no ownership guard on purpose: unlike companies,
// projects may be mutated by any authenticated principal. The project's
// creating user is recorded but grants nothing.
type DefaultProjectService struct {
	ProjectRepo ProjectRepository
	CompanyRepo CompanyRepository
	Feed        *FeedService
	Validate    *validator.Validate
}

func NewProjectService(projectRepo ProjectRepository, companyRepo CompanyRepository, feed *FeedService, validate *validator.Validate) *DefaultProjectService {
	return &DefaultProjectService{
		ProjectRepo: projectRepo,
		CompanyRepo: companyRepo,
		Feed:        feed,
		Validate:    validate,
	}
}

func (s *DefaultProjectService) GetProject(projectID int) (*contract.ProjectResponse, apierror.ErrorResponse) {
	project, err := s.ProjectRepo.FindByID(projectID)
	if err != nil {
		log.Errorf("failed to fetch project: %v", err)
		return nil, apierror.InternalServerError
	}

	if project == nil {
		return nil, apierror.NotFoundError
	}

	count, err := s.ProjectRepo.CountInteractions(projectID)
	if err != nil {
		log.Errorf("failed to count interactions: %v", err)
		return nil, apierror.InternalServerError
	}
	return toProjectResponse(project, &count), nil
}

func (s *DefaultProjectService) CreateProject(actor *entity.User, companyID int, req *contract.CreateProjectRequest) (*contract.ProjectResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if valerr := s.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}

	company, err := s.CompanyRepo.FindByID(companyID)
	if err != nil {
		log.Errorf("failed to fetch company: %v", err)
		return nil, apierror.InternalServerError
	}

	if company == nil {
		return nil, apierror.NotFoundError
	}

	now := utils.NowUTC()
	creator := actor.ID
	project := &entity.Project{
		CompanyID:   companyID,
		CreatedByID: &creator,
		Name:        req.Name,
		About:       req.About,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Status:      entity.ProjectStatus(req.Status),
		Price:       req.Price,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.ProjectRepo.Save(project); err != nil {
		log.Errorf("failed to create project: %v", err)
		return nil, apierror.InternalServerError
	}

	resp := toProjectResponse(project, nil)
	go s.Feed.Broadcast(context.Background(), &events.ProjectCreated{ProjectResponse: resp})
	return resp, nil
}

func (s *DefaultProjectService) UpdateProject(actor *entity.User, projectID int, req *contract.UpdateProjectRequest) (*contract.ProjectResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if valerr := s.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}

	project, err := s.ProjectRepo.FindByID(projectID)
	if err != nil {
		log.Errorf("failed to fetch project: %v", err)
		return nil, apierror.InternalServerError
	}

	if project == nil {
		return nil, apierror.NotFoundError
	}

	if req.Name != nil {
		project.Name = *req.Name
	}
	if req.About != nil {
		project.About = *req.About
	}
	if req.StartDate != nil {
		project.StartDate = *req.StartDate
	}
	if req.EndDate != nil {
		project.EndDate = *req.EndDate
	}
	if req.Status != nil {
		project.Status = entity.ProjectStatus(*req.Status)
	}
	if req.Price != nil {
		project.Price = *req.Price
	}

	project.UpdatedAt = utils.NowUTC()
	if err := s.ProjectRepo.Save(project); err != nil {
		log.Errorf("failed to update project: %v", err)
		return nil, apierror.InternalServerError
	}

	resp := toProjectResponse(project, nil)
	go s.Feed.Broadcast(context.Background(), &events.ProjectUpdated{ProjectResponse: resp})
	return resp, nil
}

// DeleteProject removes the project and, through the repository, every
// interaction logged under it.
func (s *DefaultProjectService) DeleteProject(actor *entity.User, projectID int) apierror.ErrorResponse {
	project, err := s.ProjectRepo.FindByID(projectID)
	if err != nil {
		log.Errorf("failed to fetch project: %v", err)
		return apierror.InternalServerError
	}

	if project == nil {
		return apierror.NotFoundError
	}

	if err := s.ProjectRepo.Delete(project); err != nil {
		log.Errorf("failed to delete project: %v", err)
		return apierror.InternalServerError
	}

	go s.Feed.Broadcast(context.Background(), &events.ProjectDeleted{ProjectID: projectID})
	return nil
}
