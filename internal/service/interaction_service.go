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

type InteractionRepository interface {
	FindByID(id int) (*entity.Interaction, error)
	FindByProjectID(projectID int) ([]*entity.Interaction, error)
	FindByManagerID(managerID int64) ([]*entity.Interaction, error)
	Save(interaction *entity.Interaction) error
	Delete(interaction *entity.Interaction) error
}

// DefaultInteractionService, like the project service, applies no ownership
// guard: interactions are authored by a manager but mutable by anyone
// authenticated.
type DefaultInteractionService struct {
	InteractionRepo InteractionRepository
	ProjectRepo     ProjectRepository
	Feed            *FeedService
	Validate        *validator.Validate
}

func NewInteractionService(interactionRepo InteractionRepository, projectRepo ProjectRepository, feed *FeedService, validate *validator.Validate) *DefaultInteractionService {
	return &DefaultInteractionService{
		InteractionRepo: interactionRepo,
		ProjectRepo:     projectRepo,
		Feed:            feed,
		Validate:        validate,
	}
}

func (s *DefaultInteractionService) GetInteraction(interactionID int) (*contract.InteractionResponse, apierror.ErrorResponse) {
	interaction, err := s.InteractionRepo.FindByID(interactionID)
	if err != nil {
		log.Errorf("failed to fetch interaction: %v", err)
		return nil, apierror.InternalServerError
	}

	if interaction == nil {
		return nil, apierror.NotFoundError
	}
	return toInteractionResponse(interaction), nil
}

func (s *DefaultInteractionService) GetProjectInteractions(projectID int) ([]*contract.InteractionResponse, apierror.ErrorResponse) {
	project, err := s.ProjectRepo.FindByID(projectID)
	if err != nil {
		log.Errorf("failed to fetch project: %v", err)
		return nil, apierror.InternalServerError
	}

	if project == nil {
		return nil, apierror.NotFoundError
	}

	interactions, err := s.InteractionRepo.FindByProjectID(projectID)
	if err != nil {
		log.Errorf("failed to fetch interactions: %v", err)
		return nil, apierror.InternalServerError
	}
	return toInteractionResponses(interactions), nil
}

// GetMyInteractions lists everything the acting manager has authored,
// across all projects.
func (s *DefaultInteractionService) GetMyInteractions(actor *entity.User) ([]*contract.InteractionResponse, apierror.ErrorResponse) {
	interactions, err := s.InteractionRepo.FindByManagerID(actor.ID)
	if err != nil {
		log.Errorf("failed to fetch interactions: %v", err)
		return nil, apierror.InternalServerError
	}
	return toInteractionResponses(interactions), nil
}

func (s *DefaultInteractionService) CreateInteraction(actor *entity.User, projectID int, req *contract.CreateInteractionRequest) (*contract.InteractionResponse, apierror.ErrorResponse) {
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

	interaction := &entity.Interaction{
		ProjectID:   projectID,
		ManagerID:   actor.ID,
		Method:      entity.InteractionMethod(req.Method),
		Rating:      entity.Rating(req.Rating),
		About:       req.About,
		PublishedAt: utils.NowUTC(),
	}

	if err := s.InteractionRepo.Save(interaction); err != nil {
		log.Errorf("failed to create interaction: %v", err)
		return nil, apierror.InternalServerError
	}

	resp := toInteractionResponse(interaction)
	go s.Feed.Broadcast(context.Background(), &events.InteractionCreated{InteractionResponse: resp})
	return resp, nil
}

// UpdateInteraction patches the mutable fields. The publication timestamp is
// deliberately left alone: it is written once at creation.
func (s *DefaultInteractionService) UpdateInteraction(actor *entity.User, interactionID int, req *contract.UpdateInteractionRequest) (*contract.InteractionResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if valerr := s.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}

	interaction, err := s.InteractionRepo.FindByID(interactionID)
	if err != nil {
		log.Errorf("failed to fetch interaction: %v", err)
		return nil, apierror.InternalServerError
	}

	if interaction == nil {
		return nil, apierror.NotFoundError
	}

	if req.Method != nil {
		interaction.Method = entity.InteractionMethod(*req.Method)
	}
	if req.Rating != nil {
		interaction.Rating = entity.Rating(*req.Rating)
	}
	if req.About != nil {
		interaction.About = *req.About
	}

	if err := s.InteractionRepo.Save(interaction); err != nil {
		log.Errorf("failed to update interaction: %v", err)
		return nil, apierror.InternalServerError
	}
	return toInteractionResponse(interaction), nil
}

func (s *DefaultInteractionService) DeleteInteraction(actor *entity.User, interactionID int) apierror.ErrorResponse {
	interaction, err := s.InteractionRepo.FindByID(interactionID)
	if err != nil {
		log.Errorf("failed to fetch interaction: %v", err)
		return apierror.InternalServerError
	}

	if interaction == nil {
		return apierror.NotFoundError
	}

	if err := s.InteractionRepo.Delete(interaction); err != nil {
		log.Errorf("failed to delete interaction: %v", err)
		return apierror.InternalServerError
	}

	go s.Feed.Broadcast(context.Background(), &events.InteractionDeleted{InteractionID: interactionID})
	return nil
}

func toInteractionResponses(interactions []*entity.Interaction) []*contract.InteractionResponse {
	resp := make([]*contract.InteractionResponse, len(interactions))
	for i, interaction := range interactions {
		resp[i] = toInteractionResponse(interaction)
	}
	return resp
}
