package handler

import (
	"crmserver/internal/contract"
	"crmserver/internal/domain/entity"
	"crmserver/internal/utils"
	"crmserver/internal/utils/apierror"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
)

type InteractionService interface {
	GetInteraction(interactionID int) (*contract.InteractionResponse, apierror.ErrorResponse)
	GetProjectInteractions(projectID int) ([]*contract.InteractionResponse, apierror.ErrorResponse)
	GetMyInteractions(actor *entity.User) ([]*contract.InteractionResponse, apierror.ErrorResponse)
	CreateInteraction(actor *entity.User, projectID int, req *contract.CreateInteractionRequest) (*contract.InteractionResponse, apierror.ErrorResponse)
	UpdateInteraction(actor *entity.User, interactionID int, req *contract.UpdateInteractionRequest) (*contract.InteractionResponse, apierror.ErrorResponse)
	DeleteInteraction(actor *entity.User, interactionID int) apierror.ErrorResponse
}

type DefaultInteractionRoute struct {
	InteractionService InteractionService
}

func NewInteractionDefault(interactionService InteractionService) *DefaultInteractionRoute {
	return &DefaultInteractionRoute{InteractionService: interactionService}
}

func (h *DefaultInteractionRoute) GetInteraction(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, apierror.NewInvalidParamTypeError("id", "int"))
	}

	interaction, apierr := h.InteractionService.GetInteraction(id)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, interaction)
}

func (h *DefaultInteractionRoute) GetProjectInteractions(c echo.Context) error {
	projectID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, apierror.NewInvalidParamTypeError("id", "int"))
	}

	interactions, apierr := h.InteractionService.GetProjectInteractions(projectID)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	resp := echo.Map{"interactions": interactions}
	return c.JSON(http.StatusOK, &resp)
}

func (h *DefaultInteractionRoute) GetMyInteractions(c echo.Context) error {
	user, cerr := utils.GetUserFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	interactions, apierr := h.InteractionService.GetMyInteractions(user)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	resp := echo.Map{"interactions": interactions}
	return c.JSON(http.StatusOK, &resp)
}

func (h *DefaultInteractionRoute) CreateInteraction(c echo.Context) error {
	user, cerr := utils.GetUserFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	projectID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, apierror.NewInvalidParamTypeError("id", "int"))
	}

	var req contract.CreateInteractionRequest
	if err = c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	interaction, apierr := h.InteractionService.CreateInteraction(user, projectID, &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusCreated, interaction)
}

func (h *DefaultInteractionRoute) UpdateInteraction(c echo.Context) error {
	user, cerr := utils.GetUserFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, apierror.NewInvalidParamTypeError("id", "int"))
	}

	var req contract.UpdateInteractionRequest
	if err = c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	interaction, apierr := h.InteractionService.UpdateInteraction(user, id, &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, interaction)
}

func (h *DefaultInteractionRoute) DeleteInteraction(c echo.Context) error {
	user, cerr := utils.GetUserFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, apierror.NewInvalidParamTypeError("id", "int"))
	}

	if apierr := h.InteractionService.DeleteInteraction(user, id); apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.NoContent(http.StatusOK)
}
