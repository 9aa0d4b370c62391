// Package web provides HTTP handlers and REST API endpoints for editorial
// workflow management.
package web

import (
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"

	"github.com/copydesk/copydesk/pkg/models"
	"github.com/copydesk/copydesk/pkg/registry"
	"github.com/copydesk/copydesk/pkg/services"
)

type APIHandlers struct {
	definitionService *services.Definition
	transitionService *services.Transition
	validator         *validator.Validate
	registry          *registry.Registry
}

func NewAPIHandlers(
	definitionService *services.Definition,
	transitionService *services.Transition,
	validator *validator.Validate,
	registry *registry.Registry,
) *APIHandlers {
	return &APIHandlers{
		definitionService: definitionService,
		transitionService: transitionService,
		validator:         validator,
		registry:          registry,
	}
}

func (h *APIHandlers) GetDefinitions(c fiber.Ctx) error {
	definitions, err := h.definitionService.List(c.Context(), c.Query("contentType"))
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"definitions": definitions,
		"count":       len(definitions),
	})
}

func (h *APIHandlers) GetDefinition(c fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return badRequest(c, "Definition ID is required")
	}

	definition, err := h.definitionService.Get(c.Context(), id)
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.JSON(definition)
}

func (h *APIHandlers) SaveDefinition(c fiber.Ctx) error {
	var definition models.WorkflowDefinition
	if err := c.Bind().JSON(&definition); err != nil {
		return badRequest(c, "Invalid JSON format")
	}

	if err := h.validator.Struct(definition); err != nil {
		return badRequest(c, err.Error())
	}

	saved, err := h.definitionService.Save(c.Context(), &definition)
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(saved)
}

func (h *APIHandlers) ImportDefinition(c fiber.Ctx) error {
	raw := c.Body()
	if len(raw) == 0 {
		return badRequest(c, "Definition document is required")
	}

	imported, err := h.definitionService.Import(c.Context(), raw)
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(imported)
}

func (h *APIHandlers) ValidateDefinition(c fiber.Ctx) error {
	var definition models.WorkflowDefinition
	if err := c.Bind().JSON(&definition); err != nil {
		return badRequest(c, "Invalid JSON format")
	}

	messages := h.definitionService.Validate(&definition)

	return c.JSON(ValidateResponse{
		Valid:  len(messages) == 0,
		Errors: messages,
	})
}

func (h *APIHandlers) DeleteDefinition(c fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return badRequest(c, "Definition ID is required")
	}

	if err := h.definitionService.Delete(c.Context(), id); err != nil {
		return handleServiceError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func (h *APIHandlers) CreateDefaultDefinition(c fiber.Ctx) error {
	var req CreateDefaultRequest
	if err := c.Bind().JSON(&req); err != nil {
		return badRequest(c, "Invalid JSON format")
	}

	if err := h.validator.Struct(req); err != nil {
		return badRequest(c, err.Error())
	}

	created, err := h.definitionService.CreateDefault(c.Context(), req.ContentType, req.Name)
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(created)
}

func (h *APIHandlers) GetTransitions(c fiber.Ctx) error {
	contentType := c.Params("type")
	contentID := c.Params("id")

	actorID := c.Query("actorId")
	if actorID == "" {
		return badRequest(c, "actorId query parameter is required")
	}

	transitions, err := h.transitionService.ListTransitions(c.Context(), contentType, contentID, actorID)
	if err != nil {
		return handleServiceError(c, err)
	}

	responses := make([]TransitionResponse, 0, len(transitions))
	for _, transition := range transitions {
		responses = append(responses, TransformTransitionResponse(transition))
	}

	return c.JSON(fiber.Map{
		"transitions": responses,
	})
}

func (h *APIHandlers) PerformTransition(c fiber.Ctx) error {
	contentType := c.Params("type")
	contentID := c.Params("id")

	var req PerformTransitionRequest
	if err := c.Bind().JSON(&req); err != nil {
		return badRequest(c, "Invalid JSON format")
	}

	if err := h.validator.Struct(req); err != nil {
		return badRequest(c, err.Error())
	}

	result, err := h.transitionService.PerformTransition(
		c.Context(), contentType, contentID, req.TargetState, req.Comment, req.ActorID)
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.JSON(result)
}

func (h *APIHandlers) GetHistory(c fiber.Ctx) error {
	contentType := c.Params("type")
	contentID := c.Params("id")

	history, err := h.transitionService.History(c.Context(), contentType, contentID)
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"history": history,
	})
}

func (h *APIHandlers) GetVisibility(c fiber.Ctx) error {
	contentType := c.Params("type")
	contentID := c.Params("id")

	actorID := c.Query("actorId")
	if actorID == "" {
		return badRequest(c, "actorId query parameter is required")
	}

	canView, err := h.transitionService.CanView(c.Context(), contentType, contentID, actorID)
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.JSON(VisibilityResponse{
		ContentID: contentID,
		ActorID:   actorID,
		CanView:   canView,
	})
}

func (h *APIHandlers) HealthCheck(c fiber.Ctx) error {
	registryCheck, regOk := h.registry.HealthCheck()
	repositoryCheck, repOk := h.definitionService.HealthCheck(c.Context())

	status := "unhealthy"
	message := "Copydesk API is unhealthy"
	httpStatus := http.StatusInternalServerError

	if regOk && repOk {
		status = "healthy"
		message = "Copydesk API is healthy"
		httpStatus = http.StatusOK
	}

	return c.Status(httpStatus).JSON(fiber.Map{
		"status":  status,
		"message": message,
		"checkers": fiber.Map{
			"registry":   registryCheck,
			"repository": repositoryCheck,
		},
		"timestamp": time.Now().UTC(),
	})
}
