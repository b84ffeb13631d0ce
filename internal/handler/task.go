package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"taskpad/internal/model"
	"taskpad/internal/service"
	"taskpad/pkg/respond"
)

type TaskHandler struct {
	service *service.TaskService
	logger  *zap.Logger
}

func NewTaskHandler(srv *service.TaskService, logger *zap.Logger) *TaskHandler {
	return &TaskHandler{
		service: srv,
		logger:  logger,
	}
}

type createTaskRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

func (h *TaskHandler) Create(w http.ResponseWriter, r *http.Request) {

	if r.ContentLength == 0 {
		respond.Error(w, r, http.StatusBadRequest, "empty request body")
		return
	}

	var req createTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Error("failed to decode json", zap.Error(err))
		respond.Error(w, r, http.StatusBadRequest, fmt.Sprintf("invalid json: %v", err))
		return
	}

	env, err := h.service.Create(r.Context(), req.Title, req.Description)
	if err != nil {
		h.handleErrors(w, r, err)
		return
	}
	if !env.Success {
		h.respondFailure(w, r, "create", env)
		return
	}

	task := env.Data.(model.Task)
	w.Header().Set("Location", fmt.Sprintf("/api/tasks/%s", task.ID))
	respond.JSON(w, r, http.StatusCreated, env)
}

func (h *TaskHandler) List(w http.ResponseWriter, r *http.Request) {
	env, err := h.service.List(r.Context())
	if err != nil {
		h.handleErrors(w, r, err)
		return
	}
	if !env.Success {
		h.respondFailure(w, r, "list", env)
		return
	}
	respond.JSON(w, r, http.StatusOK, env)
}

func (h *TaskHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	env, err := h.service.Get(r.Context(), id)
	if err != nil {
		h.handleErrors(w, r, err)
		return
	}
	if !env.Success {
		h.respondFailure(w, r, "get", env)
		return
	}
	respond.JSON(w, r, http.StatusOK, env)
}

func (h *TaskHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var patch model.TaskPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		respond.Error(w, r, http.StatusBadRequest, "invalid json")
		return
	}

	env, err := h.service.Update(r.Context(), id, patch)
	if err != nil {
		h.handleErrors(w, r, err)
		return
	}
	if !env.Success {
		h.respondFailure(w, r, "update", env)
		return
	}
	respond.JSON(w, r, http.StatusOK, env)
}

func (h *TaskHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	env, err := h.service.Delete(r.Context(), id)
	if err != nil {
		h.handleErrors(w, r, err)
		return
	}
	if !env.Success {
		h.respondFailure(w, r, "delete", env)
		return
	}
	respond.JSON(w, r, http.StatusOK, env)
}

func (h *TaskHandler) Stats(w http.ResponseWriter, r *http.Request) {
	env, err := h.service.GetStats(r.Context())
	if err != nil {
		h.handleErrors(w, r, err)
		return
	}
	if !env.Success {
		h.respondFailure(w, r, "stats", env)
		return
	}
	respond.JSON(w, r, http.StatusOK, env)
}

// respondFailure переводит неуспешный конверт хранилища в HTTP-статус.
// Код ошибки в конверте не структурирован, различаем по тексту.
func (h *TaskHandler) respondFailure(w http.ResponseWriter, r *http.Request, op string, env model.Envelope) {
	if strings.Contains(env.Error, "not found") {
		respond.JSON(w, r, http.StatusNotFound, env)
		return
	}

	h.logger.Warn("simulated store failure",
		zap.String("op", op),
		zap.String("error", env.Error),
	)
	respond.JSON(w, r, http.StatusInternalServerError, env)
}

func (h *TaskHandler) handleErrors(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, service.ErrNoFields):
		respond.Error(w, r, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrValidation):
		respond.Error(w, r, http.StatusBadRequest, "validation error")
	default:
		h.logger.Error("internal error", zap.Error(err))
		respond.Error(w, r, http.StatusInternalServerError, "internal error")
	}
}
