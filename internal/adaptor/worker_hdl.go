package adaptor

import (
	"encoding/json"
	"net/http"

	"locallink/internal/dto/request"
	"locallink/internal/usecase"
	"locallink/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type WorkerHandler struct {
	service usecase.WorkerService
	log     *zap.Logger
}

func NewWorkerHandler(service usecase.WorkerService, log *zap.Logger) *WorkerHandler {
	return &WorkerHandler{
		service: service,
		log:     log.With(zap.String("handler", "worker")),
	}
}

// CreateProfile handles POST /api/workers/profile
func (h *WorkerHandler) CreateProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.CreateWorkerProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	result, err := h.service.CreateProfile(r.Context(), userID.String(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create worker profile")
		return
	}

	utils.ResponseCreated(w, "Worker profile created successfully", result)
}

// UpdateProfile handles PUT /api/workers/profile
func (h *WorkerHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.UpdateWorkerProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	result, err := h.service.UpdateProfile(r.Context(), userID.String(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update worker profile")
		return
	}

	utils.ResponseSuccess(w, "Worker profile updated successfully", result)
}

// Search handles GET /api/workers/search
func (h *WorkerHandler) Search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	req := request.SearchWorkersRequest{
		Lat:          utils.ParseFloatPtr(query.Get("lat")),
		Lng:          utils.ParseFloatPtr(query.Get("lng")),
		Radius:       utils.ParseFloat(query.Get("radius"), 0),
		Category:     utils.StringPtr(query.Get("category")),
		MinRating:    utils.ParseFloatPtr(query.Get("min_rating")),
		VerifiedOnly: utils.ParseBool(query.Get("verified_only")),
	}

	results, err := h.service.Search(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "search workers")
		return
	}

	utils.ResponseSuccess(w, "Workers retrieved successfully", results)
}

// GetWorker handles GET /api/workers/{id}
func (h *WorkerHandler) GetWorker(w http.ResponseWriter, r *http.Request) {
	workerID := chi.URLParam(r, "id")
	if workerID == "" {
		utils.ResponseBadRequest(w, "Worker ID is required", nil)
		return
	}

	result, err := h.service.GetWorker(r.Context(), workerID)
	if err != nil {
		handleServiceError(w, h.log, err, "get worker")
		return
	}

	utils.ResponseSuccess(w, "Worker retrieved successfully", result)
}
