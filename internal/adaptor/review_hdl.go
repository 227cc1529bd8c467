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

type ReviewHandler struct {
	service usecase.ReviewService
	log     *zap.Logger
}

func NewReviewHandler(service usecase.ReviewService, log *zap.Logger) *ReviewHandler {
	return &ReviewHandler{
		service: service,
		log:     log.With(zap.String("handler", "review")),
	}
}

// CreateReview handles POST /api/reviews
func (h *ReviewHandler) CreateReview(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.CreateReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	result, err := h.service.CreateReview(r.Context(), userID.String(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create review")
		return
	}

	utils.ResponseCreated(w, "Review created successfully", result)
}

// GetWorkerReviews handles GET /api/reviews/workers/{workerId}/reviews
func (h *ReviewHandler) GetWorkerReviews(w http.ResponseWriter, r *http.Request) {
	workerID := chi.URLParam(r, "workerId")
	if workerID == "" {
		utils.ResponseBadRequest(w, "Worker ID is required", nil)
		return
	}

	results, err := h.service.GetWorkerReviews(r.Context(), workerID)
	if err != nil {
		handleServiceError(w, h.log, err, "get worker reviews")
		return
	}

	utils.ResponseSuccess(w, "Reviews retrieved successfully", results)
}
