package controllers

import (
	"context"
	"net/http"
	"strconv"
	"sync"
	"time"

	"presence-service/internal/app/contracts"
	"presence-service/internal/pkg/constvars"
	"presence-service/internal/pkg/dto/responses"
	"presence-service/internal/pkg/exceptions"
	"presence-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type PresenceController struct {
	Log             *zap.Logger
	PresenceUsecase contracts.PresenceUsecase
}

var (
	presenceControllerInstance *PresenceController
	oncePresenceController     sync.Once
)

func NewPresenceController(logger *zap.Logger, presenceUsecase contracts.PresenceUsecase) *PresenceController {
	oncePresenceController.Do(func() {
		instance := &PresenceController{
			Log:             logger,
			PresenceUsecase: presenceUsecase,
		}
		presenceControllerInstance = instance
	})
	return presenceControllerInstance
}

func (ctrl *PresenceController) GetUsers(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		ctrl.Log.Error("PresenceController.GetUsers requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}
	ctrl.Log.Info("PresenceController.GetUsers called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.PresenceUsecase.GetUsers(ctx)
	if err != nil {
		ctrl.Log.Error("PresenceController.GetUsers error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.SuccessGetUsers, response)
}

func (ctrl *PresenceController) GetMeanTimeWeekday(w http.ResponseWriter, r *http.Request) {
	ctrl.serveWeekdayRows(w, r, "PresenceController.GetMeanTimeWeekday", constvars.SuccessGetMeanTimeWeekday, ctrl.PresenceUsecase.MeanTimeWeekday)
}

func (ctrl *PresenceController) GetPresenceWeekday(w http.ResponseWriter, r *http.Request) {
	ctrl.serveWeekdayRows(w, r, "PresenceController.GetPresenceWeekday", constvars.SuccessGetPresenceWeekday, ctrl.PresenceUsecase.PresenceWeekday)
}

func (ctrl *PresenceController) GetPresenceStartEnd(w http.ResponseWriter, r *http.Request) {
	ctrl.serveWeekdayRows(w, r, "PresenceController.GetPresenceStartEnd", constvars.SuccessGetPresenceStartEnd, ctrl.PresenceUsecase.PresenceStartEnd)
}

func (ctrl *PresenceController) serveWeekdayRows(
	w http.ResponseWriter,
	r *http.Request,
	operation string,
	successMessage string,
	fetch func(ctx context.Context, userID int) ([]responses.WeekdayRow, error),
) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		ctrl.Log.Error(operation + " requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}

	rawUserID := chi.URLParam(r, "user_id")
	userID, err := strconv.Atoi(rawUserID)
	if err != nil {
		ctrl.Log.Error(operation+" invalid user_id param",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String("user_id_param", rawUserID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(err, "user_id"))
		return
	}

	ctrl.Log.Info(operation+" called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingUserIDKey, userID),
	)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	rows, err := fetch(ctx, userID)
	if err != nil {
		ctrl.Log.Error(operation+" error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int(constvars.LoggingUserIDKey, userID),
			zap.Error(err),
		)
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, successMessage, rows)
}
