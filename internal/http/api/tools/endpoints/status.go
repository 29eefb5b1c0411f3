package endpoints

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/zee00111/islamic-project/internal/db"
	"github.com/zee00111/islamic-project/internal/http/api"
	"github.com/zee00111/islamic-project/internal/http/api/tools/packets"
)

const statusListLimit = 1000

type StatusController struct {
	store db.Store
}

// StatusModule mounts the status-check endpoints.
func StatusModule(store db.Store) api.Module {
	ctl := &StatusController{store: store}
	return api.ModuleFunc(func(c *api.Controller) {
		c.POST("/status", ctl.createStatusCheck)
		c.GET("/status", ctl.listStatusChecks)
	})
}

// POST /api/status
func (s *StatusController) createStatusCheck(ctx *gin.Context) (any, *api.APIError) {
	var request packets.CreateStatusCheckRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	check, err := s.store.CreateStatusCheck(uuid.NewString(), request.ClientName)
	if err != nil {
		log.Error().Err(err).Msg("could not create status check")
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not create status check"}
	}
	return check, nil
}

// GET /api/status
func (s *StatusController) listStatusChecks(ctx *gin.Context) (any, *api.APIError) {
	checks, err := s.store.ListStatusChecks(statusListLimit)
	if err != nil {
		log.Error().Err(err).Msg("could not list status checks")
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not list status checks"}
	}
	return checks, nil
}
