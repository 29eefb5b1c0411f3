package endpoints

import (
	"context"
	"fmt"
	"math"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/zee00111/islamic-project/internal/astro"
	"github.com/zee00111/islamic-project/internal/cache"
	"github.com/zee00111/islamic-project/internal/http/api"
	"github.com/zee00111/islamic-project/internal/http/api/tools/packets"
	"github.com/zee00111/islamic-project/internal/model"
)

type QiblaController struct {
	cache  cache.Store
	cities model.CityDirectory
}

// QiblaModule mounts the qibla direction endpoints.
func QiblaModule(cacheStore cache.Store, cities model.CityDirectory) api.Module {
	ctl := &QiblaController{cache: cacheStore, cities: cities}
	return api.ModuleFunc(func(c *api.Controller) {
		c.GET("/qibla/:city", ctl.getQiblaForCity)
		c.POST("/qibla/coordinates", ctl.getQiblaForCoordinates)
	})
}

// GET /api/qibla/:city
func (q *QiblaController) getQiblaForCity(ctx *gin.Context) (any, *api.APIError) {
	loc, err := q.cities.Resolve(ctx.Param("city"))
	if err != nil {
		return nil, &api.APIError{Code: http.StatusNotFound, Message: "city not found"}
	}
	return q.lookup(ctx, loc)
}

// POST /api/qibla/coordinates
func (q *QiblaController) getQiblaForCoordinates(ctx *gin.Context) (any, *api.APIError) {
	var request packets.CoordinatesRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}
	return q.lookup(ctx, model.Location{Lat: *request.Lat, Lng: *request.Lng})
}

// lookup serves the bearing through the cache. The key carries only the
// location: the bearing does not depend on the date.
func (q *QiblaController) lookup(ctx *gin.Context, loc model.Location) (any, *api.APIError) {
	if err := loc.Validate(); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	key := cache.Key("qibla", fmt.Sprintf("%.4f", loc.Lat), fmt.Sprintf("%.4f", loc.Lng))
	bearing, _, err := cache.Fetch(ctx, q.cache, key, cache.TTLQibla,
		func(context.Context) (model.QiblaBearing, error) {
			return astro.Qibla(loc)
		})
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not compute qibla direction"}
	}

	return packets.QiblaResponse{
		City:        loc.City,
		Coordinates: packets.Coordinates{Lat: loc.Lat, Lng: loc.Lng},
		Direction:   math.Round(bearing.Direction*10) / 10,
		DistanceKm:  math.Round(bearing.DistanceKm),
	}, nil
}
