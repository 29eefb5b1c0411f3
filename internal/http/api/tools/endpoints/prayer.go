package endpoints

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/zee00111/islamic-project/internal/astro"
	"github.com/zee00111/islamic-project/internal/cache"
	"github.com/zee00111/islamic-project/internal/db"
	"github.com/zee00111/islamic-project/internal/http/api"
	"github.com/zee00111/islamic-project/internal/http/api/tools/packets"
	"github.com/zee00111/islamic-project/internal/model"
)

type PrayerController struct {
	store         db.Store
	cache         cache.Store
	cities        model.CityDirectory
	defaultMethod string
	now           func() time.Time
}

func newPrayerController(store db.Store, cacheStore cache.Store, cities model.CityDirectory, defaultMethod string) *PrayerController {
	if _, ok := astro.MethodByName(defaultMethod); !ok {
		defaultMethod = astro.DefaultMethod
	}
	return &PrayerController{
		store:         store,
		cache:         cacheStore,
		cities:        cities,
		defaultMethod: defaultMethod,
		now:           time.Now,
	}
}

// PrayerModule mounts the prayer timetable endpoints. defaultMethod names
// the angle convention used when a request does not pass ?method=; anything
// unrecognized (including empty) falls back to the package default.
func PrayerModule(store db.Store, cacheStore cache.Store, cities model.CityDirectory, defaultMethod string) api.Module {
	ctl := newPrayerController(store, cacheStore, cities, defaultMethod)
	return api.ModuleFunc(func(c *api.Controller) {
		c.GET("/prayer-times/:city", ctl.getPrayerTimes)
	})
}

// GET /api/prayer-times/:city?method=MWL
func (p *PrayerController) getPrayerTimes(ctx *gin.Context) (any, *api.APIError) {
	city := ctx.Param("city")
	loc, err := p.cities.Resolve(city)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusNotFound, Message: "city not found"}
	}

	methodName := ctx.DefaultQuery("method", p.defaultMethod)
	method, ok := astro.MethodByName(methodName)
	if !ok {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "unknown calculation method"}
	}

	zone := astro.ApproxZone(loc.Lng)
	today := p.now().In(zone)
	date := today.Format("2006-01-02")

	key := cache.Key("prayer-times", city, methodName, date)
	rec, outcome, err := cache.Fetch(ctx, p.cache, key, cache.TTLPrayerTimes,
		func(fctx context.Context) (model.PrayerCacheRecord, error) {
			return p.computeAndPersist(loc, today, method)
		})
	if err != nil {
		if errors.Is(err, astro.ErrNoSunEvent) {
			return nil, &api.APIError{Code: http.StatusUnprocessableEntity, Message: err.Error()}
		}
		log.Error().Err(err).Str("city", city).Msg("prayer time computation failed")
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not compute prayer times"}
	}

	return prayerResponse(rec, outcome), nil
}

// computeAndPersist is the cache-miss path: consult the durable store first,
// compute and upsert when it has nothing fresh.
func (p *PrayerController) computeAndPersist(loc model.Location, today time.Time, method astro.Method) (model.PrayerCacheRecord, error) {
	date := today.Format("2006-01-02")

	stored, err := p.store.GetFreshPrayerTimes(loc.City, method.Name, date, cache.TTLPrayerTimes)
	if err != nil {
		log.Warn().Err(err).Str("city", loc.City).Msg("prayer cache table read failed")
	} else if stored != nil {
		return *stored, nil
	}

	set, err := astro.PrayerTimes(loc, today, method, astro.AsrShafi, nil)
	if err != nil {
		return model.PrayerCacheRecord{}, err
	}

	rec := set.Record(method.Name, p.now().UTC())
	if err := p.store.SavePrayerTimes(rec); err != nil {
		log.Warn().Err(err).Str("city", loc.City).Msg("prayer cache table write failed")
	}
	return rec, nil
}

func prayerResponse(rec model.PrayerCacheRecord, outcome cache.Outcome) packets.PrayerTimesResponse {
	return packets.PrayerTimesResponse{
		City:        rec.City,
		Coordinates: packets.Coordinates{Lat: rec.Lat, Lng: rec.Lng},
		Date:        rec.Date,
		Method:      rec.Method,
		Fajr:        rec.Fajr,
		Sunrise:     rec.Sunrise,
		Dhuhr:       rec.Dhuhr,
		Asr:         rec.Asr,
		Maghrib:     rec.Maghrib,
		Isha:        rec.Isha,
		Source:      string(outcome),
	}
}
