package endpoints

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/zee00111/islamic-project/internal/cache"
	"github.com/zee00111/islamic-project/internal/hijri"
	"github.com/zee00111/islamic-project/internal/http/api"
	"github.com/zee00111/islamic-project/internal/http/api/tools/packets"
	"github.com/zee00111/islamic-project/internal/model"
)

type CalendarController struct {
	cache  cache.Store
	events []model.IslamicEvent
	now    func() time.Time
}

// CalendarModule mounts the Hijri calendar endpoints.
func CalendarModule(cacheStore cache.Store, events []model.IslamicEvent) api.Module {
	ctl := &CalendarController{cache: cacheStore, events: events, now: time.Now}
	return api.ModuleFunc(func(c *api.Controller) {
		c.GET("/islamic-calendar/today", ctl.getToday)
		c.GET("/islamic-calendar/events", ctl.getEvents)
	})
}

// GET /api/islamic-calendar/today
func (cc *CalendarController) getToday(ctx *gin.Context) (any, *api.APIError) {
	now := cc.now()
	key := cache.Key("hijri", now.Format("2006-01-02"))
	resp, _, _ := cache.Fetch(ctx, cc.cache, key, cache.TTLHijri,
		func(context.Context) (packets.IslamicDateResponse, error) {
			d := hijri.FromTime(now)
			return packets.IslamicDateResponse{
				HijriDate:     hijri.Format(d),
				GregorianDate: d.GregorianDate,
				DayName:       d.DayName,
			}, nil
		})
	return resp, nil
}

// GET /api/islamic-calendar/events
func (cc *CalendarController) getEvents(ctx *gin.Context) (any, *api.APIError) {
	return hijri.Upcoming(cc.events, cc.now()), nil
}
