package endpoints

import (
	"math/rand"

	"github.com/gin-gonic/gin"

	"github.com/zee00111/islamic-project/internal/http/api"
	"github.com/zee00111/islamic-project/internal/http/api/tools/packets"
)

// Banner is the message the API root answers with.
const Banner = "Zee Tools API - Islamic Utilities Platform"

// DefaultQuotes is the quote rotation served by the quotes endpoint.
func DefaultQuotes() []string {
	return []string{
		"And Allah is the best of planners. - Quran 8:30",
		"So remember Me; I will remember you. - Quran 2:152",
		"And it is He who created the heavens and earth in truth. - Quran 6:73",
		"Allah does not burden a soul beyond that it can bear. - Quran 2:286",
		"And whoever relies upon Allah - then He is sufficient for him. - Quran 65:3",
		"And give good tidings to the patient. - Quran 2:155",
		"So verily, with hardship, there is relief. - Quran 94:5",
		"And Allah loves those who are constantly repentant. - Quran 2:222",
	}
}

type MiscController struct {
	quotes []string
}

// MiscModule mounts the root banner and the quotes endpoint. An empty quote
// list falls back to the default rotation so the endpoint always has
// something to serve.
func MiscModule(quotes []string) api.Module {
	if len(quotes) == 0 {
		quotes = DefaultQuotes()
	}
	ctl := &MiscController{quotes: quotes}
	return api.ModuleFunc(func(c *api.Controller) {
		c.GET("/", ctl.root)
		c.GET("/islamic-quotes", ctl.getQuote)
	})
}

// GET /api/
func (m *MiscController) root(ctx *gin.Context) (any, *api.APIError) {
	return packets.BannerResponse{Message: Banner}, nil
}

// GET /api/islamic-quotes
func (m *MiscController) getQuote(ctx *gin.Context) (any, *api.APIError) {
	return packets.QuoteResponse{Quote: m.quotes[rand.Intn(len(m.quotes))]}, nil
}
