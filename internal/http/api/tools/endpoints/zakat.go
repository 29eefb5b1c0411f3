package endpoints

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/zee00111/islamic-project/internal/http/api"
	"github.com/zee00111/islamic-project/internal/http/api/tools/packets"
	"github.com/zee00111/islamic-project/internal/zakat"
)

type ZakatController struct {
	nisab zakat.NisabConfig
}

// ZakatModule mounts the zakat calculator endpoint.
func ZakatModule(nisab zakat.NisabConfig) api.Module {
	ctl := &ZakatController{nisab: nisab}
	return api.ModuleFunc(func(c *api.Controller) {
		c.POST("/zakat/calculate", ctl.calculate)
	})
}

// POST /api/zakat/calculate
func (z *ZakatController) calculate(ctx *gin.Context) (any, *api.APIError) {
	var request packets.ZakatRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	return zakat.Calculate(zakat.Wealth{
		Cash:        request.Cash,
		Savings:     request.Savings,
		Gold:        request.Gold,
		Silver:      request.Silver,
		Business:    request.Business,
		Investments: request.Investments,
		Debts:       request.Debts,
	}, z.nisab), nil
}
