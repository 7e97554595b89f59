package apiv1

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"talent-bridge-backend/controllers"
	"talent-bridge-backend/lib/analytics"
	"talent-bridge-backend/middleware"
	apimodels "talent-bridge-backend/models/api"
)

type analyticsApiController struct {
	controllers.BaseAPIController
}

func InitAnalyticsApiRouters(app *fiber.App) {
	controller := analyticsApiController{}
	app.Route("analytics", func(router fiber.Router) {
		router.Use(middleware.EmployerRequired())
		router.Get("job/:id/funnel", controller.funnel)
		router.Get("job/:id/export", controller.export)
	})
}

// @Summary Воронка вакансии
// @Tags Аналитика
// @Description Распределение откликов по этапам воронки
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  	true	"job ID"
// @Success 200 {object} apimodels.Response{data=analyticsapimodels.JobFunnelView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/analytics/job/{id}/funnel [get]
func (c *analyticsApiController) funnel(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := analytics.Instance.JobFunnel(getActor(ctx), id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения аналитики")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Выгрузка откликов
// @Tags Аналитика
// @Description Выгрузка откликов вакансии в xlsx
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  	true	"job ID"
// @Success 200
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/analytics/job/{id}/export [get]
func (c *analyticsApiController) export(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	buf, err := analytics.Instance.ExportBoard(getActor(ctx), id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка выгрузки откликов")
	}
	ctx.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", "submissions.xlsx"))
	return ctx.Status(fiber.StatusOK).SendStream(buf)
}
