package dict

import (
	"github.com/gofiber/fiber/v2"

	"talent-bridge-backend/controllers"
	rejectreasonprovider "talent-bridge-backend/lib/dicts/reject-reason"
	"talent-bridge-backend/middleware"
	apimodels "talent-bridge-backend/models/api"
	dictapimodels "talent-bridge-backend/models/api/dict"
)

type rejectReasonDictApiController struct {
	controllers.BaseAPIController
}

func InitRejectReasonDictApiRouters(app *fiber.App) {
	controller := rejectReasonDictApiController{}
	app.Route("reject_reason", func(router fiber.Router) {
		router.Use(middleware.EmployerRequired())
		router.Post("find", controller.find)
		router.Post("", controller.create)
		router.Put(":id", controller.update)
		router.Delete(":id", controller.delete)
	})
}

// @Summary Список
// @Tags Справочник. Причины отказа
// @Description Стандартный каталог и пользовательские причины отказа
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 dictapimodels.RejectReasonFind	false	"request body"
// @Success 200 {object} apimodels.Response{data=[]dictapimodels.RejectReasonView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/dict/reject_reason/find [post]
func (c *rejectReasonDictApiController) find(ctx *fiber.Ctx) error {
	var payload dictapimodels.RejectReasonFind
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	ownerID := middleware.GetUserID(ctx)
	list, err := rejectreasonprovider.Instance.List(ownerID, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения списка причин отказов")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Создание
// @Tags Справочник. Причины отказа
// @Description Создание пользовательской причины отказа
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 dictapimodels.RejectReasonData	true	"request body"
// @Success 200 {object} apimodels.Response{data=dictapimodels.RejectReasonView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/dict/reject_reason [post]
func (c *rejectReasonDictApiController) create(ctx *fiber.Ctx) error {
	var payload dictapimodels.RejectReasonData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	ownerID := middleware.GetUserID(ctx)
	resp, err := rejectreasonprovider.Instance.Create(ownerID, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка добавления причины отказа")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Обновление
// @Tags Справочник. Причины отказа
// @Description Обновление пользовательской причины отказа
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 dictapimodels.RejectReasonData	true	"request body"
// @Param   id          		path    string  	true	"rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/dict/reject_reason/{id} [put]
func (c *rejectReasonDictApiController) update(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload dictapimodels.RejectReasonData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	ownerID := middleware.GetUserID(ctx)
	if err = rejectreasonprovider.Instance.Update(ownerID, id, payload); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка изменения причины отказа")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Удаление
// @Tags Справочник. Причины отказа
// @Description Удаление пользовательской причины отказа
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  	true	"rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/dict/reject_reason/{id} [delete]
func (c *rejectReasonDictApiController) delete(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	ownerID := middleware.GetUserID(ctx)
	if err = rejectreasonprovider.Instance.Delete(ownerID, id); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка удаления причины отказа")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}
