package apiv1

import (
	"github.com/gofiber/fiber/v2"

	"talent-bridge-backend/controllers"
	submissionchat "talent-bridge-backend/lib/submission-chat"
	apimodels "talent-bridge-backend/models/api"
	submissionapimodels "talent-bridge-backend/models/api/submission"
)

type chatApiController struct {
	controllers.BaseAPIController
}

func InitChatApiRouters(app *fiber.App) {
	controller := chatApiController{}
	app.Route("submission/:id/chat", func(router fiber.Router) {
		router.Get("", controller.list)
		router.Post("", controller.send)
	})
}

// @Summary Сообщения обсуждения
// @Tags Обсуждение отклика
// @Description Сообщения обсуждения между работодателем и рекрутером
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  	true	"submission ID"
// @Success 200 {object} apimodels.Response{data=[]submissionapimodels.MessageItem}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/submission/{id}/chat [get]
func (c *chatApiController) list(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	list, err := submissionchat.Instance.List(getActor(ctx), id)
	if err != nil {
		return sendPipelineError(ctx, c.GetLogger(ctx), err, "Ошибка получения сообщений")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Отправка сообщения
// @Tags Обсуждение отклика
// @Description Отправка сообщения в обсуждение отклика
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  	true	"submission ID"
// @Param	body body	 submissionapimodels.NewMessageRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=submissionapimodels.MessageItem}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/submission/{id}/chat [post]
func (c *chatApiController) send(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload submissionapimodels.NewMessageRequest
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := submissionchat.Instance.Send(getActor(ctx), id, payload)
	if err != nil {
		return sendPipelineError(ctx, c.GetLogger(ctx), err, "Ошибка отправки сообщения")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}
