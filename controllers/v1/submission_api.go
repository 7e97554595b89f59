package apiv1

import (
	"github.com/gofiber/fiber/v2"

	"talent-bridge-backend/controllers"
	"talent-bridge-backend/lib/submission"
	submissionhistory "talent-bridge-backend/lib/submission-history"
	"talent-bridge-backend/middleware"
	apimodels "talent-bridge-backend/models/api"
	submissionapimodels "talent-bridge-backend/models/api/submission"
)

type submissionApiController struct {
	controllers.BaseAPIController
}

func InitSubmissionApiRouters(app *fiber.App) {
	controller := submissionApiController{}
	app.Route("submission", func(router fiber.Router) {
		router.Post("job/:id", middleware.RecruiterRequired(), controller.create)
		router.Post("job/:id/board", controller.board)
		router.Post("job/:id/find", controller.find)
		router.Post("interview", middleware.EmployerRequired(), controller.scheduleInterview)
		router.Post("offer", middleware.EmployerRequired(), controller.makeOffer)
		router.Get(":id", controller.get)
		router.Patch(":id/status", middleware.EmployerRequired(), controller.advance)
		router.Post(":id/reject", middleware.EmployerRequired(), controller.reject)
		router.Put(":id/reorder", middleware.EmployerRequired(), controller.reorder)
		router.Post(":id/history/find", controller.history)
	})
}

// @Summary Создание отклика
// @Tags Отклики
// @Description Рекрутер предлагает кандидата на опубликованную вакансию
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  	true	"job ID"
// @Param	body body	 submissionapimodels.SubmissionData	true	"request body"
// @Success 200 {object} apimodels.Response{data=submissionapimodels.SubmissionView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 409 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/submission/job/{id} [post]
func (c *submissionApiController) create(ctx *fiber.Ctx) error {
	jobID, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload submissionapimodels.SubmissionData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := submission.Instance.Create(getActor(ctx), jobID, payload)
	if err != nil {
		return sendPipelineError(ctx, c.GetLogger(ctx), err, "Ошибка создания отклика")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Доска откликов
// @Tags Отклики
// @Description Отклики вакансии по колонкам воронки. Контакты кандидатов скрыты от работодателя
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  	true	"job ID"
// @Param	body body	 submissionapimodels.SubmissionFilter	false	"request body"
// @Success 200 {object} apimodels.Response{data=submissionapimodels.BoardView}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/submission/job/{id}/board [post]
func (c *submissionApiController) board(ctx *fiber.Ctx) error {
	jobID, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload submissionapimodels.SubmissionFilter
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := submission.Instance.Board(getActor(ctx), jobID, payload)
	if err != nil {
		return sendPipelineError(ctx, c.GetLogger(ctx), err, "Ошибка получения доски откликов")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Список откликов
// @Tags Отклики
// @Description Плоский список откликов вакансии с поиском и сортировкой
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  	true	"job ID"
// @Param	body body	 submissionapimodels.SubmissionFilter	false	"request body"
// @Success 200 {object} apimodels.Response{data=[]submissionapimodels.SubmissionView}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/submission/job/{id}/find [post]
func (c *submissionApiController) find(ctx *fiber.Ctx) error {
	jobID, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload submissionapimodels.SubmissionFilter
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := submission.Instance.List(getActor(ctx), jobID, payload)
	if err != nil {
		return sendPipelineError(ctx, c.GetLogger(ctx), err, "Ошибка получения списка откликов")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Получение по ИД
// @Tags Отклики
// @Description Отклик с данными вакансии и рекрутера
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  	true	"rec ID"
// @Success 200 {object} apimodels.Response{data=submissionapimodels.SubmissionView}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/submission/{id} [get]
func (c *submissionApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := submission.Instance.GetByID(getActor(ctx), id)
	if err != nil {
		return sendPipelineError(ctx, c.GetLogger(ctx), err, "Ошибка получения отклика")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Смена этапа
// @Tags Отклики
// @Description Перевод отклика на следующий этап воронки. Этапы интервью, оффера
// @Description и отклонения принимаются только через соответствующие операции
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  	true	"rec ID"
// @Param	body body	 submissionapimodels.StatusData	true	"request body"
// @Success 200 {object} apimodels.Response{data=submissionapimodels.SubmissionView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 409 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/submission/{id}/status [patch]
func (c *submissionApiController) advance(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload submissionapimodels.StatusData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := submission.Instance.Advance(getActor(ctx), id, payload.Status)
	if err != nil {
		return sendPipelineError(ctx, c.GetLogger(ctx), err, "Ошибка смены этапа")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Назначение интервью
// @Tags Отклики
// @Description Создание интервью с переводом отклика на этап интервью
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 submissionapimodels.InterviewData	true	"request body"
// @Success 200 {object} apimodels.Response{data=submissionapimodels.InterviewView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 409 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/submission/interview [post]
func (c *submissionApiController) scheduleInterview(ctx *fiber.Ctx) error {
	var payload submissionapimodels.InterviewData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := submission.Instance.ScheduleInterview(getActor(ctx), payload)
	if err != nil {
		return sendPipelineError(ctx, c.GetLogger(ctx), err, "Ошибка назначения интервью")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Создание оффера
// @Tags Отклики
// @Description Создание оффера с переводом отклика на этап оффера
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 submissionapimodels.OfferData	true	"request body"
// @Success 200 {object} apimodels.Response{data=submissionapimodels.OfferView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 409 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/submission/offer [post]
func (c *submissionApiController) makeOffer(ctx *fiber.Ctx) error {
	var payload submissionapimodels.OfferData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := submission.Instance.MakeOffer(getActor(ctx), payload)
	if err != nil {
		return sendPipelineError(ctx, c.GetLogger(ctx), err, "Ошибка создания оффера")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Отклонение
// @Tags Отклики
// @Description Отклонение кандидата с указанием причин
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  	true	"rec ID"
// @Param	body body	 submissionapimodels.RejectionData	true	"request body"
// @Success 200 {object} apimodels.Response{data=submissionapimodels.SubmissionView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 409 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/submission/{id}/reject [post]
func (c *submissionApiController) reject(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload submissionapimodels.RejectionData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := submission.Instance.Reject(getActor(ctx), id, payload)
	if err != nil {
		return sendPipelineError(ctx, c.GetLogger(ctx), err, "Ошибка отклонения кандидата")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Изменение порядка
// @Tags Отклики
// @Description Ручной порядок карточки внутри колонки, этап не меняется
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  	true	"rec ID"
// @Param	body body	 submissionapimodels.ReorderData	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/submission/{id}/reorder [put]
func (c *submissionApiController) reorder(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload submissionapimodels.ReorderData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = submission.Instance.Reorder(getActor(ctx), id, payload); err != nil {
		return sendPipelineError(ctx, c.GetLogger(ctx), err, "Ошибка изменения порядка")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary История отклика
// @Tags Отклики
// @Description История действий по отклику с пагинацией
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  	true	"rec ID"
// @Param	body body	 submissionapimodels.HistoryFilter	false	"request body"
// @Success 200 {object} apimodels.ScrollerResponse{data=[]submissionapimodels.HistoryView}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/submission/{id}/history/find [post]
func (c *submissionApiController) history(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload submissionapimodels.HistoryFilter
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	list, rowCount, err := submissionhistory.Instance.List(id, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения истории отклика")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewScrollerResponse(list, rowCount))
}
