package apiv1

import (
	"github.com/gofiber/fiber/v2"

	"talent-bridge-backend/controllers"
	filestorage "talent-bridge-backend/lib/file-storage"
	"talent-bridge-backend/middleware"
	apimodels "talent-bridge-backend/models/api"
)

type fileApiController struct {
	controllers.BaseAPIController
}

func InitFileApiRouters(app *fiber.App) {
	controller := fileApiController{}
	app.Route("file", func(router fiber.Router) {
		router.Post("resume", middleware.RecruiterRequired(), controller.uploadResume)
		router.Get("resume", controller.downloadResume)
	})
}

// @Summary Загрузка резюме
// @Tags Файлы
// @Description Загрузка файла резюме кандидата, возвращает идентификатор файла
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   file				formData	file	true	"файл резюме"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/file/resume [post]
func (c *fileApiController) uploadResume(ctx *fiber.Ctx) error {
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("не указан файл резюме"))
	}
	file, err := fileHeader.Open()
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("не удалось прочитать файл резюме"))
	}
	defer file.Close()
	fileID, err := filestorage.Instance.UploadResume(ctx.Context(), fileHeader.Filename, file, fileHeader.Size)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка загрузки резюме")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(fileID))
}

// @Summary Получение резюме
// @Tags Файлы
// @Description Получение файла резюме по идентификатору
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   file_id				query		string	true	"идентификатор файла"
// @Success 200
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/file/resume [get]
func (c *fileApiController) downloadResume(ctx *fiber.Ctx) error {
	fileID := ctx.Query("file_id")
	if fileID == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("не указан идентификатор файла"))
	}
	data, err := filestorage.Instance.GetResume(ctx.Context(), fileID)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения резюме")
	}
	ctx.Set(fiber.HeaderContentType, fiber.MIMEOctetStream)
	return ctx.Status(fiber.StatusOK).Send(data)
}
