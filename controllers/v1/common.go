package apiv1

import (
	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"

	"talent-bridge-backend/lib/submission"
	"talent-bridge-backend/middleware"
	apimodels "talent-bridge-backend/models/api"
)

func getActor(ctx *fiber.Ctx) submission.Actor {
	return submission.Actor{
		ID:   middleware.GetUserID(ctx),
		Name: middleware.GetUserName(ctx),
		Role: middleware.GetUserRole(ctx),
	}
}

// sendPipelineError код ошибки воронки определяет http статус:
// VALIDATION - 400, CONFLICT - 409, STORAGE - 500
func sendPipelineError(ctx *fiber.Ctx, logger *log.Entry, err error, hMsg string) error {
	kind := submission.KindOf(err)
	switch kind {
	case submission.KindValidation:
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewErrorWithCode(string(kind), err.Error()))
	case submission.KindConflict:
		return ctx.Status(fiber.StatusConflict).JSON(apimodels.NewErrorWithCode(string(kind), err.Error()))
	}
	logger.WithError(err).Error(hMsg)
	return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewErrorWithCode(string(kind), hMsg))
}
