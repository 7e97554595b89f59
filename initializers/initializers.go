package initializers

import (
	"context"

	"talent-bridge-backend/config"
	"talent-bridge-backend/db"
	"talent-bridge-backend/fiberlog"
	"talent-bridge-backend/lib/analytics"
	"talent-bridge-backend/lib/auth"
	rejectreasonprovider "talent-bridge-backend/lib/dicts/reject-reason"
	rejectreasonstore "talent-bridge-backend/lib/dicts/reject-reason/store"
	xlsexport "talent-bridge-backend/lib/export/xls"
	"talent-bridge-backend/lib/job"
	jobstore "talent-bridge-backend/lib/job/store"
	"talent-bridge-backend/lib/notify"
	"talent-bridge-backend/lib/smtp"
	"talent-bridge-backend/lib/submission"
	submissionchat "talent-bridge-backend/lib/submission-chat"
	submissionchatstore "talent-bridge-backend/lib/submission-chat/store"
	submissionhistory "talent-bridge-backend/lib/submission-history"
	submissionhistorystore "talent-bridge-backend/lib/submission-history/store"
	submissionstore "talent-bridge-backend/lib/submission/store"
	userstore "talent-bridge-backend/lib/users/store"
	connectionhub "talent-bridge-backend/lib/ws/hub/connection-hub"
)

var LoggerConfig *fiberlog.Config

func InitAllServices(ctx context.Context) {
	LoggerConfig = InitLogger()
	config.InitConfig()
	InitDBConnection()
	InitS3()
	InitSmtp()
	connectionhub.Init()
	notify.NewHandler(smtp.Instance)

	auth.NewHandler(userstore.NewInstance(db.DB))

	jobStore := jobstore.NewInstance(db.DB)
	job.NewHandler(jobStore)

	submissionhistory.NewHandler(submissionhistorystore.NewInstance(db.DB))

	subStore := submissionstore.NewInstance(db.DB)
	submission.NewHandler(subStore, jobStore, submissionhistory.Instance, notify.Instance)
	submissionchat.NewHandler(submissionchatstore.NewInstance(db.DB), subStore, submissionhistory.Instance)

	rejectreasonprovider.NewHandler(rejectreasonstore.NewInstance(db.DB))

	xlsexport.NewHandler()
	analytics.NewHandler(subStore, jobStore, xlsexport.Instance)
}
