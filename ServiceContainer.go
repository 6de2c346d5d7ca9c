package main

import (
	"github.com/gin-gonic/gin"
	"go.etcd.io/bbolt"
	"io"
	"sheetCalc/contracts"
)

type ServiceContainer struct {
	Database            *bbolt.DB
	ApiController       contracts.ApiController
	SheetRepository     contracts.SheetRepository
	ExpressionEvaluator contracts.ExpressionEvaluator
	WebhookDispatcher   contracts.WebhookDispatcher
	Router              *gin.Engine
}

func BuildServiceContainer(config Config, logWriter io.Writer) (container ServiceContainer, err error) {
	container.Database, err = bbolt.Open(config.DatabaseFilePath, 0600, nil)
	if err != nil {
		return
	}

	container.ExpressionEvaluator = NewExpressionEvaluator()
	container.WebhookDispatcher = NewWebhookDispatcher(config.WebhookWorkersCount, logWriter)
	container.SheetRepository = NewSheetRepository(container.Database, container.ExpressionEvaluator, container.WebhookDispatcher)
	container.ApiController = NewApiController(container.SheetRepository, container.WebhookDispatcher)

	container.Router = SetupRouter(container.ApiController)

	return
}
