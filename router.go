package main

import (
	"github.com/gin-gonic/gin"
	"net/http"
	"sheetCalc/contracts"
)

const ApiVersion = "v1"

const subscribePath = "subscribe"

func SetupRouter(controller contracts.ApiController) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	apiRouterGroup := router.Group("/api/" + ApiVersion)
	apiRouterGroup.POST("/:sheet_id/"+subscribePath, controller.SubscribeAction)

	apiRouterGroup.POST("/:sheet_id", controller.SetSheetAction)
	apiRouterGroup.GET("/:sheet_id", controller.GetSheetAction)
	apiRouterGroup.GET("/:sheet_id/:cell_id", controller.GetCellAction)

	router.GET("/healthcheck", func(c *gin.Context) {
		c.String(http.StatusOK, "health")
	})

	return router
}
