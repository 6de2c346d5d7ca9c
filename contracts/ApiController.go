package contracts

import "github.com/gin-gonic/gin"

type ApiController interface {
	SetSheetAction(c *gin.Context)
	GetSheetAction(c *gin.Context)
	GetCellAction(c *gin.Context)
	SubscribeAction(c *gin.Context)
}
