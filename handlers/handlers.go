package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/darshanrk18/kambaz-server-go/dao"
)

// DAOsKey is the gin context key the persistence adapters are injected under
const DAOsKey = "daos"

func getDAOs(c *gin.Context) *dao.DAOs {
	return c.MustGet(DAOsKey).(*dao.DAOs)
}
