package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/bestofgoa/bok/internal/common"
)

func writeError(c *gin.Context, err error) {
	c.JSON(common.HTTPStatus(err), gin.H{"error": err.Error()})
}

// pathUUID parses the named route segment as a UUID, writing a 400 and
// returning false when it is malformed.
func pathUUID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": name + " must be a UUID"})
		return uuid.Nil, false
	}
	return id, true
}
