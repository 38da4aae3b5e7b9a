package httpresp

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

// Wrap responde {key: data}, o envelope que o front-end espera.
func Wrap(c *gin.Context, status int, key string, data any) {
	c.JSON(status, gin.H{key: data})
}

func Success(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"success": true})
}
