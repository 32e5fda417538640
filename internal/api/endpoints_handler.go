package api

import (
	_ "embed"
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
)

//go:embed endpoints.json
var endpointsDoc []byte

// listEndpoints handles GET /api
func listEndpoints(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"summary": json.RawMessage(endpointsDoc)})
}
