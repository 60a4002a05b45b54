package doc

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/swaggo/swag"
)

type handler struct {
	servers []map[string]interface{}
}

func (h *handler) serveSwaggerJSON(c *gin.Context) {
	raw, err := swag.ReadDoc()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read Swagger doc"})
		return
	}

	var swaggerData map[string]interface{}
	if err := json.Unmarshal([]byte(raw), &swaggerData); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to parse Swagger doc"})
		return
	}
	swaggerData["servers"] = h.servers

	out, err := json.Marshal(swaggerData)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate Swagger doc"})
		return
	}
	c.Data(http.StatusOK, "application/json", out)
}

// Servers lists the API base URLs advertised for environment. publicURL is
// the externally reachable base of this deployment.
func Servers(environment, publicURL string) []map[string]interface{} {
	servers := []map[string]interface{}{
		{"url": "http://localhost:8080", "description": "Local Development Server"},
	}
	if environment != "development" && environment != "test" && publicURL != "" {
		servers = append(servers, map[string]interface{}{
			"url":         publicURL,
			"description": "Deployed " + environment + " server",
		})
	}
	return servers
}

func serveElements(c *gin.Context) {
	elementsHTML := `
<!DOCTYPE html>
<html>
<head>
    <title>QR Menu API Documentation</title>
    <meta charset="utf-8"/>
    <meta name="viewport" content="width=device-width, initial-scale=1">
    <script src="https://unpkg.com/@stoplight/elements/web-components.min.js"></script>
    <link rel="stylesheet" href="https://unpkg.com/@stoplight/elements/styles.min.css">
    <style>
        body { margin: 0; padding: 0; height: 100vh; }
        elements-api { height: 100%; }
    </style>
</head>
<body>
    <elements-api
        apiDescriptionUrl="/swagger/doc.json"
        router="hash"
        layout="sidebar"
    ></elements-api>
</body>
</html>`
	c.Header("Content-Type", "text/html")
	c.String(http.StatusOK, elementsHTML)
}

func Init(r *gin.Engine, environment, publicURL string) {
	h := &handler{servers: Servers(environment, publicURL)}
	r.GET("/swagger/doc.json", h.serveSwaggerJSON)
	r.GET("/docs/*any", serveElements)
}
