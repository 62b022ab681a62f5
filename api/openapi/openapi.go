// Package openapi builds the huma API on top of Echo and serves the Swagger
// UI for the generated OpenAPI 3.1 document.
package openapi

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humaecho"
	"github.com/labstack/echo/v4"
)

// SpecPath is where huma serves the document, without extension.
const SpecPath = "/openapi"

const swaggerUIHTML = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <title>card-ledger API</title>
  <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5/swagger-ui.css">
</head>
<body>
  <div id="swagger-ui"></div>
  <script src="https://unpkg.com/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
  <script>
    SwaggerUIBundle({
      url: "` + SpecPath + `.json",
      dom_id: "#swagger-ui",
      presets: [SwaggerUIBundle.presets.apis, SwaggerUIBundle.SwaggerUIStandalonePreset],
      layout: "BaseLayout",
    });
  </script>
</body>
</html>`

// Config returns the huma configuration for the card-ledger API. The
// built-in docs page is disabled in favor of the Swagger UI routes.
func Config(version string) huma.Config {
	cfg := huma.DefaultConfig("card-ledger API", version)
	cfg.Info.Description = "Imports a seller's eBay listings and sales, " +
		"searches public card catalogs and watches market prices."
	cfg.OpenAPIPath = SpecPath
	cfg.DocsPath = ""
	return cfg
}

// New wraps e in a huma API and adds the Swagger UI routes.
func New(e *echo.Echo, version string) huma.API {
	api := humaecho.New(e, Config(version))
	RegisterRoutes(e)
	return api
}

// RegisterRoutes adds Swagger UI endpoints to the Echo instance.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/swagger/index.html", serveUI)
	e.GET("/swagger", redirectToUI)
	e.GET("/swagger/", redirectToUI)
}

func serveUI(c echo.Context) error {
	return c.HTML(http.StatusOK, swaggerUIHTML)
}

func redirectToUI(c echo.Context) error {
	return c.Redirect(http.StatusMovedPermanently, "/swagger/index.html")
}
