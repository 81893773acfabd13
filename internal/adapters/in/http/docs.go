package http

import (
	"fmt"
	"sync"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
	"github.com/swaggo/swag"
)

const swaggerInstance = "artisan"

var registerDocOnce sync.Once

// openAPIDoc serves a pre-rendered document to swag.
type openAPIDoc struct {
	json string
}

func (d openAPIDoc) ReadDoc() string {
	return d.json
}

// registerSwaggerDoc publishes doc to the Swagger UI. swag keeps a process-wide
// registry, so only the first document registered is served.
func registerSwaggerDoc(doc *openapi3.T) error {
	raw, err := doc.MarshalJSON()
	if err != nil {
		return fmt.Errorf("render openapi document: %w", err)
	}

	registerDocOnce.Do(func() {
		swag.Register(swaggerInstance, openAPIDoc{json: string(raw)})
	})

	return nil
}

// SwaggerHandler serves the UI and doc.json under the route it is mounted on.
func SwaggerHandler() echo.HandlerFunc {
	return echoSwagger.EchoWrapHandler(echoSwagger.InstanceName(swaggerInstance))
}
