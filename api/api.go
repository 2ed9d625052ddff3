// Package api holds the OpenAPI contract for the delivery HTTP API and
// registers it with the swagger UI handler.
package api

import (
	_ "embed"

	"github.com/swaggo/swag"
)

// Spec is the OpenAPI 3 document describing the HTTP API.
//
//go:embed openapi.json
var Spec []byte

// SwaggerInfo makes the contract available to the swagger UI served
// at /swagger/*.
var SwaggerInfo = &swag.Spec{
	InfoInstanceName: swag.Name,
	SwaggerTemplate:  string(Spec),
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
