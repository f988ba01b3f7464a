// @title Cargo Express API
// @version 1.0
// @description API for freight quote requests and the admin dashboard
// @host localhost:5000
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Admin session token. Format: 'Bearer <token>'
package main

import (
	"cargo-express-app/internal/api"

	_ "cargo-express-app/docs"
)

func main() {
	api.StartServer()
}
