package main

import (
	_ "travel_budget/docs"
	"travel_budget/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Travel Budget API
// @version         1.0
// @description     Travel expense budgets, approvals and area spend tracking backed by DynamoDB.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey UserID
// @in header
// @name X-User-ID
// @description User id asserted by the authentication proxy.

func main() {
	routes.Run()
}
