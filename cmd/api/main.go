package main

import (
	_ "omis_backend/docs"
	"omis_backend/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           OMIS Order Engine API
// @version         1.0
// @description     Commissioned-services order engine (quotes, invoices, payments) backed by DynamoDB.

// @host localhost:8080

// @BasePath  /v1

func main() {
	routes.Run()
}
