package main

import (
	"os"

	"github.com/mikepea/pantrypulse/pkg/pantrypulse/app"

	_ "github.com/mikepea/pantrypulse/api/swagger"
)

// @title Pantry Pulse API
// @version 1.0
// @description Household inventory tracking: items, groups and storage areas.

// @contact.name Pantry Pulse Support
// @contact.url https://github.com/mikepea/pantrypulse

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT token. Format: "Bearer {token}"

func main() {
	if err := app.Execute(); err != nil {
		os.Exit(1)
	}
}
