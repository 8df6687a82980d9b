package handlers

// @title Restaurant Finder API
// @version 1.0
// @description Proxy over the Korean public licensing datasets that returns currently open restaurants, optionally narrowed to a dong

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8081
// @BasePath /api

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token. Only required when the server runs with ACCESS_TOKEN_SECRET.

// @tag.name restaurants
// @tag.description Open restaurant listing

// @tag.name districts
// @tag.description Dong catalogue derived from the dataset

// @tag.name health
// @tag.description Liveness
