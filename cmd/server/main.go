package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	_ "voteverse-backend/docs" // This is needed for swag
)

//go:generate swag init -g main.go -d ./,../../internal/api/handlers,../../internal/auth,../../internal/service -o ../../docs

//	@title			VoteVerse API
//	@version		1.0
//	@description	Backend API for VoteVerse, the voice-assisted university election system: voters, elections, positions, candidates, votes, results, feedback and the voice-verified voting flow.
//	@termsOfService	http://swagger.io/terms/

//	@contact.name	Electoral Commission IT
//	@contact.email	elections@university.example

//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT

//	@host		localhost:7008
//	@BasePath	/api/v1

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Type "Bearer" followed by a space and JWT token.

func main() {
	// Load environment variables from .env file in development
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using system environment variables")
	}

	if err := newRootCmd().Execute(); err != nil {
		logrus.WithError(err).Error("command failed")
		os.Exit(1)
	}
}
