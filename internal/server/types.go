package server

import (
	"foliolink/internal/config"
	"foliolink/internal/db"

	"github.com/gin-gonic/gin"
)

// Server represents the HTTP server
type Server struct {
	router *gin.Engine
	cfg    *config.Config
	db     *db.Database
}
