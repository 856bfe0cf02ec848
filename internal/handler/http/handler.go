package http

import (
	"github.com/mshevelev/vault-hub/internal/logger"
	"github.com/mshevelev/vault-hub/internal/service"
)

type Handler struct {
	services *service.Services

	logger *logger.Logger
}

func NewHandler(services *service.Services, log *logger.Logger) *Handler {
	log.Info().Msg("http handler created")
	return &Handler{
		services: services,
		logger:   log,
	}
}
