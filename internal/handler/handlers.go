// Package handler assembles the transport handlers exposed by the server.
package handler

import (
	"errors"

	"github.com/mshevelev/vault-hub/internal/config"
	"github.com/mshevelev/vault-hub/internal/handler/http"
	"github.com/mshevelev/vault-hub/internal/logger"
	"github.com/mshevelev/vault-hub/internal/service"
)

var errNoHandlersAreCreated = errors.New("no handlers are created: no transport addresses configured")

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg config.ServerConfig, log *logger.Logger) (*Handlers, error) {
	log.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, log)
	}

	if handlers.HTTP == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
