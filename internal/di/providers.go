package di

import (
	"gorm.io/gorm"

	"coursehub/internal/chat/handler"
	"coursehub/internal/chat/service"
	"coursehub/internal/config"
	"coursehub/internal/dbmongo"
	"coursehub/internal/media"
	"coursehub/internal/ws"
)

// App bundles everything main needs to run the chat service.
type App struct {
	Config       *config.Config
	DB           *gorm.DB
	Mongo        *dbmongo.MongoClient
	Hub          *ws.Hub
	Dispatcher   *service.Dispatcher
	Service      service.ChatService
	ChatHandler  *handler.ChatHandler
	WSHandler    *ws.Handler
	MediaHandler *media.Handler
}

func ProvideDispatcher(c *config.Config) *service.Dispatcher {
	return service.NewDispatcher(c.Chat.Workers, c.Chat.QueueSize)
}
