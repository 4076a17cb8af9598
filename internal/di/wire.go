//go:build wireinject
// +build wireinject

package di

import (
	"github.com/google/wire"

	"coursehub/internal/chat/handler"
	"coursehub/internal/chat/repository"
	"coursehub/internal/chat/service"
	"coursehub/internal/config"
	"coursehub/internal/dbmongo"
	"coursehub/internal/dbmysql"
	"coursehub/internal/media"
	"coursehub/internal/ws"
)

// This is just a declaration — wire generates the real body in wire_gen.go.
func InitializeApp() (*App, error) {
	wire.Build(
		config.LoadConfig,
		dbmysql.NewMySQL,
		dbmongo.NewMongoConnection,
		dbmongo.NewMediaStorage,
		repository.NewMessageRepository,
		repository.NewCourseRepository,
		repository.NewUserRepository,
		repository.NewEnrollmentRepository,
		repository.NewMessageTypeRepository,
		ws.NewHub,
		wire.Bind(new(service.Broadcaster), new(*ws.Hub)),
		ProvideDispatcher,
		service.NewChatService,
		handler.NewChatHandler,
		ws.NewHandler,
		media.NewHandler,
		wire.Struct(new(App), "*"),
	)
	return &App{}, nil
}
