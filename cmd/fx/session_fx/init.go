package session_fx

import (
	"go.uber.org/fx"

	mem "quizgen/pkg/memcache"
)

var Module = fx.Provide(
	provideSessionStore)

func provideSessionStore() mem.SessionStore {
	return mem.NewSessionStore()
}
