package router

import (
	"kanpai/internal/handlers/auth"
	"kanpai/internal/handlers/bar"
	"kanpai/internal/handlers/blog"
	"kanpai/internal/handlers/distillery"
	"kanpai/internal/handlers/event"
	"kanpai/internal/handlers/homepage"
	"kanpai/internal/handlers/media"
	"kanpai/internal/handlers/order"
	"kanpai/internal/handlers/user"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Auth       auth.Handler
	Bar        bar.Handler
	Distillery distillery.Handler
	Event      event.Handler
	Blog       blog.Handler
	Order      order.Handler
	Homepage   homepage.Handler
	Media      media.Handler
	User       user.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

// SetupRoutes mounts every domain router at the root. The admin console
// consumes unversioned paths, so there is no version prefix.
func (r *Router) SetupRoutes(router chi.Router) {
	r.DomainHandlers.Auth.Router(router)
	r.DomainHandlers.Bar.Router(router)
	r.DomainHandlers.Distillery.Router(router)
	r.DomainHandlers.Event.Router(router)
	r.DomainHandlers.Blog.Router(router)
	r.DomainHandlers.Order.Router(router)
	r.DomainHandlers.Homepage.Router(router)
	r.DomainHandlers.Media.Router(router)
	r.DomainHandlers.User.Router(router)
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
