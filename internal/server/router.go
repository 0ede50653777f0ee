package server

import (
	"context"
	"net/http"

	"folio/internal/handlers"
	applog "folio/internal/log"
)

type route struct {
	path    string
	handler http.HandlerFunc
}

var routes = []route{
	{"/healthz", handlers.Health},
	{"/theme/toggle", handlers.ToggleTheme},
	{"/testimonials", handlers.Testimonials},
	{"/nav/active", handlers.ActiveSection},
	{"/nav/menu", handlers.Menu},
	{"/contact", handlers.Contact},
	{"/resume.pdf", handlers.Resume},
	{"/", handlers.Home},
}

func newRouter() http.Handler {
	mux := http.NewServeMux()
	applog.Debug(context.Background(), "registering http routes")
	for _, r := range routes {
		mux.HandleFunc(r.path, r.handler)
		applog.Debug(context.Background(), "route registered", "path", r.path)
	}
	return mux
}
