// Package web wraps gin with the small handler contract the rest of the
// application is written against: handlers take a *Context and return an
// error, and middlewares are plain handler decorators.
package web

import (
	"context"

	"github.com/gin-gonic/gin"
)

// Handler is the signature every controller method implements.
type Handler func(c *Context) error

// Middleware decorates a Handler with pre/post processing.
type Middleware func(Handler) Handler

// App is the entry point for the service and wires gin routes to Handlers.
type App struct {
	*gin.Engine
}

func NewApp() *App {
	engine := gin.New()
	engine.Use(gin.Logger(), gin.Recovery())

	return &App{Engine: engine}
}

func wrapMiddleware(mw []Middleware, handler Handler) Handler {
	// Wrap in reverse order so the first middleware listed runs first.
	for i := len(mw) - 1; i >= 0; i-- {
		h := mw[i]
		if h != nil {
			handler = h(handler)
		}
	}

	return handler
}

func (a *App) handle(method, path string, handler Handler, mw ...Middleware) {
	handler = wrapMiddleware(mw, handler)

	a.Engine.Handle(method, path, func(c *gin.Context) {
		ctx := &Context{
			Context: c,
			Ctx:     context.Background(),
		}

		// Handlers report their own responses; an error escaping here means
		// the handler could not even respond.
		_ = handler(ctx)
	})
}

func (a *App) Get(path string, handler Handler, mw ...Middleware) {
	a.handle("GET", path, handler, mw...)
}

func (a *App) Post(path string, handler Handler, mw ...Middleware) {
	a.handle("POST", path, handler, mw...)
}

func (a *App) Put(path string, handler Handler, mw ...Middleware) {
	a.handle("PUT", path, handler, mw...)
}

func (a *App) Patch(path string, handler Handler, mw ...Middleware) {
	a.handle("PATCH", path, handler, mw...)
}

func (a *App) Delete(path string, handler Handler, mw ...Middleware) {
	a.handle("DELETE", path, handler, mw...)
}
