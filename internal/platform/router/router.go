package router

import "net/http"

type Middleware = func(next http.Handler) http.Handler

// Router binds method and path patterns to handlers, each behind its own
// ordered middleware chain. Middlewares run in the order they are listed.
type Router interface {
	http.Handler

	Use(middleware Middleware)
	Get(pattern string, handlerFunc http.HandlerFunc, middlewares ...Middleware)
	Post(pattern string, handlerFunc http.HandlerFunc, middlewares ...Middleware)
	Put(pattern string, handlerFunc http.HandlerFunc, middlewares ...Middleware)
	Delete(pattern string, handlerFunc http.HandlerFunc, middlewares ...Middleware)
	Group(prefix string, fn func(r Router), middlewares ...Middleware)
}
