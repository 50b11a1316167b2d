/*
Package dihttp provides HTTP middleware for creating [di.Container] scopes for each request.

Example:

	package main

	import (
		"net/http"

		"github.com/go-chi/chi/v5"
		"github.com/sectrean/di-cradle"
		"github.com/sectrean/di-cradle/dicontext"
		"github.com/sectrean/di-cradle/dihttp"
	)

	func main() {
		c, err := di.NewContainer(
			di.WithRegistration("service", di.AsFunction(NewService).Singleton()),
			di.WithRegistration("handler", di.AsFunction(NewHandler).Classic().Inject("service", "request").Scoped()),
		)

		r := chi.NewRouter()

		// Create a new scope for each request
		scopeMiddleware, err := dihttp.NewRequestScopeMiddleware(c)
		r.Use(scopeMiddleware)

		r.Get("/", func(w http.ResponseWriter, r *http.Request) {
			h := dicontext.MustResolve[*Handler](r.Context(), "handler")
			h.ServeHTTP(w, r)
		})

		http.ListenAndServe(":8080", r)
	}
*/
package dihttp
