package middleware

import (
	"net/http"

	"github.com/go-chi/cors"
)

// Configure CORS and wrap handler with CORS middleware. The debug surface is
// read-only, so only GET is allowed through.
func ConfigureCORS(handler http.Handler) http.Handler {

	corsConfig := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type"},
	})

	corsHandler := corsConfig.Handler(handler)

	return corsHandler
}
