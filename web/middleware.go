package web

import (
	"io"
	"net/http"

	"github.com/gorilla/handlers"
)

// Wrap adds access logging to logOut, response compression, and permissive
// CORS for GET requests around next.
func Wrap(next http.Handler, logOut io.Writer) http.Handler {
	cors := handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
		handlers.AllowedMethods([]string{http.MethodGet}),
	)
	return handlers.LoggingHandler(logOut, handlers.CompressHandler(cors(next)))
}
