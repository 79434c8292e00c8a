// Package httpserver builds the process http.Server.
package httpserver

import (
	"net/http"
	"time"
)

// New builds the server. The write timeout is configurable because bcrypt
// hashing on signup and login dominates response time at high cost settings;
// the remaining timeouts are fixed for this small JSON API.
func New(addr string, handler http.Handler, writeTimeout time.Duration) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       2 * time.Minute,
	}
}
