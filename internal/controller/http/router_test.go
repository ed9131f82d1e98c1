package http

import (
	"time"

	"github.com/go-chi/chi/v5"
)

const testTokenTTL = time.Hour

func newRouter() *chi.Mux { return chi.NewRouter() }
