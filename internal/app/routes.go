package app

import (
	"net/http"

	"github.com/ferdiebergado/memoboard/internal/memo"
	"github.com/ferdiebergado/memoboard/internal/middleware"
	"github.com/ferdiebergado/memoboard/internal/pkg/web"
	"github.com/ferdiebergado/memoboard/internal/platform/router"
	"github.com/ferdiebergado/memoboard/internal/platform/validation"
)

func mountMemoRoutes(r router.Router, handler *memo.Handler, validator validation.Validator, maxBodySize int64) {
	r.Group("/api", func(gr router.Router) {
		gr.Get("/memos", handler.List)
		gr.Post("/memos", handler.Create,
			middleware.DecodePayload[memo.CreateRequest](maxBodySize),
			memo.RequireTitle[memo.CreateRequest],
			middleware.ValidateInput[memo.CreateRequest](validator))
		gr.Get("/memos/{id}", handler.Find)
		gr.Put("/memos/{id}", handler.Update,
			middleware.DecodePayload[memo.UpdateRequest](maxBodySize),
			memo.RequireTitle[memo.UpdateRequest],
			memo.RequireStatus[memo.UpdateRequest])
		gr.Delete("/memos/{id}", handler.Delete)
	})
}

func mountHealthRoutes(r router.Router) {
	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		web.RespondOK(w, map[string]string{"status": "ok"})
	})
}
