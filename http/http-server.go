package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v2"
	"github.com/google/uuid"
	"github.com/llm-deploy/api/evalreq"
	"github.com/llm-deploy/api/logger"
)

type HttpServer struct {
	evalReqSrvc *evalreq.EvalReqSrvc
	router      *chi.Mux
}

func NewHttpServer(evalReqSrvc *evalreq.EvalReqSrvc) *HttpServer {
	router := chi.NewRouter()

	httpLogger := httplog.NewLogger("llm-deploy-api", httplog.Options{
		LogLevel:         slog.LevelDebug,
		Concise:          true,
		RequestHeaders:   true,
		MessageFieldName: "message",
		Tags: map[string]string{
			"version": "v0.1.0",
		},
	})

	router.Use(httplog.RequestLogger(httpLogger))

	// The API is an open front door: every origin, method and header is
	// allowed, credentials included, all response headers exposed.
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		ExposedHeaders:   []string{"*"},
		AllowCredentials: true,
		MaxAge:           3000,
	}))

	router.Use(requestIDMiddleware)

	server := &HttpServer{
		evalReqSrvc: evalReqSrvc,
		router:      router,
	}

	server.routes()

	return server
}

func (httpserver *HttpServer) Start(address string) error {
	return http.ListenAndServe(address, httpserver.router)
}

func (httpserver *HttpServer) routes() {
	r := httpserver.router
	r.Get("/", httpserver.health)
	r.Post("/make", httpserver.makeEvaluation)
}

func requestIDMiddleware(next http.Handler) http.Handler {
	hfn := func(w http.ResponseWriter, r *http.Request) {
		ctx := logger.WithRequestID(r.Context(), uuid.NewString())
		next.ServeHTTP(w, r.WithContext(ctx))
	}
	return http.HandlerFunc(hfn)
}
