package handler

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

// NewRouter creates a new HTTP router with all routes configured
func NewRouter(workflowHandler *WorkflowHandler, hub *ProgressHub, allowedOrigins []string) http.Handler {
	router := mux.NewRouter()

	// Health check endpoint
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok","service":"pdf-summary-client"}`))
	}).Methods("GET")

	// Upload page and its actions
	router.HandleFunc("/", workflowHandler.Index).Methods("GET")
	router.HandleFunc("/upload-pdf", workflowHandler.UploadPDF).Methods("POST")
	router.HandleFunc("/download-summary", workflowHandler.DownloadSummary).Methods("POST")
	router.HandleFunc("/reset", workflowHandler.Reset).Methods("POST")

	// Live busy indicator
	if hub != nil {
		router.HandleFunc("/events", hub.ServeWS).Methods("GET")
	}

	// Configure CORS
	c := cors.New(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodOptions,
		},
		AllowedHeaders: []string{
			"Accept",
			"Content-Type",
		},
		ExposedHeaders: []string{
			"Content-Disposition",
		},
		MaxAge: 300, // Maximum value not ignored by any of major browsers
	})

	return c.Handler(router)
}
