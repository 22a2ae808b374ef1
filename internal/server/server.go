// Package server exposes the audit service over HTTP: request validation,
// the per-IP daily quota, and the JSON wire format live here.
package server

import (
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/brandlens/brandlens/internal/audit"
	"github.com/brandlens/brandlens/internal/catalog"
	"github.com/brandlens/brandlens/internal/config"
	"github.com/brandlens/brandlens/internal/models"
	"github.com/brandlens/brandlens/internal/notifications"
	"github.com/brandlens/brandlens/internal/ratelimit"
	"github.com/brandlens/brandlens/internal/storage"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

// Server wires the HTTP surface to its collaborators
type Server struct {
	config   *config.Config
	audits   *audit.Service
	limiter  *ratelimit.DailyLimiter
	store    storage.Store // optional
	notifier notifications.Notifier
	validate *validator.Validate
}

// New creates the HTTP server wiring
func New(cfg *config.Config, audits *audit.Service, limiter *ratelimit.DailyLimiter, store storage.Store, notifier notifications.Notifier) *Server {
	return &Server{
		config:   cfg,
		audits:   audits,
		limiter:  limiter,
		store:    store,
		notifier: notifier,
		validate: validator.New(),
	}
}

// Router builds the route table
func (s *Server) Router() *mux.Router {
	router := mux.NewRouter()
	router.HandleFunc("/health", s.handleHealth).Methods("GET")
	router.HandleFunc("/metrics", s.handleMetrics).Methods("GET")
	router.HandleFunc("/api/audit", s.handleAudit).Methods("POST")
	router.HandleFunc("/api/audit/email", s.handleEmailCapture).Methods("POST")
	return router
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

func (s *Server) handleMetrics(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(s.audits.GetMetrics()))
}

func (s *Server) handleAudit(w http.ResponseWriter, r *http.Request) {
	ip := clientIP(r)

	decision := s.limiter.Check(ip)
	w.Header().Set("X-RateLimit-Remaining", fmt.Sprintf("%d", decision.Remaining))
	w.Header().Set("X-RateLimit-Reset", fmt.Sprintf("%d", decision.ResetAt.Unix()))
	if !decision.Allowed {
		writeJSON(w, http.StatusTooManyRequests, map[string]any{
			"error":   fmt.Sprintf("Daily limit reached. You can run %d audits per day.", s.config.DailyAuditLimit),
			"code":    "RATE_LIMIT",
			"resetAt": decision.ResetAt.Unix(),
		})
		return
	}

	var request models.AuditRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{
			"error": "Invalid request body",
		})
		return
	}
	request.BrandName = strings.TrimSpace(request.BrandName)

	if details := s.validateAuditRequest(request); len(details) > 0 {
		writeJSON(w, http.StatusBadRequest, map[string]any{
			"error":   "Invalid input",
			"details": details,
		})
		return
	}

	result, err := s.audits.Run(r.Context(), request)
	if err != nil {
		logrus.Errorf("Audit failed: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]any{
			"error": "Failed to run audit. Please try again.",
		})
		return
	}

	writeJSON(w, http.StatusOK, result)
}

type emailCaptureRequest struct {
	Email     string `json:"email" validate:"required,email"`
	AuditID   string `json:"auditId" validate:"required,uuid4"`
	BrandName string `json:"brandName"`
}

func (s *Server) handleEmailCapture(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]any{
			"error": "Email capture requires persistence to be configured",
		})
		return
	}

	var request emailCaptureRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{
			"error": "Invalid request body",
		})
		return
	}
	request.Email = strings.ToLower(strings.TrimSpace(request.Email))

	if details := fieldErrors(s.validate.Struct(request)); len(details) > 0 {
		writeJSON(w, http.StatusBadRequest, map[string]any{
			"error":   "Invalid input",
			"details": details,
		})
		return
	}

	stored, err := s.store.GetAudit(r.Context(), request.AuditID)
	if err != nil {
		logrus.Errorf("Failed to load audit %s: %v", request.AuditID, err)
		writeJSON(w, http.StatusInternalServerError, map[string]any{
			"error": "Failed to load audit",
		})
		return
	}
	if stored == nil {
		writeJSON(w, http.StatusNotFound, map[string]any{
			"error": "Audit not found",
		})
		return
	}

	capture := models.EmailCapture{
		ID:        uuid.NewString(),
		AuditID:   request.AuditID,
		Email:     request.Email,
		BrandName: stored.BrandName,
	}
	if err := s.store.SaveEmailCapture(r.Context(), capture); err != nil {
		logrus.Errorf("Failed to save email capture: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]any{
			"error": "Failed to save email",
		})
		return
	}

	if s.notifier != nil && s.notifier.IsEnabled() {
		if err := s.notifier.SendAuditReport(request.Email, &stored.Result); err != nil {
			logrus.Errorf("Failed to send report email: %v", err)
		}
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// validateAuditRequest returns field-by-field validation messages, empty
// when the request is valid
func (s *Server) validateAuditRequest(request models.AuditRequest) map[string]string {
	details := fieldErrors(s.validate.Struct(request))

	if request.Category != "" && !catalog.IsValidCategory(request.Category) {
		details["category"] = "Please select a valid category"
	}
	return details
}

func fieldErrors(err error) map[string]string {
	details := make(map[string]string)
	if err == nil {
		return details
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		details["request"] = err.Error()
		return details
	}

	for _, fieldError := range validationErrors {
		field := fieldError.Field()
		switch fieldError.Tag() {
		case "required":
			details[field] = fmt.Sprintf("%s is required", field)
		case "max":
			details[field] = fmt.Sprintf("%s is too long", field)
		case "email":
			details[field] = "Please enter a valid email address"
		case "uuid4":
			details[field] = "Invalid audit ID"
		case "url":
			details[field] = "Must be a valid URL"
		default:
			details[field] = fmt.Sprintf("%s is invalid", field)
		}
	}
	return details
}

// clientIP resolves the caller's IP, preferring proxy headers
func clientIP(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		if first, _, ok := strings.Cut(forwarded, ","); ok {
			return strings.TrimSpace(first)
		}
		return strings.TrimSpace(forwarded)
	}
	if realIP := r.Header.Get("X-Real-IP"); realIP != "" {
		return realIP
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logrus.Errorf("Failed to encode response: %v", err)
	}
}
