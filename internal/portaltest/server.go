// Package portaltest provides an in-process fake of the portal backend for
// client tests: the real routes, envelopes and authenticity checks over
// in-memory fixtures.
package portaltest

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"os"
	"sync"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/hrsuite/portal-go/internal/domain/finance"
	"github.com/hrsuite/portal-go/internal/domain/leave"
	"github.com/hrsuite/portal-go/internal/domain/profile"
	"github.com/hrsuite/portal-go/internal/domain/settings"
	"github.com/hrsuite/portal-go/internal/domain/timelog"
)

// Server is a fake portal backend. Fixtures are plain exported fields set up
// before the test drives the client against Handler().
type Server struct {
	// CSRFToken, when set, is required in the X-CSRFToken header of every
	// mutating request.
	CSRFToken string

	// PageSize controls pagination of the finance employee listing and the
	// leave approval search.
	PageSize int

	mu sync.Mutex

	Holidays         []leave.Holiday
	SundayExceptions []leave.SundayException
	TimelogEmployees []timelog.Employee
	FinanceEmployees []finance.Employee
	LeaveRequests    map[string]*leave.LeaveRequest
	IsApprover       bool
	Balances         map[string]leave.BalanceResponse

	// UploadResults configures the response per finance upload type; an
	// unconfigured type answers with a clean success.
	UploadResults map[finance.UploadType]finance.UploadResult

	settingsItems map[settings.Resource][]settings.Item
	educations    map[int64]profile.Education
	nextID        int64

	jwtAuth *jwtauth.JWTAuth
	quiet   bool
}

type Option func(*Server)

// WithBearerAuth makes every route require a valid HS256 bearer token
// signed with the secret.
func WithBearerAuth(secret string) Option {
	return func(s *Server) {
		s.jwtAuth = jwtauth.New("HS256", []byte(secret), nil)
	}
}

// WithRequestLogging enables the request log, useful when a test fails.
func WithRequestLogging() Option {
	return func(s *Server) { s.quiet = false }
}

func NewServer(opts ...Option) *Server {
	s := &Server{
		PageSize:      10,
		LeaveRequests: make(map[string]*leave.LeaveRequest),
		Balances:      make(map[string]leave.BalanceResponse),
		UploadResults: make(map[finance.UploadType]finance.UploadResult),
		settingsItems: make(map[settings.Resource][]settings.Item),
		educations:    make(map[int64]profile.Education),
		nextID:        1,
		quiet:         true,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// BearerToken mints a token accepted by a server built WithBearerAuth.
func (s *Server) BearerToken(claims map[string]interface{}) string {
	if s.jwtAuth == nil {
		return ""
	}
	_, token, _ := s.jwtAuth.Encode(claims)
	return token
}

// SeedSettings installs a settings item and returns its assigned id.
func (s *Server) SeedSettings(resource settings.Resource, item settings.Item) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	item.ID = s.nextID
	s.nextID++
	s.settingsItems[resource] = append(s.settingsItems[resource], item)
	return item.ID
}

// SeedEducation installs an education record and returns its assigned id.
func (s *Server) SeedEducation(e profile.Education) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	e.ID = s.nextID
	s.nextID++
	s.educations[e.ID] = e
	return e.ID
}

// Handler builds the route tree.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRFToken"},
	}))

	if !s.quiet {
		logger := slog.New(slog.NewJSONHandler(os.Stdout, nil)).With(
			slog.String("app", "portaltest"),
		)
		r.Use(httplog.RequestLogger(logger, &httplog.Options{
			Level:  slog.LevelDebug,
			Schema: httplog.SchemaECS,
		}))
	}

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)

	if s.jwtAuth != nil {
		r.Use(jwtauth.Verifier(s.jwtAuth))
		r.Use(jwtauth.Authenticator(s.jwtAuth))
	}
	r.Use(s.requireCSRF)

	r.Route("/calendar/timelogs", func(r chi.Router) {
		r.Get("/employees/", s.listTimelogEmployees)
		r.Post("/add/", s.addTimelog)
		r.Post("/import/", s.importTimelogs)
		r.Put("/user/{id}/update/", s.updateTimelog)
		r.Delete("/user/{id}/delete/", s.deleteTimelog)
	})

	r.Route("/finance", func(r chi.Router) {
		r.Get("/employees/", s.listFinanceEmployees)
		r.Get("/chart-data/", s.financeChartData)
		r.Get("/filter-options/", s.financeFilterOptions)
		r.Post("/{type}/import/", s.financeUpload)
	})

	r.Route("/general-settings/api/{resource}", func(r chi.Router) {
		r.Get("/", s.listSettings)
		r.Post("/", s.createSettings)
		r.Put("/{id}/", s.updateSettings)
		r.Delete("/{id}/", s.deleteSettings)
	})

	r.Route("/leave", func(r chi.Router) {
		r.Get("/api/holidays-and-exceptions/", s.holidaysAndExceptions)
		r.Get("/api/check-approver/", s.checkApprover)
		r.Get("/ajax/balance/", s.leaveBalance)
		r.Get("/ajax/search-approvals/", s.searchApprovals)
		r.Get("/ajax/chart-data/", s.leaveChartData)
		r.Get("/ajax/approval-chart-data/", s.leaveChartData)
		r.Get("/detail/{controlNumber}/", s.leaveDetail)
		r.Post("/apply/", s.applyLeave)
		r.Post("/cancel/{controlNumber}/", s.cancelLeave)
		r.Post("/process/{controlNumber}/", s.processLeave)
	})

	r.Route("/profile", func(r chi.Router) {
		r.Post("/update-profile-section/", s.updateProfileSection)
		r.Post("/admin/employee/{id}/update/", s.adminUpdateEmployee)
		r.Post("/admin/employee/{id}/{action}/", s.adminEmployeeAction)
		r.Post("/add-education/", s.addEducation)
		r.Post("/update-education/{id}/", s.updateEducation)
		r.Post("/delete-education/{id}/", s.deleteEducation)
	})

	return r
}

// requireCSRF enforces the X-CSRFToken header on mutating requests, the way
// the portal's session deployments do.
func (s *Server) requireCSRF(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.CSRFToken != "" && r.Method != http.MethodGet && r.Method != http.MethodHead {
			if r.Header.Get("X-CSRFToken") != s.CSRFToken {
				writeJSON(w, http.StatusForbidden, map[string]interface{}{
					"success": false,
					"error":   "CSRF token missing or incorrect",
				})
				return
			}
		}
		next.ServeHTTP(w, r)
	})
}

func writeJSON(w http.ResponseWriter, statusCode int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeSuccess(w http.ResponseWriter, extra map[string]interface{}) {
	payload := map[string]interface{}{"success": true}
	for k, v := range extra {
		payload[k] = v
	}
	writeJSON(w, http.StatusOK, payload)
}

func writeNotFound(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusNotFound, map[string]interface{}{
		"success": false,
		"error":   message,
	})
}

func writeBadRequest(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusBadRequest, map[string]interface{}{
		"success": false,
		"error":   message,
	})
}
