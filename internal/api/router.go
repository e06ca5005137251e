package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/readle-app/readle/internal/catalog"
	"github.com/readle-app/readle/internal/chatbot"
	"github.com/readle-app/readle/internal/middleware"
	"github.com/readle-app/readle/internal/services"
	"github.com/readle-app/readle/internal/utils"
)

type Router struct {
	sessions *services.SessionService
	shell    *services.ShellService
	match    *services.MatchService
	quiz     *services.QuizService
	bookings *services.BookingService
	psychs   *catalog.PsychologistDirectory
	chat     *chatbot.Client
	logger   *zap.Logger
}

func NewRouter(store Store, chat *chatbot.Client, logger *zap.Logger) *Router {
	if logger == nil {
		logger = zap.NewNop()
	}
	users := catalog.NewUserDirectory()
	psychs := catalog.NewPsychologistDirectory()
	return &Router{
		sessions: services.NewSessionService(users, store, middleware.SignToken),
		shell:    services.NewShellService(),
		match:    services.NewMatchService(psychs),
		quiz:     services.NewQuizService(store, catalog.QuizQuestions()),
		bookings: services.NewBookingService(psychs, store),
		psychs:   psychs,
		chat:     chat,
		logger:   logger,
	}
}

func (rt *Router) Register(mux *http.ServeMux) {
	mux.HandleFunc("/api/auth/login", rt.handleLogin)     // POST
	mux.HandleFunc("/api/auth/logout", rt.handleLogout)   // POST
	mux.HandleFunc("/api/auth/role", rt.handleSetRole)    // POST
	mux.HandleFunc("/api/auth/session", rt.handleSession) // GET
	mux.HandleFunc("/api/shell", rt.handleShell)          // GET

	mux.HandleFunc("/api/quiz/questions", rt.handleQuizQuestions) // GET
	mux.HandleFunc("/api/quiz/session", rt.handleQuizStart)       // POST
	mux.HandleFunc("/api/quiz/session/", rt.handleQuizScoped)     // per-session ops

	protected := func(h http.HandlerFunc) http.Handler { return middleware.RequireAuth(h) }
	mux.Handle("/api/match", protected(rt.handleMatch))                  // POST
	mux.Handle("/api/psychologists", protected(rt.handlePsychologists))  // GET
	mux.Handle("/api/psychologists/", protected(rt.handlePsychScoped))   // GET /{id}, POST /{id}/booking
	mux.Handle("/api/activities", protected(rt.handleActivities))        // GET
	mux.Handle("/api/activities/", protected(rt.handleActivity))         // GET /{id}
	mux.Handle("/api/badges", protected(rt.handleBadges))                // GET
	mux.Handle("/api/children", protected(rt.handleChildren))            // GET
	mux.Handle("/api/children/", protected(rt.handleChildScoped))        // GET /{id}/progress

	mux.HandleFunc("/api/chat/session", rt.handleChatSession) // POST
	mux.HandleFunc("/api/chat/session/", rt.handleChatClear)  // DELETE /{id}
	mux.HandleFunc("/api/chat", rt.handleChat)                // POST
	mux.HandleFunc("/api/chat/health", rt.handleChatHealth)   // GET
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func (rt *Router) writeError(w http.ResponseWriter, err error) {
	var apiErr *chatbot.APIError
	if errors.As(err, &apiErr) {
		writeJSON(w, http.StatusBadGateway, map[string]any{
			"error":  apiErr.Error(),
			"status": apiErr.StatusCode,
		})
		return
	}
	if se, ok := services.AsServiceError(err); ok {
		writeJSON(w, statusFor(se.Code), map[string]any{"error": se.Message})
		return
	}
	rt.logger.Error("internal error", zap.Error(err))
	writeJSON(w, http.StatusInternalServerError, map[string]any{"error": "internal error"})
}

func statusFor(code services.ErrorCode) int {
	switch code {
	case services.ErrorInvalid:
		return http.StatusBadRequest
	case services.ErrorUnauthorized:
		return http.StatusUnauthorized
	case services.ErrorForbidden:
		return http.StatusForbidden
	case services.ErrorNotFound:
		return http.StatusNotFound
	case services.ErrorConflict:
		return http.StatusConflict
	case services.ErrorBadGateway:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// POST /api/auth/login
func (rt *Router) handleLogin(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"success": false, "error": err.Error()})
		return
	}
	res, err := rt.sessions.Login(req.Email, req.Password)
	if err != nil {
		if se, ok := services.AsServiceError(err); ok && se.Code == services.ErrorUnauthorized {
			// Generic message: never reveal whether the email exists.
			locale := middleware.LocaleFromContext(r.Context())
			writeJSON(w, http.StatusUnauthorized, map[string]any{
				"success": false,
				"error":   utils.T(locale, "auth.invalid"),
			})
			return
		}
		rt.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"role":    res.Role,
		"token":   res.Token,
		"user":    res.Session,
	})
}

// POST /api/auth/logout — idempotent, succeeds with or without a session.
func (rt *Router) handleLogout(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	sid, _ := middleware.SessionIDFromContext(r.Context())
	if err := rt.sessions.Logout(sid); err != nil {
		rt.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}

// POST /api/auth/role — role override for previewing role-specific chrome.
// Works without a session by synthesizing a placeholder identity.
func (rt *Router) handleSetRole(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req struct {
		Role services.Role `json:"role"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"error": err.Error()})
		return
	}
	sid, _ := middleware.SessionIDFromContext(r.Context())
	res, err := rt.sessions.SetRole(sid, req.Role)
	if err != nil {
		rt.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"role":    res.Role,
		"token":   res.Token,
		"user":    res.Session,
	})
}

// GET /api/auth/session
func (rt *Router) handleSession(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	sid, _ := middleware.SessionIDFromContext(r.Context())
	sess, err := rt.sessions.Current(sid)
	if err != nil {
		rt.writeError(w, err)
		return
	}
	if sess == nil {
		writeJSON(w, http.StatusOK, map[string]any{"authenticated": false})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"authenticated": true, "user": sess})
}

// GET /api/shell?path=&require_auth=&fallback=
func (rt *Router) handleShell(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	q := r.URL.Query()
	path := q.Get("path")
	if path == "" {
		path = "/"
	}
	requireAuth := q.Get("require_auth") == "1" || strings.EqualFold(q.Get("require_auth"), "true")
	fallback := services.Role(q.Get("fallback"))
	if fallback == "" {
		fallback = services.PathRole(path)
	}
	sid, _ := middleware.SessionIDFromContext(r.Context())
	sess, err := rt.sessions.Current(sid)
	if err != nil {
		rt.writeError(w, err)
		return
	}
	view := rt.shell.Render(requireAuth, fallback, sess)
	if view.Placeholder != "" {
		view.Placeholder = utils.T(middleware.LocaleFromContext(r.Context()), "shell.checking")
	}
	writeJSON(w, http.StatusOK, view)
}

// GET /api/quiz/questions
func (rt *Router) handleQuizQuestions(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"questions": rt.quiz.Questions()})
}

// POST /api/quiz/session
func (rt *Router) handleQuizStart(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	st, err := rt.quiz.Start()
	if err != nil {
		rt.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, st)
}

// /api/quiz/session/{id}[/answer|/step|/reset|/results]
func (rt *Router) handleQuizScoped(w http.ResponseWriter, r *http.Request) {
	rest := strings.TrimPrefix(r.URL.Path, "/api/quiz/session/")
	parts := strings.Split(rest, "/")
	id := parts[0]
	if id == "" {
		http.NotFound(w, r)
		return
	}
	op := ""
	if len(parts) > 1 {
		op = parts[1]
	}
	switch {
	case op == "" && r.Method == http.MethodGet:
		st, err := rt.quiz.Get(id)
		if err != nil {
			rt.writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, st)
	case op == "answer" && r.Method == http.MethodPut:
		var req struct {
			Step  int    `json:"step"`
			Value string `json:"value"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]any{"error": err.Error()})
			return
		}
		st, err := rt.quiz.SetAnswer(id, req.Step, req.Value)
		if err != nil {
			rt.writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, st)
	case op == "step" && r.Method == http.MethodPut:
		var req struct {
			Step int `json:"step"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]any{"error": err.Error()})
			return
		}
		st, err := rt.quiz.SetStep(id, req.Step)
		if err != nil {
			rt.writeError(w, err)
			return
		}
		// The results surface takes over once the pointer passes the
		// question count.
		done := st.CurrentStep > len(rt.quiz.Questions())
		writeJSON(w, http.StatusOK, map[string]any{"state": st, "completed": done})
	case op == "reset" && r.Method == http.MethodPost:
		st, err := rt.quiz.Reset(id)
		if err != nil {
			rt.writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, st)
	case op == "results" && r.Method == http.MethodGet:
		analysis, err := rt.quiz.Analyze(id)
		if err != nil {
			rt.writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, analysis)
	default:
		http.NotFound(w, r)
	}
}

// POST /api/match
func (rt *Router) handleMatch(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var criteria services.MatchCriteria
	if err := json.NewDecoder(r.Body).Decode(&criteria); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"error": err.Error()})
		return
	}
	// The form requires every field even though the engine only filters on
	// language and concerns.
	var missing []string
	if criteria.ChildAgeRange == "" {
		missing = append(missing, "child_age_range")
	}
	if criteria.PreferredLanguage == "" {
		missing = append(missing, "preferred_language")
	}
	if len(criteria.AreasOfConcern) == 0 {
		missing = append(missing, "areas_of_concern")
	}
	if len(criteria.ContactMethods) == 0 {
		missing = append(missing, "contact_methods")
	}
	if len(missing) > 0 {
		writeJSON(w, http.StatusBadRequest, map[string]any{
			"error":   "missing required fields",
			"missing": missing,
		})
		return
	}
	matches := rt.match.Match(criteria)
	writeJSON(w, http.StatusOK, map[string]any{"matches": matches, "count": len(matches)})
}

// GET /api/psychologists
func (rt *Router) handlePsychologists(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"psychologists": rt.psychs.ListPsychologists()})
}

// GET /api/psychologists/{id}, POST /api/psychologists/{id}/booking
func (rt *Router) handlePsychScoped(w http.ResponseWriter, r *http.Request) {
	rest := strings.TrimPrefix(r.URL.Path, "/api/psychologists/")
	parts := strings.Split(rest, "/")
	id := parts[0]
	if id == "" {
		http.NotFound(w, r)
		return
	}
	if len(parts) > 1 && parts[1] == "booking" {
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		var req struct {
			ParentName    string `json:"parent_name"`
			Email         string `json:"email"`
			PreferredSlot string `json:"preferred_slot"`
			Note          string `json:"note"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]any{"error": err.Error()})
			return
		}
		b, err := rt.bookings.Request(id, req.ParentName, req.Email, req.PreferredSlot, req.Note)
		if err != nil {
			rt.writeError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, b)
		return
	}
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	p := rt.psychs.GetPsychologist(id)
	if p == nil {
		writeJSON(w, http.StatusNotFound, map[string]any{"error": "psychologist not found"})
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// GET /api/activities
func (rt *Router) handleActivities(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"activities": catalog.Activities()})
}

// GET /api/activities/{id}
func (rt *Router) handleActivity(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	id := strings.TrimPrefix(r.URL.Path, "/api/activities/")
	a := catalog.GetActivity(id)
	if a == nil {
		writeJSON(w, http.StatusNotFound, map[string]any{"error": "activity not found"})
		return
	}
	writeJSON(w, http.StatusOK, a)
}

// GET /api/badges?category=
func (rt *Router) handleBadges(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if category := r.URL.Query().Get("category"); category != "" {
		writeJSON(w, http.StatusOK, map[string]any{"badges": catalog.BadgesByCategory(category)})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"badges": catalog.Badges()})
}

// GET /api/children
func (rt *Router) handleChildren(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"children": catalog.Children()})
}

// GET /api/children/{id}/progress
func (rt *Router) handleChildScoped(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	rest := strings.TrimPrefix(r.URL.Path, "/api/children/")
	parts := strings.Split(rest, "/")
	if len(parts) < 2 || parts[1] != "progress" {
		http.NotFound(w, r)
		return
	}
	c := catalog.GetChild(parts[0])
	if c == nil {
		writeJSON(w, http.StatusNotFound, map[string]any{"error": "child not found"})
		return
	}
	total := 0
	for _, m := range c.WeeklyMinutes {
		total += m
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"child":          c,
		"weekly_minutes": c.WeeklyMinutes,
		"total_minutes":  total,
		"accuracy":       c.Accuracy,
		"reading_score":  c.ReadingScore,
	})
}

// POST /api/chat/session — proxied to the chatbot collaborator.
func (rt *Router) handleChatSession(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	res, err := rt.chat.NewSession(r.Context())
	if err != nil {
		rt.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// POST /api/chat
func (rt *Router) handleChat(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req struct {
		Message   string `json:"message"`
		SessionID string `json:"session_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"error": err.Error()})
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		writeJSON(w, http.StatusBadRequest, map[string]any{"error": "message required"})
		return
	}
	res, err := rt.chat.Send(r.Context(), req.Message, req.SessionID)
	if err != nil {
		rt.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// DELETE /api/chat/session/{id}
func (rt *Router) handleChatClear(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	id := strings.TrimPrefix(r.URL.Path, "/api/chat/session/")
	if id == "" {
		http.NotFound(w, r)
		return
	}
	if err := rt.chat.ClearSession(r.Context(), id); err != nil {
		rt.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// GET /api/chat/health
func (rt *Router) handleChatHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	res, err := rt.chat.Health(r.Context())
	if err != nil {
		rt.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}
