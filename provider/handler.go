package provider

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/shinyscorpion/discourse/sso"
)

// ErrNotAuthenticated is returned by a Resolver when no user is signed in.
// The handler answers 401; the host application typically wraps the endpoint
// in its own login redirect instead.
var ErrNotAuthenticated = errors.New("no authenticated user")

// User is the authenticated identity a Resolver hands back for signing.
type User struct {
	ID         string         // stable external id, unique per user
	Email      string         // verified email address
	Attributes sso.Attributes // optional recognized fields (username, admin, groups, ...)
}

// Resolver maps the incoming request to the currently authenticated user.
type Resolver func(r *http.Request) (User, error)

// Handler implements the provider endpoint of the handshake.
type Handler struct {
	svc     *sso.Service
	resolve Resolver
	log     *slog.Logger
}

// Option configures a Handler.
type Option func(*Handler)

// WithLogger sets the logger for rejected and failed handshakes.
// Nil loggers are ignored.
func WithLogger(log *slog.Logger) Option {
	return func(h *Handler) {
		if log != nil {
			h.log = log
		}
	}
}

// New creates a Handler around the given signing service and user resolver.
func New(svc *sso.Service, resolve Resolver, opts ...Option) *Handler {
	h := &Handler{
		svc:     svc,
		resolve: resolve,
		log:     slog.Default(),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Router mounts the handshake endpoint at the root of a chi router.
func (h *Handler) Router() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.handleLogin)
	return r
}

// Handle returns the endpoint as a plain http.Handler for non-chi hosts.
func (h *Handler) Handle() http.Handler {
	return h.Router()
}

func (h *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	payload := r.URL.Query().Get("sso")
	signature := r.URL.Query().Get("sig")
	if payload == "" || signature == "" {
		http.Error(w, "missing sso parameters", http.StatusBadRequest)
		return
	}

	nonce, err := h.svc.Validate(payload, signature)
	switch {
	case err == nil:
	case errors.Is(err, sso.ErrInvalidSignature),
		errors.Is(err, sso.ErrInvalidEncoding),
		errors.Is(err, sso.ErrInvalidPayload):
		h.log.Warn("rejected sso handshake", slog.String("reason", err.Error()))
		http.Error(w, "invalid sso request", http.StatusBadRequest)
		return
	default:
		h.log.Error("sso validation failed", slog.String("error", err.Error()))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	user, err := h.resolve(r)
	if err != nil {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	// The request payload may name its own return endpoint; it is already
	// signature-verified at this point, so it takes priority over the
	// configured base URL.
	var opts []sso.CallOption
	if values, err := sso.DecodePayload(payload); err == nil {
		if ret := values.Get("return_sso_url"); ret != "" {
			opts = append(opts, sso.WithBaseURL(ret))
		}
	}

	location, err := h.svc.SignURL(user.ID, user.Email, nonce, user.Attributes, opts...)
	if err != nil {
		h.log.Error("sso response signing failed", slog.String("error", err.Error()))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, location, http.StatusFound)
}
