package server

import (
	"crypto/sha256"
	"embed"
	"fmt"
	"html/template"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/Daskott/launchpad/server/logger"
	"github.com/Daskott/launchpad/server/models"
	"github.com/Daskott/launchpad/server/notify"
	"github.com/Daskott/launchpad/server/submission"
	"github.com/Daskott/launchpad/shared"
	"github.com/gorilla/csrf"
	"github.com/gorilla/mux"
	"github.com/gorilla/sessions"
)

const (
	SESSION_NAME    = "launchpad"
	CSRF_FIELD_NAME = "csrf_token"
)

//go:embed templates/*.html
var templatesFS embed.FS

var (
	logg = logger.NewLogger()

	pageNames = []string{"home", "about", "blog", "intern", "contact"}
)

// App holds everything the http handlers need. Build it with NewApp.
type App struct {
	config      shared.ServerConfig
	submissions *submission.Service
	sessions    sessions.Store
	pages       map[string]*template.Template

	// only tests turn this off
	skipCSRF bool
}

func NewApp(config shared.ServerConfig, store models.ContactStore, notifier notify.Notifier) (*App, error) {
	pages, err := parsePages()
	if err != nil {
		return nil, err
	}

	cookieStore := sessions.NewCookieStore(secretKey(config.Launchpad.SecretKey, "session"))
	cookieStore.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400,
		HttpOnly: true,
		Secure:   config.Launchpad.SecureCookies,
		SameSite: http.SameSiteLaxMode,
	}

	return &App{
		config:      config,
		submissions: submission.NewService(store, notifier),
		sessions:    cookieStore,
		pages:       pages,
	}, nil
}

// Handler returns the site's router with all middlewares applied
func (app *App) Handler() http.Handler {
	router := mux.NewRouter()
	router.Use(requestIDMiddleware, loggingMiddleware)

	if !app.skipCSRF {
		router.Use(csrf.Protect(
			secretKey(app.config.Launchpad.SecretKey, "csrf"),
			csrf.Secure(app.config.Launchpad.SecureCookies),
			csrf.Path("/"),
			csrf.FieldName(CSRF_FIELD_NAME),
			csrf.ErrorHandler(http.HandlerFunc(app.csrfFailure)),
		))
	}

	router.HandleFunc("/", app.page("home", "Home")).Methods("GET")
	router.HandleFunc("/about", app.page("about", "About")).Methods("GET")
	router.HandleFunc("/blog", app.page("blog", "Blog")).Methods("GET")
	router.HandleFunc("/internshipdetails", app.page("intern", "Internship Details")).Methods("GET")
	router.HandleFunc("/contact", app.contactForm).Methods("GET")
	router.HandleFunc("/contact", app.contactSubmit).Methods("POST")

	return router
}

// Start opens the database, wires the notifier and serves the site until
// SIGINT or SIGTERM is received.
func Start(config shared.ServerConfig, devMode bool) {
	if config.Database.Dir == "" {
		config.Database.Dir = configDirectory(devMode)
	}

	db, err := models.Open(config.Database)
	fatalOnError(err)

	notifier, err := notify.New(config, logg)
	fatalOnError(err)

	app, err := NewApp(config, models.NewStore(db), notifier)
	fatalOnError(err)

	server := &http.Server{
		Addr:              net.JoinHostPort(config.Launchpad.Listener.Host, strconv.Itoa(config.Launchpad.Listener.Port)),
		Handler:           app.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go serve(server)

	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, os.Interrupt, syscall.SIGTERM)
	<-signalChan

	cleanup(server, db)
}

// ---------------------------------------------------------------------------------//
// Helper functions
// --------------------------------------------------------------------------------//

func parsePages() (map[string]*template.Template, error) {
	pages := make(map[string]*template.Template, len(pageNames))
	for _, name := range pageNames {
		tmpl, err := template.ParseFS(templatesFS, "templates/layout.html", fmt.Sprintf("templates/%s.html", name))
		if err != nil {
			return nil, fmt.Errorf("parse %s page: %v", name, err)
		}
		pages[name] = tmpl
	}
	return pages, nil
}

// secretKey derives a 32 byte key for purpose from the configured secret
func secretKey(secret, purpose string) []byte {
	key := sha256.Sum256([]byte(purpose + ":" + secret))
	return key[:]
}
