// Package pubadmin is an administrative web console for a content-management
// backend, built with Go, Echo, and templ. Staff manage blog posts, newsletter
// subscribers, contact-form submissions, and uploaded file assets, all
// persisted as schemaless documents in a SQLite-backed store.
//
// Users provide their own templ components via the ViewFuncs struct, and
// pubadmin handles all the handler logic, middleware, and store operations.
package pubadmin

import (
	"fmt"
	"io/fs"
	"net/http"
	"time"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
)

// ViewFuncs holds user-provided templ components that the console calls when
// rendering pages. This is the inversion-of-control mechanism that lets users
// own and customize all templates.
type ViewFuncs struct {
	Login        func(showError bool, csrfToken string) templ.Component
	Dashboard    func(stats DashboardStats, csrfToken string) templ.Component
	BlogList     func(blogs []BlogPost, csrfToken string) templ.Component
	BlogForm     func(form BlogForm, csrfToken string) templ.Component
	BlogNotFound func() templ.Component
	Subscribers  func(subs []Subscriber, csrfToken string) templ.Component
	FormList     func(subs []FormSubmission, csrfToken string) templ.Component
	FormDetail   func(sub FormSubmission, csrfToken string) templ.Component
	Assets       func(assets []Asset, message string, csrfToken string) templ.Component
	NotFound     func() templ.Component
	ServerError  func() templ.Component
}

// App is the central pubadmin application. It wires together the document
// store, handlers, middleware, and user-provided templates.
type App struct {
	Config Config
	Echo   *echo.Echo
	Store  *Store
	Views  ViewFuncs

	loginLimiter *LoginLimiter
	httpClient   *http.Client
	customRoutes []func(*App)
	staticDir    string
}

// New creates a new pubadmin App with the given configuration and view functions.
func New(cfg Config, views ViewFuncs, opts ...Option) *App {
	cfg.setDefaults()

	a := &App{
		Config:     cfg,
		Echo:       echo.New(),
		Views:      views,
		httpClient: http.DefaultClient,
		staticDir:  "public",
	}

	for _, opt := range opts {
		opt(a)
	}

	return a
}

// Init validates config and prepares the store, middleware, and routes
// without starting the server. Start calls it; tests use it directly.
func (a *App) Init() error {
	if a.Config.AdminPassword == "" {
		return fmt.Errorf("pubadmin: AdminPassword is required")
	}
	if a.Config.SessionSecret == "" {
		return fmt.Errorf("pubadmin: SessionSecret is required")
	}

	store, err := NewStore(a.Config.DatabasePath)
	if err != nil {
		return fmt.Errorf("pubadmin: init store: %w", err)
	}
	a.Store = store

	a.loginLimiter = NewLoginLimiter(5, time.Minute)

	a.setupMiddleware()
	a.setupRoutes()

	for _, fn := range a.customRoutes {
		fn(a)
	}
	return nil
}

// Start initializes the application and starts the HTTP server.
func (a *App) Start() error {
	if err := a.Init(); err != nil {
		return err
	}
	if err := a.Echo.Start(a.Config.Addr); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Close cleans up resources. Call this when the app is shutting down.
func (a *App) Close() error {
	if a.Store != nil {
		return a.Store.Close()
	}
	return nil
}

func (a *App) setupRoutes() {
	e := a.Echo

	// Embedded console stylesheet, served ahead of the user's static dir.
	embeddedFS, _ := fs.Sub(EmbeddedAssets, "embedded")
	embeddedHandler := http.FileServer(http.FS(embeddedFS))
	e.GET("/public/admin.css", echo.WrapHandler(http.StripPrefix("/public/", embeddedHandler)))
	e.Static("/public", a.staticDir)

	e.GET("/", a.handleRoot)
	e.GET("/login/", a.handleLoginPage)
	e.POST("/login/", a.handleLogin)
	e.POST("/logout/", handleLogout)

	// Every page below is a direct CRUD view over one collection, guarded by
	// the single session check.
	g := e.Group("", a.requireAdmin)
	g.GET("/dashboard/", a.handleDashboard)

	g.GET("/blogs/", a.handleBlogList)
	g.GET("/blogs/create/", a.handleBlogCreatePage)
	g.POST("/blogs/create/", a.handleBlogCreate)
	g.GET("/blogs/edit/:id/", a.handleBlogEditPage)
	g.POST("/blogs/edit/:id/", a.handleBlogEdit)
	g.POST("/blogs/delete/:id/", a.handleBlogDelete)

	g.GET("/subscribers/", a.handleSubscriberList)
	g.POST("/subscribers/delete/:id/", a.handleSubscriberDelete)

	g.GET("/forms/", a.handleFormList)
	g.GET("/forms/:id/", a.handleFormDetail)
	g.POST("/forms/:id/status/", a.handleFormStatus)
	g.POST("/forms/delete/:id/", a.handleFormDelete)

	g.GET("/assets/", a.handleAssetList)
	g.POST("/assets/upload/", a.handleAssetUpload)
	g.POST("/assets/delete/:id/", a.handleAssetDelete)
}

// handleRoot sends authorized users to the dashboard and everyone else to login.
func (a *App) handleRoot(c echo.Context) error {
	if IsAdmin(c) {
		return c.Redirect(http.StatusSeeOther, "/dashboard/")
	}
	return c.Redirect(http.StatusSeeOther, "/login/")
}

func (a *App) httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	he, ok := err.(*echo.HTTPError)
	if ok && he.Code == http.StatusNotFound {
		_ = RenderStatus(c, http.StatusNotFound, a.Views.NotFound())
		return
	}
	code := http.StatusInternalServerError
	if ok {
		code = he.Code
	}
	if code >= 500 {
		c.Logger().Errorf("server error: %v", err)
		_ = RenderStatus(c, code, a.Views.ServerError())
		return
	}
	a.Echo.DefaultHTTPErrorHandler(err, c)
}
