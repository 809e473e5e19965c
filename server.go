package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/snackashi/portfolio/internal/analytics"
	"github.com/snackashi/portfolio/internal/content"
	"github.com/snackashi/portfolio/internal/nav"
	"github.com/snackashi/portfolio/internal/placeholder"
	"github.com/snackashi/portfolio/internal/portfolio"
	"github.com/snackashi/portfolio/internal/resume"
	"github.com/snackashi/portfolio/internal/sections"
	"github.com/snackashi/portfolio/internal/session"
	"github.com/snackashi/portfolio/web"
)

const (
	sessionCookie = "portfolio_session"
	sessionKey    = "session"
)

type serverDeps struct {
	Store    *content.Store
	Sessions *session.Manager
	Source   resume.Source
	Stats    *analytics.Store
	Mailer   Mailer
	Admin    *adminAuth
	Logger   *slog.Logger
}

type server struct {
	serverDeps
	nav *nav.Registry
	pdf resume.PDF
}

func newServer(deps serverDeps) *server {
	if deps.Logger == nil {
		deps.Logger = slog.Default()
	}
	return &server{serverDeps: deps, nav: nav.NewRegistry(nav.DefaultSections)}
}

// pageData is everything index.html renders.
type pageData struct {
	Nav     []nav.Section
	Hero    sections.Hero
	About   sections.About
	Cards   []portfolio.Card
	Resume  sections.Resume
	Viewer  viewerData
	Contact sections.Contact
}

type viewerData struct {
	State    resume.ViewState
	FileName string
}

func (s *server) routes() (*gin.Engine, error) {
	tmpl, err := web.Templates()
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}

	r := gin.Default()
	r.SetHTMLTemplate(tmpl)
	r.Use(s.visitorTrackingMiddleware())

	r.StaticFS("/static", http.FS(web.Static()))
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/placeholder", s.handlePlaceholder)
	r.GET("/resume/download", s.handleResumeDownload)
	r.POST("/contact", s.handleContact)

	ui := r.Group("/")
	ui.Use(s.sessionMiddleware())
	ui.GET("/", s.handleIndex)
	ui.GET("/portfolio/:id", s.handleOpenProject)
	ui.POST("/portfolio/close", s.handleCloseProject)
	ui.GET("/resume/viewer", s.handleResumeViewer)
	ui.POST("/resume/next", s.handleResumeNext)
	ui.POST("/resume/prev", s.handleResumePrev)
	ui.GET("/resume/pages/:n", s.handleResumePage)

	s.setupAdminRoutes(r)
	return r, nil
}

// sessionMiddleware attaches the visitor's UI state, starting a new session
// when the cookie is missing or expired.
func (s *server) sessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		var sess *session.Session
		if id, err := c.Cookie(sessionCookie); err == nil {
			sess, _ = s.Sessions.Get(id)
		}
		if sess == nil {
			sess = s.Sessions.Create()
		}
		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(sessionCookie, sess.ID, 0, "/", "", false, true)
		c.Set(sessionKey, sess)
		c.Next()
	}
}

func sessionFrom(c *gin.Context) *session.Session {
	return c.MustGet(sessionKey).(*session.Session)
}

func (s *server) viewer(state resume.ViewState) viewerData {
	return viewerData{State: state, FileName: s.Store.ResumeFileName()}
}

// handleIndex renders the full page. The project selection belongs to the
// page the visitor is looking at, so a fresh load starts with the modal
// closed and scrolling unlocked.
func (s *server) handleIndex(c *gin.Context) {
	sess := sessionFrom(c)
	sess.Detail.Close()

	c.HTML(http.StatusOK, "index.html", pageData{
		Nav:     s.nav.Sections(),
		Hero:    sections.NewHero(s.Store, s.nav),
		About:   sections.NewAbout(s.Store),
		Cards:   portfolio.Cards(s.Store.Projects()),
		Resume:  sections.NewResume(s.Store),
		Viewer:  s.viewer(sess.Resume.State()),
		Contact: sections.NewContact(s.Store),
	})
}

func (s *server) handleOpenProject(c *gin.Context) {
	p, err := s.Store.Project(c.Param("id"))
	if err != nil {
		c.String(http.StatusNotFound, "project not found")
		return
	}

	modal := sessionFrom(c).Detail.Open(p)
	s.recordEvent(analytics.EventProjectOpen, p.ID, c.ClientIP())

	c.Header("HX-Trigger", "scroll-lock")
	c.HTML(http.StatusOK, "portfolio-modal.html", modal)
}

func (s *server) handleCloseProject(c *gin.Context) {
	sessionFrom(c).Detail.Close()
	c.Header("HX-Trigger", "scroll-unlock")
	c.String(http.StatusOK, "")
}

func (s *server) handleResumeViewer(c *gin.Context) {
	sess := sessionFrom(c)
	c.HTML(http.StatusOK, "resume-viewer.html", s.viewer(sess.Resume.State()))
}

func (s *server) handleResumeNext(c *gin.Context) {
	sess := sessionFrom(c)
	c.HTML(http.StatusOK, "resume-viewer.html", s.viewer(sess.Resume.NextPage()))
}

func (s *server) handleResumePrev(c *gin.Context) {
	sess := sessionFrom(c)
	c.HTML(http.StatusOK, "resume-viewer.html", s.viewer(sess.Resume.PrevPage()))
}

func (s *server) handleResumePage(c *gin.Context) {
	doc, ok := sessionFrom(c).Resume.Document()
	if !ok {
		c.String(http.StatusNotFound, "resume not loaded")
		return
	}
	n, err := strconv.Atoi(c.Param("n"))
	if err != nil {
		c.String(http.StatusBadRequest, "invalid page number")
		return
	}

	page, err := s.pdf.Page(doc.Data, n, doc.Pages)
	if errors.Is(err, resume.ErrNoPage) {
		c.String(http.StatusNotFound, "page not found")
		return
	}
	if err != nil {
		s.Logger.Error("error extracting resume page", "page", n, "error", err)
		c.String(http.StatusInternalServerError, "failed to render page")
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`inline; filename="page-%d.pdf"`, n))
	c.Data(http.StatusOK, "application/pdf", page)
}

// handleResumeDownload serves the résumé as an attachment under its fixed
// file name. It does not depend on any viewer state.
func (s *server) handleResumeDownload(c *gin.Context) {
	data, err := s.Source.Fetch(c.Request.Context())
	if err != nil {
		s.Logger.Error("error fetching resume for download", "error", err)
		c.String(http.StatusBadGateway, "resume is temporarily unavailable")
		return
	}
	s.recordEvent(analytics.EventResumeDownload, "", c.ClientIP())

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, s.Store.ResumeFileName()))
	c.Data(http.StatusOK, "application/pdf", data)
}

func (s *server) handlePlaceholder(c *gin.Context) {
	w := placeholder.Size(c.Query("w"), 400)
	h := placeholder.Size(c.Query("h"), 400)
	c.Header("Cache-Control", "public, max-age=86400")
	c.Data(http.StatusOK, "image/svg+xml", placeholder.SVG(c.Query("text"), w, h))
}

// recordEvent stores an interaction in the background; analytics never
// block or fail a page.
func (s *server) recordEvent(kind, subject, ip string) {
	go func() {
		if err := s.Stats.RecordEvent(context.Background(), kind, subject, ip); err != nil {
			s.Logger.Error("error recording event", "kind", kind, "error", err)
		}
	}()
}
