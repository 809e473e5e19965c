// admin.go - privacy-conscious analytics and the admin dashboard
package main

import (
	"context"
	"crypto/subtle"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/snackashi/portfolio/internal/analytics"
	"github.com/snackashi/portfolio/internal/config"
)

const adminCookie = "admin_token"

// Paths that never count as a page view.
var untrackedPrefixes = []string{
	"/static/",
	"/images/",
	"/admin/",
	"/favicon",
	"/privacy",
	"/placeholder",
	"/healthz",
	"/portfolio/",
	"/resume/",
	"/contact",
}

type adminAuth struct {
	token    string
	username string
	password string
}

// newAdminAuth generates the session token for this process. Without
// configured credentials the dashboard only opens in gin debug mode, with
// development defaults.
func newAdminAuth(cfg config.AdminConfig, logger *slog.Logger) (*adminAuth, error) {
	if logger == nil {
		logger = slog.Default()
	}
	token, err := analytics.RandomToken()
	if err != nil {
		return nil, err
	}
	a := &adminAuth{token: token, username: cfg.Username, password: cfg.Password}

	if gin.Mode() == gin.DebugMode {
		if a.username == "" {
			a.username = "admin"
			logger.Warn("using default admin username, set ADMIN_USERNAME")
		}
		if a.password == "" {
			a.password = "admin123"
			logger.Warn("using default admin password, set ADMIN_PASSWORD")
		}
	}
	if a.password == "" {
		logger.Info("admin dashboard disabled, ADMIN_PASSWORD not set")
	} else {
		logger.Info("admin access available", "path", "/admin/login")
	}
	return a, nil
}

func (a *adminAuth) enabled() bool {
	return a.username != "" && a.password != ""
}

func (a *adminAuth) check(username, password string) bool {
	if !a.enabled() {
		return false
	}
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(a.username)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(a.password)) == 1
	return userOK && passOK
}

// adminAuthMiddleware checks the admin cookie.
func (s *server) adminAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(adminCookie)
		if err != nil || subtle.ConstantTimeCompare([]byte(token), []byte(s.Admin.token)) != 1 {
			c.Redirect(http.StatusFound, "/admin/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

// visitorTrackingMiddleware records page views with hashed IPs. Requests
// with DNT set are skipped.
func (s *server) visitorTrackingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if c.Request.Method != http.MethodGet || untracked(path) || c.GetHeader("DNT") == "1" {
			c.Next()
			return
		}

		ip, ua := c.ClientIP(), c.GetHeader("User-Agent")
		go func() {
			if err := s.Stats.RecordVisit(context.Background(), ip, ua, path); err != nil {
				s.Logger.Error("error recording visitor", "error", err)
			}
		}()
		c.Next()
	}
}

func untracked(path string) bool {
	for _, prefix := range untrackedPrefixes {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}

func (s *server) setupAdminRoutes(r *gin.Engine) {
	r.GET("/privacy", func(c *gin.Context) {
		c.HTML(http.StatusOK, "privacy.html", gin.H{
			"title": "Privacy Policy",
		})
	})

	r.GET("/admin/login", func(c *gin.Context) {
		c.HTML(http.StatusOK, "admin-login.html", gin.H{})
	})

	r.POST("/admin/login", func(c *gin.Context) {
		hashed := s.Stats.HashIP(c.ClientIP())
		if !s.Admin.check(c.PostForm("username"), c.PostForm("password")) {
			s.Logger.Warn("failed admin login attempt", "visitor", hashed)
			c.HTML(http.StatusUnauthorized, "admin-login.html", gin.H{
				"error": "Invalid credentials",
			})
			return
		}

		c.SetCookie(adminCookie, s.Admin.token, 3600*24, "/admin", "", false, true)
		s.Logger.Info("admin login successful", "visitor", hashed)
		c.Redirect(http.StatusFound, "/admin/dashboard")
	})

	r.GET("/admin/logout", func(c *gin.Context) {
		c.SetCookie(adminCookie, "", -1, "/admin", "", false, true)
		c.Redirect(http.StatusFound, "/admin/login")
	})

	adminGroup := r.Group("/admin")
	adminGroup.Use(s.adminAuthMiddleware())

	adminGroup.GET("/dashboard", func(c *gin.Context) {
		ctx := c.Request.Context()
		stats, err := s.Stats.Stats(ctx)
		if err != nil {
			s.Logger.Error("error loading admin stats", "error", err)
			c.HTML(http.StatusInternalServerError, "admin-error.html", gin.H{
				"error": "Failed to load statistics",
			})
			return
		}
		messages, err := s.Stats.Messages(ctx, 100)
		if err != nil {
			s.Logger.Error("error loading messages", "error", err)
			c.HTML(http.StatusInternalServerError, "admin-error.html", gin.H{
				"error": "Failed to load messages",
			})
			return
		}

		c.HTML(http.StatusOK, "admin-dashboard.html", gin.H{
			"stats":    stats,
			"messages": messages,
		})
	})

	adminGroup.GET("/api/stats", func(c *gin.Context) {
		stats, err := s.Stats.Stats(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, stats)
	})

	adminGroup.GET("/export/stats", func(c *gin.Context) {
		stats, err := s.Stats.Stats(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.Header("Content-Disposition", "attachment; filename=portfolio-stats.json")
		c.JSON(http.StatusOK, stats)
	})

	adminGroup.POST("/privacy/cleanup", func(c *gin.Context) {
		removed, err := s.Stats.Cleanup(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"removed": removed})
	})
}
