// Copyright (c) 2025 Craftlink
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package mockapi implements a small in-memory stand-in for the Craftlink
// verification backend. It serves the same four endpoints and the same
// invalid-token signal, so the CLI can be exercised end to end without the
// real service.
package mockapi

import (
	"net/http"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"craftlink/adminctl/internal/verify"
)

// Admin credentials accepted by the mock login endpoint.
const (
	AdminEmail    = "admin@craftlink.app"
	AdminPassword = "password1"
	AdminName     = "Craftlink Admin"
)

// Server is the in-memory backend state.
type Server struct {
	mu        sync.Mutex
	tokens    map[string]bool
	clients   []verify.Request
	engineers []verify.Request
}

// New creates a mock backend seeded with a few pending requests.
func New() *Server {
	doc := func(u string) verify.Document { return verify.Document{URL: u, Provided: true} }
	return &Server{
		tokens: make(map[string]bool),
		clients: []verify.Request{
			{
				ID: "c-" + uuid.NewString()[:8], FirstName: "Sara", LastName: "Omar", Email: "sara@example.com",
				Client: &verify.Applicant{VerificationInfo: verify.VerificationInfo{
					FrontID: doc("https://cdn.craftlink.app/docs/sara-front.jpg"),
					BackID:  doc("https://cdn.craftlink.app/docs/sara-back.jpg"),
				}},
			},
			{
				ID: "c-" + uuid.NewString()[:8], FirstName: "Omar", LastName: "Adel", Email: "omar@example.com",
				// Back side never uploaded.
				Client: &verify.Applicant{VerificationInfo: verify.VerificationInfo{
					FrontID: doc("https://cdn.craftlink.app/docs/omar-front.jpg"),
				}},
			},
		},
		engineers: []verify.Request{
			{
				ID: "e-" + uuid.NewString()[:8], FirstName: "Nour", LastName: "Hassan", Email: "nour@example.com",
				Engineer: &verify.Applicant{VerificationInfo: verify.VerificationInfo{
					FrontID:        doc("https://cdn.craftlink.app/docs/nour-front.jpg"),
					BackID:         doc("https://cdn.craftlink.app/docs/nour-back.jpg"),
					GraduationCert: doc("https://cdn.craftlink.app/docs/nour-grad.pdf"),
					UnionCard:      doc("https://cdn.craftlink.app/docs/nour-union.jpg"),
				}},
			},
		},
	}
}

// Router builds the gin handler serving the backend endpoints.
func (s *Server) Router() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())

	r.POST("/login", s.handleLogin)

	authed := r.Group("/", s.requireToken)
	authed.GET("/clientsVerifyRequests", s.handleListClients)
	authed.GET("/engineersVerifyRequests", s.handleListEngineers)
	authed.PATCH("/verifyRequests/:id", s.handlePatch)

	return r
}

// RevokeAll invalidates every issued token, so the next authenticated call
// observes the invalid-token signal. Useful for demonstrating forced logout.
func (s *Server) RevokeAll() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tokens = make(map[string]bool)
}

func (s *Server) handleLogin(c *gin.Context) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.String(http.StatusBadRequest, "malformed request body")
		return
	}
	if req.Email != AdminEmail || req.Password != AdminPassword {
		c.String(http.StatusUnauthorized, "wrong email or password")
		return
	}

	token := uuid.NewString()
	s.mu.Lock()
	s.tokens[token] = true
	s.mu.Unlock()

	c.JSON(http.StatusOK, gin.H{
		"id":    "1",
		"name":  AdminName,
		"email": AdminEmail,
		"token": token,
	})
}

// requireToken rejects requests whose bearer token was never issued or has
// been revoked, with the exact body the real backend uses.
func (s *Server) requireToken(c *gin.Context) {
	token := strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
	s.mu.Lock()
	ok := token != "" && s.tokens[token]
	s.mu.Unlock()
	if !ok {
		c.String(http.StatusUnauthorized, "invalid token")
		c.Abort()
		return
	}
	c.Next()
}

func (s *Server) handleListClients(c *gin.Context) {
	s.mu.Lock()
	out := append([]verify.Request(nil), s.clients...)
	s.mu.Unlock()
	c.JSON(http.StatusOK, out)
}

func (s *Server) handleListEngineers(c *gin.Context) {
	s.mu.Lock()
	out := append([]verify.Request(nil), s.engineers...)
	s.mu.Unlock()
	c.JSON(http.StatusOK, out)
}

func (s *Server) handlePatch(c *gin.Context) {
	var d verify.Decision
	if err := c.ShouldBindJSON(&d); err != nil {
		c.String(http.StatusBadRequest, "malformed request body")
		return
	}
	if d.Status != verify.StatusAccepted && d.Status != verify.StatusRejected {
		c.String(http.StatusBadRequest, "status must be accepted or rejected")
		return
	}

	id := c.Param("id")
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, list := range []*[]verify.Request{&s.clients, &s.engineers} {
		for i, r := range *list {
			if r.ID != id {
				continue
			}
			r.Status = d.Status
			r.Remarks = d.Remarks
			// Decided requests leave the pending queue.
			*list = append((*list)[:i], (*list)[i+1:]...)
			c.JSON(http.StatusOK, r)
			return
		}
	}
	c.String(http.StatusNotFound, "verification request not found")
}
