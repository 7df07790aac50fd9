package http

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/rivervalleyreport/backend/db"
)

const articleTimeout = 10 * time.Second

type articleRequest struct {
	Title    string  `json:"title" binding:"required"`
	Excerpt  string  `json:"excerpt" binding:"required"`
	Content  string  `json:"content" binding:"required"`
	Category string  `json:"category" binding:"required"`
	Author   string  `json:"author" binding:"required"`
	ImageURL *string `json:"image_url" binding:"omitempty,url"`
	Status   string  `json:"status" binding:"omitempty,oneof=draft published"`
}

type articlePatchRequest struct {
	Title    *string `json:"title" binding:"omitempty,min=1"`
	Excerpt  *string `json:"excerpt" binding:"omitempty,min=1"`
	Content  *string `json:"content" binding:"omitempty,min=1"`
	Category *string `json:"category" binding:"omitempty,min=1"`
	Author   *string `json:"author" binding:"omitempty,min=1"`
	ImageURL *string `json:"image_url" binding:"omitempty,url"`
	Status   *string `json:"status" binding:"omitempty,oneof=draft published"`
}

// handleListArticles returns published articles, newest first.
// GET /api/articles
func (s *Server) handleListArticles(c *gin.Context) {
	s.listArticles(c, true)
}

// handleListAllArticles returns every article including drafts (admin view).
// GET /api/articles/all
func (s *Server) handleListAllArticles(c *gin.Context) {
	s.listArticles(c, false)
}

func (s *Server) listArticles(c *gin.Context, onlyPublished bool) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), articleTimeout)
	defer cancel()

	articles, err := s.articles.ListArticles(ctx, onlyPublished)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load articles"})
		return
	}

	c.JSON(http.StatusOK, articles)
}

// handleGetArticle returns one article by id.
// GET /api/articles/:id
func (s *Server) handleGetArticle(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), articleTimeout)
	defer cancel()

	article, err := s.articles.GetArticle(ctx, c.Param("id"))
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "article not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load article"})
		return
	}

	c.JSON(http.StatusOK, article)
}

// handleCreateArticle validates and stores a new article.
// POST /api/articles
func (s *Server) handleCreateArticle(c *gin.Context) {
	var req articleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), articleTimeout)
	defer cancel()

	created, err := s.articles.CreateArticle(ctx, db.NewArticle{
		Title:    req.Title,
		Excerpt:  req.Excerpt,
		Content:  req.Content,
		Category: req.Category,
		Author:   req.Author,
		ImageURL: req.ImageURL,
		Status:   req.Status,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create article"})
		return
	}

	c.JSON(http.StatusCreated, created)
}

// handleUpdateArticle applies a validated partial update.
// PATCH /api/articles/:id
func (s *Server) handleUpdateArticle(c *gin.Context) {
	var req articlePatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), articleTimeout)
	defer cancel()

	updated, err := s.articles.UpdateArticle(ctx, c.Param("id"), db.ArticlePatch{
		Title:    req.Title,
		Excerpt:  req.Excerpt,
		Content:  req.Content,
		Category: req.Category,
		Author:   req.Author,
		ImageURL: req.ImageURL,
		Status:   req.Status,
	})
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "article not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update article"})
		return
	}

	c.JSON(http.StatusOK, updated)
}

// handleDeleteArticle removes an article.
// DELETE /api/articles/:id
func (s *Server) handleDeleteArticle(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), articleTimeout)
	defer cancel()

	id := c.Param("id")
	if err := s.articles.DeleteArticle(ctx, id); err != nil {
		if errors.Is(err, db.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "article not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete article"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted_id": id})
}
