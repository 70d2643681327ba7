package handler

import (
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	apperrors "newsapi/internal/errors"
	"newsapi/internal/middleware"
	"newsapi/internal/model"
	"newsapi/internal/repository"
	"newsapi/internal/service"
)

// NewsHandler handles news endpoints.
type NewsHandler struct {
	newsService       service.NewsService
	log               *zap.Logger
	maxThumbnailBytes int64
}

// NewNewsHandler creates a new news handler.
func NewNewsHandler(newsService service.NewsService, log *zap.Logger, maxThumbnailBytes int64) *NewsHandler {
	return &NewsHandler{
		newsService:       newsService,
		log:               log,
		maxThumbnailBytes: maxThumbnailBytes,
	}
}

// CreateNewsRequest represents the multipart fields of a news creation request.
// The thumbnail file travels separately as the "thumbnail" part.
type CreateNewsRequest struct {
	Title      string `form:"title" validate:"required,max=255"`
	Content    string `form:"content" validate:"required"`
	Categories []uint `form:"categories" validate:"omitempty,dive,gt=0"`
	Published  bool   `form:"published"`
}

// UpdateNewsRequest represents a partial news update; absent fields are left
// unchanged.
type UpdateNewsRequest struct {
	Title      *string `form:"title" validate:"omitempty,max=255"`
	Content    *string `form:"content"`
	Categories []uint  `form:"categories" validate:"omitempty,dive,gt=0"`
	Published  *bool   `form:"published"`
}

// SearchNewsRequest represents the optional search criteria.
type SearchNewsRequest struct {
	Keyword    string `query:"keyword"`
	CategoryID uint   `query:"categoryId"`
	AuthorID   uint   `query:"authorId"`
}

// AuthorSummary is the author shape embedded in news responses.
type AuthorSummary struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// NewsResponse is the wire shape of an article. Thumbnail bytes marshal to a
// base64 string.
type NewsResponse struct {
	ID         uint             `json:"id"`
	Title      string           `json:"title"`
	Content    string           `json:"content"`
	Thumbnail  []byte           `json:"thumbnail,omitempty"`
	Published  bool             `json:"published"`
	AuthorID   uint             `json:"author_id"`
	Author     *AuthorSummary   `json:"author,omitempty"`
	Categories []model.Category `json:"categories"`
	CreatedAt  time.Time        `json:"created_at"`
	UpdatedAt  time.Time        `json:"updated_at"`
}

func newNewsResponse(n *model.News) NewsResponse {
	resp := NewsResponse{
		ID:         n.ID,
		Title:      n.Title,
		Content:    n.Content,
		Thumbnail:  n.Thumbnail,
		Published:  n.Published,
		AuthorID:   n.AuthorID,
		Categories: n.Categories,
		CreatedAt:  n.CreatedAt,
		UpdatedAt:  n.UpdatedAt,
	}
	if resp.Categories == nil {
		resp.Categories = []model.Category{}
	}
	if n.Author != nil {
		resp.Author = &AuthorSummary{ID: n.Author.ID, Name: n.Author.Name}
	}
	return resp
}

func newNewsListResponse(items []model.News) []NewsResponse {
	out := make([]NewsResponse, 0, len(items))
	for i := range items {
		out = append(out, newNewsResponse(&items[i]))
	}
	return out
}

// List godoc
// @Summary List all news articles with categories and author
// @Tags news
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /api/news [get]
func (h *NewsHandler) List(c echo.Context) error {
	items, err := h.newsService.List(c.Request().Context())
	if err != nil {
		return respondError(h.log, "list news", err)
	}
	return c.JSON(http.StatusOK, echo.Map{"news": newNewsListResponse(items)})
}

// Get godoc
// @Summary Get a news article by id
// @Tags news
// @Produce json
// @Param id path int true "News ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /api/news/{id} [get]
func (h *NewsHandler) Get(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	news, err := h.newsService.Get(c.Request().Context(), id)
	if err != nil {
		return respondError(h.log, "get news", err)
	}
	return c.JSON(http.StatusOK, echo.Map{"news": newNewsResponse(news)})
}

// Search godoc
// @Summary Search news by keyword, category and author
// @Tags news
// @Produce json
// @Param keyword query string false "Substring matched against title or content, case-insensitive"
// @Param categoryId query int false "Category id the article must belong to"
// @Param authorId query int false "Exact author id"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /api/search [get]
func (h *NewsHandler) Search(c echo.Context) error {
	var req SearchNewsRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid query parameters")
	}

	items, err := h.newsService.Search(c.Request().Context(), repository.SearchFilter{
		Keyword:    req.Keyword,
		CategoryID: req.CategoryID,
		AuthorID:   req.AuthorID,
	})
	if err != nil {
		return respondError(h.log, "search news", err)
	}
	return c.JSON(http.StatusOK, echo.Map{"news": newNewsListResponse(items)})
}

// Create godoc
// @Summary Create a news article
// @Tags news
// @Accept mpfd
// @Produce json
// @Security BearerAuth
// @Param title formData string true "Title"
// @Param content formData string true "Content"
// @Param categories formData []int false "Category ids"
// @Param published formData bool false "Published flag"
// @Param thumbnail formData file true "Thumbnail image"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 401 {object} map[string]interface{}
// @Failure 403 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /api/news [post]
func (h *NewsHandler) Create(c echo.Context) error {
	claims, ok := middleware.ClaimsFromContext(c)
	if !ok {
		return echo.NewHTTPError(http.StatusForbidden, apperrors.ErrAccessDenied.Error())
	}

	var req CreateNewsRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	thumbnail, err := h.readThumbnail(c, true)
	if err != nil {
		return respondError(h.log, "create news", err)
	}

	news, err := h.newsService.Create(c.Request().Context(), service.CreateNewsInput{
		Title:       req.Title,
		Content:     req.Content,
		CategoryIDs: req.Categories,
		Published:   req.Published,
		Thumbnail:   thumbnail,
		AuthorID:    claims.UserID,
	})
	if err != nil {
		return respondError(h.log, "create news", err)
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"message": "successfully created news",
		"news":    newNewsResponse(news),
	})
}

// Update godoc
// @Summary Update a news article
// @Tags news
// @Accept mpfd
// @Produce json
// @Security BearerAuth
// @Param id path int true "News ID"
// @Param title formData string false "Title"
// @Param content formData string false "Content"
// @Param categories formData []int false "Category ids, replaces the current set"
// @Param published formData bool false "Published flag"
// @Param thumbnail formData file false "Thumbnail image"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 401 {object} map[string]interface{}
// @Failure 403 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /api/news/{id} [put]
func (h *NewsHandler) Update(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	var req UpdateNewsRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	thumbnail, err := h.readThumbnail(c, false)
	if err != nil {
		return respondError(h.log, "update news", err)
	}

	news, err := h.newsService.Update(c.Request().Context(), id, service.UpdateNewsInput{
		Title:       req.Title,
		Content:     req.Content,
		CategoryIDs: req.Categories,
		Published:   req.Published,
		Thumbnail:   thumbnail,
	})
	if err != nil {
		return respondError(h.log, "update news", err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"message": "successfully updated news",
		"news":    newNewsResponse(news),
	})
}

// Delete godoc
// @Summary Delete a news article
// @Tags news
// @Produce json
// @Security BearerAuth
// @Param id path int true "News ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 401 {object} map[string]interface{}
// @Failure 403 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /api/news/{id} [delete]
func (h *NewsHandler) Delete(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	if err := h.newsService.Delete(c.Request().Context(), id); err != nil {
		return respondError(h.log, "delete news", err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"message": "successfully deleted news",
	})
}

// readThumbnail reads the uploaded thumbnail into memory with the file part
// scoped to this call, so nothing is left on disk on any exit path. When the
// part is absent it is either an error (create) or a no-op (update).
func (h *NewsHandler) readThumbnail(c echo.Context, required bool) ([]byte, error) {
	fh, err := c.FormFile("thumbnail")
	if err != nil {
		if required {
			return nil, apperrors.ErrThumbnailMissing
		}
		return nil, nil
	}
	if fh.Size > h.maxThumbnailBytes {
		return nil, apperrors.ErrThumbnailTooLarge
	}

	src, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("open thumbnail: %w", err)
	}
	defer src.Close()

	data, err := io.ReadAll(io.LimitReader(src, h.maxThumbnailBytes+1))
	if err != nil {
		return nil, fmt.Errorf("read thumbnail: %w", err)
	}
	if int64(len(data)) > h.maxThumbnailBytes {
		return nil, apperrors.ErrThumbnailTooLarge
	}
	return data, nil
}
