// Package conan implements the HTTP adapter for the Conan v1 REST API.
package conan

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/bnema/zerowrap"
	"github.com/labstack/echo/v4"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/bnema/conanhost/internal/adapters/in/http/middleware"
	"github.com/bnema/conanhost/internal/adapters/out/telemetry"
	"github.com/bnema/conanhost/internal/boundaries/in"
	"github.com/bnema/conanhost/internal/domain"
	"github.com/bnema/conanhost/pkg/validation"
)

const (
	// CapabilitiesHeader advertises optional server features to Conan clients.
	CapabilitiesHeader = "X-Conan-Server-Capabilities"
	// MaxManifestSize limits upload_urls request bodies to 1MB.
	MaxManifestSize = 1 << 20
)

// Handler implements the HTTP handler for the Conan v1 API.
type Handler struct {
	conanSvc in.ConanService
	authSvc  in.AuthService
	metrics  *telemetry.Metrics
}

// NewHandler creates a new Conan HTTP handler.
func NewHandler(conanSvc in.ConanService, authSvc in.AuthService) *Handler {
	return &Handler{
		conanSvc: conanSvc,
		authSvc:  authSvc,
	}
}

// SetMetrics enables metric recording. A nil value disables it.
func (h *Handler) SetMetrics(m *telemetry.Metrics) {
	h.metrics = m
}

// RegisterRoutes registers the Conan routes on e.
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	read := middleware.RequireAuth(h.authSvc, middleware.AccessRead, h.recordAuthFailure)
	write := middleware.RequireAuth(h.authSvc, middleware.AccessWrite, h.recordAuthFailure)

	v1 := e.Group("/v1")
	v1.GET("/ping", h.handlePing)
	v1.GET("/users/authenticate", h.handleAuthenticate)
	v1.GET("/users/check_credentials", h.handleCheckCredentials, write)
	v1.GET("/conans/search", h.handleSearch, read)

	recipe := v1.Group("/conans/:name/:version/:user/:channel")
	recipe.GET("/search", h.handlePackageSearch, read)
	recipe.GET("/download_urls", h.handleRecipeDownloadURLs, read)
	recipe.GET("/packages/:package_id/download_urls", h.handlePackageDownloadURLs, read)
	recipe.POST("/upload_urls", h.handleRecipeUploadURLs, write)
	recipe.POST("/packages/:package_id/upload_urls", h.handlePackageUploadURLs, write)

	e.PUT("/:group/:name/:version/:channel/*", h.handleUpload, write)
	e.GET("/:group/:name/:version/:channel/*", h.handleGetContent, read)
}

func (h *Handler) handlePing(c echo.Context) error {
	c.Response().Header().Set(CapabilitiesHeader, "")
	return c.NoContent(http.StatusOK)
}

func (h *Handler) handleAuthenticate(c echo.Context) error {
	if !h.authSvc.IsEnabled() {
		return c.String(http.StatusOK, "")
	}

	ctx := h.handlerCtx(c, "authenticate")
	log := zerowrap.FromCtx(ctx)

	username, password, ok := c.Request().BasicAuth()
	if !ok || !h.authSvc.ValidatePassword(ctx, username, password) {
		h.recordAuthFailure(c)
		log.Warn().Str("client_ip", c.RealIP()).Msg("authentication rejected")
		return middleware.Unauthorized(c)
	}

	token, err := h.authSvc.GenerateToken(ctx, username)
	if err != nil {
		log.Error().Err(err).Msg("failed to generate token")
		return c.String(http.StatusInternalServerError, "failed to generate token")
	}
	return c.String(http.StatusOK, token)
}

func (h *Handler) handleCheckCredentials(c echo.Context) error {
	subject, _ := middleware.SubjectFromContext(c.Request().Context())
	return c.String(http.StatusOK, subject)
}

type searchResponse struct {
	Results []string `json:"results"`
}

func (h *Handler) handleSearch(c echo.Context) error {
	ctx := h.handlerCtx(c, "search")

	results, err := h.conanSvc.Search(ctx, c.QueryParam("q"))
	if err != nil {
		return h.sendError(c, ctx, err)
	}

	if h.metrics != nil {
		h.metrics.SearchTotal.Add(ctx, 1)
		h.metrics.SearchResults.Record(ctx, int64(len(results)))
	}
	return c.JSON(http.StatusOK, searchResponse{Results: results})
}

func (h *Handler) handlePackageSearch(c echo.Context) error {
	ctx := h.handlerCtx(c, "package_search")

	coord, err := recipeCoordinate(c)
	if err != nil {
		return h.sendError(c, ctx, err)
	}

	infos, err := h.conanSvc.ListPackageInfos(ctx, coord)
	if errors.Is(err, domain.ErrComponentNotFound) {
		return c.String(http.StatusNotFound, "Recipe not found: "+coord.Spec())
	}
	if err != nil {
		return h.sendError(c, ctx, err)
	}
	return c.JSON(http.StatusOK, infos)
}

func (h *Handler) handleRecipeDownloadURLs(c echo.Context) error {
	ctx := h.handlerCtx(c, "recipe_download_urls")

	coord, err := recipeCoordinate(c)
	if err != nil {
		return h.sendError(c, ctx, err)
	}
	return h.sendDownloadURLs(c, ctx, coord.StoragePath(domain.FileDownloadURLs))
}

func (h *Handler) handlePackageDownloadURLs(c echo.Context) error {
	ctx := h.handlerCtx(c, "package_download_urls")

	coord, packageID, err := packageCoordinate(c)
	if err != nil {
		return h.sendError(c, ctx, err)
	}
	return h.sendDownloadURLs(c, ctx, coord.StoragePath(domain.PackagesDir, packageID, domain.FileDownloadURLs))
}

func (h *Handler) sendDownloadURLs(c echo.Context, ctx context.Context, path string) error {
	manifest, err := h.conanSvc.GetDownloadURLs(ctx, path)
	if err != nil {
		return h.sendError(c, ctx, err)
	}
	return c.Blob(http.StatusOK, echo.MIMEApplicationJSON, []byte(manifest))
}

func (h *Handler) handleRecipeUploadURLs(c echo.Context) error {
	ctx := h.handlerCtx(c, "recipe_upload_urls")

	coord, err := recipeCoordinate(c)
	if err != nil {
		return h.sendError(c, ctx, err)
	}
	return h.storeUploadURLs(c, ctx, coord, coord.StoragePath())
}

func (h *Handler) handlePackageUploadURLs(c echo.Context) error {
	ctx := h.handlerCtx(c, "package_upload_urls")

	coord, packageID, err := packageCoordinate(c)
	if err != nil {
		return h.sendError(c, ctx, err)
	}
	return h.storeUploadURLs(c, ctx, coord, coord.StoragePath(domain.PackagesDir, packageID))
}

func (h *Handler) storeUploadURLs(c echo.Context, ctx context.Context, coord domain.Coordinate, assetPath string) error {
	body := http.MaxBytesReader(c.Response(), c.Request().Body, MaxManifestSize)
	manifest, err := h.conanSvc.UploadDownloadURLs(ctx, coord, assetPath, body)
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return c.String(http.StatusRequestEntityTooLarge, "manifest too large")
		}
		return h.sendError(c, ctx, err)
	}
	return c.Blob(http.StatusOK, echo.MIMEApplicationJSON, []byte(manifest))
}

func (h *Handler) handleUpload(c echo.Context) error {
	ctx := h.handlerCtx(c, "upload")
	log := zerowrap.FromCtx(ctx)

	coord, assetPath, err := fileCoordinate(c)
	if err != nil {
		return h.sendError(c, ctx, err)
	}

	kind, err := domain.AssetKindForFile(assetPath)
	if err != nil {
		return h.sendError(c, ctx, err)
	}

	body := &countingReader{r: c.Request().Body}
	if err := h.conanSvc.Upload(ctx, coord, assetPath, body, kind); err != nil {
		if h.metrics != nil {
			h.metrics.UploadErrors.Add(ctx, 1)
		}
		return h.sendError(c, ctx, err)
	}

	if h.metrics != nil {
		kindAttr := metric.WithAttributes(attribute.String("kind", string(kind)))
		h.metrics.UploadTotal.Add(ctx, 1, kindAttr)
		h.metrics.UploadBytes.Add(ctx, body.n, kindAttr)
	}
	log.Info().Str("asset", assetPath).Int64(zerowrap.FieldSize, body.n).Msg("asset uploaded")
	return c.NoContent(http.StatusOK)
}

func (h *Handler) handleGetContent(c echo.Context) error {
	ctx := h.handlerCtx(c, "get_content")

	_, assetPath, err := fileCoordinate(c)
	if err != nil {
		return h.sendError(c, ctx, err)
	}

	content, err := h.conanSvc.GetContent(ctx, assetPath)
	if err != nil {
		if h.metrics != nil && errors.Is(err, domain.ErrNotFound) {
			h.metrics.DownloadMisses.Add(ctx, 1)
		}
		return h.sendError(c, ctx, err)
	}

	r, err := content.Open()
	if err != nil {
		return h.sendError(c, ctx, err)
	}
	defer r.Close()

	hdr := c.Response().Header()
	hdr.Set(echo.HeaderContentLength, strconv.FormatInt(content.Size, 10))
	if !content.LastModified.IsZero() {
		hdr.Set(echo.HeaderLastModified, content.LastModified.UTC().Format(http.TimeFormat))
	}
	if sum, ok := content.Hashes[domain.HashSHA256]; ok {
		hdr.Set("ETag", `"`+sum+`"`)
	}

	if h.metrics != nil {
		h.metrics.DownloadTotal.Add(ctx, 1, metric.WithAttributes(attribute.String("kind", string(content.Kind))))
	}
	return c.Stream(http.StatusOK, content.ContentType, r)
}

func (h *Handler) handlerCtx(c echo.Context, name string) context.Context {
	r := c.Request()
	return zerowrap.CtxWithFields(r.Context(), map[string]any{
		zerowrap.FieldLayer:   "adapter",
		zerowrap.FieldAdapter: "http",
		zerowrap.FieldHandler: name,
		zerowrap.FieldMethod:  r.Method,
		zerowrap.FieldPath:    r.URL.Path,
	})
}

func (h *Handler) recordAuthFailure(c echo.Context) {
	if h.metrics != nil {
		h.metrics.AuthFailures.Add(c.Request().Context(), 1)
	}
}

// sendError maps a service error onto the Conan status codes.
func (h *Handler) sendError(c echo.Context, ctx context.Context, err error) error {
	status := statusFor(err)
	log := zerowrap.FromCtx(ctx)
	event := log.Debug()
	if status >= http.StatusInternalServerError {
		event = log.Error()
	}
	event.Err(err).Int("status", status).Msg("request failed")

	if status >= http.StatusInternalServerError {
		return c.String(status, http.StatusText(status))
	}
	return c.String(status, err.Error())
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrInvalidCoordinate),
		errors.Is(err, domain.ErrInvalidManifest),
		errors.Is(err, domain.ErrUnknownAssetKind):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrInvalidQuery),
		errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrUnauthorized),
		errors.Is(err, domain.ErrInvalidToken):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// recipeCoordinate reads the name/version/user/channel route segments.
func recipeCoordinate(c echo.Context) (domain.Coordinate, error) {
	return domain.ParseFromPath(domain.PathTokens{
		Project: c.Param("name"),
		Version: c.Param("version"),
		Group:   c.Param("user"),
		Channel: c.Param("channel"),
	})
}

func packageCoordinate(c echo.Context) (domain.Coordinate, string, error) {
	coord, err := recipeCoordinate(c)
	if err != nil {
		return domain.Coordinate{}, "", err
	}
	packageID := c.Param("package_id")
	if err := validation.ValidatePackageID(packageID); err != nil {
		return domain.Coordinate{}, "", fmt.Errorf("%w: %w", domain.ErrInvalidCoordinate, err)
	}
	return coord, packageID, nil
}

// fileCoordinate reads a group/name/version/channel/<file path> route and
// returns the coordinate with the asset path it addresses.
func fileCoordinate(c echo.Context) (domain.Coordinate, string, error) {
	coord, err := domain.ParseFromPath(domain.PathTokens{
		Project: c.Param("name"),
		Version: c.Param("version"),
		Group:   c.Param("group"),
		Channel: c.Param("channel"),
	})
	if err != nil {
		return domain.Coordinate{}, "", err
	}

	rest := strings.Trim(c.Param("*"), "/")
	if rest == "" {
		return domain.Coordinate{}, "", fmt.Errorf("%w: missing file name", domain.ErrInvalidCoordinate)
	}
	if err := validation.ValidateFileLayout(rest); err != nil {
		return domain.Coordinate{}, "", fmt.Errorf("%w: %w", domain.ErrInvalidCoordinate, err)
	}
	assetPath := coord.StoragePath(strings.Split(rest, "/")...)
	if err := validation.ValidateAssetPath(assetPath); err != nil {
		return domain.Coordinate{}, "", fmt.Errorf("%w: %w", domain.ErrInvalidCoordinate, err)
	}
	return coord, assetPath, nil
}

type countingReader struct {
	r io.Reader
	n int64
}

func (r *countingReader) Read(p []byte) (int, error) {
	n, err := r.r.Read(p)
	r.n += int64(n)
	return n, err
}
