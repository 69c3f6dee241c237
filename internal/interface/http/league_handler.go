package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	app "github.com/anujyadav2244/cricriser/internal/application"
	"github.com/anujyadav2244/cricriser/internal/domain/entity"
	"github.com/anujyadav2244/cricriser/internal/interface/middleware"
	"github.com/anujyadav2244/cricriser/pkg/response"
)

type LeagueHandler struct {
	Svc    *app.LeagueService
	Logger *logrus.Logger
}

func NewLeagueHandler(svc *app.LeagueService, logger *logrus.Logger) *LeagueHandler {
	return &LeagueHandler{Svc: svc, Logger: logger}
}

// logoFromForm opens the optional file part of a multipart form. The second
// return closes the underlying file and is safe to call when the part is
// absent.
func logoFromForm(c *gin.Context, field string) (*app.LogoUpload, func(), error) {
	noop := func() {}
	fh, err := c.FormFile(field)
	if err != nil {
		return nil, noop, nil // part absent
	}
	f, err := fh.Open()
	if err != nil {
		return nil, noop, err
	}
	return &app.LogoUpload{
		Reader:      f,
		Filename:    fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
	}, func() { _ = f.Close() }, nil
}

// Create accepts a multipart form: "league" JSON part plus optional "logo"
// file. Query params eliminator/knockouts toggle fixture generation.
func (h *LeagueHandler) Create(c *gin.Context) {
	raw := c.PostForm("league")
	if raw == "" {
		response.Error[any](c, http.StatusBadRequest, "league payload is required", nil)
		return
	}
	var l entity.League
	if err := json.Unmarshal([]byte(raw), &l); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid league payload", err.Error())
		return
	}

	logo, closeLogo, err := logoFromForm(c, "logo")
	if err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid logo upload", err.Error())
		return
	}
	defer closeLogo()

	opts := app.ScheduleOptions{
		IncludeKnockouts:  boolQuery(c, "knockouts", true),
		IncludeEliminator: boolQuery(c, "eliminator", false),
	}

	adminID := c.GetString(middleware.CtxAdminIDKey)
	matches, err := h.Svc.Create(c.Request.Context(), adminID, &l, logo, opts)
	if err != nil {
		response.Error[any](c, statusFor(err), err.Error(), nil)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{
		"league":  &l,
		"matches": matches,
	}, "league created", map[string]any{"no_of_matches": len(matches)})
}

func (h *LeagueHandler) Update(c *gin.Context) {
	var in app.UpdateLeagueInput
	if raw := c.PostForm("league"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &in); err != nil {
			response.Error[any](c, http.StatusBadRequest, "invalid league payload", err.Error())
			return
		}
	} else if err := c.ShouldBindJSON(&in); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", err.Error())
		return
	}

	logo, closeLogo, err := logoFromForm(c, "logo")
	if err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid logo upload", err.Error())
		return
	}
	defer closeLogo()

	adminID := c.GetString(middleware.CtxAdminIDKey)
	l, err := h.Svc.Update(c.Request.Context(), adminID, c.Param("id"), in, logo)
	if err != nil {
		response.Error[any](c, statusFor(err), err.Error(), nil)
		return
	}
	response.Success(c, http.StatusOK, l, "league updated", nil)
}

func (h *LeagueHandler) Get(c *gin.Context) {
	l, err := h.Svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error[any](c, statusFor(err), err.Error(), nil)
		return
	}
	response.Success(c, http.StatusOK, l, "league", nil)
}

func (h *LeagueHandler) GetByName(c *gin.Context) {
	l, err := h.Svc.GetByName(c.Request.Context(), c.Param("name"))
	if err != nil {
		response.Error[any](c, statusFor(err), err.Error(), nil)
		return
	}
	response.Success(c, http.StatusOK, l, "league", nil)
}

func (h *LeagueHandler) List(c *gin.Context) {
	leagues, err := h.Svc.List(c.Request.Context())
	if err != nil {
		response.Error[any](c, statusFor(err), err.Error(), nil)
		return
	}
	response.Success(c, http.StatusOK, leagues, "leagues", map[string]any{"count": len(leagues)})
}

func (h *LeagueHandler) ListMine(c *gin.Context) {
	adminID := c.GetString(middleware.CtxAdminIDKey)
	leagues, err := h.Svc.ListByAdmin(c.Request.Context(), adminID)
	if err != nil {
		response.Error[any](c, statusFor(err), err.Error(), nil)
		return
	}
	response.Success(c, http.StatusOK, leagues, "leagues", map[string]any{"count": len(leagues)})
}

func (h *LeagueHandler) Fixtures(c *gin.Context) {
	matches, err := h.Svc.Fixtures(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error[any](c, statusFor(err), err.Error(), nil)
		return
	}
	response.Success(c, http.StatusOK, matches, "fixtures", map[string]any{"count": len(matches)})
}

func (h *LeagueHandler) PointsTable(c *gin.Context) {
	table, err := h.Svc.PointsTable(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error[any](c, statusFor(err), err.Error(), nil)
		return
	}
	response.Success(c, http.StatusOK, table, "points table", nil)
}

func (h *LeagueHandler) Delete(c *gin.Context) {
	adminID := c.GetString(middleware.CtxAdminIDKey)
	if err := h.Svc.Delete(c.Request.Context(), adminID, c.Param("id")); err != nil {
		response.Error[any](c, statusFor(err), err.Error(), nil)
		return
	}
	response.Success[any](c, http.StatusOK, nil, "League and its related teams deleted successfully.", nil)
}

func (h *LeagueHandler) DeleteAll(c *gin.Context) {
	adminID := c.GetString(middleware.CtxAdminIDKey)
	if err := h.Svc.DeleteAll(c.Request.Context(), adminID); err != nil {
		response.Error[any](c, statusFor(err), err.Error(), nil)
		return
	}
	response.Success[any](c, http.StatusOK, nil, "All leagues and all related matches deleted successfully!", nil)
}

func (h *LeagueHandler) Search(c *gin.Context) {
	size, _ := strconv.Atoi(c.DefaultQuery("size", "10"))
	out, err := h.Svc.Search(c.Request.Context(), c.Query("q"), size)
	if err != nil {
		response.Error[any](c, http.StatusBadGateway, "search failed", err.Error())
		return
	}
	response.Success(c, http.StatusOK, out, "search results", map[string]any{"count": len(out)})
}

func boolQuery(c *gin.Context, name string, def bool) bool {
	v := c.Query(name)
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}
