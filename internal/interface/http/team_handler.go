package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	app "github.com/anujyadav2244/cricriser/internal/application"
	"github.com/anujyadav2244/cricriser/internal/domain/entity"
	"github.com/anujyadav2244/cricriser/internal/interface/middleware"
	"github.com/anujyadav2244/cricriser/pkg/response"
)

type TeamHandler struct {
	Svc    *app.TeamService
	Logger *logrus.Logger
}

func NewTeamHandler(svc *app.TeamService, logger *logrus.Logger) *TeamHandler {
	return &TeamHandler{Svc: svc, Logger: logger}
}

// Create accepts a multipart form: "team" JSON part plus optional "logo".
// The league comes from the path and overrides anything in the payload.
func (h *TeamHandler) Create(c *gin.Context) {
	raw := c.PostForm("team")
	if raw == "" {
		response.Error[any](c, http.StatusBadRequest, "team payload is required", nil)
		return
	}
	var t entity.Team
	if err := json.Unmarshal([]byte(raw), &t); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid team payload", err.Error())
		return
	}

	logo, closeLogo, err := logoFromForm(c, "logo")
	if err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid logo upload", err.Error())
		return
	}
	defer closeLogo()

	adminID := c.GetString(middleware.CtxAdminIDKey)
	saved, err := h.Svc.Create(c.Request.Context(), adminID, c.Param("id"), &t, logo)
	if err != nil {
		response.Error[any](c, statusFor(err), err.Error(), nil)
		return
	}
	response.Success(c, http.StatusCreated, saved, "team created", nil)
}

func (h *TeamHandler) Update(c *gin.Context) {
	var in app.UpdateTeamInput
	if raw := c.PostForm("team"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &in); err != nil {
			response.Error[any](c, http.StatusBadRequest, "invalid team payload", err.Error())
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
	t, err := h.Svc.Update(c.Request.Context(), adminID, c.Param("id"), in, logo)
	if err != nil {
		response.Error[any](c, statusFor(err), err.Error(), nil)
		return
	}
	response.Success(c, http.StatusOK, t, "team updated", nil)
}

func (h *TeamHandler) Get(c *gin.Context) {
	t, err := h.Svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error[any](c, statusFor(err), err.Error(), nil)
		return
	}
	response.Success(c, http.StatusOK, t, "team", nil)
}

func (h *TeamHandler) GetByName(c *gin.Context) {
	d, err := h.Svc.DetailsByName(c.Request.Context(), c.Param("name"))
	if err != nil {
		response.Error[any](c, statusFor(err), err.Error(), nil)
		return
	}
	response.Success(c, http.StatusOK, d, "team details", nil)
}

func (h *TeamHandler) List(c *gin.Context) {
	teams, err := h.Svc.List(c.Request.Context())
	if err != nil {
		response.Error[any](c, statusFor(err), err.Error(), nil)
		return
	}
	response.Success(c, http.StatusOK, teams, "teams", map[string]any{"count": len(teams)})
}

func (h *TeamHandler) ListByLeague(c *gin.Context) {
	teams, err := h.Svc.ListByLeague(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error[any](c, statusFor(err), err.Error(), nil)
		return
	}
	response.Success(c, http.StatusOK, teams, "teams", map[string]any{"count": len(teams)})
}

func (h *TeamHandler) Delete(c *gin.Context) {
	adminID := c.GetString(middleware.CtxAdminIDKey)
	if err := h.Svc.Delete(c.Request.Context(), adminID, c.Param("id")); err != nil {
		response.Error[any](c, statusFor(err), err.Error(), nil)
		return
	}
	response.Success[any](c, http.StatusOK, nil, "Team deleted successfully!", nil)
}

func (h *TeamHandler) DeleteAll(c *gin.Context) {
	adminID := c.GetString(middleware.CtxAdminIDKey)
	if err := h.Svc.DeleteAllByAdmin(c.Request.Context(), adminID); err != nil {
		response.Error[any](c, statusFor(err), err.Error(), nil)
		return
	}
	response.Success[any](c, http.StatusOK, nil, "All teams of your leagues deleted successfully!", nil)
}
