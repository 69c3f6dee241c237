package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	app "github.com/anujyadav2244/cricriser/internal/application"
	"github.com/anujyadav2244/cricriser/internal/domain/entity"
	"github.com/anujyadav2244/cricriser/pkg/response"
)

type PlayerHandler struct {
	Svc    *app.PlayerService
	Logger *logrus.Logger
}

func NewPlayerHandler(svc *app.PlayerService, logger *logrus.Logger) *PlayerHandler {
	return &PlayerHandler{Svc: svc, Logger: logger}
}

// Create accepts either plain JSON or a multipart form with a "player" JSON
// part plus optional "photo" file.
func (h *PlayerHandler) Create(c *gin.Context) {
	var p entity.Player
	var photo *app.LogoUpload

	if raw := c.PostForm("player"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &p); err != nil {
			response.Error[any](c, http.StatusBadRequest, "invalid player payload", err.Error())
			return
		}
		up, closePhoto, err := logoFromForm(c, "photo")
		if err != nil {
			response.Error[any](c, http.StatusBadRequest, "invalid photo upload", err.Error())
			return
		}
		defer closePhoto()
		photo = up
	} else if err := c.ShouldBindJSON(&p); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", err.Error())
		return
	}

	saved, err := h.Svc.Create(c.Request.Context(), &p, photo)
	if err != nil {
		response.Error[any](c, statusFor(err), err.Error(), nil)
		return
	}
	response.Success(c, http.StatusCreated, saved, "player created", nil)
}

func (h *PlayerHandler) Get(c *gin.Context) {
	p, err := h.Svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error[any](c, statusFor(err), err.Error(), nil)
		return
	}
	response.Success(c, http.StatusOK, p, "player", nil)
}

func (h *PlayerHandler) List(c *gin.Context) {
	players, err := h.Svc.List(c.Request.Context())
	if err != nil {
		response.Error[any](c, statusFor(err), err.Error(), nil)
		return
	}
	response.Success(c, http.StatusOK, players, "players", map[string]any{"count": len(players)})
}
