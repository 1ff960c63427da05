package http

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"completion-planner/pkg/response"
)

// CreateProfile godoc
// @Summary     Create a profile
// @Description Creates a profile with an empty checklist for every supported game.
// @Tags        Profiles
// @Accept      json
// @Produce     json
// @Param       body body createProfileReq false "Initial active game"
// @Success     200  {object} profileResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     429  {object} response.Resp "Too Many Requests"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/planner/profiles [POST]
func (h *handler) CreateProfile(c *gin.Context) {
	ctx := c.Request.Context()

	var req createProfileReq
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
			response.Error(c, err, nil)
			return
		}
	}
	if err := req.validate(); err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.CreateProfile(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.CreateProfile: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newProfileResp(output))
}

// GetProfile godoc
// @Summary     Get a profile
// @Description Returns the active game and a progress summary per game.
// @Tags        Profiles
// @Produce     json
// @Param       id path string true "Profile ID"
// @Success     200 {object} profileResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/planner/profiles/{id} [GET]
func (h *handler) GetProfile(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.GetProfile(ctx, c.Param("id"))
	if err != nil {
		h.l.Warnf(ctx, "uc.GetProfile: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newProfileResp(output))
}

// SetActiveGame godoc
// @Summary     Switch the active game
// @Tags        Profiles
// @Accept      json
// @Produce     json
// @Param       id   path string           true "Profile ID"
// @Param       body body setActiveGameReq true "Game to activate"
// @Success     200 {object} profileResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Router      /api/v1/planner/profiles/{id}/active [PUT]
func (h *handler) SetActiveGame(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSetActiveGameReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.SetActiveGame(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.SetActiveGame: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newProfileResp(output))
}

// Checklist godoc
// @Summary     Get a checklist
// @Description Returns every section and check with its checked and satisfiable flags, plus percent, balances and violations.
// @Tags        Checklist
// @Produce     json
// @Param       id   path string true "Profile ID"
// @Param       game path string true "Game" Enums(hollow-knight, silksong)
// @Success     200 {object} checklistResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/planner/profiles/{id}/games/{game} [GET]
func (h *handler) Checklist(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processChecklistReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Checklist(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.Checklist: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newChecklistResp(output))
}

// Toggle godoc
// @Summary     Toggle a check
// @Description Flips one check and applies or reverses its reward.
// @Tags        Checklist
// @Accept      json
// @Produce     json
// @Param       id   path string    true "Profile ID"
// @Param       game path string    true "Game" Enums(hollow-knight, silksong)
// @Param       body body toggleReq true "Check to toggle"
// @Success     200 {object} toggleResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Router      /api/v1/planner/profiles/{id}/games/{game}/toggle [POST]
func (h *handler) Toggle(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processToggleReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Toggle(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.Toggle: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newToggleResp(output))
}

// CheckAll godoc
// @Summary     Check a whole section
// @Description Checks every check of the given section, or of the whole game when no section is given.
// @Tags        Checklist
// @Accept      json
// @Produce     json
// @Param       id   path string  true  "Profile ID"
// @Param       game path string  true  "Game" Enums(hollow-knight, silksong)
// @Param       body body bulkReq false "Section"
// @Success     200 {object} bulkResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Router      /api/v1/planner/profiles/{id}/games/{game}/check-all [POST]
func (h *handler) CheckAll(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processBulkReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.CheckAll(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.CheckAll: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newBulkResp(output))
}

// Reset godoc
// @Summary     Reset a section
// @Description Unchecks a section, or restores the whole game to its initial state when no section is given.
// @Tags        Checklist
// @Accept      json
// @Produce     json
// @Param       id   path string  true  "Profile ID"
// @Param       game path string  true  "Game" Enums(hollow-knight, silksong)
// @Param       body body bulkReq false "Section"
// @Success     200 {object} bulkResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Router      /api/v1/planner/profiles/{id}/games/{game}/reset [POST]
func (h *handler) Reset(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processBulkReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Reset(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.Reset: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newBulkResp(output))
}

// Violations godoc
// @Summary     List violations
// @Description Lists every checked check whose requirement is unmet, with a readable message.
// @Tags        Checklist
// @Produce     json
// @Param       id   path string true "Profile ID"
// @Param       game path string true "Game" Enums(hollow-knight, silksong)
// @Success     200 {object} violationsResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/planner/profiles/{id}/games/{game}/violations [GET]
func (h *handler) Violations(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processChecklistReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Violations(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.Violations: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newViolationsResp(output))
}

// Export godoc
// @Summary     Export as markdown
// @Description Renders the checklist as a markdown checkbox list accepted by the import endpoint.
// @Tags        Checklist
// @Produce     plain
// @Param       id   path string true "Profile ID"
// @Param       game path string true "Game" Enums(hollow-knight, silksong)
// @Success     200 {string} string "Markdown"
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/planner/profiles/{id}/games/{game}/export [GET]
func (h *handler) Export(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processChecklistReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Export(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.Export: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	c.Data(http.StatusOK, "text/markdown; charset=utf-8", []byte(output.Markdown))
}

// Import godoc
// @Summary     Import a save file
// @Description Applies save parser JSON or an exported markdown list, then makes its game the active one.
// @Tags        Profiles
// @Accept      plain
// @Produce     json
// @Param       id     path  string true  "Profile ID"
// @Param       format query string false "Input format" Enums(json, markdown)
// @Param       game   query string false "Game, when the input does not name one" Enums(hollow-knight, silksong)
// @Param       body   body  string true  "Importer input"
// @Success     200 {object} bulkResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     422 {object} response.Resp "Unprocessable Entity"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Router      /api/v1/planner/profiles/{id}/import [POST]
func (h *handler) Import(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processImportReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Import(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.Import: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newImportResp(output))
}
