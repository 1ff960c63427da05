package http

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
)

// maxImportSize bounds the body of an import request.
const maxImportSize = 4 << 20

func (h *handler) processChecklistReq(c *gin.Context) (checklistReq, error) {
	req := checklistReq{ProfileID: c.Param("id"), Game: c.Param("game")}
	return req, req.validate()
}

func (h *handler) processSetActiveGameReq(c *gin.Context) (setActiveGameReq, error) {
	var req setActiveGameReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	req.ProfileID = c.Param("id")
	return req, req.validate()
}

func (h *handler) processToggleReq(c *gin.Context) (toggleReq, error) {
	var req toggleReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	req.checklistReq = checklistReq{ProfileID: c.Param("id"), Game: c.Param("game")}
	return req, req.validate()
}

// processBulkReq accepts an empty body, which targets every section.
func (h *handler) processBulkReq(c *gin.Context) (bulkReq, error) {
	var req bulkReq
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
			return req, err
		}
	}
	req.checklistReq = checklistReq{ProfileID: c.Param("id"), Game: c.Param("game")}
	return req, req.validate()
}

func (h *handler) processImportReq(c *gin.Context) (importReq, error) {
	var req importReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	req.ProfileID = c.Param("id")

	data, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, maxImportSize))
	if err != nil {
		return req, errBodyTooLarge
	}
	req.Data = data
	return req, req.validate()
}
