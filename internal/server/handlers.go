package server

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"stock-organizer/internal/blockparser"
	"stock-organizer/internal/exporter"
	"stock-organizer/internal/logger"
	"stock-organizer/internal/model"
	"stock-organizer/internal/session"
	"stock-organizer/internal/workbook"
)

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":   "healthy",
		"version":  s.version,
		"sessions": s.store.Len(),
	})
}

func (s *Server) openAPI(c *gin.Context) {
	c.JSON(http.StatusOK, s.spec)
}

func (s *Server) createSession(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, s.cfg.MaxUploadBytes())

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		if isTooLarge(err) {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{
				"error": fmt.Sprintf("File too large. Maximum size is %dMB", s.cfg.Server.MaxUploadMB),
			})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file uploaded"})
		return
	}
	defer file.Close()

	filename := filepath.Base(header.Filename)
	logger.Info("📥 Upload %q (%d bytes)", filename, header.Size)

	sheet, err := workbook.ReadSheet(file, filename)
	if err != nil {
		s.writeError(c, err)
		return
	}

	records, err := s.org.Organize(sheet)
	if err != nil {
		s.writeError(c, err)
		return
	}

	sess := s.store.Create(filename, records)
	logger.Info("✅ Session %s: %d records from %q", sess.ID, len(records), filename)

	c.JSON(http.StatusCreated, gin.H{
		"id":         sess.ID,
		"source":     sess.Source,
		"warehouses": sess.Warehouses(),
		"records":    sess.Records(""),
	})
}

func (s *Server) listRecords(c *gin.Context) {
	sess, ok := s.session(c)
	if !ok {
		return
	}

	warehouse := c.Query("warehouse")
	records := sess.Records(warehouse)
	c.JSON(http.StatusOK, gin.H{
		"warehouse": warehouse,
		"total":     len(records),
		"records":   records,
	})
}

func (s *Server) listWarehouses(c *gin.Context) {
	sess, ok := s.session(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"warehouses": sess.Warehouses()})
}

func (s *Server) updateRecord(c *gin.Context) {
	sess, ok := s.session(c)
	if !ok {
		return
	}

	position, err := strconv.Atoi(c.Param("position"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "position must be an integer"})
		return
	}

	var edit session.Edit
	if err := c.ShouldBindJSON(&edit); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if edit.IsEmpty() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Nothing to update"})
		return
	}

	rec, warnings, err := sess.Update(c.Query("warehouse"), position, edit)
	if err != nil {
		s.writeError(c, err)
		return
	}
	if warnings == nil {
		warnings = []session.Warning{}
	}
	for _, w := range warnings {
		logger.Warn("Session %s: %s", sess.ID, w)
	}

	c.JSON(http.StatusOK, gin.H{
		"record":   rec,
		"warnings": warnings,
	})
}

func (s *Server) exportSession(c *gin.Context) {
	sess, ok := s.session(c)
	if !ok {
		return
	}

	format := c.DefaultQuery("format", "xlsx")
	exp := exporter.ByFormat(format)
	if exp == nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   fmt.Sprintf("Unknown format %q", format),
			"formats": exporter.Formats(),
		})
		return
	}

	records := sess.Snapshot()
	summary := model.BuildSummary(records, s.now().Format("2006-01-02 15:04:05"), sess.Source)

	var buf bytes.Buffer
	if err := exp.Export(&buf, summary, records); err != nil {
		logger.Error("Export %s for session %s failed: %v", exp.Name(), sess.ID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate file"})
		return
	}

	name := s.cfg.Output.FileName + "." + exp.Extension()
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, name))
	c.Data(http.StatusOK, exp.ContentType(), buf.Bytes())
}

func (s *Server) deleteSession(c *gin.Context) {
	if err := s.store.Delete(c.Param("id")); err != nil {
		s.writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// session resolves the :id parameter, writing a 404 when it is unknown
func (s *Server) session(c *gin.Context) (*session.Session, bool) {
	sess, err := s.store.Get(c.Param("id"))
	if err != nil {
		s.writeError(c, err)
		return nil, false
	}
	return sess, true
}

// writeError maps domain errors to HTTP status codes
func (s *Server) writeError(c *gin.Context, err error) {
	var malformed *blockparser.MalformedRowError
	var unreadable *workbook.UnreadableWorkbookError

	switch {
	case errors.As(err, &malformed):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":     malformed.Error(),
			"row":       malformed.Row,
			"sheet_row": malformed.Row + 1,
		})
	case errors.As(err, &unreadable):
		c.JSON(http.StatusBadRequest, gin.H{"error": unreadable.Error()})
	case errors.Is(err, session.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Session not found"})
	case errors.Is(err, session.ErrPositionOutOfRange):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case isTooLarge(err):
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "File too large"})
	default:
		logger.Error("Request %s %s failed: %v", c.Request.Method, c.Request.URL.Path, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal error"})
	}
}

func isTooLarge(err error) bool {
	var mbe *http.MaxBytesError
	return errors.As(err, &mbe) || strings.Contains(err.Error(), "request body too large")
}
