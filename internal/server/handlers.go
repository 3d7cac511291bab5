package server

import (
	"fmt"
	"net/http"
	"path/filepath"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/tradeport/formengine/internal/catalog"
	"github.com/tradeport/formengine/internal/ledger"
	"github.com/tradeport/formengine/internal/schema"
)

// submitRequest is the wire shape of a form submission: header values plus
// the raw line-item rows as the user entered them.
type submitRequest struct {
	Header    map[string]string   `json:"header"`
	LineItems []map[string]string `json:"line_items"`
}

// fieldView is a schema field with its option set resolved for the client.
type fieldView struct {
	schema.Field
	Options []string `json:"options,omitempty"`
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "formengine",
		"time":    time.Now().Format(time.RFC3339),
	})
}

func (s *Server) handleListForms(c *gin.Context) {
	type summary struct {
		ID       string `json:"id"`
		Title    string `json:"title"`
		Vertical string `json:"vertical"`
	}

	defs := s.registry.Definitions()
	out := make([]summary, 0, len(defs))
	for _, def := range defs {
		out = append(out, summary{ID: def.ID, Title: def.Title, Vertical: def.Vertical})
	}
	c.JSON(http.StatusOK, gin.H{"forms": out})
}

func (s *Server) handleGetForm(c *gin.Context) {
	def, ok := s.registry.Definition(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown form"})
		return
	}

	fields := make([]fieldView, 0, len(def.Header.Fields))
	for _, f := range def.Header.Fields {
		view := fieldView{Field: f}
		if f.OptionSet != "" {
			view.Options = catalog.Options(f.OptionSet)
		}
		fields = append(fields, view)
	}

	c.JSON(http.StatusOK, gin.H{
		"id":       def.ID,
		"title":    def.Title,
		"vertical": def.Vertical,
		"fields":   fields,
		"rules":    def.Rules,
	})
}

// handleSubmit drives one form instance through the shell: bind header,
// bind line items, submit. Validation failures come back as 422 with the
// full field-error list; collaborator failures as 502.
func (s *Server) handleSubmit(c *gin.Context) {
	formID := c.Param("id")

	var req submitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("invalid request body: %v", err)})
		return
	}

	f, err := s.registry.New(formID, s.submitter, s.notifier)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown form"})
		return
	}

	for name, value := range req.Header {
		f.SetHeader(name, value)
	}

	for i, row := range req.LineItems {
		var item *ledger.Item
		if i == 0 {
			item = f.Items()[0]
		} else {
			item = f.AddItem()
		}
		for field, value := range row {
			f.UpdateItem(item.ID, ledger.Field(field), value)
		}
	}

	payload, fieldErrs, err := f.Submit(c.Request.Context())
	if err != nil {
		s.logger.Error("Submission failed",
			zap.String("form_id", formID),
			zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "submission failed, please retry"})
		return
	}
	if len(fieldErrs) > 0 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": fieldErrs})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"submission": payload})
}

func (s *Server) handleListSubmissions(c *gin.Context) {
	limit := 50
	if raw := c.Query("limit"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a positive integer"})
			return
		}
		limit = v
	}

	subs, err := s.repo.List(c.Query("form_id"), limit)
	if err != nil {
		s.logger.Error("Failed to list submissions", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list submissions"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"submissions": subs})
}

func (s *Server) handleExport(c *gin.Context) {
	subs, err := s.repo.List(c.Query("form_id"), 1000)
	if err != nil {
		s.logger.Error("Failed to load submissions for export", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load submissions"})
		return
	}

	filename := fmt.Sprintf("submissions_%s.xlsx", time.Now().Format("20060102_150405"))
	outputPath := filepath.Join(s.config.ExportDir, filename)

	if err := s.exporter.Export(subs, outputPath); err != nil {
		s.logger.Error("Failed to export submissions", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to export submissions"})
		return
	}

	c.FileAttachment(outputPath, filename)
}
