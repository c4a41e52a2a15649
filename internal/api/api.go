package api

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"time"

	"realestate-analyzer/internal/analyzer"
	"realestate-analyzer/internal/dataset"
	"realestate-analyzer/internal/exporter"
	"realestate-analyzer/internal/models"
	"realestate-analyzer/internal/summary"

	"github.com/gin-gonic/gin"
)

const recentQueryCap = 5

type APIHandler struct {
	store          *dataset.Store
	summarizer     summary.Generator
	summaryTimeout time.Duration
	tableRowCap    int

	// recent query state
	recentMu sync.Mutex
	recent   []string
}

func SetupRoutes(r *gin.RouterGroup, store *dataset.Store, gen summary.Generator, summaryTimeout time.Duration, tableRowCap int) *APIHandler {
	handler := &APIHandler{
		store:          store,
		summarizer:     gen,
		summaryTimeout: summaryTimeout,
		tableRowCap:    tableRowCap,
	}

	r.POST("/analyze/", handler.Analyze)
	r.POST("/download-xlsx/", handler.DownloadXLSX)
	r.GET("/history", handler.History)

	return handler
}

type analyzeRequest struct {
	Query string `json:"query"`
}

type downloadRequest struct {
	TableData []exporter.Row `json:"table_data"`
}

// Analyze interprets the query, aggregates the matched areas and returns the
// summary, chart series and table rows. A multipart request may carry an
// .xlsx upload that replaces the static dataset for this request only.
func (h *APIHandler) Analyze(c *gin.Context) {
	query, store, ok := h.parseAnalyzeRequest(c)
	if !ok {
		return
	}

	areas, intent, err := analyzer.Interpret(query, store)
	if err != nil {
		if errors.Is(err, analyzer.ErrNoAreaMatched) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "No known area was found in your query. Try mentioning an area by name."})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	chart, table, err := analyzer.Aggregate(areas, store)
	if err != nil {
		if errors.Is(err, analyzer.ErrEmptyResult) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "No data available for the matched areas."})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if len(table) > h.tableRowCap {
		table = table[:h.tableRowCap]
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), h.summaryTimeout)
	defer cancel()
	text := summary.Describe(ctx, h.summarizer, intent, analyzer.Stats(areas, chart))

	h.rememberQuery(query)

	c.JSON(http.StatusOK, models.QueryResult{
		Summary:   text,
		ChartData: chart,
		TableData: table,
	})
}

// parseAnalyzeRequest extracts the query and picks the dataset for this
// request. On failure it writes the error response and returns ok=false.
func (h *APIHandler) parseAnalyzeRequest(c *gin.Context) (string, *dataset.Store, bool) {
	if c.ContentType() == "multipart/form-data" {
		query := c.PostForm("query")
		store := h.store

		if file, err := c.FormFile("file"); err == nil && file != nil {
			src, err := file.Open()
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read uploaded file."})
				return "", nil, false
			}
			defer src.Close()

			uploaded, err := dataset.LoadReader(src, "")
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to load Excel: " + err.Error()})
				return "", nil, false
			}
			store = uploaded
		}
		return query, store, true
	}

	var req analyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body."})
		return "", nil, false
	}
	return req.Query, h.store, true
}

// DownloadXLSX serializes caller-provided table rows into a spreadsheet.
// The rows are exactly what a prior analyze response returned; no server
// state is consulted.
func (h *APIHandler) DownloadXLSX(c *gin.Context) {
	var req downloadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body."})
		return
	}

	data, err := exporter.Encode(req.TableData)
	if err != nil {
		if errors.Is(err, exporter.ErrNoDataToExport) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "No table data provided."})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Header("Content-Disposition", `attachment; filename="filtered_data.xlsx"`)
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}

// History lists the most recent queries, newest first, capped at five.
// The list is process-wide and shared across clients; there is no
// per-session state, and it is discarded on restart.
func (h *APIHandler) History(c *gin.Context) {
	h.recentMu.Lock()
	queries := make([]string, len(h.recent))
	copy(queries, h.recent)
	h.recentMu.Unlock()

	c.JSON(http.StatusOK, gin.H{"queries": queries})
}

func (h *APIHandler) rememberQuery(query string) {
	if query == "" {
		return
	}
	h.recentMu.Lock()
	defer h.recentMu.Unlock()

	h.recent = append([]string{query}, h.recent...)
	if len(h.recent) > recentQueryCap {
		h.recent = h.recent[:recentQueryCap]
	}
}
