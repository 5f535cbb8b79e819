package server

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/zooyer/dwgdash/measure"
	"github.com/zooyer/dwgdash/registry"
	"log/slog"
)

const apiVersion = "1.0.0"

type Handler struct {
	registry  registry.FileRegistry
	loader    *Loader
	logger    *slog.Logger
	maxUpload int64
}

func NewHandler(reg registry.FileRegistry, loader *Loader, logger *slog.Logger, maxUpload int64) *Handler {
	return &Handler{
		registry:  reg,
		loader:    loader,
		logger:    logger,
		maxUpload: maxUpload,
	}
}

type UploadResponse struct {
	Success  bool   `json:"success"`
	FileID   string `json:"file_id"`
	Filename string `json:"filename"`
	Message  string `json:"message"`
}

type LayersResponse struct {
	FileID   string               `json:"file_id"`
	Filename string               `json:"filename"`
	Layers   []measure.LayerStats `json:"layers"`
}

type MeasurementsResponse struct {
	FileID       string               `json:"file_id"`
	Filename     string               `json:"filename"`
	Measurements measure.Measurements `json:"measurements"`
}

type PreviewResponse struct {
	FileID   string `json:"file_id"`
	Filename string `json:"filename"`
	measure.PreviewData
}

// Root GET / 服务信息
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		writeError(w, http.StatusNotFound, "Not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"message": "DWG Dashboard API",
		"version": apiVersion,
	})
}

// Health GET /api/health
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":    "healthy",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

// Upload POST /api/upload 多部分表单上传
func (h *Handler) Upload(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.maxUpload)

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "No file provided")
		return
	}
	defer file.Close()

	filename := header.Filename
	if filename == "" {
		writeError(w, http.StatusBadRequest, "No filename provided")
		return
	}

	// 扩展名检查大小写不敏感
	ext := strings.ToLower(filepath.Ext(filename))
	if ext != ".dxf" && ext != ".dwg" {
		writeError(w, http.StatusBadRequest, "Only .dxf and .dwg files are supported")
		return
	}

	data, err := io.ReadAll(file)
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("Upload failed: %v", err))
		return
	}

	doc, fileType, err := h.loader.Load(r.Context(), data, filename)
	if err != nil {
		// 解析/转换失败不登记文件
		h.logger.Error("图纸解析失败", "filename", filename, "error", err)
		writeError(w, http.StatusInternalServerError, fmt.Sprintf("Upload failed: %v", err))
		return
	}

	entry := h.registry.Put(filename, fileType, int64(len(data)), doc)
	h.logger.Info("图纸登记完成", "file_id", entry.ID, "filename", filename, "entities", len(doc.Entities))

	writeJSON(w, http.StatusOK, UploadResponse{
		Success:  true,
		FileID:   entry.ID,
		Filename: filename,
		Message:  fmt.Sprintf("File uploaded successfully. ID: %s", entry.ID),
	})
}

// ListFiles GET /api/files
func (h *Handler) ListFiles(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"files": h.registry.List(),
	})
}

// FileRoutes 分发 /api/files/{id} 与 /api/files/{id}/{sub}
func (h *Handler) FileRoutes(w http.ResponseWriter, r *http.Request) {
	parts := strings.Split(strings.Trim(r.URL.Path, "/"), "/")
	// parts: ["api", "files", id] 或 ["api", "files", id, sub]
	if len(parts) < 3 || parts[2] == "" {
		writeError(w, http.StatusBadRequest, "File ID required")
		return
	}
	id := parts[2]

	if len(parts) == 3 {
		if r.Method == http.MethodDelete {
			h.deleteFile(w, id)
			return
		}
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	entry, ok := h.registry.Get(id)
	if !ok {
		writeError(w, http.StatusNotFound, "File not found")
		return
	}

	switch parts[3] {
	case "layers":
		writeJSON(w, http.StatusOK, LayersResponse{
			FileID:   entry.ID,
			Filename: entry.Filename,
			Layers:   measure.AggregateLayers(entry.Doc),
		})
	case "measurements":
		writeJSON(w, http.StatusOK, MeasurementsResponse{
			FileID:       entry.ID,
			Filename:     entry.Filename,
			Measurements: measure.Measure(entry.Doc),
		})
	case "preview":
		writeJSON(w, http.StatusOK, PreviewResponse{
			FileID:      entry.ID,
			Filename:    entry.Filename,
			PreviewData: measure.Preview(entry.Doc),
		})
	default:
		writeError(w, http.StatusNotFound, "Not found")
	}
}

func (h *Handler) deleteFile(w http.ResponseWriter, id string) {
	if !h.registry.Delete(id) {
		writeError(w, http.StatusNotFound, "File not found")
		return
	}
	h.logger.Info("图纸已删除", "file_id", id)
	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "File deleted successfully",
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, map[string]string{"detail": detail})
}
