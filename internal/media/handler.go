package media

import (
	"fmt"
	"io"
	"log"
	"mime"
	"net/http"
	"path/filepath"

	"github.com/gorilla/mux"

	"coursehub/internal/common"
	"coursehub/internal/dbmongo"
)

const maxUploadSize = 100 << 20 // 100 MB

// Handler serves the out-of-band media surface: clients upload here first,
// then reference the returned URL in an async send request.
type Handler struct {
	storage *dbmongo.MediaStorage
}

func NewHandler(storage *dbmongo.MediaStorage) *Handler {
	return &Handler{storage: storage}
}

// RegisterRoutes mounts the upload endpoint on the authenticated /api
// subrouter and the public download endpoint on root.
func (h *Handler) RegisterRoutes(api, root *mux.Router) {
	api.HandleFunc("/upload/{kind:file|audio|video}", h.Upload).Methods(http.MethodPost)
	root.HandleFunc("/media/{fileId}", h.Download).Methods(http.MethodGet)
}

type uploadResponse struct {
	ID       string `json:"id"`
	URL      string `json:"url"`
	FileName string `json:"fileName"`
	FileSize int64  `json:"fileSize"`
	MimeType string `json:"mimeType"`
}

func (h *Handler) Upload(w http.ResponseWriter, r *http.Request) {
	claims, ok := common.PrincipalFromContext(r.Context())
	if !ok {
		common.WriteError(w, common.Unauthorized("authorization required"))
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)
	file, header, err := r.FormFile("file")
	if err != nil {
		common.WriteError(w, common.BadRequest("Missing file field"))
		return
	}
	defer file.Close()

	mimeType := header.Header.Get("Content-Type")
	if mimeType == "" {
		mimeType = contentTypeFor(header.Filename)
	}

	uploaded, err := h.storage.UploadFile(r.Context(), header.Filename, mimeType, claims.UserID, file)
	if err != nil {
		common.WriteError(w, common.Internal("Failed to store file. Please try again later.", err))
		return
	}

	common.WriteJSON(w, http.StatusCreated, "File uploaded successfully", &uploadResponse{
		ID:       uploaded.ID,
		URL:      "/media/" + uploaded.ID,
		FileName: uploaded.Filename,
		FileSize: uploaded.Size,
		MimeType: uploaded.MimeType,
	})
}

func (h *Handler) Download(w http.ResponseWriter, r *http.Request) {
	fileID := mux.Vars(r)["fileId"]

	reader, mediaFile, err := h.storage.DownloadFile(r.Context(), fileID)
	if err != nil {
		common.WriteError(w, common.NotFound("File not found"))
		return
	}

	contentType := mediaFile.MimeType
	if contentType == "" {
		contentType = contentTypeFor(mediaFile.Filename)
	}
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Length", fmt.Sprintf("%d", mediaFile.Size))

	if _, err := io.Copy(w, reader); err != nil {
		log.Printf("error streaming file %s: %v", fileID, err)
	}
}

func contentTypeFor(filename string) string {
	if contentType := mime.TypeByExtension(filepath.Ext(filename)); contentType != "" {
		return contentType
	}
	return "application/octet-stream"
}
