package handler

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"

	apperrors "github.com/North-East-dev/gunash-bibha-bhaban/pkg/errors"
	"github.com/North-East-dev/gunash-bibha-bhaban/pkg/httputil"
	"github.com/North-East-dev/gunash-bibha-bhaban/pkg/model"
)

type setFieldRequest struct {
	Path  string `json:"path"`
	Value string `json:"value"`
}

func (h *ContentHandler) SetField(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req setFieldRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, "SetField", apperrors.InvalidInput("invalid request body"))
		return
	}

	if err := h.service.SetField(req.Path, req.Value); err != nil {
		h.writeError(w, "SetField", err)
		return
	}
	httputil.WriteNoContent(w)
}

type addItemRequest struct {
	List string `json:"list"`
}

func (h *ContentHandler) AddItem(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req addItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, "AddItem", apperrors.InvalidInput("invalid request body"))
		return
	}

	item, err := h.service.AddItem(req.List)
	if err != nil {
		h.writeError(w, "AddItem", err)
		return
	}
	if err := httputil.WriteCreated(w, item); err != nil {
		h.log.Error("failed to write success response", "handler", "AddItem", "error", err)
	}
}

type updateItemRequest struct {
	List  string `json:"list"`
	Field string `json:"field"`
	Value string `json:"value"`
}

func (h *ContentHandler) UpdateItem(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var req updateItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, "UpdateItem", apperrors.InvalidInput("invalid request body"))
		return
	}

	if err := h.service.UpdateItem(req.List, ps.ByName("id"), req.Field, req.Value); err != nil {
		h.writeError(w, "UpdateItem", err)
		return
	}
	httputil.WriteNoContent(w)
}

func (h *ContentHandler) RemoveItem(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	list := r.URL.Query().Get("list")

	if err := h.service.RemoveItem(list, ps.ByName("id")); err != nil {
		h.writeError(w, "RemoveItem", err)
		return
	}
	httputil.WriteNoContent(w)
}

type reorderItemRequest struct {
	List  string `json:"list"`
	Delta int    `json:"delta"`
}

func (h *ContentHandler) ReorderItem(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var req reorderItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, "ReorderItem", apperrors.InvalidInput("invalid request body"))
		return
	}

	if err := h.service.ReorderItem(req.List, ps.ByName("id"), req.Delta); err != nil {
		h.writeError(w, "ReorderItem", err)
		return
	}
	httputil.WriteNoContent(w)
}

type addBookingRequest struct {
	Start  string `json:"start"`
	End    string `json:"end"`
	Status string `json:"status"`
	Note   string `json:"note"`
}

func (h *ContentHandler) AddBooking(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req addBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, "AddBooking", apperrors.InvalidInput("invalid request body"))
		return
	}

	booking, err := h.service.AddBooking(r.Context(), model.BookingRange{
		Start:  req.Start,
		End:    req.End,
		Status: model.BookingStatus(req.Status),
		Note:   req.Note,
	})
	if err != nil {
		h.writeError(w, "AddBooking", err)
		return
	}
	if err := httputil.WriteCreated(w, booking); err != nil {
		h.log.Error("failed to write success response", "handler", "AddBooking", "error", err)
	}
}

func (h *ContentHandler) RemoveBooking(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id, err := strconv.ParseInt(ps.ByName("id"), 10, 64)
	if err != nil {
		h.writeError(w, "RemoveBooking", apperrors.InvalidInput("booking id must be numeric"))
		return
	}

	if err := h.service.RemoveBooking(r.Context(), id); err != nil {
		h.writeError(w, "RemoveBooking", err)
		return
	}
	httputil.WriteNoContent(w)
}

type saveRequest struct {
	Confirm bool `json:"confirm"`
}

// Save persists the working copy. A declined safety guard comes back as a
// conflict carrying the warnings; the client retries with confirm set.
func (h *ContentHandler) Save(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req saveRequest
	if r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.writeError(w, "Save", apperrors.InvalidInput("invalid request body"))
			return
		}
	}

	result, err := h.service.Save(r.Context(), req.Confirm)
	if err != nil {
		h.writeError(w, "Save", err)
		return
	}
	h.writeSuccess(w, "Save", result)
}

func (h *ContentHandler) Discard(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if err := h.service.Discard(); err != nil {
		h.writeError(w, "Discard", err)
		return
	}
	httputil.WriteNoContent(w)
}

func (h *ContentHandler) Export(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	filename, data, err := h.service.Export()
	if err != nil {
		h.writeError(w, "Export", err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		h.log.Error("failed to write backup download", "handler", "Export", "error", err)
	}
}

func (h *ContentHandler) Import(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var doc model.Document
	if err := json.NewDecoder(r.Body).Decode(&doc); err != nil {
		h.writeError(w, "Import", apperrors.InvalidInput("backup file is not valid JSON"))
		return
	}

	if err := h.service.Import(doc); err != nil {
		h.writeError(w, "Import", err)
		return
	}
	httputil.WriteNoContent(w)
}

var imageContentTypes = map[string]bool{
	"image/png":  true,
	"image/jpeg": true,
	"image/webp": true,
	"image/gif":  true,
}

// UploadImage accepts a raw image body and embeds it into the document as a
// base64 data URI, either on a scalar image field (?field=) or on a list
// element (?list=&id=). Images above the configured limit are rejected so
// the stored document stays small enough to ship to every visitor.
func (h *ContentHandler) UploadImage(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	contentType := r.Header.Get("Content-Type")
	if !imageContentTypes[contentType] {
		h.writeError(w, "UploadImage", apperrors.InvalidInput("unsupported image type"))
		return
	}

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, int64(h.cfg.MaxImageBytes)))
	if err != nil {
		h.writeError(w, "UploadImage", apperrors.InvalidInput(
			fmt.Sprintf("image exceeds the %d byte limit", h.cfg.MaxImageBytes)))
		return
	}
	if len(body) == 0 {
		h.writeError(w, "UploadImage", apperrors.InvalidInput("image body is empty"))
		return
	}

	dataURI := fmt.Sprintf("data:%s;base64,%s", contentType, base64.StdEncoding.EncodeToString(body))

	query := r.URL.Query()
	if field := query.Get("field"); field != "" {
		if err := h.service.SetField(field, dataURI); err != nil {
			h.writeError(w, "UploadImage", err)
			return
		}
	} else if list, id := query.Get("list"), query.Get("id"); list != "" && id != "" {
		if err := h.service.UpdateItem(list, id, "src", dataURI); err != nil {
			h.writeError(w, "UploadImage", err)
			return
		}
	} else {
		h.writeError(w, "UploadImage", apperrors.InvalidInput("specify either ?field= or ?list=&id="))
		return
	}

	h.trail.Record("Embedded image (%d bytes)", len(body))
	h.writeSuccess(w, "UploadImage", map[string]any{"size": len(body)})
}
