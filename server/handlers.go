package server

import (
	"encoding/json"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/Pinont/Image-Processing-AI-x-Blockchain/detector"
	"github.com/Pinont/Image-Processing-AI-x-Blockchain/summary"
)

// Handler holds the HTTP handlers for the detection endpoints. Handlers are
// stateless; every request is a single-shot transaction.
type Handler struct {
	pipeline Pipeline
	log      *logrus.Logger
}

// NewHandler creates the endpoint handlers over a shared pipeline.
func NewHandler(pipeline Pipeline, log *logrus.Logger) *Handler {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Handler{pipeline: pipeline, log: log}
}

type detectRequest struct {
	Image string `json:"image"`
}

type detectResponse struct {
	Message        string               `json:"message"`
	Detections     []detector.Detection `json:"detections"`
	AnnotatedImage string               `json:"annotated_image"`
}

type chatRequest struct {
	Message string `json:"message"`
	Image   string `json:"image,omitempty"`
}

// chatResponse is the reply when no image was supplied: no detection fields
// at all.
type chatResponse struct {
	Response string `json:"response"`
}

type chatImageResponse struct {
	Response       string               `json:"response"`
	Detections     []detector.Detection `json:"detections"`
	AnnotatedImage string               `json:"annotated_image"`
}

// Detect handles POST /detect.
func (h *Handler) Detect(w http.ResponseWriter, r *http.Request) {
	var req detectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Detail: "invalid JSON body: " + err.Error()})
		return
	}
	if req.Image == "" {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Detail: "image field is required"})
		return
	}

	result, err := h.pipeline.Run(r.Context(), req.Image)
	if err != nil {
		h.log.WithError(err).Error("detect pipeline failed")
		writeError(w, err)
		return
	}

	counts := summary.Summarize(result.Detections)
	h.log.WithFields(logrus.Fields{
		"endpoint": "/detect",
		"objects":  counts.Total(),
		"classes":  len(counts),
	}).Info("detection completed")

	writeJSON(w, http.StatusOK, detectResponse{
		Message:        summary.DetectMessage(counts),
		Detections:     nonNil(result.Detections),
		AnnotatedImage: result.AnnotatedImage,
	})
}

// Chat handles POST /chat. With an image attached it behaves like Detect
// with conversational phrasing; without one it acknowledges the message. No
// conversation state is kept between calls.
func (h *Handler) Chat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Detail: "invalid JSON body: " + err.Error()})
		return
	}

	if req.Image == "" {
		writeJSON(w, http.StatusOK, chatResponse{Response: summary.AckMessage(req.Message)})
		return
	}

	result, err := h.pipeline.Run(r.Context(), req.Image)
	if err != nil {
		h.log.WithError(err).Error("chat pipeline failed")
		writeError(w, err)
		return
	}

	counts := summary.Summarize(result.Detections)
	h.log.WithFields(logrus.Fields{
		"endpoint": "/chat",
		"objects":  counts.Total(),
		"classes":  len(counts),
	}).Info("detection completed")

	writeJSON(w, http.StatusOK, chatImageResponse{
		Response:       summary.ChatMessage(counts),
		Detections:     nonNil(result.Detections),
		AnnotatedImage: result.AnnotatedImage,
	})
}

// Health handles GET /healthz.
func (h *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// nonNil keeps an empty detection list serializing as [] rather than null.
func nonNil(dets []detector.Detection) []detector.Detection {
	if dets == nil {
		return []detector.Detection{}
	}
	return dets
}
