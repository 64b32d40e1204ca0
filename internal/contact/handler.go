package contact

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/alexisbeaulieu97/cosmicui/internal/logger"
)

// MaxBodyBytes caps the size of a submitted form.
const MaxBodyBytes = 64 << 10

// Route is the path the contact form posts to.
const Route = "/api/contact"

// Handler accepts JSON form submissions and delivers them through a Sender.
type Handler struct {
	sender Sender
	log    *logger.Logger
	now    func() time.Time
}

// NewHandler creates a handler delivering through sender.
func NewHandler(sender Sender, log *logger.Logger) *Handler {
	if log == nil {
		log = logger.Nop()
	}
	return &Handler{sender: sender, log: log, now: time.Now}
}

type response struct {
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeJSON(w, http.StatusMethodNotAllowed, response{Error: "Method not allowed"})
		return
	}

	var msg Message
	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, MaxBodyBytes))
	if err := decoder.Decode(&msg); err != nil {
		h.log.Debug("rejecting malformed contact request: " + err.Error())
		writeJSON(w, http.StatusBadRequest, response{Error: MsgInvalidBody})
		return
	}

	if err := msg.Validate(); err != nil {
		writeJSON(w, http.StatusBadRequest, response{Error: UserMessage(err)})
		return
	}

	if err := Deliver(r.Context(), h.sender, msg, h.now()); err != nil {
		h.log.Error(err, "contact form error")
		writeJSON(w, http.StatusInternalServerError, response{Error: MsgDeliveryFailed})
		return
	}

	writeJSON(w, http.StatusOK, response{Message: MsgSent})
}

func writeJSON(w http.ResponseWriter, status int, body response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
