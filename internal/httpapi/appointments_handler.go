package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Kelvinoppong/Student-Wellness-Hub/internal/appointments"
	"github.com/Kelvinoppong/Student-Wellness-Hub/internal/auth"
)

// RegisterAppointmentRoutes wires the counseling appointment routes. The
// counselor catalog is public; booking and listing require a signed-in user.
func RegisterAppointmentRoutes(r chi.Router, svc *appointments.Service) {
	h := &appointmentsHandler{service: svc}

	r.Post("/v1/appointments", h.book)
	r.Get("/v1/appointments", h.list)
}

// RegisterCounselorRoutes exposes the static counselor catalog.
func RegisterCounselorRoutes(r chi.Router) {
	r.Get("/v1/appointments/counselors", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, appointments.Counselors)
	})
}

type appointmentsHandler struct {
	service *appointments.Service
}

type bookRequest struct {
	CounselorID int    `json:"counselorId"`
	Type        string `json:"appointmentType"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Reason      string `json:"reason"`
	UserName    string `json:"userName"`
}

func (h *appointmentsHandler) book(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var body bookRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}

	appt, err := h.service.Book(r.Context(), appointments.BookInput{
		UserID:      user.UserID,
		UserEmail:   user.Email,
		UserName:    body.UserName,
		CounselorID: body.CounselorID,
		Type:        body.Type,
		Date:        body.Date,
		Time:        body.Time,
		Reason:      body.Reason,
	})
	if err != nil {
		respondAppointmentError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, appt)
}

func (h *appointmentsHandler) list(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	appts, err := h.service.ListForUser(r.Context(), user.UserID)
	if err != nil {
		respondAppointmentError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, appts)
}

func respondAppointmentError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, appointments.ErrInvalidInput):
		writeError(w, http.StatusBadRequest, trimValidationMessage(err))
	default:
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}
