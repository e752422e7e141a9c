package appointments

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
)

// Appointment is a booked counseling session. Stored in the top-level
// appointments collection keyed by a generated id.
type Appointment struct {
	ID            string    `json:"id"`
	UserID        string    `json:"userId"`
	UserEmail     string    `json:"userEmail"`
	UserName      string    `json:"userName,omitempty"`
	CounselorID   int       `json:"counselorId"`
	CounselorName string    `json:"counselorName"`
	Type          string    `json:"appointmentType"`
	Date          string    `json:"date"` // YYYY-MM-DD
	Time          string    `json:"time"` // HH:MM
	Reason        string    `json:"reason,omitempty"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"createdAt"`
}

// Counselor is a bookable member of the counseling staff.
type Counselor struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	Specialty    string `json:"specialty"`
	Availability string `json:"availability"`
	Image        string `json:"image"`
}

// Counselors is the static staff catalog.
var Counselors = []Counselor{
	{ID: 1, Name: "Dr. Sarah Johnson", Specialty: "Academic Counseling", Availability: "Mon-Fri", Image: "https://randomuser.me/api/portraits/women/1.jpg"},
	{ID: 2, Name: "Dr. Michael Chen", Specialty: "Mental Health", Availability: "Mon-Thu", Image: "https://randomuser.me/api/portraits/men/2.jpg"},
	{ID: 3, Name: "Dr. Emily Rodriguez", Specialty: "Career Guidance", Availability: "Tue-Fri", Image: "https://randomuser.me/api/portraits/women/3.jpg"},
}

// ValidTypes defines the allowed appointment types.
var ValidTypes = []string{
	"Academic Counseling",
	"Mental Health Support",
	"Career Guidance",
	"Personal Development",
}

// StatusPending is the status assigned to every new booking.
const StatusPending = "pending"

// BookInput captures the data required to book an appointment.
type BookInput struct {
	UserID      string
	UserEmail   string
	UserName    string
	CounselorID int
	Type        string
	Date        string
	Time        string
	Reason      string
}

// Validate ensures the input fields meet the domain constraints.
func (i BookInput) Validate(now time.Time) error {
	var problems []string

	if i.UserID == "" {
		problems = append(problems, "user id is required")
	}

	if counselorByID(i.CounselorID) == nil {
		problems = append(problems, "counselor is unknown")
	}

	validType := false
	for _, t := range ValidTypes {
		if t == i.Type {
			validType = true
			break
		}
	}
	if !validType {
		problems = append(problems, fmt.Sprintf("appointment type must be one of: %s", strings.Join(ValidTypes, ", ")))
	}

	date, err := time.Parse("2006-01-02", i.Date)
	if err != nil {
		problems = append(problems, "date must be in YYYY-MM-DD format")
	} else {
		today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
		if date.Before(today) {
			problems = append(problems, "date must not be in the past")
		}
	}

	if _, err := time.Parse("15:04", i.Time); err != nil {
		problems = append(problems, "time must be in HH:MM format")
	}

	if len(problems) > 0 {
		return errors.New(strings.Join(problems, "; "))
	}
	return nil
}

func counselorByID(id int) *Counselor {
	for i := range Counselors {
		if Counselors[i].ID == id {
			return &Counselors[i]
		}
	}
	return nil
}

// Repository encapsulates persistence for appointments.
type Repository interface {
	Create(ctx context.Context, appointment Appointment) error
	ListByUser(ctx context.Context, userID string) ([]Appointment, error)
}

// ErrInvalidInput indicates the provided data failed validation.
var ErrInvalidInput = errors.New("invalid input")
