// Package models defines the canonical client-side view of MediApp gateway
// resources. Every value handed to a consumer of this module uses these
// shapes regardless of which server envelope or field aliases produced it;
// the raw wire shapes never leave the api/normalize layers.
package models

// Role of a registered user.
type Role string

const (
	RolePatient Role = "PATIENT"
	RoleDoctor  Role = "DOCTOR"
	RoleAdmin   Role = "ADMIN"
)

// SlotStatus is the reservation state of an availability slot.
// Slot listings only ever yield Available or Reserved; Booked is reachable
// solely through booking confirmation.
type SlotStatus string

const (
	SlotAvailable SlotStatus = "AVAILABLE"
	SlotReserved  SlotStatus = "RESERVED"
	SlotBooked    SlotStatus = "BOOKED"
)

// AppointmentStatus transitions are server-authoritative; the client only
// requests transitions and reflects the acknowledged result.
type AppointmentStatus string

const (
	AppointmentPending   AppointmentStatus = "PENDING"
	AppointmentConfirmed AppointmentStatus = "CONFIRMED"
	AppointmentCancelled AppointmentStatus = "CANCELLED"
	AppointmentCompleted AppointmentStatus = "COMPLETED"
)

type LoginCredentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterPatientData struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	PhoneNumber string `json:"phoneNumber"`
	DateOfBirth string `json:"dateOfBirth"`
}

// RegisterDoctorData is accepted by the admin-only doctor registration
// endpoint. It carries the user fields plus the professional profile.
type RegisterDoctorData struct {
	Email                string `json:"email"`
	Password             string `json:"password"`
	FirstName            string `json:"firstName"`
	LastName             string `json:"lastName"`
	PhoneNumber          string `json:"phoneNumber,omitempty"`
	SpecialtyID          int64  `json:"specialtyId"`
	MedicalLicenseNumber string `json:"medicalLicenseNumber"`
	OfficeAddress        string `json:"officeAddress"`
}

// AuthResponse is the token pair issued on login. UserID is optional;
// older gateway builds omit it.
type AuthResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	UserID       int64  `json:"userId,omitempty"`
}

type User struct {
	UserID      int64  `json:"userId"`
	Email       string `json:"email"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	PhoneNumber string `json:"phoneNumber,omitempty"`
	DateOfBirth string `json:"dateOfBirth,omitempty"`
	Role        Role   `json:"role"`
}

type Specialty struct {
	SpecialtyID int64  `json:"specialtyId"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

type Doctor struct {
	DoctorID             int64  `json:"doctorId"`
	UserID               int64  `json:"userId"`
	FirstName            string `json:"firstName"`
	LastName             string `json:"lastName"`
	Email                string `json:"email"`
	SpecialtyID          int64  `json:"specialtyId"`
	SpecialtyName        string `json:"specialtyName"`
	MedicalLicenseNumber string `json:"medicalLicenseNumber"`
	OfficeAddress        string `json:"officeAddress"`
}

// DoctorProfileData creates the professional profile for an already
// registered doctor user.
type DoctorProfileData struct {
	UserID               int64  `json:"userId"`
	MedicalLicenseNumber string `json:"medicalLicenseNumber"`
	SpecialtyID          int64  `json:"specialtyId"`
	OfficeAddress        string `json:"officeAddress"`
}

type AvailabilitySlot struct {
	SlotID    int64      `json:"slotId"`
	DoctorID  int64      `json:"doctorId"`
	StartTime string     `json:"startTime"`
	EndTime   string     `json:"endTime"`
	Status    SlotStatus `json:"status"`
}

type BookingRequest struct {
	PatientID       int64  `json:"patientId"`
	DoctorID        int64  `json:"doctorId"`
	SlotID          int64  `json:"slotId"`
	AppointmentDate string `json:"appointmentDate"`
	StartTime       string `json:"startTime"`
}

type Appointment struct {
	AppointmentID   int64             `json:"appointmentId"`
	PatientID       int64             `json:"patientId"`
	DoctorID        int64             `json:"doctorId"`
	DoctorName      string            `json:"doctorName,omitempty"`
	PatientName     string            `json:"patientName,omitempty"`
	SpecialtyName   string            `json:"specialtyName,omitempty"`
	SlotID          int64             `json:"slotId"`
	AppointmentDate string            `json:"appointmentDate"`
	StartTime       string            `json:"startTime"`
	EndTime         string            `json:"endTime,omitempty"`
	Status          AppointmentStatus `json:"status"`
	Reason          string            `json:"reason,omitempty"`
}

// AppointmentPage is one page of a patient's appointment history.
type AppointmentPage struct {
	Content       []Appointment `json:"content"`
	TotalElements int64         `json:"totalElements"`
}

type Notification struct {
	NotificationID int64  `json:"notificationId"`
	UserID         int64  `json:"userId"`
	Message        string `json:"message"`
	Type           string `json:"type"`
	Read           bool   `json:"read"`
	CreatedAt      string `json:"createdAt"`
}
