package dto

import (
	"time"

	"github.com/Svmi93/projetHygieneResto-sub000/internal/roles"
)

// DateLayout is the calendar date format used by traceability records.
const DateLayout = "2006-01-02"

// Employee is an employer account seen from its admin_client.
type Employee struct {
	ID               string `json:"id"`
	Email            string `json:"email"`
	FirstName        string `json:"firstName"`
	LastName         string `json:"lastName"`
	Phone            string `json:"phone,omitempty"`
	ParentAdminSiret string `json:"parentAdminSiret"`
}

// EmployeeRequest creates or updates an employee. Password is required on creation only.
type EmployeeRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password,omitempty"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Phone     string `json:"phone,omitempty"`
}

// Equipment is a refrigeration unit with its allowed temperature range.
type Equipment struct {
	ID               string    `json:"id"`
	AdminClientSiret string    `json:"adminClientSiret"`
	Name             string    `json:"name"`
	Type             string    `json:"type"`
	MinTemp          float64   `json:"minTemp"`
	MaxTemp          float64   `json:"maxTemp"`
	CreatedAt        time.Time `json:"createdAt"`
}

type EquipmentRequest struct {
	Name    string  `json:"name"`
	Type    string  `json:"type"`
	MinTemp float64 `json:"minTemp"`
	MaxTemp float64 `json:"maxTemp"`
}

// TemperatureRecord is a single reading taken on an equipment.
type TemperatureRecord struct {
	ID               string    `json:"id"`
	EquipmentID      string    `json:"equipmentId"`
	AdminClientSiret string    `json:"adminClientSiret"`
	RecordedBy       string    `json:"recordedBy"`
	Temperature      float64   `json:"temperature"`
	RecordedAt       time.Time `json:"recordedAt"`
	Notes            string    `json:"notes,omitempty"`
	Compliant        bool      `json:"compliant"`
}

type TemperatureRequest struct {
	EquipmentID string     `json:"equipmentId"`
	Temperature *float64   `json:"temperature"`
	RecordedAt  *time.Time `json:"recordedAt,omitempty"`
	Notes       string     `json:"notes,omitempty"`
}

// TraceabilityRecord follows a food batch from transformation to use-by date.
type TraceabilityRecord struct {
	ID                 string    `json:"id"`
	AdminClientSiret   string    `json:"adminClientSiret"`
	CreatedBy          string    `json:"createdBy"`
	ProductName        string    `json:"productName"`
	BatchNumber        string    `json:"batchNumber"`
	TransformationDate string    `json:"transformationDate"`
	UseByDate          string    `json:"useByDate"`
	PhotoID            string    `json:"photoId,omitempty"`
	Notes              string    `json:"notes,omitempty"`
	CreatedAt          time.Time `json:"createdAt"`
}

type TraceabilityRequest struct {
	ProductName        string `json:"productName"`
	BatchNumber        string `json:"batchNumber"`
	TransformationDate string `json:"transformationDate"`
	UseByDate          string `json:"useByDate"`
	PhotoID            string `json:"photoId,omitempty"`
	Notes              string `json:"notes,omitempty"`
}

// Photo is the metadata of an image kept in object storage.
type Photo struct {
	ID               string    `json:"id"`
	AdminClientSiret string    `json:"adminClientSiret"`
	UploadedBy       string    `json:"uploadedBy"`
	ContentType      string    `json:"contentType"`
	Status           string    `json:"status"`
	CreatedAt        time.Time `json:"createdAt"`
}

type PhotoUploadRequest struct {
	ContentType string `json:"contentType"`
}

// PhotoUploadResponse carries the created photo and a presigned PUT URL.
type PhotoUploadResponse struct {
	Photo     *Photo `json:"photo"`
	UploadURL string `json:"uploadUrl"`
}

type PhotoURLResponse struct {
	URL string `json:"url"`
}

// UserRequest is used by the super_admin to create or update any account.
type UserRequest struct {
	Email            string     `json:"email"`
	Password         string     `json:"password,omitempty"`
	Role             roles.Role `json:"role,omitempty"`
	CompanyName      string     `json:"companyName,omitempty"`
	Siret            string     `json:"siret,omitempty"`
	ParentAdminSiret string     `json:"parentAdminSiret,omitempty"`
	FirstName        string     `json:"firstName,omitempty"`
	LastName         string     `json:"lastName,omitempty"`
	Phone            string     `json:"phone,omitempty"`
	Address          string     `json:"address,omitempty"`
	LogoURL          string     `json:"logoUrl,omitempty"`
}
