package apiclient

import (
	"context"
	"net/http"
	"net/url"

	"github.com/Svmi93/projetHygieneResto-sub000/internal/dto"
)

func (c *Client) Login(ctx context.Context, email, password string) (*dto.AuthResponse, error) {
	var resp dto.AuthResponse
	if err := c.do(ctx, http.MethodPost, "/auth/login", dto.LoginRequest{Email: email, Password: password}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) Register(ctx context.Context, req dto.RegisterRequest) (*dto.AuthResponse, error) {
	var resp dto.AuthResponse
	if err := c.do(ctx, http.MethodPost, "/auth/register", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// VerifyToken asks the backend whether the current token is still good and
// returns the fresh profile.
func (c *Client) VerifyToken(ctx context.Context) (*dto.UserProfile, error) {
	var resp dto.VerifyResponse
	if err := c.do(ctx, http.MethodPost, "/auth/verify-token", nil, &resp); err != nil {
		return nil, err
	}
	return resp.User, nil
}

func (c *Client) ListEmployees(ctx context.Context) ([]*dto.Employee, error) {
	var items []*dto.Employee
	err := c.do(ctx, http.MethodGet, "/admin-client/employees", nil, &items)
	return items, err
}

func (c *Client) CreateEmployee(ctx context.Context, req dto.EmployeeRequest) (*dto.Employee, error) {
	var item dto.Employee
	if err := c.do(ctx, http.MethodPost, "/admin-client/employees", req, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

func (c *Client) UpdateEmployee(ctx context.Context, id string, req dto.EmployeeRequest) (*dto.Employee, error) {
	var item dto.Employee
	if err := c.do(ctx, http.MethodPut, "/admin-client/employees/"+url.PathEscape(id), req, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

func (c *Client) DeleteEmployee(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/admin-client/employees/"+url.PathEscape(id), nil, nil)
}

func (c *Client) ListEquipments(ctx context.Context) ([]*dto.Equipment, error) {
	var items []*dto.Equipment
	err := c.do(ctx, http.MethodGet, "/admin-client/equipments", nil, &items)
	return items, err
}

func (c *Client) CreateEquipment(ctx context.Context, req dto.EquipmentRequest) (*dto.Equipment, error) {
	var item dto.Equipment
	if err := c.do(ctx, http.MethodPost, "/admin-client/equipments", req, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

func (c *Client) UpdateEquipment(ctx context.Context, id string, req dto.EquipmentRequest) (*dto.Equipment, error) {
	var item dto.Equipment
	if err := c.do(ctx, http.MethodPut, "/admin-client/equipments/"+url.PathEscape(id), req, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

func (c *Client) DeleteEquipment(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/admin-client/equipments/"+url.PathEscape(id), nil, nil)
}

// ListTemperatures lists readings, optionally for a single equipment.
func (c *Client) ListTemperatures(ctx context.Context, equipmentID string) ([]*dto.TemperatureRecord, error) {
	path := "/admin-client/temperatures"
	if equipmentID != "" {
		path += "?" + url.Values{"equipmentId": {equipmentID}}.Encode()
	}
	var items []*dto.TemperatureRecord
	err := c.do(ctx, http.MethodGet, path, nil, &items)
	return items, err
}

func (c *Client) RecordTemperature(ctx context.Context, req dto.TemperatureRequest) (*dto.TemperatureRecord, error) {
	var item dto.TemperatureRecord
	if err := c.do(ctx, http.MethodPost, "/admin-client/temperatures", req, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

func (c *Client) CreateTraceability(ctx context.Context, req dto.TraceabilityRequest) (*dto.TraceabilityRecord, error) {
	var item dto.TraceabilityRecord
	if err := c.do(ctx, http.MethodPost, "/traceability", req, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

func (c *Client) ListTraceabilityByClient(ctx context.Context, siret string) ([]*dto.TraceabilityRecord, error) {
	var items []*dto.TraceabilityRecord
	err := c.do(ctx, http.MethodGet, "/traceability/client/"+url.PathEscape(siret), nil, &items)
	return items, err
}

func (c *Client) ListAllTraceability(ctx context.Context) ([]*dto.TraceabilityRecord, error) {
	var items []*dto.TraceabilityRecord
	err := c.do(ctx, http.MethodGet, "/traceability", nil, &items)
	return items, err
}

func (c *Client) DeleteTraceability(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/traceability/"+url.PathEscape(id), nil, nil)
}

func (c *Client) RequestPhotoUpload(ctx context.Context, contentType string) (*dto.PhotoUploadResponse, error) {
	var resp dto.PhotoUploadResponse
	if err := c.do(ctx, http.MethodPost, "/photos/upload-url", dto.PhotoUploadRequest{ContentType: contentType}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) ConfirmPhoto(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodPost, "/photos/"+url.PathEscape(id)+"/confirm", nil, nil)
}

func (c *Client) PhotoURL(ctx context.Context, id string) (string, error) {
	var resp dto.PhotoURLResponse
	if err := c.do(ctx, http.MethodGet, "/photos/"+url.PathEscape(id)+"/url", nil, &resp); err != nil {
		return "", err
	}
	return resp.URL, nil
}

func (c *Client) ListPhotos(ctx context.Context, siret string) ([]*dto.Photo, error) {
	var items []*dto.Photo
	err := c.do(ctx, http.MethodGet, "/photos/client/"+url.PathEscape(siret), nil, &items)
	return items, err
}

func (c *Client) DeletePhoto(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/photos/"+url.PathEscape(id), nil, nil)
}

func (c *Client) ListUsers(ctx context.Context) ([]*dto.UserProfile, error) {
	var items []*dto.UserProfile
	err := c.do(ctx, http.MethodGet, "/admin/users", nil, &items)
	return items, err
}

func (c *Client) GetUser(ctx context.Context, id string) (*dto.UserProfile, error) {
	var item dto.UserProfile
	if err := c.do(ctx, http.MethodGet, "/admin/users/"+url.PathEscape(id), nil, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

func (c *Client) CreateUser(ctx context.Context, req dto.UserRequest) (*dto.UserProfile, error) {
	var item dto.UserProfile
	if err := c.do(ctx, http.MethodPost, "/admin/users", req, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

func (c *Client) UpdateUser(ctx context.Context, id string, req dto.UserRequest) (*dto.UserProfile, error) {
	var item dto.UserProfile
	if err := c.do(ctx, http.MethodPut, "/admin/users/"+url.PathEscape(id), req, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

func (c *Client) DeleteUser(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/admin/users/"+url.PathEscape(id), nil, nil)
}
