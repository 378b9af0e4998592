package cli

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/Svmi93/projetHygieneResto-sub000/internal/dto"
	"github.com/Svmi93/projetHygieneResto-sub000/internal/filex"
	"github.com/Svmi93/projetHygieneResto-sub000/internal/roles"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboard(t *testing.T) {
	origNow := nowFn
	nowFn = func() time.Time { return time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC) }
	t.Cleanup(func() { nowFn = origNow })

	a, b, out, _ := newTestApp(t, sessionAs(adminUser))
	b.employees = []*dto.Employee{{ID: "e1"}, {ID: "e2"}}
	b.equipment = []*dto.Equipment{{ID: "eq1"}}
	b.records = []*dto.TraceabilityRecord{
		{ID: "r1", UseByDate: "2025-03-11"},
		{ID: "r2", UseByDate: "2025-03-20"},
		{ID: "r3", UseByDate: "garbage"},
	}

	require.NoError(t, a.Dashboard(context.Background()))

	assert.Contains(t, out.String(), "Bistro")
	assert.Regexp(t, `Employees\s+2`, out.String())
	assert.Regexp(t, `Equipment\s+1`, out.String())
	assert.Regexp(t, `Traceability records\s+3`, out.String())
	assert.Regexp(t, `Expiring within 48h\s+1`, out.String())
}

func TestDashboard_BackendError(t *testing.T) {
	a, b, _, _ := newTestApp(t, sessionAs(adminUser))
	b.err = errBackend

	assert.ErrorIs(t, a.Dashboard(context.Background()), errBackend)
	assert.Equal(t, []string{"employees.list"}, b.calls)
}

func TestEmployees(t *testing.T) {
	a, b, out, lines := newTestApp(t, sessionAs(adminUser))

	require.NoError(t, a.Employees(context.Background()))
	assert.Equal(t, []string{"No employees yet"}, *lines)

	b.employees = []*dto.Employee{{ID: "e1", FirstName: "Léa", LastName: "Roux", Email: "lea@bistro.test"}}
	require.NoError(t, a.Employees(context.Background()))
	assert.Contains(t, out.String(), "Léa Roux")
	assert.Contains(t, out.String(), "lea@bistro.test")
}

func TestAddEmployee(t *testing.T) {
	a, b, _, lines := newTestApp(t, sessionAs(adminUser))
	stubInputs(t, "pw123456", "Léa", "Roux", "lea@bistro.test", "")

	require.NoError(t, a.AddEmployee(context.Background()))
	assert.Equal(t, dto.EmployeeRequest{FirstName: "Léa", LastName: "Roux", Email: "lea@bistro.test", Password: "pw123456"}, b.lastEmployee)
	assert.Contains(t, *lines, "Employee created: emp-1")
}

func TestDeleteEmployee(t *testing.T) {
	a, b, _, _ := newTestApp(t, sessionAs(adminUser))
	stubInputs(t, "", "e1")

	require.NoError(t, a.DeleteEmployee(context.Background()))
	assert.Equal(t, "e1", b.lastID)
	assert.Equal(t, []string{"employees.delete"}, b.calls)
}

func TestEmployeeScreens_BlockedForEmployer(t *testing.T) {
	a, b, _, _ := newTestApp(t, sessionAs(employeeUser))
	stubInputs(t, "pw", "x", "y", "z", "w")

	require.NoError(t, a.Employees(context.Background()))
	require.NoError(t, a.AddEmployee(context.Background()))
	require.NoError(t, a.DeleteEmployee(context.Background()))
	require.NoError(t, a.AddEquipment(context.Background()))
	require.NoError(t, a.DeleteEquipment(context.Background()))
	assert.Empty(t, b.calls)
}

func TestEquipment_ListAndCreate(t *testing.T) {
	a, b, out, _ := newTestApp(t, sessionAs(adminUser))
	b.equipment = []*dto.Equipment{{ID: "eq1", Name: "Walk-in", Type: "fridge", MinTemp: 0, MaxTemp: 4}}

	require.NoError(t, a.Equipment(context.Background()))
	assert.Contains(t, out.String(), "Walk-in")
	assert.Contains(t, out.String(), "0.0..4.0 °C")

	stubInputs(t, "", "Freezer 1", "freezer", "-25", "-18")
	require.NoError(t, a.AddEquipment(context.Background()))
	assert.Equal(t, dto.EquipmentRequest{Name: "Freezer 1", Type: "freezer", MinTemp: -25, MaxTemp: -18}, b.lastEquipment)
}

func TestEquipment_SuperAdminSentHome(t *testing.T) {
	a, b, _, lines := newTestApp(t, sessionAs(superUser))

	require.NoError(t, a.Equipment(context.Background()))
	assert.Empty(t, b.calls)
	assert.Equal(t, []string{"Not available for your role. Your home screen is admin-users."}, *lines)
}

func TestTemperatures(t *testing.T) {
	a, b, out, _ := newTestApp(t, sessionAs(employeeUser))
	b.temperatures = []*dto.TemperatureRecord{
		{ID: "t1", Temperature: 3.2, Compliant: true},
		{ID: "t2", Temperature: 9.5, Compliant: false, Notes: "door open"},
	}
	stubInputs(t, "", "eq1")

	require.NoError(t, a.Temperatures(context.Background()))
	assert.Equal(t, "eq1", b.lastID)
	assert.Contains(t, out.String(), "OUT OF RANGE")
	assert.Contains(t, out.String(), "door open")
}

func TestAddTemperature(t *testing.T) {
	a, b, _, lines := newTestApp(t, sessionAs(employeeUser))
	stubInputs(t, "", "eq1", "7,5")

	require.NoError(t, a.AddTemperature(context.Background()))
	assert.Equal(t, "eq1", b.lastID)
	assert.InDelta(t, 7.5, b.lastCelsius, 1e-9)
	assert.Contains(t, *lines, "Warning: reading is outside the allowed range")
	assert.Contains(t, *lines, "Reading recorded: t-1")
}

func TestTraceability_SuperAdminListsAll(t *testing.T) {
	a, b, out, _ := newTestApp(t, sessionAs(superUser))
	b.records = []*dto.TraceabilityRecord{{ID: "r1", AdminClientSiret: tenantSiret, ProductName: "Bœuf bourguignon", UseByDate: "2025-03-12"}}

	require.NoError(t, a.Traceability(context.Background()))
	assert.Equal(t, []string{"traceability.list:super_admin"}, b.calls)
	assert.Contains(t, out.String(), "Bœuf bourguignon")
	assert.Contains(t, out.String(), tenantSiret)
}

func TestAddTraceability(t *testing.T) {
	a, b, _, lines := newTestApp(t, sessionAs(employeeUser))
	stubInputs(t, "", "Soupe", "L42", "2025-03-10", "2025-03-13", "", "batch du midi")

	require.NoError(t, a.AddTraceability(context.Background()))
	assert.Equal(t, dto.TraceabilityRequest{
		ProductName:        "Soupe",
		BatchNumber:        "L42",
		TransformationDate: "2025-03-10",
		UseByDate:          "2025-03-13",
		Notes:              "batch du midi",
	}, b.lastTrace)
	assert.Contains(t, *lines, "Traceability record created: tr-1")
}

func TestTraceabilityWrites_ByRole(t *testing.T) {
	t.Run("super admin cannot create", func(t *testing.T) {
		a, b, _, _ := newTestApp(t, sessionAs(superUser))
		require.NoError(t, a.AddTraceability(context.Background()))
		assert.Empty(t, b.calls)
	})

	t.Run("employer cannot delete", func(t *testing.T) {
		a, b, _, _ := newTestApp(t, sessionAs(employeeUser))
		require.NoError(t, a.DeleteTraceability(context.Background()))
		assert.Empty(t, b.calls)
	})

	t.Run("admin deletes", func(t *testing.T) {
		a, b, _, _ := newTestApp(t, sessionAs(adminUser))
		stubInputs(t, "", "r1")
		require.NoError(t, a.DeleteTraceability(context.Background()))
		assert.Equal(t, []string{"traceability.delete"}, b.calls)
		assert.Equal(t, "r1", b.lastID)
	})
}

func TestPhotos_SuperAdminAsksForSiret(t *testing.T) {
	a, b, out, _ := newTestApp(t, sessionAs(superUser))
	b.photos = []*dto.Photo{{ID: "ph1", Status: "uploaded", ContentType: "image/jpeg"}}
	prompts := stubInputs(t, "", tenantSiret)

	require.NoError(t, a.Photos(context.Background()))
	assert.Equal(t, tenantSiret, b.lastSiret)
	assert.Equal(t, []string{"Company SIRET"}, *prompts)
	assert.Contains(t, out.String(), "image/jpeg")
}

func TestPhotos_TenantUserDoesNotAsk(t *testing.T) {
	a, b, _, lines := newTestApp(t, sessionAs(employeeUser))
	prompts := stubInputs(t, "")

	require.NoError(t, a.Photos(context.Background()))
	assert.Empty(t, *prompts)
	assert.Empty(t, b.lastSiret)
	assert.Equal(t, []string{"No photos yet"}, *lines)
}

func TestUploadPhoto(t *testing.T) {
	path := filepath.Join(t.TempDir(), "label.png")
	require.NoError(t, os.WriteFile(path, []byte("\x89PNG\r\n\x1a\nfake"), 0o600))

	a, b, _, lines := newTestApp(t, sessionAs(employeeUser))
	stubInputs(t, "", path)

	require.NoError(t, a.UploadPhoto(context.Background()))
	assert.Equal(t, []byte("\x89PNG\r\n\x1a\nfake"), b.lastUpload)
	assert.Contains(t, *lines, "Photo uploaded: ph-1")
}

func TestUploadPhoto_MissingFile(t *testing.T) {
	a, b, _, _ := newTestApp(t, sessionAs(adminUser))
	stubInputs(t, "", filepath.Join(t.TempDir(), "missing.jpg"))

	assert.ErrorIs(t, a.UploadPhoto(context.Background()), os.ErrNotExist)
	assert.Empty(t, b.calls)
}

func TestUploadPhoto_TooLarge(t *testing.T) {
	path := filepath.Join(t.TempDir(), "huge.jpg")
	require.NoError(t, os.WriteFile(path, make([]byte, maxPhotoBytes+1), 0o600))

	a, b, _, _ := newTestApp(t, sessionAs(adminUser))
	stubInputs(t, "", path)

	assert.ErrorIs(t, a.UploadPhoto(context.Background()), filex.ErrTooLarge)
	assert.Empty(t, b.calls)
}

func TestPhotoURL(t *testing.T) {
	a, b, _, lines := newTestApp(t, sessionAs(adminUser))
	stubInputs(t, "", "ph1")

	require.NoError(t, a.PhotoURL(context.Background()))
	assert.Equal(t, "ph1", b.lastID)
	assert.Equal(t, []string{"https://storage.test/ph1"}, *lines)
}

func TestUsers(t *testing.T) {
	a, b, out, _ := newTestApp(t, sessionAs(superUser))
	b.users = []*dto.UserProfile{adminUser, employeeUser}

	require.NoError(t, a.Users(context.Background()))
	assert.Contains(t, out.String(), "chef@bistro.test")
	assert.Contains(t, out.String(), "employer")
}

func TestAddUser(t *testing.T) {
	tests := []struct {
		name    string
		answers []string
		want    dto.UserRequest
	}{
		{
			name:    "admin client",
			answers: []string{"admin_client", "boss@cafe.test", "Paul", "Durand", "Café", "98765432100011"},
			want: dto.UserRequest{Role: roles.AdminClient, Email: "boss@cafe.test", FirstName: "Paul", LastName: "Durand",
				CompanyName: "Café", Siret: "98765432100011", Password: "pw123456"},
		},
		{
			name:    "employer",
			answers: []string{"employer", "cook@cafe.test", "Ines", "Petit", "98765432100011"},
			want: dto.UserRequest{Role: roles.Employer, Email: "cook@cafe.test", FirstName: "Ines", LastName: "Petit",
				ParentAdminSiret: "98765432100011", Password: "pw123456"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, b, _, lines := newTestApp(t, sessionAs(superUser))
			stubInputs(t, "pw123456", tt.answers...)

			require.NoError(t, a.AddUser(context.Background()))
			assert.Equal(t, tt.want, b.lastUser)
			assert.Contains(t, *lines, "User created: usr-1")
		})
	}
}

func TestAddUser_UnknownRole(t *testing.T) {
	a, b, _, _ := newTestApp(t, sessionAs(superUser))
	stubInputs(t, "", "chef")

	assert.ErrorIs(t, a.AddUser(context.Background()), roles.ErrUnknownRole)
	assert.Empty(t, b.calls)
}

func TestDeleteUser_AdminClientBlocked(t *testing.T) {
	a, b, _, _ := newTestApp(t, sessionAs(adminUser))

	require.NoError(t, a.DeleteUser(context.Background()))
	assert.Empty(t, b.calls)
}

func TestDeleteUser(t *testing.T) {
	a, b, _, lines := newTestApp(t, sessionAs(superUser))
	stubInputs(t, "", "usr-9")

	require.NoError(t, a.DeleteUser(context.Background()))
	assert.Equal(t, "usr-9", b.lastID)
	assert.Contains(t, *lines, "User deleted")
}

func TestWhoami(t *testing.T) {
	a, _, out, _ := newTestApp(t, sessionAs(employeeUser))

	require.NoError(t, a.Whoami(context.Background()))
	assert.Contains(t, out.String(), "cook@bistro.test")
	assert.Contains(t, out.String(), tenantSiret)
}

func TestCountExpiring(t *testing.T) {
	now := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)
	records := []*dto.TraceabilityRecord{
		{UseByDate: "2025-03-09"},
		{UseByDate: "2025-03-12"},
		{UseByDate: "2025-03-13"},
		{UseByDate: ""},
	}
	assert.Equal(t, 2, countExpiring(records, now))
}
