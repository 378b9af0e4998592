package guard

import "github.com/Svmi93/projetHygieneResto-sub000/internal/roles"

var (
	tenantUsers = roles.SetOf(roles.AdminClient, roles.Employer)
	adminOnly   = roles.SetOf(roles.AdminClient)
	superOnly   = roles.SetOf(roles.SuperAdmin)
	managers    = roles.SetOf(roles.SuperAdmin, roles.AdminClient)
)

// Routes is the CLI's navigation table, keyed by route name.
var Routes = map[string]Route{
	"dashboard":           {Name: "dashboard", Allowed: adminOnly},
	"employees":           {Name: "employees", Allowed: adminOnly},
	"equipment":           {Name: "equipment", Allowed: tenantUsers},
	"equipment-edit":      {Name: "equipment-edit", Allowed: adminOnly},
	"temperatures":        {Name: "temperatures", Allowed: tenantUsers},
	"traceability":        {Name: "traceability", Allowed: roles.SetOf()},
	"traceability-new":    {Name: "traceability-new", Allowed: tenantUsers},
	"traceability-delete": {Name: "traceability-delete", Allowed: managers},
	"photos":              {Name: "photos", Allowed: roles.SetOf()},
	"photo-upload":        {Name: "photo-upload", Allowed: tenantUsers},
	"admin-users":         {Name: "admin-users", Allowed: superOnly},
	"profile":             {Name: "profile", Allowed: roles.SetOf()},
}
