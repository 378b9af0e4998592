// Package dto holds the JSON wire contract shared by the REST server and the
// CLI client: authentication payloads, the user profile and the CRUD
// resources (employees, equipment, temperature readings, traceability records
// and photos).
package dto
