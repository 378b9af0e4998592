package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	report(err error)

	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Whoami(ctx context.Context) error
	Home(ctx context.Context) error

	Dashboard(ctx context.Context) error
	Employees(ctx context.Context) error
	AddEmployee(ctx context.Context) error
	DeleteEmployee(ctx context.Context) error

	Equipment(ctx context.Context) error
	AddEquipment(ctx context.Context) error
	DeleteEquipment(ctx context.Context) error
	Temperatures(ctx context.Context) error
	AddTemperature(ctx context.Context) error

	Traceability(ctx context.Context) error
	AddTraceability(ctx context.Context) error
	DeleteTraceability(ctx context.Context) error
	Photos(ctx context.Context) error
	UploadPhoto(ctx context.Context) error
	PhotoURL(ctx context.Context) error

	Users(ctx context.Context) error
	AddUser(ctx context.Context) error
	DeleteUser(ctx context.Context) error
}

const (
	helpAnonymous = "Available commands: register, login, exit"
	helpLoggedIn  = "Available commands: home, whoami, dashboard, employees, addemployee, deleteemployee, " +
		"equipment, addequipment, deleteequipment, temperatures, addtemp, " +
		"traceability, addtrace, deletetrace, photos, uploadphoto, photourl, " +
		"users, adduser, deleteuser, logout, exit"
)

// runREPL starts a simple read–eval–print loop for the hygiene tracker CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Role checks are not done here: every screen command goes through the route
// guard, which redirects instead of calling the server.
//
// Errors returned by command handlers are handed to a.report and the loop
// carries on.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	commands := map[string]func(context.Context) error{
		"register":        a.Register,
		"login":           a.Login,
		"logout":          a.Logout,
		"whoami":          a.Whoami,
		"home":            a.Home,
		"dashboard":       a.Dashboard,
		"employees":       a.Employees,
		"addemployee":     a.AddEmployee,
		"deleteemployee":  a.DeleteEmployee,
		"equipment":       a.Equipment,
		"addequipment":    a.AddEquipment,
		"deleteequipment": a.DeleteEquipment,
		"temperatures":    a.Temperatures,
		"addtemp":         a.AddTemperature,
		"traceability":    a.Traceability,
		"addtrace":        a.AddTraceability,
		"deletetrace":     a.DeleteTraceability,
		"photos":          a.Photos,
		"uploadphoto":     a.UploadPhoto,
		"photourl":        a.PhotoURL,
		"users":           a.Users,
		"adduser":         a.AddUser,
		"deleteuser":      a.DeleteUser,
	}

	for {
		printlnFn(fmt.Sprintf("haccp %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn(helpLoggedIn)
			} else {
				printlnFn(helpAnonymous)
			}

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			fn, ok := commands[cmd]
			if !ok {
				printlnFn("Unknown command:", cmd)
				continue
			}
			a.report(fn(ctx))
		}
	}
}
