package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/Svmi93/projetHygieneResto-sub000/internal/dto"
)

// expiringWithin is how close to its use-by date a batch is flagged on the dashboard.
const expiringWithin = 48 * time.Hour

// nowFn is a test seam for the dashboard clock.
var nowFn = time.Now

// Dashboard summarises the restaurant of an admin_client.
func (a *App) Dashboard(ctx context.Context) error {
	return a.guarded(ctx, "dashboard", func(u *dto.UserProfile) error {
		employees, err := a.employees.List(ctx)
		if err != nil {
			return err
		}
		equipment, err := a.equipment.List(ctx)
		if err != nil {
			return err
		}
		records, err := a.traceability.List(ctx, u)
		if err != nil {
			return err
		}

		w := newTable(a.out)
		fmt.Fprintf(w, "Company\t%s\n", orDash(u.CompanyName))
		fmt.Fprintf(w, "Employees\t%d\n", len(employees))
		fmt.Fprintf(w, "Equipment\t%d\n", len(equipment))
		fmt.Fprintf(w, "Traceability records\t%d\n", len(records))
		fmt.Fprintf(w, "Expiring within 48h\t%d\n", countExpiring(records, nowFn()))
		return w.Flush()
	})
}

// countExpiring counts batches whose use-by date falls before now+expiringWithin.
// Records with an unparsable date are skipped.
func countExpiring(records []*dto.TraceabilityRecord, now time.Time) int {
	limit := now.Add(expiringWithin)
	n := 0
	for _, r := range records {
		d, err := time.ParseInLocation(dto.DateLayout, r.UseByDate, now.Location())
		if err != nil {
			continue
		}
		if d.Before(limit) {
			n++
		}
	}
	return n
}

func (a *App) Employees(ctx context.Context) error {
	return a.guarded(ctx, "employees", func(*dto.UserProfile) error {
		list, err := a.employees.List(ctx)
		if err != nil {
			return err
		}
		if len(list) == 0 {
			printlnFn("No employees yet")
			return nil
		}
		w := newTable(a.out)
		fmt.Fprintln(w, "ID\tNAME\tEMAIL\tPHONE")
		for _, e := range list {
			fmt.Fprintf(w, "%s\t%s %s\t%s\t%s\n", e.ID, e.FirstName, e.LastName, e.Email, orDash(e.Phone))
		}
		return w.Flush()
	})
}

func (a *App) AddEmployee(ctx context.Context) error {
	return a.guarded(ctx, "employees", func(*dto.UserProfile) error {
		in, err := a.ask("First name", "Last name", "Email", "Phone")
		if err != nil {
			return err
		}
		password, err := a.readPasswordString()
		if err != nil {
			return err
		}
		e, err := a.employees.Create(ctx, dto.EmployeeRequest{
			FirstName: in[0],
			LastName:  in[1],
			Email:     in[2],
			Phone:     in[3],
			Password:  password,
		})
		if err != nil {
			printFieldErrors(err)
			return err
		}
		printlnFn("Employee created:", e.ID)
		return nil
	})
}

func (a *App) DeleteEmployee(ctx context.Context) error {
	return a.guarded(ctx, "employees", func(*dto.UserProfile) error {
		id, err := getSimpleText(a.reader, "Employee ID", a.out)
		if err != nil {
			return err
		}
		if err := a.employees.Delete(ctx, id); err != nil {
			return err
		}
		printlnFn("Employee deleted")
		return nil
	})
}

func (a *App) Equipment(ctx context.Context) error {
	return a.guarded(ctx, "equipment", func(*dto.UserProfile) error {
		list, err := a.equipment.List(ctx)
		if err != nil {
			return err
		}
		if len(list) == 0 {
			printlnFn("No equipment yet")
			return nil
		}
		w := newTable(a.out)
		fmt.Fprintln(w, "ID\tNAME\tTYPE\tRANGE")
		for _, e := range list {
			fmt.Fprintf(w, "%s\t%s\t%s\t%.1f..%.1f °C\n", e.ID, e.Name, e.Type, e.MinTemp, e.MaxTemp)
		}
		return w.Flush()
	})
}

func (a *App) AddEquipment(ctx context.Context) error {
	return a.guarded(ctx, "equipment-edit", func(*dto.UserProfile) error {
		in, err := a.ask("Name", "Type (fridge, freezer, ...)")
		if err != nil {
			return err
		}
		minTemp, err := getFloat(a.reader, "Minimum temperature (°C)", a.out)
		if err != nil {
			return err
		}
		maxTemp, err := getFloat(a.reader, "Maximum temperature (°C)", a.out)
		if err != nil {
			return err
		}
		e, err := a.equipment.Create(ctx, dto.EquipmentRequest{
			Name:    in[0],
			Type:    in[1],
			MinTemp: minTemp,
			MaxTemp: maxTemp,
		})
		if err != nil {
			printFieldErrors(err)
			return err
		}
		printlnFn("Equipment created:", e.ID)
		return nil
	})
}

func (a *App) DeleteEquipment(ctx context.Context) error {
	return a.guarded(ctx, "equipment-edit", func(*dto.UserProfile) error {
		id, err := getSimpleText(a.reader, "Equipment ID", a.out)
		if err != nil {
			return err
		}
		if err := a.equipment.Delete(ctx, id); err != nil {
			return err
		}
		printlnFn("Equipment deleted")
		return nil
	})
}

// Temperatures lists the readings of one equipment, flagging the ones
// outside its range.
func (a *App) Temperatures(ctx context.Context) error {
	return a.guarded(ctx, "temperatures", func(*dto.UserProfile) error {
		id, err := getSimpleText(a.reader, "Equipment ID", a.out)
		if err != nil {
			return err
		}
		list, err := a.equipment.Temperatures(ctx, id)
		if err != nil {
			return err
		}
		if len(list) == 0 {
			printlnFn("No readings yet")
			return nil
		}
		w := newTable(a.out)
		fmt.Fprintln(w, "RECORDED AT\tTEMP\tSTATUS\tNOTES")
		for _, t := range list {
			status := "ok"
			if !t.Compliant {
				status = "OUT OF RANGE"
			}
			fmt.Fprintf(w, "%s\t%.1f °C\t%s\t%s\n", formatTime(t.RecordedAt), t.Temperature, status, orDash(t.Notes))
		}
		return w.Flush()
	})
}

func (a *App) AddTemperature(ctx context.Context) error {
	return a.guarded(ctx, "temperatures", func(*dto.UserProfile) error {
		id, err := getSimpleText(a.reader, "Equipment ID", a.out)
		if err != nil {
			return err
		}
		celsius, err := getFloat(a.reader, "Temperature (°C)", a.out)
		if err != nil {
			return err
		}
		rec, err := a.equipment.RecordTemperature(ctx, id, celsius)
		if err != nil {
			printFieldErrors(err)
			return err
		}
		if !rec.Compliant {
			printlnFn("Warning: reading is outside the allowed range")
		}
		printlnFn("Reading recorded:", rec.ID)
		return nil
	})
}
