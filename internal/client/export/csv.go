// Package export flattens (filtered) collections to CSV. Quoting of embedded
// commas, quotes, and newlines is encoding/csv's job; this package only
// decides columns and formatting.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/maintdesk/maintdesk/internal/client/models"
)

const timeLayout = "2006-01-02 15:04:05"

func writeAll(w io.Writer, header []string, rows [][]string) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("writing csv header: %w", err)
	}
	for _, row := range rows {
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing csv row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// Tickets writes one row per ticket in the given order.
func Tickets(w io.Writer, items []models.Ticket) error {
	header := []string{"ID", "Machine", "Problem", "Problem Detail", "Priority", "Status", "Created At", "Updated At"}
	rows := make([][]string, 0, len(items))
	for _, t := range items {
		rows = append(rows, []string{
			t.ID,
			t.MachineLabel(),
			t.Problem,
			t.ProblemDetail,
			string(t.Priority),
			string(t.Status),
			t.CreatedAt.Format(timeLayout),
			t.UpdatedAt.Format(timeLayout),
		})
	}
	return writeAll(w, header, rows)
}

// Machines writes one row per machine.
func Machines(w io.Writer, items []models.Machine) error {
	header := []string{"ID", "Product ID", "Name", "Created At", "Updated At"}
	rows := make([][]string, 0, len(items))
	for _, m := range items {
		rows = append(rows, []string{
			m.ID,
			m.ProductID,
			m.Name,
			m.CreatedAt.Format(timeLayout),
			m.UpdatedAt.Format(timeLayout),
		})
	}
	return writeAll(w, header, rows)
}

// Users writes one row per account.
func Users(w io.Writer, items []models.User) error {
	header := []string{"ID", "Name", "Username", "Email", "Role", "Is Verified", "Created At"}
	rows := make([][]string, 0, len(items))
	for _, u := range items {
		verified := "No"
		if u.IsVerified {
			verified = "Yes"
		}
		role := u.Role
		if role == "" {
			role = models.RoleEngineer
		}
		rows = append(rows, []string{
			u.ID,
			u.Name,
			u.Username,
			u.Email,
			string(role),
			verified,
			u.CreatedAt.Format(timeLayout),
		})
	}
	return writeAll(w, header, rows)
}

// Filename builds the conventional export name, e.g. "tickets-2026-09-01.csv".
func Filename(collection string, now time.Time) string {
	return collection + "-" + now.Format("2006-01-02") + ".csv"
}

// Statuses writes one row per telemetry reading.
func Statuses(w io.Writer, items []models.MachineStatus) error {
	header := []string{"ID", "Machine ID", "Type", "Air Temp", "Process Temp", "Rotational Speed", "Torque", "Tool Wear", "Target", "Failure Type", "Recorded At"}
	rows := make([][]string, 0, len(items))
	for _, s := range items {
		rows = append(rows, []string{
			s.ID,
			s.MachineID,
			string(s.Type),
			strconv.FormatFloat(s.AirTemperature, 'f', -1, 64),
			strconv.FormatFloat(s.ProcessTemperature, 'f', -1, 64),
			strconv.Itoa(s.RotationalSpeed),
			strconv.FormatFloat(s.Torque, 'f', -1, 64),
			strconv.Itoa(s.ToolWear),
			strconv.Itoa(s.Target),
			s.FailureType,
			s.RecordedAt.Format(timeLayout),
		})
	}
	return writeAll(w, header, rows)
}
