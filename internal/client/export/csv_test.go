package export

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/maintdesk/maintdesk/internal/client/models"
)

var exportTime = time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)

func TestTicketsQuotesEmbeddedSeparators(t *testing.T) {
	var buf bytes.Buffer
	err := Tickets(&buf, []models.Ticket{{
		ID:            "t1",
		ProductID:     "L-1001",
		Problem:       `Pump "screams", then stops`,
		ProblemDetail: "line one\nline two",
		Priority:      models.PriorityHigh,
		Status:        models.TicketOpen,
		CreatedAt:     exportTime,
		UpdatedAt:     exportTime,
	}})
	require.NoError(t, err)

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	require.Equal(t, `Pump "screams", then stops`, records[1][2])
	require.Equal(t, "line one\nline two", records[1][3])
	require.Equal(t, "2026-03-14 09:26:53", records[1][6])
}

func TestTicketsPrefersMachineName(t *testing.T) {
	var buf bytes.Buffer
	err := Tickets(&buf, []models.Ticket{{
		ID:        "t1",
		ProductID: "L-1001",
		Machine:   &models.Machine{Name: "Hydraulic Press"},
	}})
	require.NoError(t, err)

	records, _ := csv.NewReader(&buf).ReadAll()
	require.Equal(t, "Hydraulic Press", records[1][1])
}

func TestMachinesHeaderOnlyWhenEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Machines(&buf, nil))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 1)
	require.Equal(t, []string{"ID", "Product ID", "Name", "Created At", "Updated At"}, records[0])
}

func TestUsersDefaultsRole(t *testing.T) {
	var buf bytes.Buffer
	err := Users(&buf, []models.User{
		{ID: "u1", Name: "Alice", Username: "alice", Email: "alice@plant.io", Role: models.RoleAdmin, IsVerified: true, CreatedAt: exportTime},
		{ID: "u2", Name: "Bob", Username: "bob", Email: "bob@plant.io", CreatedAt: exportTime},
	})
	require.NoError(t, err)

	records, _ := csv.NewReader(&buf).ReadAll()
	require.Equal(t, "ADMIN", records[1][4])
	require.Equal(t, "Yes", records[1][5])
	require.Equal(t, "ENGINEER", records[2][4])
	require.Equal(t, "No", records[2][5])
}

func TestStatusesFormatsNumbers(t *testing.T) {
	var buf bytes.Buffer
	err := Statuses(&buf, []models.MachineStatus{{
		ID:                 "s1",
		MachineID:          "m1",
		Type:               models.StatusTypeLow,
		AirTemperature:     298.4,
		ProcessTemperature: 308.95,
		RotationalSpeed:    1551,
		Torque:             42.8,
		ToolWear:           108,
		Target:             1,
		FailureType:        "Power Failure",
		RecordedAt:         exportTime,
	}})
	require.NoError(t, err)

	records, _ := csv.NewReader(&buf).ReadAll()
	row := records[1]
	require.Equal(t, "298.4", row[3])
	require.Equal(t, "308.95", row[4])
	require.Equal(t, "1551", row[5])
	require.Equal(t, "1", row[8])
	require.Equal(t, "Power Failure", row[9])
}

func TestFilename(t *testing.T) {
	require.Equal(t, "tickets-2026-03-14.csv", Filename("tickets", exportTime))
}
