package terminal

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ericfisherdev/trainingpanel/internal/domain/model"
)

func TestRenderRequest(t *testing.T) {
	r := model.TrainingRequest{
		Month:           time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
		FirstWorkingDay: time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
		Items: []model.RequestItem{{
			EmployeeName:   "Petrova Anna",
			Position:       "Chemist",
			DepartmentName: "Laboratory",
			TrainingName:   "Electrical",
			ExamDate:       time.Date(2023, time.April, 20, 0, 0, 0, 0, time.UTC),
			WarningStart:   time.Date(2024, time.January, 20, 0, 0, 0, 0, time.UTC),
			NextDueDate:    time.Date(2024, time.April, 20, 0, 0, 0, 0, time.UTC),
			ProtocolNumber: "17-A",
		}},
	}

	var buf bytes.Buffer
	require.NoError(t, RenderRequest(&buf, r))
	out := buf.String()

	assert.Contains(t, out, "Training request 01.2024")
	assert.Contains(t, out, "first working day 01.01.2024")
	assert.Contains(t, out, "Petrova Anna")
	assert.Contains(t, out, "Chemist")
	assert.Contains(t, out, "20.04.2023")
	assert.Contains(t, out, "20.01.2024")
	assert.Contains(t, out, "20.04.2024")
	assert.Contains(t, out, "17-A")
}

func TestRenderRequest_Empty(t *testing.T) {
	r := model.TrainingRequest{
		Month:           time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC),
		FirstWorkingDay: time.Date(2024, time.June, 3, 0, 0, 0, 0, time.UTC),
	}

	var buf bytes.Buffer
	require.NoError(t, RenderRequest(&buf, r))

	assert.Contains(t, buf.String(), "first working day 03.06.2024")
	assert.Contains(t, buf.String(), "No records enter the warning window this month.")
}
