package web

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ericfisherdev/trainingpanel/internal/application"
	"github.com/ericfisherdev/trainingpanel/internal/domain/model"
)

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

func day(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func testRoster() model.Roster {
	return model.Roster{
		Departments: []model.Department{{Code: "LAB", Name: "Laboratory"}},
		TrainingTypes: []model.TrainingType{
			{Name: "Electrical", ValidityMonths: 12, Description: "**Group III** <script>x()</script>"},
			{Name: "Fire", ValidityMonths: 36},
			{Name: "Heights", ValidityMonths: 12},
		},
		Employees: []model.Employee{
			{
				LastName:       "Petrova",
				FirstName:      "Anna",
				Position:       "Chemist <senior>",
				DepartmentCode: "LAB",
				Records: []model.TrainingRecord{
					{TrainingName: "Electrical", ExamDate: day(2023, time.January, 15), Applicable: true, ProtocolNumber: "17-A"},
					{TrainingName: "Fire", Applicable: false},
				},
			},
		},
	}
}

func testMatrix(now time.Time) model.StatusMatrix {
	return application.BuildMatrix(testRoster(), fixedClock{now: now}, time.UTC)
}

func TestRenderMatrix(t *testing.T) {
	m := testMatrix(time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC))

	var buf bytes.Buffer
	require.NoError(t, NewRenderer(nil).RenderMatrix(context.Background(), &buf, m))
	html := buf.String()

	assert.Contains(t, html, `<table class="training-matrix"`)
	assert.Contains(t, html, `class="training-cell status-expired pulse"`)
	assert.Contains(t, html, `class="training-cell status-inapplicable"`)
	assert.Contains(t, html, `data-status="undetermined"`)
	assert.Contains(t, html, `data-exam-date="2023-01-15"`)
	assert.Contains(t, html, `title="Next exam: 15.01.2024"`)
	assert.Contains(t, html, "15.01.2023")
	assert.Contains(t, html, "No. 17-A")
	assert.Contains(t, html, `<span class="employee-name">Petrova Anna</span><small class="position">Chemist &lt;senior&gt;</small>`)
	assert.Contains(t, html, `<span class="no-record">-</span>`)
	assert.Contains(t, html, `<span class="inapplicable">n/a</span>`)
	assert.NotContains(t, html, "<script>")
	assert.Contains(t, html, `data-bs-title="&lt;p&gt;&lt;strong&gt;Group III&lt;/strong&gt;`)
}

func TestRenderMatrix_WarningCell(t *testing.T) {
	m := testMatrix(time.Date(2023, time.November, 1, 0, 0, 0, 0, time.UTC))

	var buf bytes.Buffer
	require.NoError(t, NewRenderer(nil).RenderMatrix(context.Background(), &buf, m))

	assert.Contains(t, buf.String(), `class="training-cell status-warning"`)
	assert.NotContains(t, buf.String(), "pulse")
}

func TestRenderSummary(t *testing.T) {
	now := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	m := testMatrix(now)
	s := application.Summarize(m, testRoster(), 30)

	var buf bytes.Buffer
	require.NoError(t, NewRenderer(nil).RenderSummary(context.Background(), &buf, s))
	html := buf.String()

	assert.Contains(t, html, `<section class="training-summary"`)
	assert.Contains(t, html, "Upcoming exams (next 30 days)")
	assert.Contains(t, html, `<li class="status-warning" data-status="warning">warning: 1</li>`)
	assert.Contains(t, html, `<li class="status-inapplicable" data-status="inapplicable">inapplicable: 1</li>`)
	assert.Contains(t, html, "Petrova Anna")
	assert.Contains(t, html, `<div class="due-list due-expired"><h3>Expired</h3><p class="empty">None</p></div>`)
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestRenderMatrix_WriteError(t *testing.T) {
	m := testMatrix(time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC))

	err := NewRenderer(nil).RenderMatrix(context.Background(), failingWriter{}, m)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
}

func TestRenderMatrix_CanceledContext(t *testing.T) {
	m := testMatrix(time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var buf bytes.Buffer
	err := NewRenderer(nil).RenderMatrix(ctx, &buf, m)
	require.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, buf.String())
}

func TestRenderRequest(t *testing.T) {
	now := time.Date(2023, time.October, 2, 9, 0, 0, 0, time.UTC)
	req := application.BuildTrainingRequest(testRoster(), now)

	var buf bytes.Buffer
	require.NoError(t, NewRenderer(nil).RenderRequest(context.Background(), &buf, req))
	html := buf.String()

	assert.Contains(t, html, `<section class="training-request" data-month="10.2023" data-evaluated-at="02.10.2023 09:00">`)
	assert.Contains(t, html, "<h2>Training request 10.2023</h2>")
	assert.Contains(t, html, `<p class="first-working-day">First working day: 02.10.2023</p>`)
	assert.Contains(t, html, "<td>Petrova Anna</td><td>Chemist &lt;senior&gt;</td><td>Laboratory</td><td>Electrical</td>")
	assert.Contains(t, html, "<td>15.01.2023</td><td>15.10.2023</td><td>15.01.2024</td><td>17-A</td>")
	assert.NotContains(t, html, "Fire")
}

func TestRenderRequest_Empty(t *testing.T) {
	now := time.Date(2023, time.November, 1, 9, 0, 0, 0, time.UTC)
	req := application.BuildTrainingRequest(testRoster(), now)

	var buf bytes.Buffer
	require.NoError(t, NewRenderer(nil).RenderRequest(context.Background(), &buf, req))

	assert.Contains(t, buf.String(), `<p class="empty">No records enter the warning window this month.</p>`)
	assert.NotContains(t, buf.String(), "<table")
}

func TestRenderRequest_WriteError(t *testing.T) {
	req := application.BuildTrainingRequest(testRoster(), time.Date(2023, time.October, 2, 0, 0, 0, 0, time.UTC))

	err := NewRenderer(nil).RenderRequest(context.Background(), failingWriter{}, req)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "render training request")
}
