package yamlfile

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ericfisherdev/trainingpanel/internal/domain/port/driven"
)

const sampleRoster = `
departments:
  - code: OPS
    name: Operations
training_types:
  - name: Electrical safety
    validity_months: 12
    description: "**Group III** clearance"
  - name: Fire safety
employees:
  - last_name: Ivanov
    first_name: Ivan
    middle_name: Ivanovich
    position: Engineer
    email: ivanov@example.com
    department: OPS
    records:
      - training: Electrical safety
        exam_date: 2023-01-15
        protocol_number: "17-A"
      - training: Fire safety
        exam_date: "31.01.2023"
        validity_months: 1
        applicable: false
      - training: Fire safety
`

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "records.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestSource_Load(t *testing.T) {
	src := NewSource(writeFile(t, sampleRoster), time.UTC)

	roster, err := src.Load(context.Background())
	require.NoError(t, err)

	require.Len(t, roster.Departments, 1)
	assert.Equal(t, "Operations", roster.Departments[0].Name)

	require.Len(t, roster.TrainingTypes, 2)
	assert.Equal(t, 12, roster.TrainingTypes[0].ValidityMonths)
	assert.Equal(t, "**Group III** clearance", roster.TrainingTypes[0].Description)
	assert.Equal(t, 0, roster.TrainingTypes[1].ValidityMonths)

	require.Len(t, roster.Employees, 1)
	emp := roster.Employees[0]
	assert.Equal(t, "Ivanov Ivan Ivanovich", emp.FullName())
	assert.Equal(t, "OPS", emp.DepartmentCode)
	require.Len(t, emp.Records, 3)

	first := emp.Records[0]
	require.NotNil(t, first.ExamDate)
	assert.Equal(t, time.Date(2023, time.January, 15, 0, 0, 0, 0, time.UTC), *first.ExamDate)
	assert.True(t, first.Applicable, "applicable defaults to true")
	assert.Equal(t, "17-A", first.ProtocolNumber)

	second := emp.Records[1]
	require.NotNil(t, second.ExamDate)
	assert.Equal(t, time.Date(2023, time.January, 31, 0, 0, 0, 0, time.UTC), *second.ExamDate)
	assert.Equal(t, 1, second.ValidityMonths)
	assert.False(t, second.Applicable)

	assert.Nil(t, emp.Records[2].ExamDate)
}

func TestSource_LoadUsesLocation(t *testing.T) {
	loc := time.FixedZone("UTC+3", 3*60*60)
	src := NewSource(writeFile(t, sampleRoster), loc)

	roster, err := src.Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, time.Date(2023, time.January, 15, 0, 0, 0, 0, loc), *roster.Employees[0].Records[0].ExamDate)
}

func TestSource_NotFound(t *testing.T) {
	src := NewSource(filepath.Join(t.TempDir(), "missing.yaml"), time.UTC)

	_, err := src.Load(context.Background())

	assert.ErrorIs(t, err, driven.ErrRecordsNotFound)
}

func TestSource_CanceledContext(t *testing.T) {
	src := NewSource(writeFile(t, sampleRoster), time.UTC)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := src.Load(ctx)

	assert.ErrorIs(t, err, context.Canceled)
}

func TestDecode_Empty(t *testing.T) {
	roster, err := Decode(strings.NewReader(""), time.UTC)

	require.NoError(t, err)
	assert.Empty(t, roster.Employees)
}

func TestDecode_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		wantMsg string
	}{
		{
			name:    "unknown field",
			doc:     "employees:\n  - last_name: A\n    shoe_size: 42\n",
			wantMsg: "shoe_size",
		},
		{
			name:    "unknown training type",
			doc:     "employees:\n  - last_name: A\n    records:\n      - training: Diving\n",
			wantMsg: `unknown training type "Diving"`,
		},
		{
			name:    "unknown department",
			doc:     "employees:\n  - last_name: A\n    department: HQ\n",
			wantMsg: `unknown department "HQ"`,
		},
		{
			name:    "duplicate department code",
			doc:     "departments:\n  - code: OPS\n  - code: OPS\n",
			wantMsg: `duplicate code "OPS"`,
		},
		{
			name:    "duplicate training type",
			doc:     "training_types:\n  - name: A\n  - name: A\n",
			wantMsg: `duplicate name "A"`,
		},
		{
			name:    "negative type validity",
			doc:     "training_types:\n  - name: A\n    validity_months: -1\n",
			wantMsg: "training_types[0]: validity_months must not be negative",
		},
		{
			name:    "negative record validity",
			doc:     "training_types:\n  - name: A\nemployees:\n  - last_name: B\n    records:\n      - training: A\n        validity_months: -3\n",
			wantMsg: "employees[0].records[0]: invalid record: validity_months must not be negative",
		},
		{
			name:    "malformed exam date",
			doc:     "training_types:\n  - name: A\nemployees:\n  - last_name: B\n    records:\n      - training: A\n        exam_date: soon\n",
			wantMsg: "invalid exam date",
		},
		{
			name:    "missing last name",
			doc:     "employees:\n  - first_name: A\n",
			wantMsg: "last_name is required",
		},
		{
			name:    "not yaml",
			doc:     "employees: [",
			wantMsg: "invalid record",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tt.doc), time.UTC)

			require.ErrorIs(t, err, driven.ErrInvalidRecord)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestDecode_ZeroValidityAccepted(t *testing.T) {
	doc := "training_types:\n  - name: A\n    validity_months: 0\nemployees:\n  - last_name: B\n    records:\n      - training: A\n        validity_months: 0\n"

	roster, err := Decode(strings.NewReader(doc), time.UTC)

	require.NoError(t, err)
	assert.Equal(t, 0, roster.TrainingTypes[0].ValidityMonths)
	assert.Equal(t, 0, roster.Employees[0].Records[0].ValidityMonths)
}
