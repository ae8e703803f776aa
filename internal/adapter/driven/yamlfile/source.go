// Package yamlfile implements the RecordSource port over a YAML records file.
package yamlfile

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/ericfisherdev/trainingpanel/internal/application"
	"github.com/ericfisherdev/trainingpanel/internal/domain/model"
	"github.com/ericfisherdev/trainingpanel/internal/domain/port/driven"
)

// Compile-time interface satisfaction check.
var _ driven.RecordSource = (*Source)(nil)

// Source loads a roster from a YAML file. The file is re-read on every Load.
type Source struct {
	path string
	loc  *time.Location
}

// NewSource creates a Source reading path. Exam dates are interpreted as
// midnight in loc (UTC when nil).
func NewSource(path string, loc *time.Location) *Source {
	if loc == nil {
		loc = time.UTC
	}
	return &Source{path: path, loc: loc}
}

// Path returns the file the source reads.
func (s *Source) Path() string {
	return s.path
}

// Load reads and validates the records file.
func (s *Source) Load(ctx context.Context) (model.Roster, error) {
	if err := ctx.Err(); err != nil {
		return model.Roster{}, err
	}

	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return model.Roster{}, fmt.Errorf("read %s: %w", s.path, driven.ErrRecordsNotFound)
	}
	if err != nil {
		return model.Roster{}, fmt.Errorf("read %s: %w", s.path, err)
	}

	roster, err := Decode(bytes.NewReader(data), s.loc)
	if err != nil {
		return model.Roster{}, fmt.Errorf("decode %s: %w", s.path, err)
	}
	return roster, nil
}

// Decode parses and validates a roster document.
func Decode(r io.Reader, loc *time.Location) (model.Roster, error) {
	var doc rosterDoc

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return model.Roster{}, fmt.Errorf("%w: %v", driven.ErrInvalidRecord, err)
	}

	return doc.toRoster(loc)
}

type rosterDoc struct {
	Departments   []departmentDoc   `yaml:"departments"`
	TrainingTypes []trainingTypeDoc `yaml:"training_types"`
	Employees     []employeeDoc     `yaml:"employees"`
}

type departmentDoc struct {
	Code string `yaml:"code"`
	Name string `yaml:"name"`
}

type trainingTypeDoc struct {
	Name           string `yaml:"name"`
	ValidityMonths int    `yaml:"validity_months"`
	Description    string `yaml:"description"`
}

type employeeDoc struct {
	LastName   string      `yaml:"last_name"`
	FirstName  string      `yaml:"first_name"`
	MiddleName string      `yaml:"middle_name"`
	Position   string      `yaml:"position"`
	Email      string      `yaml:"email"`
	Department string      `yaml:"department"`
	Records    []recordDoc `yaml:"records"`
}

type recordDoc struct {
	Training       string `yaml:"training"`
	ExamDate       string `yaml:"exam_date"`
	ValidityMonths int    `yaml:"validity_months"`
	ProtocolNumber string `yaml:"protocol_number"`
	Applicable     *bool  `yaml:"applicable"`
}

func (d rosterDoc) toRoster(loc *time.Location) (model.Roster, error) {
	var roster model.Roster

	deptCodes := make(map[string]bool, len(d.Departments))
	for i, dept := range d.Departments {
		code := strings.TrimSpace(dept.Code)
		if code == "" {
			return model.Roster{}, invalid("departments[%d]: code is required", i)
		}
		if deptCodes[code] {
			return model.Roster{}, invalid("departments[%d]: duplicate code %q", i, code)
		}
		deptCodes[code] = true
		roster.Departments = append(roster.Departments, model.Department{Code: code, Name: dept.Name})
	}

	typeNames := make(map[string]bool, len(d.TrainingTypes))
	for i, tt := range d.TrainingTypes {
		name := strings.TrimSpace(tt.Name)
		if name == "" {
			return model.Roster{}, invalid("training_types[%d]: name is required", i)
		}
		if typeNames[name] {
			return model.Roster{}, invalid("training_types[%d]: duplicate name %q", i, name)
		}
		if tt.ValidityMonths < 0 {
			return model.Roster{}, invalid("training_types[%d]: validity_months must not be negative", i)
		}
		typeNames[name] = true
		roster.TrainingTypes = append(roster.TrainingTypes, model.TrainingType{
			Name:           name,
			ValidityMonths: tt.ValidityMonths,
			Description:    tt.Description,
		})
	}

	for i, emp := range d.Employees {
		if strings.TrimSpace(emp.LastName) == "" {
			return model.Roster{}, invalid("employees[%d]: last_name is required", i)
		}
		if emp.Department != "" && !deptCodes[emp.Department] {
			return model.Roster{}, invalid("employees[%d]: unknown department %q", i, emp.Department)
		}

		employee := model.Employee{
			LastName:       emp.LastName,
			FirstName:      emp.FirstName,
			MiddleName:     emp.MiddleName,
			Position:       emp.Position,
			Email:          emp.Email,
			DepartmentCode: emp.Department,
		}

		for j, rec := range emp.Records {
			record, err := rec.toRecord(typeNames, loc)
			if err != nil {
				return model.Roster{}, fmt.Errorf("employees[%d].records[%d]: %w", i, j, err)
			}
			employee.Records = append(employee.Records, record)
		}

		roster.Employees = append(roster.Employees, employee)
	}

	return roster, nil
}

func (r recordDoc) toRecord(typeNames map[string]bool, loc *time.Location) (model.TrainingRecord, error) {
	if !typeNames[r.Training] {
		return model.TrainingRecord{}, invalid("unknown training type %q", r.Training)
	}
	if r.ValidityMonths < 0 {
		return model.TrainingRecord{}, invalid("validity_months must not be negative")
	}

	examDate, err := application.ParseExamDate(r.ExamDate, loc)
	if err != nil {
		return model.TrainingRecord{}, fmt.Errorf("%w: %v", driven.ErrInvalidRecord, err)
	}

	applicable := true
	if r.Applicable != nil {
		applicable = *r.Applicable
	}

	return model.TrainingRecord{
		TrainingName:   r.Training,
		ExamDate:       examDate,
		ValidityMonths: r.ValidityMonths,
		Applicable:     applicable,
		ProtocolNumber: r.ProtocolNumber,
	}, nil
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", driven.ErrInvalidRecord, fmt.Sprintf(format, args...))
}
