package employee

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestIsProbation(t *testing.T) {
	cases := []struct {
		name    string
		profile Profile
		want    bool
	}{
		{"permanent", Profile{EmploymentType: EmploymentTypePermanent}, false},
		{"probation type", Profile{EmploymentType: EmploymentTypeProbation}, true},
		{"internship type", Profile{EmploymentType: EmploymentTypeInternship}, true},
		{"contract type", Profile{EmploymentType: EmploymentTypeContract}, false},
		// Position-name heuristic only applies when the type column is empty.
		{"legacy probation position", Profile{PositionName: "Probation Engineer"}, true},
		{"legacy intern position", Profile{PositionName: "Marketing Intern"}, true},
		{"legacy regular position", Profile{PositionName: "Senior Engineer"}, false},
		{"permanent with intern-sounding position", Profile{EmploymentType: EmploymentTypePermanent, PositionName: "Internal Audit"}, false},
	}
	for _, c := range cases {
		if got := c.profile.IsProbation(); got != c.want {
			t.Errorf("%s: IsProbation() = %v, want %v", c.name, got, c.want)
		}
	}
}

func TestTotalAllowances(t *testing.T) {
	p := Profile{
		HousingAllowance:   decimal.NewFromInt(1_000_000),
		TransportAllowance: decimal.NewFromInt(500_000),
		MealAllowance:      decimal.NewFromInt(700_000),
		PhoneAllowance:     decimal.NewFromInt(200_000),
	}
	want := decimal.NewFromInt(2_400_000)
	if got := p.TotalAllowances(); !got.Equal(want) {
		t.Errorf("TotalAllowances() = %s, want %s", got, want)
	}
}
