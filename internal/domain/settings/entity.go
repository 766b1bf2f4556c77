package settings

import "github.com/shopspring/decimal"

// Resource identifies a general-settings CRUD collection under
// /general-settings/api/{resource}/.
type Resource string

const (
	Lines            Resource = "lines"
	Departments      Resource = "departments"
	Positions        Resource = "positions"
	LoanTypes        Resource = "loantypes"
	AllowanceTypes   Resource = "allowancetypes"
	SavingsTypes     Resource = "savingstypes"
	OJTRates         Resource = "ojtrates"
	LeaveTypes       Resource = "leavetypes"
	SundayExceptions Resource = "sundayexceptions"
)

// Path returns the collection endpoint for the resource.
func (r Resource) Path() string {
	return "/general-settings/api/" + string(r) + "/"
}

// ItemKey returns the JSON key the server nests a single entity under in
// create/update responses, e.g. {"success": true, "department": {...}}.
func (r Resource) ItemKey() string {
	switch r {
	case Lines:
		return "line"
	case Departments:
		return "department"
	case Positions:
		return "position"
	case LoanTypes:
		return "loantype"
	case AllowanceTypes:
		return "allowancetype"
	case SavingsTypes:
		return "savingstype"
	case OJTRates:
		return "ojtrate"
	case LeaveTypes:
		return "leavetype"
	case SundayExceptions:
		return "sundayexception"
	default:
		return string(r)
	}
}

// ListKey returns the JSON key the server nests the collection under.
func (r Resource) ListKey() string {
	return string(r)
}

// AllResources lists every general-settings collection.
func AllResources() []Resource {
	return []Resource{
		Lines, Departments, Positions, LoanTypes, AllowanceTypes,
		SavingsTypes, OJTRates, LeaveTypes, SundayExceptions,
	}
}

// Item is a general-settings record. The resources share one flat shape:
// name-bearing types use Name/Description, OJT rates carry a Rate, and
// Sunday exceptions carry a Date.
type Item struct {
	ID          int64            `json:"id"`
	Name        string           `json:"name,omitempty"`
	Description string           `json:"description,omitempty"`
	Rate        *decimal.Decimal `json:"rate,omitempty"`
	Date        string           `json:"date,omitempty"`
}
