package finance

import "github.com/shopspring/decimal"

// Employee is a finance-view employee row.
type Employee struct {
	ID               int64           `json:"id"`
	Name             string          `json:"name"`
	IDNumber         string          `json:"idnumber"`
	Department       string          `json:"department"`
	Position         string          `json:"position,omitempty"`
	MonthlyRate      decimal.Decimal `json:"monthly_rate,omitempty"`
	PrincipalBalance decimal.Decimal `json:"principal_balance,omitempty"`
	MonthlyDeduction decimal.Decimal `json:"monthly_deduction,omitempty"`
}

// UploadType identifies a bulk finance upload and selects its endpoint and
// its error-report schema.
type UploadType string

const (
	UploadLoans            UploadType = "loans"
	UploadDeductions       UploadType = "deductions"
	UploadAllowances       UploadType = "allowances"
	UploadSavings          UploadType = "savings"
	UploadOJTRates         UploadType = "ojt"
	UploadPayslips         UploadType = "payslips"
	UploadPrincipalBalance UploadType = "principal-balance"
)

// Path returns the import endpoint for the upload type.
func (t UploadType) Path() string {
	return "/finance/" + string(t) + "/import/"
}

// ErrorHeader returns the error-report column headers for the upload type.
// Rows in partial-failure responses follow this column order.
func (t UploadType) ErrorHeader() []string {
	switch t {
	case UploadPrincipalBalance:
		return []string{"Id Number", "Name", "Loan Type", "Principal Balance", "Monthly Deduction", "Remarks"}
	case UploadLoans:
		return []string{"Id Number", "Name", "Loan Type", "Amount", "Effective Date", "Remarks"}
	case UploadDeductions:
		return []string{"Id Number", "Name", "Deduction Type", "Amount", "Remarks"}
	case UploadAllowances:
		return []string{"Id Number", "Name", "Allowance Type", "Amount", "Remarks"}
	case UploadSavings:
		return []string{"Id Number", "Name", "Savings Type", "Amount", "Remarks"}
	case UploadOJTRates:
		return []string{"Id Number", "Name", "Rate", "Remarks"}
	case UploadPayslips:
		return []string{"Id Number", "Name", "Period", "Remarks"}
	default:
		return []string{"Id Number", "Name", "Remarks"}
	}
}

// AllUploadTypes lists the supported bulk upload types.
func AllUploadTypes() []UploadType {
	return []UploadType{
		UploadLoans,
		UploadDeductions,
		UploadAllowances,
		UploadSavings,
		UploadOJTRates,
		UploadPayslips,
		UploadPrincipalBalance,
	}
}
