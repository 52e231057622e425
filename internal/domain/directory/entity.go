package directory

// Row is one decoded row of the external staff_with_pi view. The view emits
// one row per (staff member, project membership) pair.
type Row struct {
	StaffEmpID    string
	StaffUsername string
	EmpClass      string
	ProjectID     string
	DeptName      string
	PIUsername    string
	PIFullName    string
}

// PI identifies a principal investigator in the directory.
type PI struct {
	Username string `json:"username"`
	FullName string `json:"fullName"`
}

// StaffProfile is one employee folded out of the directory rows: employee
// fields come from the first row encountered, Projects keeps row order.
type StaffProfile struct {
	EmployeeNumber string              `json:"employeeNumber"`
	Username       string              `json:"username"`
	EmpClass       string              `json:"empClass"`
	Projects       []ProjectAssignment `json:"projects"`
}

type ProjectAssignment struct {
	ProjectCode string `json:"projectCode"`
	Department  string `json:"department"`
}
