package api

type credentialsInput struct {
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

type employeeInput struct {
	Name     string `json:"name" form:"name"`
	Email    string `json:"email" form:"email"`
	Role     string `json:"role" form:"role"`
	Password string `json:"password" form:"password"`
}

type contractInput struct {
	Name        string `json:"name" form:"name"`
	StartDate   string `json:"start_date" form:"start_date"`
	EndDate     string `json:"end_date" form:"end_date"`
	EmployeeID  uint   `json:"employee_id" form:"employee_id"`
	ValidatorID uint   `json:"validator_id" form:"validator_id"`
}

type activityInput struct {
	Sequence    int    `json:"sequence" form:"sequence"`
	Description string `json:"description" form:"description"`
	ContractID  uint   `json:"contract_id" form:"contract_id"`
	Target      int    `json:"target" form:"target"`
}

type reportInput struct {
	ActivityID  uint   `json:"activity_id" form:"activity_id"`
	Actions     string `json:"actions" form:"actions"`
	Comments    string `json:"comments" form:"comments"`
	Percentage  int    `json:"percentage" form:"percentage"`
	Deliverable string `json:"deliverable" form:"deliverable"`
}

type reportStateInput struct {
	State int `json:"state" form:"state"`
}

type notificationInput struct {
	EmployeeID uint   `json:"employee_id" form:"employee_id"`
	Message    string `json:"message" form:"message"`
}
