package venueservice

// Branch модель филиала из сервиса площадок
type Branch struct {
	ID        int64  `json:"id"`
	CompanyID int64  `json:"company_id"`
	Name      string `json:"name"`
	Timezone  string `json:"timezone"`
}

// Court модель корта из сервиса площадок
type Court struct {
	ID       int64  `json:"id"`
	BranchID int64  `json:"branch_id"`
	Name     string `json:"name"`
	Sport    string `json:"sport"`
	IsActive bool   `json:"is_active"`
}

// ErrorResponse модель ошибки от сервиса площадок
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
