package http

import "time"

// Request and response bodies for the marketplace API. Monetary amounts are
// integer minor units throughout, matching the domain's Money type.

type RegisterCompanyRequest struct {
	UserID string `json:"user_id"`
	Name   string `json:"name"`
	Role   string `json:"role"`
}

type CreateProjectRequest struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Location    string     `json:"location"`
	BudgetMin   *int64     `json:"budget_min"`
	BudgetMax   *int64     `json:"budget_max"`
	Specialty   string     `json:"specialty"`
	Deadline    *time.Time `json:"deadline"`
}

type UpdateProjectRequest = CreateProjectRequest

type UpdateProjectStatusRequest struct {
	Status string `json:"status"`
}

type SubmitQuoteRequest struct {
	Amount        int64  `json:"amount"`
	Message       string `json:"message"`
	EstimatedDays *int   `json:"estimated_days"`
}

type CreateDirectOrderRequest struct {
	SubcontractorCompanyID string     `json:"subcontractor_company_id"`
	Title                  string     `json:"title"`
	Description            string     `json:"description"`
	Location               string     `json:"location"`
	Amount                 int64      `json:"amount"`
	Deadline               *time.Time `json:"deadline"`
	Specialty              string     `json:"specialty"`
}

type DeclineDirectOrderRequest struct {
	Reason string `json:"reason"`
}

type CreateReviewRequest struct {
	OrderID string `json:"order_id"`
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

// CreatedResponse returns the identifier of a newly created resource.
type CreatedResponse struct {
	ID string `json:"id"`
}

type OpenProjectResponse struct {
	ID         string     `json:"id"`
	CompanyID  string     `json:"company_id"`
	Title      string     `json:"title"`
	Location   string     `json:"location"`
	Specialty  string     `json:"specialty"`
	BudgetMin  *int64     `json:"budget_min"`
	BudgetMax  *int64     `json:"budget_max"`
	Deadline   *time.Time `json:"deadline"`
	QuoteCount int64      `json:"quote_count"`
}

type CompanyReviewsResponse struct {
	CompanyID     string           `json:"company_id"`
	AverageRating *float64         `json:"average_rating"`
	Reviews       []ReviewResponse `json:"reviews"`
}

type ReviewResponse struct {
	ID                string `json:"id"`
	OrderID           string `json:"order_id"`
	ReviewerCompanyID string `json:"reviewer_company_id"`
	ReviewerName      string `json:"reviewer_name"`
	Rating            int    `json:"rating"`
	Comment           string `json:"comment"`
}

type MailboxResponse struct {
	UnreadCount   int64                  `json:"unread_count"`
	Notifications []NotificationResponse `json:"notifications"`
}

type NotificationResponse struct {
	ID          string    `json:"id"`
	Type        string    `json:"type"`
	Title       string    `json:"title"`
	Message     string    `json:"message"`
	IsRead      bool      `json:"is_read"`
	ReferenceID *string   `json:"reference_id"`
	CreatedAt   time.Time `json:"created_at"`
}
