// Package http exposes the marketplace workflows over a REST API. Caller
// identity arrives in the X-Company-ID header (company-scoped operations) or
// the X-User-ID header (mailbox operations); the authenticating gateway in
// front of this service is responsible for setting them.
package http

import (
	"net/http"

	"buildmarket/internal/core/application/usecases/commands"
	"buildmarket/internal/core/application/usecases/queries"
	"buildmarket/internal/core/domain/model/company"
	"buildmarket/internal/core/domain/model/kernel"
	"buildmarket/internal/core/domain/model/project"
	"buildmarket/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

const (
	headerCompanyID = "X-Company-ID"
	headerUserID    = "X-User-ID"
)

// Commands bundles every command handler the server dispatches to.
type Commands struct {
	RegisterCompany          commands.RegisterCompanyCommandHandler
	CreateProject            commands.CreateProjectCommandHandler
	UpdateProject            commands.UpdateProjectCommandHandler
	UpdateProjectStatus      commands.UpdateProjectStatusCommandHandler
	SubmitQuote              commands.SubmitQuoteCommandHandler
	WithdrawQuote            commands.WithdrawQuoteCommandHandler
	AcceptQuote              commands.AcceptQuoteCommandHandler
	RejectQuote              commands.RejectQuoteCommandHandler
	CreateDirectOrder        commands.CreateDirectOrderCommandHandler
	AcceptDirectOrder        commands.AcceptDirectOrderCommandHandler
	DeclineDirectOrder       commands.DeclineDirectOrderCommandHandler
	StartDirectOrder         commands.StartDirectOrderCommandHandler
	CompleteDirectOrder      commands.CompleteDirectOrderCommandHandler
	CancelDirectOrder        commands.CancelDirectOrderCommandHandler
	CompleteOrder            commands.CompleteOrderCommandHandler
	CreateReview             commands.CreateReviewCommandHandler
	MarkNotificationRead     commands.MarkNotificationReadCommandHandler
	MarkAllNotificationsRead commands.MarkAllNotificationsReadCommandHandler
}

// Queries bundles every query handler the server dispatches to.
type Queries struct {
	GetOpenProjects   queries.GetOpenProjectsQueryHandler
	GetCompanyReviews queries.GetCompanyReviewsQueryHandler
	GetNotifications  queries.GetNotificationsQueryHandler
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	commands Commands
	queries  Queries
}

// NewServer creates a new HTTP server with the required handlers.
func NewServer(cmds Commands, qrs Queries) *Server {
	return &Server{
		commands: cmds,
		queries:  qrs,
	}
}

// RegisterRoutes mounts all marketplace endpoints on the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/companies", s.RegisterCompany)
	api.GET("/companies/:id/reviews", s.GetCompanyReviews)

	api.POST("/projects", s.CreateProject)
	api.GET("/projects/open", s.GetOpenProjects)
	api.PUT("/projects/:id", s.UpdateProject)
	api.PUT("/projects/:id/status", s.UpdateProjectStatus)
	api.POST("/projects/:id/quotes", s.SubmitQuote)

	api.POST("/quotes/:id/accept", s.AcceptQuote)
	api.POST("/quotes/:id/reject", s.RejectQuote)
	api.POST("/quotes/:id/withdraw", s.WithdrawQuote)

	api.POST("/orders/:id/complete", s.CompleteOrder)

	api.POST("/direct-orders", s.CreateDirectOrder)
	api.POST("/direct-orders/:id/accept", s.AcceptDirectOrder)
	api.POST("/direct-orders/:id/decline", s.DeclineDirectOrder)
	api.POST("/direct-orders/:id/start", s.StartDirectOrder)
	api.POST("/direct-orders/:id/complete", s.CompleteDirectOrder)
	api.POST("/direct-orders/:id/cancel", s.CancelDirectOrder)

	api.POST("/reviews", s.CreateReview)

	api.GET("/notifications", s.GetNotifications)
	api.POST("/notifications/:id/read", s.MarkNotificationRead)
	api.POST("/notifications/read-all", s.MarkAllNotificationsRead)
}

func parseID(paramName, raw string) (kernel.UUID, error) {
	id, err := kernel.UUIDFromString(raw)
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause(paramName, err)
	}
	return id, nil
}

func callerCompanyID(ctx echo.Context) (kernel.UUID, error) {
	return parseID(headerCompanyID, ctx.Request().Header.Get(headerCompanyID))
}

func callerUserID(ctx echo.Context) (kernel.UUID, error) {
	return parseID(headerUserID, ctx.Request().Header.Get(headerUserID))
}

func pathID(ctx echo.Context) (kernel.UUID, error) {
	return parseID("id", ctx.Param("id"))
}

func optionalMoney(amount *int64) (*kernel.Money, error) {
	if amount == nil {
		return nil, nil
	}
	m, err := kernel.NewMoney(*amount)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// RegisterCompany handles POST /api/v1/companies.
func (s *Server) RegisterCompany(ctx echo.Context) error {
	var req RegisterCompanyRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	userID, err := parseID("user_id", req.UserID)
	if err != nil {
		return respondError(ctx, err)
	}
	role, err := company.RoleFromString(req.Role)
	if err != nil {
		return respondError(ctx, err)
	}

	companyID := kernel.NewUUID()
	cmd, err := commands.NewRegisterCompanyCommand(companyID, userID, req.Name, role)
	if err != nil {
		return respondError(ctx, err)
	}
	if err = s.commands.RegisterCompany.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: companyID.String()})
}

// CreateProject handles POST /api/v1/projects.
func (s *Server) CreateProject(ctx echo.Context) error {
	companyID, err := callerCompanyID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	var req CreateProjectRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	budgetMin, err := optionalMoney(req.BudgetMin)
	if err != nil {
		return respondError(ctx, err)
	}
	budgetMax, err := optionalMoney(req.BudgetMax)
	if err != nil {
		return respondError(ctx, err)
	}

	projectID := kernel.NewUUID()
	cmd, err := commands.NewCreateProjectCommand(
		projectID, companyID,
		req.Title, req.Description, req.Location,
		budgetMin, budgetMax, req.Specialty, req.Deadline,
	)
	if err != nil {
		return respondError(ctx, err)
	}
	if err = s.commands.CreateProject.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: projectID.String()})
}

// UpdateProject handles PUT /api/v1/projects/:id.
func (s *Server) UpdateProject(ctx echo.Context) error {
	companyID, err := callerCompanyID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}
	projectID, err := pathID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	var req UpdateProjectRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	budgetMin, err := optionalMoney(req.BudgetMin)
	if err != nil {
		return respondError(ctx, err)
	}
	budgetMax, err := optionalMoney(req.BudgetMax)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewUpdateProjectCommand(
		projectID, companyID,
		req.Title, req.Description, req.Location,
		budgetMin, budgetMax, req.Specialty, req.Deadline,
	)
	if err != nil {
		return respondError(ctx, err)
	}
	if err = s.commands.UpdateProject.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// UpdateProjectStatus handles PUT /api/v1/projects/:id/status.
func (s *Server) UpdateProjectStatus(ctx echo.Context) error {
	companyID, err := callerCompanyID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}
	projectID, err := pathID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	var req UpdateProjectStatusRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	target, err := project.StatusFromString(req.Status)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewUpdateProjectStatusCommand(projectID, companyID, target)
	if err != nil {
		return respondError(ctx, err)
	}
	if err = s.commands.UpdateProjectStatus.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// SubmitQuote handles POST /api/v1/projects/:id/quotes.
func (s *Server) SubmitQuote(ctx echo.Context) error {
	companyID, err := callerCompanyID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}
	projectID, err := pathID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	var req SubmitQuoteRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	amount, err := kernel.NewMoney(req.Amount)
	if err != nil {
		return respondError(ctx, err)
	}

	quoteID := kernel.NewUUID()
	cmd, err := commands.NewSubmitQuoteCommand(
		quoteID, projectID, companyID, amount, req.Message, req.EstimatedDays,
	)
	if err != nil {
		return respondError(ctx, err)
	}
	if err = s.commands.SubmitQuote.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: quoteID.String()})
}

// AcceptQuote handles POST /api/v1/quotes/:id/accept.
func (s *Server) AcceptQuote(ctx echo.Context) error {
	companyID, err := callerCompanyID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}
	quoteID, err := pathID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewAcceptQuoteCommand(quoteID, companyID)
	if err != nil {
		return respondError(ctx, err)
	}
	if err = s.commands.AcceptQuote.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RejectQuote handles POST /api/v1/quotes/:id/reject.
func (s *Server) RejectQuote(ctx echo.Context) error {
	companyID, err := callerCompanyID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}
	quoteID, err := pathID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewRejectQuoteCommand(quoteID, companyID)
	if err != nil {
		return respondError(ctx, err)
	}
	if err = s.commands.RejectQuote.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// WithdrawQuote handles POST /api/v1/quotes/:id/withdraw.
func (s *Server) WithdrawQuote(ctx echo.Context) error {
	companyID, err := callerCompanyID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}
	quoteID, err := pathID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewWithdrawQuoteCommand(quoteID, companyID)
	if err != nil {
		return respondError(ctx, err)
	}
	if err = s.commands.WithdrawQuote.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CompleteOrder handles POST /api/v1/orders/:id/complete.
func (s *Server) CompleteOrder(ctx echo.Context) error {
	companyID, err := callerCompanyID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}
	orderID, err := pathID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewCompleteOrderCommand(orderID, companyID)
	if err != nil {
		return respondError(ctx, err)
	}
	if err = s.commands.CompleteOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CreateDirectOrder handles POST /api/v1/direct-orders.
func (s *Server) CreateDirectOrder(ctx echo.Context) error {
	companyID, err := callerCompanyID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	var req CreateDirectOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	subcontractorID, err := parseID("subcontractor_company_id", req.SubcontractorCompanyID)
	if err != nil {
		return respondError(ctx, err)
	}
	amount, err := kernel.NewMoney(req.Amount)
	if err != nil {
		return respondError(ctx, err)
	}

	directOrderID := kernel.NewUUID()
	cmd, err := commands.NewCreateDirectOrderCommand(
		directOrderID, companyID, subcontractorID,
		req.Title, req.Description, req.Location,
		amount, req.Deadline, req.Specialty,
	)
	if err != nil {
		return respondError(ctx, err)
	}
	if err = s.commands.CreateDirectOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: directOrderID.String()})
}

// AcceptDirectOrder handles POST /api/v1/direct-orders/:id/accept.
func (s *Server) AcceptDirectOrder(ctx echo.Context) error {
	companyID, err := callerCompanyID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}
	directOrderID, err := pathID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewAcceptDirectOrderCommand(directOrderID, companyID)
	if err != nil {
		return respondError(ctx, err)
	}
	if err = s.commands.AcceptDirectOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeclineDirectOrder handles POST /api/v1/direct-orders/:id/decline.
func (s *Server) DeclineDirectOrder(ctx echo.Context) error {
	companyID, err := callerCompanyID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}
	directOrderID, err := pathID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	var req DeclineDirectOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewDeclineDirectOrderCommand(directOrderID, companyID, req.Reason)
	if err != nil {
		return respondError(ctx, err)
	}
	if err = s.commands.DeclineDirectOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// StartDirectOrder handles POST /api/v1/direct-orders/:id/start.
func (s *Server) StartDirectOrder(ctx echo.Context) error {
	companyID, err := callerCompanyID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}
	directOrderID, err := pathID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewStartDirectOrderCommand(directOrderID, companyID)
	if err != nil {
		return respondError(ctx, err)
	}
	if err = s.commands.StartDirectOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CompleteDirectOrder handles POST /api/v1/direct-orders/:id/complete.
func (s *Server) CompleteDirectOrder(ctx echo.Context) error {
	companyID, err := callerCompanyID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}
	directOrderID, err := pathID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewCompleteDirectOrderCommand(directOrderID, companyID)
	if err != nil {
		return respondError(ctx, err)
	}
	if err = s.commands.CompleteDirectOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CancelDirectOrder handles POST /api/v1/direct-orders/:id/cancel.
func (s *Server) CancelDirectOrder(ctx echo.Context) error {
	companyID, err := callerCompanyID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}
	directOrderID, err := pathID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewCancelDirectOrderCommand(directOrderID, companyID)
	if err != nil {
		return respondError(ctx, err)
	}
	if err = s.commands.CancelDirectOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CreateReview handles POST /api/v1/reviews.
func (s *Server) CreateReview(ctx echo.Context) error {
	companyID, err := callerCompanyID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	var req CreateReviewRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	orderID, err := parseID("order_id", req.OrderID)
	if err != nil {
		return respondError(ctx, err)
	}

	reviewID := kernel.NewUUID()
	cmd, err := commands.NewCreateReviewCommand(reviewID, orderID, companyID, req.Rating, req.Comment)
	if err != nil {
		return respondError(ctx, err)
	}
	if err = s.commands.CreateReview.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: reviewID.String()})
}

// MarkNotificationRead handles POST /api/v1/notifications/:id/read.
func (s *Server) MarkNotificationRead(ctx echo.Context) error {
	userID, err := callerUserID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}
	notificationID, err := pathID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewMarkNotificationReadCommand(notificationID, userID)
	if err != nil {
		return respondError(ctx, err)
	}
	if err = s.commands.MarkNotificationRead.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// MarkAllNotificationsRead handles POST /api/v1/notifications/read-all.
func (s *Server) MarkAllNotificationsRead(ctx echo.Context) error {
	userID, err := callerUserID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewMarkAllNotificationsReadCommand(userID)
	if err != nil {
		return respondError(ctx, err)
	}
	if err = s.commands.MarkAllNotificationsRead.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetOpenProjects handles GET /api/v1/projects/open.
func (s *Server) GetOpenProjects(ctx echo.Context) error {
	var params struct {
		Limit  int `query:"limit"`
		Offset int `query:"offset"`
	}
	if err := ctx.Bind(&params); err != nil {
		return badRequest(ctx, "invalid query parameters")
	}

	query, err := queries.NewGetOpenProjectsQuery(params.Limit, params.Offset)
	if err != nil {
		return respondError(ctx, err)
	}

	projects, err := s.queries.GetOpenProjects.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]OpenProjectResponse, len(projects))
	for i, p := range projects {
		response[i] = OpenProjectResponse{
			ID:         p.ID.String(),
			CompanyID:  p.CompanyID.String(),
			Title:      p.Title,
			Location:   p.Location,
			Specialty:  p.Specialty,
			BudgetMin:  p.BudgetMin,
			BudgetMax:  p.BudgetMax,
			Deadline:   p.Deadline,
			QuoteCount: p.QuoteCount,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetCompanyReviews handles GET /api/v1/companies/:id/reviews.
func (s *Server) GetCompanyReviews(ctx echo.Context) error {
	companyID, err := pathID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetCompanyReviewsQuery(companyID)
	if err != nil {
		return respondError(ctx, err)
	}

	profile, err := s.queries.GetCompanyReviews.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := CompanyReviewsResponse{
		CompanyID:     profile.CompanyID.String(),
		AverageRating: profile.AverageRating,
		Reviews:       make([]ReviewResponse, len(profile.Reviews)),
	}
	for i, r := range profile.Reviews {
		response.Reviews[i] = ReviewResponse{
			ID:                r.ID.String(),
			OrderID:           r.OrderID.String(),
			ReviewerCompanyID: r.ReviewerCompanyID.String(),
			ReviewerName:      r.ReviewerName,
			Rating:            r.Rating,
			Comment:           r.Comment,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetNotifications handles GET /api/v1/notifications.
func (s *Server) GetNotifications(ctx echo.Context) error {
	userID, err := callerUserID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	unreadOnly := ctx.QueryParam("unread_only") == "true"
	query, err := queries.NewGetNotificationsQuery(userID, unreadOnly)
	if err != nil {
		return respondError(ctx, err)
	}

	mailbox, err := s.queries.GetNotifications.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := MailboxResponse{
		UnreadCount:   mailbox.UnreadCount,
		Notifications: make([]NotificationResponse, len(mailbox.Notifications)),
	}
	for i, n := range mailbox.Notifications {
		entry := NotificationResponse{
			ID:        n.ID.String(),
			Type:      n.Type,
			Title:     n.Title,
			Message:   n.Message,
			IsRead:    n.IsRead,
			CreatedAt: n.CreatedAt,
		}
		if n.ReferenceID != nil {
			ref := n.ReferenceID.String()
			entry.ReferenceID = &ref
		}
		response.Notifications[i] = entry
	}

	return ctx.JSON(http.StatusOK, response)
}
