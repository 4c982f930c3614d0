package commands

import (
	"context"
	"errors"
	"fmt"
	"math"

	"buildmarket/internal/core/domain/model/notification"
	"buildmarket/internal/core/domain/model/order"
	"buildmarket/internal/core/domain/model/review"
	"buildmarket/internal/pkg/errs"
)

// CreateReviewCommandHandler handles review creation and the derived rating
// recomputation. The reviewee's company row is locked so two concurrent
// reviews of the same company serialize; the mean is recomputed from a fresh
// aggregate read inside the same transaction as the insert, so it always
// includes the just-written review.
type CreateReviewCommandHandler struct {
	uowFactory ReviewUoWFactory
}

// NewCreateReviewCommandHandler creates a handler for review creation.
func NewCreateReviewCommandHandler(uowFactory ReviewUoWFactory) CreateReviewCommandHandler {
	return CreateReviewCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the review command.
func (h *CreateReviewCommandHandler) Handle(ctx context.Context, cmd CreateReviewCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	reviewedOrder, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}
	if !reviewedOrder.IsParty(cmd.ReviewerCompanyID()) {
		return errs.NewOperationIsForbiddenErrorWithCause(
			"reviewerCompanyID",
			errors.New("only a party on the order can review it"),
		)
	}
	if reviewedOrder.Status() != order.StatusCompleted {
		return errs.NewValueIsInvalidErrorWithCause(
			"orderID",
			fmt.Errorf("order %s is not completed", reviewedOrder.ID()),
		)
	}

	revieweeCompanyID, err := reviewedOrder.Counterparty(cmd.ReviewerCompanyID())
	if err != nil {
		return err
	}

	reviewRepo := uow.ReviewRepository()
	if prior, err := reviewRepo.GetByOrderAndReviewer(ctx, cmd.OrderID(), cmd.ReviewerCompanyID()); err == nil {
		return errs.NewObjectAlreadyExistsError("review", prior.ID())
	} else if !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}

	newReview, err := review.NewReview(
		cmd.ReviewID(),
		cmd.OrderID(),
		cmd.ReviewerCompanyID(),
		revieweeCompanyID,
		cmd.Rating(),
		cmd.Comment(),
	)
	if err != nil {
		return err
	}
	if err = reviewRepo.Add(ctx, newReview); err != nil {
		return err
	}

	companyRepo := uow.CompanyRepository()
	reviewee, err := companyRepo.GetForUpdate(ctx, revieweeCompanyID)
	if err != nil {
		return err
	}

	avg, found, err := reviewRepo.AverageRatingByReviewee(ctx, revieweeCompanyID)
	if err != nil {
		return err
	}
	if !found {
		return fmt.Errorf("no reviews found for company %s after inserting one", revieweeCompanyID)
	}
	if err = reviewee.UpdateAverageRating(math.Round(avg*100) / 100); err != nil {
		return err
	}
	if err = companyRepo.Update(ctx, reviewee); err != nil {
		return err
	}

	if err = notify(
		ctx,
		uow.NotificationRepository(),
		reviewee.UserID(),
		notification.TypeReviewReceived,
		"New review",
		fmt.Sprintf("You received a %d star review", newReview.Rating()),
		newReview.ID(),
	); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
