package form

import (
	"context"
	"time"

	"go.uber.org/zap"

	"financebook/internal/logger"
	"financebook/internal/models"
)

// Routes the form navigates to.
const (
	RouteHome       = "/"
	RouteAddSuccess = "/add-success"
	RouteSummary    = "/summary"
)

// SuccessRedirectDelay is how long the success page waits before going home.
const SuccessRedirectDelay = 2500 * time.Millisecond

// User-facing saga messages.
const (
	MsgSubmitFailed        = "Failed to submit payment. Please try again."
	MsgCreatedUploadFailed = "Payment created successfully, but failed to upload invoice. You can upload it later by editing the payment."
	MsgUpdatedUploadFailed = "Payment updated successfully, but failed to upload invoice. You can try uploading it again."
)

// Status is the terminal state of a submission.
type Status int

const (
	// StatusInvalid means validation stopped the submission before any call.
	StatusInvalid Status = iota + 1
	// StatusFailed means the create/update call failed; nothing was saved.
	StatusFailed
	// StatusPartial means the item was saved but the invoice upload failed.
	StatusPartial
	// StatusSucceeded means every step succeeded.
	StatusSucceeded
)

func (s Status) String() string {
	switch s {
	case StatusInvalid:
		return "invalid"
	case StatusFailed:
		return "failed"
	case StatusPartial:
		return "partial"
	case StatusSucceeded:
		return "succeeded"
	}
	return "unknown"
}

// Outcome reports how a submission ended. Item is set whenever the item
// was saved, including on partial failure, so the upload can be retried.
type Outcome struct {
	Status  Status
	Item    *models.PaymentItem
	Message string
	Route   string
	Err     error
}

// SubmitAPI is what the saga calls, in order.
type SubmitAPI interface {
	CreatePaymentItem(ctx context.Context, in models.PaymentItemInput) (*models.PaymentItem, error)
	UpdatePaymentItem(ctx context.Context, id uint, in models.PaymentItemInput) (*models.PaymentItem, error)
	UploadInvoice(ctx context.Context, paymentItemID uint, filename string, data []byte) (*models.PaymentItem, error)
}

// Saga submits a draft and then, if a file is staged, uploads it. The
// upload only starts after the item is saved; its failure never rolls
// the item back.
type Saga struct {
	api      SubmitAPI
	progress Simulator
	now      func() time.Time
	log      *zap.SugaredLogger
}

// NewSaga creates a saga with the default progress simulator.
func NewSaga(api SubmitAPI) *Saga {
	return &Saga{api: api, progress: DefaultSimulator(), now: time.Now, log: logger.Named("form")}
}

// WithSimulator overrides the progress simulator.
func (s *Saga) WithSimulator(sim Simulator) *Saga {
	s.progress = sim
	return s
}

// Run executes the saga for d. onProgress receives simulated upload
// progress and may be nil.
func (s *Saga) Run(ctx context.Context, d Draft, att *Attachment, onProgress ProgressFunc) Outcome {
	in, err := d.ToSubmission(s.now())
	if err != nil {
		return Outcome{Status: StatusInvalid, Message: err.Error(), Err: err}
	}

	var item *models.PaymentItem
	if d.IsEdit() {
		item, err = s.api.UpdatePaymentItem(ctx, *d.ID, in)
	} else {
		item, err = s.api.CreatePaymentItem(ctx, in)
	}
	if err != nil {
		s.log.Errorw("submitting payment item", "edit", d.IsEdit(), "error", err)
		return Outcome{Status: StatusFailed, Message: MsgSubmitFailed, Err: err}
	}

	if att != nil {
		run := s.progress.Start(ctx, onProgress)
		uploaded, err := s.api.UploadInvoice(ctx, item.ID, att.Name, att.Data)
		run.Finish(err == nil)
		if err != nil {
			s.log.Warnw("invoice upload failed after save", "payment_item_id", item.ID, "error", err)
			msg := MsgCreatedUploadFailed
			if d.IsEdit() {
				msg = MsgUpdatedUploadFailed
			}
			return Outcome{Status: StatusPartial, Item: item, Message: msg, Err: err}
		}
		item = uploaded
	}

	route := RouteAddSuccess
	if d.IsEdit() {
		route = RouteSummary
	}
	return Outcome{Status: StatusSucceeded, Item: item, Route: route}
}

// AwaitRedirect blocks on the success page until the delay passes or the
// user acknowledges, then returns the home route. A cancelled context
// returns "".
func AwaitRedirect(ctx context.Context, delay time.Duration, ack <-chan struct{}) string {
	timer := time.NewTimer(delay)
	defer timer.Stop()

	select {
	case <-timer.C:
		return RouteHome
	case <-ack:
		return RouteHome
	case <-ctx.Done():
		return ""
	}
}
