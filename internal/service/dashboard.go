package service

import (
	"context"
	"fmt"
	"net/url"
	"sync"
	"time"

	"github.com/Ptxer/Ticket/internal/classify"
	"github.com/Ptxer/Ticket/internal/domain"
	"github.com/Ptxer/Ticket/internal/paginate"
	"github.com/Ptxer/Ticket/internal/snapshot"
)

// Bucket names the two dashboard views.
type Bucket string

const (
	BucketActive   Bucket = "active"
	BucketFinished Bucket = "finished"
)

func ParseBucket(s string) (Bucket, error) {
	switch Bucket(s) {
	case BucketActive, BucketFinished:
		return Bucket(s), nil
	}
	return "", fmt.Errorf("unknown bucket %q", s)
}

// Deleter issues the remote delete.
type Deleter interface {
	DeleteTicket(ctx context.Context, id string) error
}

// ErrState is the shared latest-error banner (the poller owns it; deletes
// write through the same state).
type ErrState interface {
	Err() error
	SetErr(err error)
}

// Dashboard is the consumption contract for the presentation layer:
// paginated bucket views over the live snapshot, navigation targets, and
// the write-through delete gateway.
type Dashboard struct {
	store   *snapshot.Store
	deleter Deleter
	errs    ErrState
	pager   paginate.Pager[domain.Ticket]
	now     func() time.Time

	mu       sync.Mutex
	pages    map[Bucket]int
	onDelete []func(id string)
}

func New(store *snapshot.Store, deleter Deleter, errs ErrState, pageSize int) *Dashboard {
	return &Dashboard{
		store:   store,
		deleter: deleter,
		errs:    errs,
		pager:   paginate.New[domain.Ticket](pageSize),
		now:     time.Now,
		pages:   map[Bucket]int{BucketActive: 1, BucketFinished: 1},
	}
}

// OnDelete registers a hook fired after each confirmed delete.
func (d *Dashboard) OnDelete(fn func(id string)) {
	d.onDelete = append(d.onDelete, fn)
}

// Page classifies the current snapshot at now and returns the requested
// page of the bucket plus the bucket's total page count. An out-of-range
// page yields an empty slice; the current page is not clamped when the
// bucket shrinks.
func (d *Dashboard) Page(bucket Bucket, page int) ([]domain.Ticket, int) {
	items := d.bucketItems(bucket)
	return d.pager.Page(items, page), d.pager.TotalPages(len(items))
}

// CurrentPage returns the tracked page of a bucket; each bucket's page
// state is independent.
func (d *Dashboard) CurrentPage(bucket Bucket) int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.pages[bucket]
}

func (d *Dashboard) SetPage(bucket Bucket, page int) {
	if page < 1 {
		page = 1
	}
	d.mu.Lock()
	d.pages[bucket] = page
	d.mu.Unlock()
}

func (d *Dashboard) bucketItems(bucket Bucket) []domain.Ticket {
	b := classify.Classify(d.store.Tickets(), d.now())
	if bucket == BucketActive {
		return b.Active
	}
	return b.Finished
}

// Delete removes a ticket: remote first, local only after the remote call
// confirmed. A failed delete leaves the snapshot untouched and raises the
// error banner.
func (d *Dashboard) Delete(ctx context.Context, id string) error {
	if id == "" {
		return domain.ErrMissingID
	}
	if err := d.deleter.DeleteTicket(ctx, id); err != nil {
		d.errs.SetErr(err)
		return err
	}
	d.store.Remove(id)
	d.errs.SetErr(nil)
	for _, fn := range d.onDelete {
		fn(id)
	}
	return nil
}

// Find looks up a ticket in the current snapshot.
func (d *Dashboard) Find(id string) (domain.Ticket, bool) {
	return d.store.Find(id)
}

// Err surfaces the most recent operation failure, nil when the latest
// operation succeeded.
func (d *Dashboard) Err() error {
	return d.errs.Err()
}

// NavigationURL builds the follow-up screen target for a ticket, with the
// display fallbacks applied and everything url-encoded.
func (d *Dashboard) NavigationURL(t domain.Ticket) (string, error) {
	if err := t.Validate(); err != nil {
		return "", err
	}
	q := url.Values{}
	q.Set("patientrecord_id", t.ID)
	q.Set("patient_name", t.DisplayName())
	q.Set("patient_id", t.DisplayPatientID())
	q.Set("datetime", t.Datetime.Format(time.RFC3339))
	q.Set("symptoms", t.Symptoms())
	q.Set("other_symptom", t.OtherSymptomText())
	return "/ticket/" + url.PathEscape(t.ID) + "?" + q.Encode(), nil
}
