package table

import (
	"context"

	"github.com/ariefcatur/go-product-table.git/internal/products"
)

const (
	toastDoneSummary   = "Ação Finalizada"
	toastDoneDetail    = "Os itens foram excluidos com sucesso"
	toastCancelSummary = "Ação Cancelada"
	toastCancelDetail  = "Você cancelou a ação de deleção"
	toastFailSummary   = "Falha na Ação"
)

// Orchestrator drives the table session against one Repository. Which
// variant it got (remote store, in-memory) is fixed at construction; the
// control flow never branches on it.
type Orchestrator struct {
	repo  products.Repository
	sess  *Session
	notes *Notifier
}

func New(repo products.Repository, sess *Session, notes *Notifier) *Orchestrator {
	return &Orchestrator{repo: repo, sess: sess, notes: notes}
}

func (o *Orchestrator) Session() *Session { return o.sess }

// Refresh replaces the collection with the store's view. Local optimistic
// state is never trusted after a successful mutation; the store may own
// derived fields.
func (o *Orchestrator) Refresh(ctx context.Context) error {
	items, err := o.repo.List(ctx)
	if err != nil {
		return err
	}
	o.sess.Items = items
	return nil
}

func (o *Orchestrator) OpenCreate() {
	o.sess.Buffer.OpenForCreate()
}

func (o *Orchestrator) OpenEdit(p products.Product) {
	o.sess.Buffer.OpenForEdit(p)
}

// Cancel dismisses the dialog and clears the draft.
func (o *Orchestrator) Cancel() {
	o.sess.Buffer.Reset()
}

// Submit is the dialog's single confirm affordance: it dispatches on the
// buffer mode, so callers never pick create vs update themselves.
func (o *Orchestrator) Submit(ctx context.Context) error {
	switch o.sess.Buffer.Mode {
	case ModeEditing:
		return o.updateProduct(ctx)
	case ModeCreating:
		return o.createProduct(ctx)
	default:
		return nil
	}
}

// createProduct persists the draft. On failure everything stays as it was —
// collection untouched, dialog still open for a retry — and a failure toast
// is published.
func (o *Orchestrator) createProduct(ctx context.Context) error {
	rec := o.sess.Buffer.submission()
	if _, err := o.repo.Create(ctx, rec); err != nil {
		o.notes.Publish(SeverityError, toastFailSummary, err.Error())
		return err
	}
	err := o.Refresh(ctx)
	o.sess.Buffer.Reset()
	return err
}

func (o *Orchestrator) updateProduct(ctx context.Context) error {
	rec := o.sess.Buffer.submission()
	if err := o.repo.Update(ctx, o.sess.Buffer.ActionItemID, rec); err != nil {
		o.notes.Publish(SeverityError, toastFailSummary, err.Error())
		return err
	}
	err := o.Refresh(ctx)
	o.sess.Buffer.Reset()
	return err
}

// RequestDelete arms the gate for one row and returns the prompt to show.
func (o *Orchestrator) RequestDelete(id int64) string {
	return o.sess.Gate.RequestDelete(DeleteTarget{ID: id})
}

// RequestBulkDelete arms the gate for the current selection.
func (o *Orchestrator) RequestBulkDelete() string {
	return o.sess.Gate.RequestDelete(DeleteTarget{Bulk: true})
}

// ConfirmDelete is the gate's accept edge: it executes the pending deletion
// and publishes the outcome. With nothing pending it does nothing.
func (o *Orchestrator) ConfirmDelete(ctx context.Context) error {
	target, ok := o.sess.Gate.resolve()
	if !ok {
		return nil
	}
	var err error
	if target.Bulk {
		err = o.bulkDelete(ctx)
	} else {
		err = o.deleteProduct(ctx, target.ID)
	}
	if err != nil {
		o.notes.Publish(SeverityError, toastFailSummary, err.Error())
		return err
	}
	o.notes.Publish(SeveritySuccess, toastDoneSummary, toastDoneDetail)
	return nil
}

// CancelDelete is the reject edge: nothing is deleted, the pending target is
// dropped.
func (o *Orchestrator) CancelDelete() {
	if _, ok := o.sess.Gate.resolve(); !ok {
		return
	}
	o.notes.Publish(SeverityWarn, toastCancelSummary, toastCancelDetail)
}

func (o *Orchestrator) deleteProduct(ctx context.Context, id int64) error {
	if err := o.repo.Delete(ctx, id); err != nil {
		return err
	}
	o.closeBufferFor(id)
	return o.Refresh(ctx)
}

// bulkDelete fans out over the selection and re-fetches once after every
// delete settled. Partial success is possible; the selection is cleared
// either way because the bulk action completed.
func (o *Orchestrator) bulkDelete(ctx context.Context) error {
	ids := make([]int64, len(o.sess.Selection))
	copy(ids, o.sess.Selection)

	err := o.repo.DeleteMany(ctx, ids)
	for _, id := range ids {
		o.closeBufferFor(id)
	}
	o.sess.ClearSelection()
	if rerr := o.Refresh(ctx); err == nil {
		err = rerr
	}
	return err
}

// closeBufferFor resets the draft only when the deleted row is the one being
// edited; an unrelated open dialog stays open.
func (o *Orchestrator) closeBufferFor(id int64) {
	if o.sess.Buffer.Mode == ModeEditing && o.sess.Buffer.ActionItemID == id {
		o.sess.Buffer.Reset()
	}
}
