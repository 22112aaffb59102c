package table

import "github.com/ariefcatur/go-product-table.git/internal/products"

// Session is the explicit state one open table carries: the displayed
// collection, the edit draft, the checked rows, and the pending-deletion
// gate. All mutation happens on the UI goroutine; nothing here locks.
type Session struct {
	Items     []products.Product
	Buffer    EditBuffer
	Selection []int64
	Gate      ConfirmationGate
}

func NewSession() *Session {
	s := &Session{}
	s.Buffer.Reset()
	return s
}

// SetSelection replaces the checked-row set, keeping the order the grid
// reported.
func (s *Session) SetSelection(ids []int64) {
	s.Selection = append(s.Selection[:0], ids...)
}

func (s *Session) ClearSelection() {
	s.Selection = s.Selection[:0]
}

// Reset returns the whole session to its initial state.
func (s *Session) Reset() {
	s.Items = nil
	s.Buffer.Reset()
	s.ClearSelection()
	s.Gate = ConfirmationGate{}
}
