package table

import "github.com/ariefcatur/go-product-table.git/internal/products"

type Mode string

const (
	ModeIdle     Mode = "idle"
	ModeCreating Mode = "creating"
	ModeEditing  Mode = "editing"
)

// EditBuffer is the draft of the one product being created or edited. It is
// reset to zero values whenever the dialog closes; stale fields must never
// leak into the next open.
type EditBuffer struct {
	Mode         Mode
	ActionItemID int64 // id of the row being edited; 0 while creating

	Name     string
	Price    float64
	Category string
	Quantity int
	Status   products.StatusOption
	Rating   int
}

func (b *EditBuffer) OpenForCreate() {
	b.Reset()
	b.Mode = ModeCreating
}

// OpenForEdit copies every field from p and resolves the raw status code to
// its full option so the selector pre-selects it. Unknown codes leave the
// zero option.
func (b *EditBuffer) OpenForEdit(p products.Product) {
	b.Reset()
	b.Mode = ModeEditing
	b.ActionItemID = p.ID
	b.Name = p.Name
	b.Price = p.Price
	b.Category = p.Category
	b.Quantity = p.Quantity
	b.Status, _ = products.OptionFor(p.Status)
	b.Rating = p.Rating
}

func (b *EditBuffer) Reset() {
	*b = EditBuffer{Mode: ModeIdle}
}

func (b *EditBuffer) SetName(v string)                  { b.Name = v }
func (b *EditBuffer) SetPrice(v float64)                { b.Price = v }
func (b *EditBuffer) SetCategory(v string)              { b.Category = v }
func (b *EditBuffer) SetQuantity(v int)                 { b.Quantity = v }
func (b *EditBuffer) SetStatus(v products.StatusOption) { b.Status = v }
func (b *EditBuffer) SetRating(v int)                   { b.Rating = v }

// submission builds the record sent to the repository, status reduced back to
// its code.
func (b *EditBuffer) submission() products.Product {
	return products.Product{
		ID:       b.ActionItemID,
		Name:     b.Name,
		Price:    b.Price,
		Category: b.Category,
		Quantity: b.Quantity,
		Status:   b.Status.Code,
		Rating:   b.Rating,
	}
}
