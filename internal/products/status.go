package products

type StatusCode string

const (
	StatusIn  StatusCode = "in"
	StatusLow StatusCode = "low"
	StatusOut StatusCode = "out"
)

// Severity is the visual tier a status renders with (tag color).
type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityWarning Severity = "warning"
	SeverityDanger  Severity = "danger"
)

// StatusOption pairs a code with its display label, the shape a dropdown
// selector binds to.
type StatusOption struct {
	Name string     `json:"name"`
	Code StatusCode `json:"code"`
}

var statusOptions = []StatusOption{
	{Name: "Em Estoque", Code: StatusIn},
	{Name: "Baixo Estoque", Code: StatusLow},
	{Name: "Fora de Estoque", Code: StatusOut},
}

var statusSeverity = map[StatusCode]Severity{
	StatusIn:  SeveritySuccess,
	StatusLow: SeverityWarning,
	StatusOut: SeverityDanger,
}

// Options returns the closed set of selectable statuses, in display order.
func Options() []StatusOption {
	out := make([]StatusOption, len(statusOptions))
	copy(out, statusOptions)
	return out
}

// OptionFor resolves a raw code to its full option. Unknown codes return the
// zero option and false so display logic can degrade instead of panicking.
func OptionFor(code StatusCode) (StatusOption, bool) {
	for _, o := range statusOptions {
		if o.Code == code {
			return o, true
		}
	}
	return StatusOption{}, false
}

func (c StatusCode) Known() bool {
	_, ok := OptionFor(c)
	return ok
}

func (c StatusCode) Label() string {
	o, _ := OptionFor(c)
	return o.Name
}

// Severity returns "" for unknown codes.
func (c StatusCode) Severity() Severity {
	return statusSeverity[c]
}
