package table

type GateState string

const (
	GateIdle     GateState = "idle"
	GateAwaiting GateState = "awaiting_confirmation"
)

const (
	promptHeader = "Deseja seguir?"
	promptSingle = "Você irá excluir o item selecionado"
	promptBulk   = "Você irá excluir os itens selecionados"
)

// DeleteTarget is what a pending confirmation guards: one id, or the whole
// current selection.
type DeleteTarget struct {
	Bulk bool
	ID   int64
}

// ConfirmationGate holds at most one pending deletion between "delete
// clicked" and confirm/cancel. A new request while awaiting overwrites the
// previous target; there is no queue.
type ConfirmationGate struct {
	state  GateState
	target DeleteTarget
}

// RequestDelete records the target and returns the prompt to display.
func (g *ConfirmationGate) RequestDelete(t DeleteTarget) string {
	g.state = GateAwaiting
	g.target = t
	if t.Bulk {
		return promptBulk
	}
	return promptSingle
}

func (g *ConfirmationGate) State() GateState {
	if g.state == "" {
		return GateIdle
	}
	return g.state
}

func (g *ConfirmationGate) Header() string { return promptHeader }

// resolve consumes the pending target, returning ok=false when nothing was
// awaiting. Both terminal edges (confirm and cancel) pass through here, so
// the gate can never stay awaiting after either.
func (g *ConfirmationGate) resolve() (DeleteTarget, bool) {
	if g.state != GateAwaiting {
		return DeleteTarget{}, false
	}
	t := g.target
	g.state = GateIdle
	g.target = DeleteTarget{}
	return t, true
}
