package monoidal

import "fmt"

// Law identifies a coherence obligation.
type Law string

const (
	LawTensorIdentity  Law = "tensor_identity"
	LawTensorCompose   Law = "tensor_compose"
	LawInterchange     Law = "interchange"
	LawAssociatorLeft  Law = "associator_iso_left"
	LawAssociatorRight Law = "associator_iso_right"
	LawAssociatorNat   Law = "associator_naturality"
	LawPentagon        Law = "pentagon"
	LawLeftUnitor      Law = "left_unitor_iso"
	LawRightUnitor     Law = "right_unitor_iso"
	LawTriangle        Law = "triangle"
)

// Obligation is one law checked at one index.
type Obligation[I comparable] struct {
	Law   Law
	Index I
	OK    bool
}

func (o Obligation[I]) String() string {
	status := "ok"
	if !o.OK {
		status = "FAIL"
	}
	return fmt.Sprintf("%s@%v: %s", o.Law, o.Index, status)
}

// Report is the outcome of one verification run.
type Report[I comparable] struct {
	RunID       string
	Obligations []Obligation[I]
}

// OK reports whether every obligation held.
func (r *Report[I]) OK() bool {
	for _, o := range r.Obligations {
		if !o.OK {
			return false
		}
	}
	return true
}

// Failed returns the obligations that did not hold.
func (r *Report[I]) Failed() []Obligation[I] {
	var out []Obligation[I]
	for _, o := range r.Obligations {
		if !o.OK {
			out = append(out, o)
		}
	}
	return out
}
