package model

// Kind selects one of the closed-form worm-like chain models.
type Kind int

const (
	// WLC is the inextensible Marko-Siggia interpolation formula.
	WLC Kind = iota
	// EWLC adds a stretch-modulus term to the normalized extension.
	EWLC
	// Bouchiat corrects WLC with a seventh-order polynomial in d/Lc.
	Bouchiat
	// EBouchiat applies the Bouchiat correction to the extensible
	// normalized extension.
	EBouchiat
	// Odijk predicts distance from force for stiff chains under tension.
	Odijk
)

// Kinds returns all model kinds in a stable order.
func Kinds() []Kind {
	return []Kind{WLC, EWLC, Bouchiat, EBouchiat, Odijk}
}

// ParseKind maps a model name to its Kind.
// Returns *UnknownKindError for names outside the model set.
func ParseKind(name string) (Kind, error) {
	switch name {
	case "WLC":
		return WLC, nil
	case "eWLC":
		return EWLC, nil
	case "bouchiat":
		return Bouchiat, nil
	case "ebouchiat":
		return EBouchiat, nil
	case "odijk":
		return Odijk, nil
	}
	return 0, &UnknownKindError{Name: name}
}

func (k Kind) String() string {
	switch k {
	case WLC:
		return "WLC"
	case EWLC:
		return "eWLC"
	case Bouchiat:
		return "bouchiat"
	case EBouchiat:
		return "ebouchiat"
	case Odijk:
		return "odijk"
	}
	return "unknown"
}

// NeedsStretch reports whether the model carries a stretch modulus S.
// The inextensible WLC and Bouchiat closed forms do without one.
func (k Kind) NeedsStretch() bool {
	return k == EWLC || k == EBouchiat || k == Odijk
}

// PredictsDistance reports whether the model's roles are reversed:
// force is the independent variable and distance is predicted.
func (k Kind) PredictsDistance() bool {
	return k == Odijk
}

// BindsPair reports whether the model consumes the full (distance, force)
// measurement pair instead of a single independent variable.
func (k Kind) BindsPair() bool {
	return k == EWLC || k == EBouchiat
}

// UnknownKindError is returned when a model name is not one of the
// enumerated set. Use errors.Is(err, &UnknownKindError{}) to check.
type UnknownKindError struct {
	Name string
}

func (e *UnknownKindError) Error() string {
	return "unknown model kind: " + e.Name
}

func (e *UnknownKindError) Is(target error) bool {
	_, ok := target.(*UnknownKindError)
	return ok
}
