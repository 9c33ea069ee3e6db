package exhaust

// Nullability declares which absent states a table must handle.
type Nullability uint8

const (
	Strict            Nullability = 0
	OrNull            Nullability = 1
	OrUndefined       Nullability = 2
	OrNullOrUndefined             = OrNull | OrUndefined
)

// AdmitsNull reports whether a null entry is required.
func (n Nullability) AdmitsNull() bool { return n&OrNull != 0 }

// AdmitsUndefined reports whether an undefined entry is required.
func (n Nullability) AdmitsUndefined() bool { return n&OrUndefined != 0 }

func (n Nullability) String() string {
	switch n {
	case Strict:
		return "strict"
	case OrNull:
		return "or null"
	case OrUndefined:
		return "or undefined"
	case OrNullOrUndefined:
		return "or null or undefined"
	default:
		return "invalid"
	}
}
