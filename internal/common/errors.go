package common

import "errors"

// Kind tags which taxonomy an error belongs to.
type Kind string

const (
	KindUnknown  Kind = ""
	KindParse    Kind = "parse"
	KindCheckout Kind = "checkout"
)

// Kinded is implemented by the typed errors of the catalog and checkout packages.
type Kinded interface {
	error
	Kind() Kind
}

// KindOf reports the kind of the first Kinded error in err's chain.
func KindOf(err error) Kind {
	var target Kinded
	if errors.As(err, &target) {
		return target.Kind()
	}
	return KindUnknown
}

// IsKind checks whether err carries the provided kind.
func IsKind(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}
