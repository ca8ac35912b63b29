package Trees

import "github.com/pingcap/errors"

// tree errors
var (
	ErrInvalidArgument         = errors.Normalize("invalid argument: %s", errors.RFCCodeText("BST:tree:ErrInvalidArgument"))
	ErrNotComparable           = errors.Normalize("elements of type %T are not comparable, no comparator given", errors.RFCCodeText("BST:tree:ErrNotComparable"))
	ErrNotFound                = errors.Normalize("element %v not found", errors.RFCCodeText("BST:tree:ErrNotFound"))
	ErrCapacityExceeded        = errors.Normalize("tree can't hold more than %d elements", errors.RFCCodeText("BST:tree:ErrCapacityExceeded"))
	ErrStructuralInconsistency = errors.Normalize("tree is corrupt: %s", errors.RFCCodeText("BST:tree:ErrStructuralInconsistency"))
)
