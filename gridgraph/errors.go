package gridgraph

import "errors"

var (
	// ErrNilGrid indicates NewGridGraph received a nil *occupancy.Grid.
	ErrNilGrid = errors.New("gridgraph: grid is nil")
	// ErrConnectivity indicates an unsupported connectivity degree.
	ErrConnectivity = errors.New("gridgraph: connectivity must be 4 or 8")
)
