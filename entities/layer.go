package entities

import "github.com/sveg/paintercore/id"

// Layer points at the Composite operation that blends its contents
// with whatever lies beneath it in the stack (spec §3).
type Layer struct {
	Name             string
	BlendOperationId id.Id[id.Operation]
}
