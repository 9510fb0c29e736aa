// Package workflow implements the order composition session, the in-memory
// state of one order being created or edited through the customer → design →
// summary flow.
//
// The central type is Session. It holds the selected customer, the courier
// preference, the ordered list of committed item designs, and the composition
// slot: the single item design currently open in the design editor. The slot
// is a tagged variant (idle, composing a new item, or editing a committed
// item by index), so the editing index and the active design can never fall
// out of sync.
//
// A Session is owned by exactly one user session and mutated sequentially by
// that user's interactions. It performs no I/O and holds no locks; callers
// that share sessions across goroutines must synchronize externally.
//
// When a previously submitted order is reopened, LoadForEditing replaces the
// whole session state from the persisted order and records the originating
// order's identity so submission updates that order instead of creating a
// new one.
package workflow
