// Package identity abstracts the external identity subsystem that maps
// actors to role names. The engine only ever needs this mapping function;
// how the surrounding application resolves roles (database, directory,
// token claims) stays behind this interface.
package identity

import "context"

// Resolver resolves the role names assigned to an actor.
//
// Failures must never widen access: callers treat a resolution error as an
// empty role set.
type Resolver interface {
	GetRoleNames(ctx context.Context, actorID string) ([]string, error)
}
