package pnet

import "context"

type Getter[T Object] interface {
	Get(ctx context.Context, id string) (T, error)
}

type Lister[T Object] interface {
	List(ctx context.Context, selector Document) ([]T, error)
}

type Adder[T Object] interface {
	Add(ctx context.Context, o T) (T, error)
}

type Remover[T Object] interface {
	Remove(ctx context.Context, id string) (T, error)
}

// Store persists objects. Nets and reports are written once and never
// updated in place, so there is no updater.
type Store[T Object] interface {
	Getter[T]
	Lister[T]
	Adder[T]
	Remover[T]
}
