// Package commands contains the use cases that change stored orders or issue
// credentials. Every command is a value object built by its New... function and
// handled by a matching ...Handler: validate, open a unit of work when more than
// one store call is involved, persist.
package commands

import (
	"context"

	"artisan/internal/core/ports"
)

type (
	// TxManager handles the transaction lifecycle of a unit of work.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides the order repository bound to the current transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// OrderUoW groups order repository calls into one transaction.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   repo := uow.OrderRepository()
	//   // ... read, mutate, write
	//
	//   err = uow.Commit(ctx)
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates a fresh OrderUoW per handled command.
	OrderUoWFactory interface {
		Create() OrderUoW
	}
)
