package services

import (
	portsrepo "github.com/akale-dev/pf_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/akale-dev/pf_ledger_app/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly
// initialized dependencies. The store must still be initialized by the
// caller before the facade is handed to consumers.
func NewServiceContainer(repo portsrepo.SnapshotRepositoryFacade) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// The store is the single source of truth; the transfer engine and the
	// facade layer on top of it.
	container.Store = NewLedgerService(repo)
	container.Transfer = NewTransferService(container.Store)
	container.Ledger = NewLedgerFacade(container.Store, container.Transfer)

	return container
}
