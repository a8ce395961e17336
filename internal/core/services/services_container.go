package services

import (
	portsrepo "github.com/SscSPs/pvs_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/pvs_ledger/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Account = NewAccountService(repos.AccountRepo)
	container.Period = NewPeriodService(repos.PeriodRepo)
	// Day books depend on periods existing and on the config row for the current day book
	container.DayBook = NewDayBookService(repos.DayBookRepo, repos.PeriodRepo, repos.ConfigRepo)
	container.Journal = NewJournalService(repos.JournalRepo, container.Account, container.DayBook)

	return container
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.AccountSvcFacade = (*accountService)(nil)
	_ portssvc.PeriodSvcFacade  = (*periodService)(nil)
	_ portssvc.DayBookSvcFacade = (*dayBookService)(nil)
)
