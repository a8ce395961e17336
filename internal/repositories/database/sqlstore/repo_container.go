package sqlstore

import (
	portsrepo "github.com/SscSPs/pvs_ledger/internal/core/ports/repositories"
)

// NewRepositoryProvider wires every repository to one store.
func NewRepositoryProvider(store *Store) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		AccountRepo: newSQLAccountRepository(store),
		PeriodRepo:  newSQLPeriodRepository(store),
		DayBookRepo: newSQLDayBookRepository(store),
		JournalRepo: newSQLJournalRepository(store),
		ConfigRepo:  newSQLConfigRepository(store),
	}
}
