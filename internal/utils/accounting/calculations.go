package accounting

import (
	"fmt"

	"github.com/SscSPs/pvs_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// NormalBalance presents a net ledger balance the way the account type is
// usually read. Ledger amounts are positive when money arrives in an account,
// so debit-normal accounts (ASSET, EXPENSE) keep the sign and credit-normal
// ones (LIABILITY, INCOME, RETAINED_EARNINGS) are negated.
func NormalBalance(net decimal.Decimal, accountType domain.AccountType) (decimal.Decimal, error) {
	switch accountType {
	case domain.Asset, domain.Expense:
		return net, nil
	case domain.Liability, domain.Income, domain.RetainedEarnings:
		return net.Neg(), nil
	default:
		return decimal.Zero, fmt.Errorf("unknown account type '%d'", int64(accountType))
	}
}

// FormatAmount formats an amount with the store's money scale.
// Example: 12.3 at scale 2 returns "12.30".
func FormatAmount(amount decimal.Decimal, scale int32) string {
	return amount.StringFixed(scale)
}
