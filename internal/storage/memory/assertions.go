package memory

import (
	"github.com/tinoosan/bookkeeper/internal/service/account"
	"github.com/tinoosan/bookkeeper/internal/service/transaction"
)

// Compile-time interface assertions documenting which interfaces Store satisfies.
var (
	_ account.Repo            = (*Store)(nil)
	_ account.Writer          = (*Store)(nil)
	_ account.TransactionRepo = (*Store)(nil)
	_ transaction.Repo        = (*Store)(nil)
	_ transaction.Writer      = (*Store)(nil)
)
