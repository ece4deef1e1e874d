package postgres

import (
	"github.com/tinoosan/bookkeeper/internal/service/account"
	"github.com/tinoosan/bookkeeper/internal/service/transaction"
)

var (
	_ account.Repo            = (*Store)(nil)
	_ account.Writer          = (*Store)(nil)
	_ account.TransactionRepo = (*Store)(nil)
	_ transaction.Repo        = (*Store)(nil)
	_ transaction.Writer      = (*Store)(nil)
)
