package reservation

import "github.com/MaximeC37/BikerBox-sub000/pkg/txmanager"

// DBExecutor поддерживает *sql.DB и *sql.Tx
type DBExecutor = txmanager.DBExecutor
