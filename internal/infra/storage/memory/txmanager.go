package memory

import "context"

// TxManager менеджер транзакций для хранилища в памяти
// Атомарность обеспечивается блокировкой по ячейке в журнале, поэтому fn выполняется как есть
type TxManager struct{}

func NewTxManager() *TxManager {
	return &TxManager{}
}

func (m *TxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}
