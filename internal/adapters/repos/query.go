package repos

import "context"

type idRow struct {
	ID int64 `db:"id"`
}

func insertReturningID(ctx context.Context, pool PoolOps, scanner Scanner, query string, args []any) (int64, error) {
	var row idRow
	if err := selectOne(ctx, pool, scanner, &row, query, args); err != nil {
		return 0, err
	}

	return row.ID, nil
}

func selectOne(ctx context.Context, pool PoolOps, scanner Scanner, dst any, query string, args []any) error {
	rows, err := pool.Query(ctx, query, args...)
	if err != nil {
		return err
	}
	defer rows.Close()

	return scanner.ScanOne(dst, rows)
}
