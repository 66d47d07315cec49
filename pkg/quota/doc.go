// Package quota is the mutating counterpart to the entitlement engine's
// advisory quota check: it atomically checks and reserves capacity so a
// creation cannot slip past a plan ceiling between check and write.
//
// The hazard is small but real. Two requests creating product #50 of 50
// can both read current=49 from an advisory check and both insert.
// Reserve performs the count-compare-increment as a single atomic unit
// (a conditional upsert in Postgres, a Lua script in Redis, a mutex in
// memory), so exactly one of those requests succeeds.
//
// Intended call shape with the Postgres reserver:
//
//	tx, _ := pool.Begin(ctx)
//	defer tx.Rollback(ctx)
//
//	reserver := quota.NewPostgresReserver(tx, limits)
//	if _, err := reserver.Reserve(ctx, orgID, plan.ResourceProducts, 1); err != nil {
//	    return err // ErrQuotaExceeded carries a CeilingError with current/limit
//	}
//	// ... insert the product in the same transaction ...
//	return tx.Commit(ctx)
//
// Rolling the transaction back returns the reserved capacity; outside a
// transaction, Release is the compensating operation.
package quota
