package customer

import "github.com/sanbud-pl/booking-service/pkg/dbmetrics"

// Reuse the dbmetrics executor interfaces for database access.
type DBExecutor = dbmetrics.DBExecutor
