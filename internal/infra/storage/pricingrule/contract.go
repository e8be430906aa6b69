package pricingrule

import "github.com/m04kA/SMC-CourtPricingService/pkg/dbmetrics"

// DBExecutor переиспользуем интерфейс из dbmetrics: подходит *sql.DB и *dbmetrics.DB
type DBExecutor = dbmetrics.DBExecutor
