package appointment

import "github.com/m04kA/SMC-DockSchedulingService/pkg/dbmetrics"

// Переиспользуем интерфейс исполнителя запросов из dbmetrics
type DBExecutor = dbmetrics.Executor
