package get_dock_capacities

import (
	"time"

	"github.com/m04kA/SMC-DockSchedulingService/internal/domain"
	"github.com/m04kA/SMC-DockSchedulingService/internal/service/capacity"
)

// Request параметры запроса дневных срезов ёмкости доков площадки
type Request struct {
	SiteID int64

	// Date целевая локальная дата
	Date time.Time

	// QuotaOverrides явные дневные лимиты, заменяющие настройки доков
	QuotaOverrides []domain.DockQuotaOverride

	// PendingCases/PendingPallets прогнозируемый вклад планируемой встречи;
	// нулевые значения дают чистый срез без изменения
	PendingCases   float64
	PendingPallets float64
	PendingAppt    bool
}

// Response дневные срезы ёмкости всех доков площадки
type Response struct {
	Capacities []capacity.DockDaily
}
