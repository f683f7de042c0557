package find_unreserved_slots

import "fmt"

// validateRequest проверяет входные данные запроса
func validateRequest(req *Request) error {
	if req.SiteID <= 0 {
		return fmt.Errorf("%w: site_id must be positive", ErrInvalidInput)
	}
	if len(req.Orders) == 0 {
		return fmt.Errorf("%w: at least one order is required", ErrInvalidInput)
	}
	for i := range req.Orders {
		if req.Orders[i].DueDate == nil {
			return fmt.Errorf("%w: order %d has no due date", ErrInvalidInput, req.Orders[i].ID)
		}
	}
	if req.DurationMinutes <= 0 {
		return fmt.Errorf("%w: duration must be positive", ErrInvalidInput)
	}
	if req.CurrentUTCTime.IsZero() {
		return fmt.Errorf("%w: current time is required", ErrInvalidInput)
	}
	if req.MaxResults < 0 {
		return fmt.Errorf("%w: max results must not be negative", ErrInvalidInput)
	}
	return nil
}
