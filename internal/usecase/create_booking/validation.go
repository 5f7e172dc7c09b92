package create_booking

import (
	"fmt"
	"strings"
)

// validateRequest валидирует входные данные запроса
// Даты и гости проверяются движком доступности
func validateRequest(req *Request) error {
	if req.Session == nil || req.Session.AccessToken == "" {
		return fmt.Errorf("%w: session is required", ErrInvalidInput)
	}

	if strings.TrimSpace(req.VenueID) == "" {
		return fmt.Errorf("%w: venueId is required", ErrInvalidInput)
	}

	return nil
}
