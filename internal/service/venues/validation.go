package venues

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/m04kA/holidaze-gateway/internal/domain"
	"github.com/m04kA/holidaze-gateway/internal/service/venues/models"
)

const maxRating = 5

func validateListRequest(req *models.ListVenuesRequest) error {
	if req.Page < 0 {
		return fmt.Errorf("%w: page must be positive", ErrInvalidInput)
	}
	if req.Limit < 0 || req.Limit > domain.MaxPageSize {
		return fmt.Errorf("%w: limit must be between 1 and %d", ErrInvalidInput, domain.MaxPageSize)
	}
	return validateGuestsFilter(req.Guests)
}

func validateGuestsFilter(guests int) error {
	if guests < 0 || guests > domain.MaxGuestsLimit {
		return fmt.Errorf("%w: guests must be between %d and %d", ErrInvalidInput, domain.MinGuests, domain.MaxGuestsLimit)
	}
	return nil
}

func validateDraft(draft domain.VenueDraft) error {
	if draft.Name == "" {
		return fmt.Errorf("%w: name cannot be empty", ErrInvalidInput)
	}
	if draft.Description == "" {
		return fmt.Errorf("%w: description cannot be empty", ErrInvalidInput)
	}
	if draft.Price < 0 {
		return fmt.Errorf("%w: price cannot be negative", ErrInvalidInput)
	}
	if draft.MaxGuests < domain.MinGuests || draft.MaxGuests > domain.MaxGuestsLimit {
		return fmt.Errorf("%w: maxGuests must be between %d and %d", ErrInvalidInput, domain.MinGuests, domain.MaxGuestsLimit)
	}
	if draft.Rating < 0 || draft.Rating > maxRating {
		return fmt.Errorf("%w: rating must be between 0 and %d", ErrInvalidInput, maxRating)
	}
	for i, m := range draft.Media {
		u, err := url.Parse(m.URL)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return fmt.Errorf("%w: media[%d] url must be an absolute http(s) url", ErrInvalidInput, i)
		}
	}
	return nil
}

func normalizeQuery(q string) string {
	return strings.ToLower(strings.Join(strings.Fields(q), " "))
}
