package list_venues

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/m04kA/holidaze-gateway/internal/service/venues/models"
)

// ToServiceRequest разбирает query параметры page, limit, region, guests
func ToServiceRequest(query url.Values) (*models.ListVenuesRequest, error) {
	req := &models.ListVenuesRequest{Region: strings.TrimSpace(query.Get("region"))}

	var err error
	if req.Page, err = parseOptionalInt(query, "page"); err != nil {
		return nil, err
	}
	if req.Limit, err = parseOptionalInt(query, "limit"); err != nil {
		return nil, err
	}
	if req.Guests, err = parseOptionalInt(query, "guests"); err != nil {
		return nil, err
	}
	return req, nil
}

func parseOptionalInt(query url.Values, key string) (int, error) {
	raw := strings.TrimSpace(query.Get(key))
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer", key)
	}
	return v, nil
}
