package model

import (
	"database/sql/driver"
	"encoding/json"

	"kurvalgom/internal/domain/entity"
	"kurvalgom/internal/errors"
)

// RestaurantSnapshot stores a denormalized restaurant as a JSON text column.
type RestaurantSnapshot entity.Restaurant

// Value implements driver.Valuer.
func (s RestaurantSnapshot) Value() (driver.Value, error) {
	b, err := json.Marshal(entity.Restaurant(s))
	if err != nil {
		return nil, errors.Wrap(err, "marshal restaurant snapshot")
	}

	return string(b), nil
}

// Scan implements sql.Scanner. NULL and empty values decode to the zero restaurant.
func (s *RestaurantSnapshot) Scan(src any) error {
	var raw []byte
	switch v := src.(type) {
	case nil:
		*s = RestaurantSnapshot{}

		return nil
	case string:
		raw = []byte(v)
	case []byte:
		raw = v
	default:
		return errors.Errorf("unsupported restaurant snapshot type %T", src)
	}

	if len(raw) == 0 {
		*s = RestaurantSnapshot{}

		return nil
	}

	var r entity.Restaurant
	if err := json.Unmarshal(raw, &r); err != nil {
		return errors.Wrap(err, "unmarshal restaurant snapshot")
	}
	*s = RestaurantSnapshot(r)

	return nil
}
