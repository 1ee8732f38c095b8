package entries

import (
	"fmt"
	"strings"
)

// closed set of article kinds
type Category string

const (
	CategoryCar      Category = "Car"
	CategoryTrack    Category = "Track"
	CategorySeries   Category = "Series"
	CategorySoftware Category = "Software"
	CategoryResource Category = "Resource"
	CategoryOther    Category = "Other"
)

// in display order
var Categories = []Category{
	CategoryCar,
	CategoryTrack,
	CategorySeries,
	CategorySoftware,
	CategoryResource,
	CategoryOther,
}

// matches s case-insensitively against the known categories
func ParseCategory(s string) (Category, error) {
	s = strings.TrimSpace(s)

	for _, c := range Categories {
		if strings.EqualFold(string(c), s) {
			return c, nil
		}
	}

	return "", fmt.Errorf("%w: %q", ErrInvalidCategory, s)
}

func (c Category) Valid() bool {
	_, err := ParseCategory(string(c))
	return err == nil
}
