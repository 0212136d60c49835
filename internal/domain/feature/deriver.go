package feature

import (
	"strings"
	"time"

	"heatwave-api/internal/domain/entity"
	"heatwave-api/internal/domain/model"
)

// Deriver builds the per (city, date) feature vector in the exact column
// order the classifier was trained on. A column it cannot produce is a
// FeatureMismatchError: that means the deployed model artifact and this
// binary disagree about the schema, which only a redeploy can fix.
type Deriver struct {
	columns []string
}

// NewDeriver creates a Deriver bound to the classifier's expected columns.
func NewDeriver(columns []string) *Deriver {
	return &Deriver{columns: columns}
}

// Derive produces the feature vector for one city and date.
func (d *Deriver) Derive(city entity.City, date time.Time) (model.FeatureVector, error) {
	clim, ok := climateFor(city)
	if !ok {
		return model.FeatureVector{}, model.NewValidationError("city", "unknown city: "+city.Name)
	}

	values := make([]float64, len(d.columns))
	for i, column := range d.columns {
		value, err := d.valueFor(column, city, clim, date)
		if err != nil {
			return model.FeatureVector{}, err
		}
		values[i] = value
	}

	return model.FeatureVector{Columns: d.columns, Values: values}, nil
}

// valueFor resolves a single named column. Lag and rolling suffixes recurse
// into the base column with a shifted date or a trailing-window mean.
func (d *Deriver) valueFor(column string, city entity.City, clim climate, date time.Time) (float64, error) {
	if base, days, ok := lagColumn(column); ok {
		return d.valueFor(base, city, clim, date.AddDate(0, 0, -days))
	}
	if base, window, ok := rollColumn(column); ok {
		var sum float64
		for i := 0; i < window; i++ {
			v, err := d.valueFor(base, city, clim, date.AddDate(0, 0, -i))
			if err != nil {
				return 0, err
			}
			sum += v
		}
		return sum / float64(window), nil
	}

	switch column {
	case "DOY":
		return float64(date.YearDay()), nil
	case "MONTH":
		return float64(date.Month()), nil
	case "IS_SUMMER":
		// pre-monsoon heat season, March through June
		if date.Month() >= time.March && date.Month() <= time.June {
			return 1, nil
		}
		return 0, nil
	case "LAT":
		return city.Latitude, nil
	case "LON":
		return city.Longitude, nil
	case "T2M_MAX":
		return clim.maxTemp(date), nil
	case "T2M_MIN":
		return clim.minTemp(date), nil
	case "RH2M":
		return clim.humidity(date), nil
	case "WS10M":
		return clim.wind(date), nil
	case "ALLSKY_SFC_SW_DWN":
		return clim.solar(date), nil
	case "PRECTOTCORR":
		return clim.precipitation(date), nil
	case "HEAT_INDEX":
		return clim.heatIndex(date), nil
	default:
		return 0, &model.FeatureMismatchError{Column: column, Reason: "no derivation rule for this column"}
	}
}

// lagColumn parses BASE_LAGn column names.
func lagColumn(column string) (base string, days int, ok bool) {
	return suffixedColumn(column, "_LAG")
}

// rollColumn parses BASE_ROLLn column names.
func rollColumn(column string) (base string, window int, ok bool) {
	return suffixedColumn(column, "_ROLL")
}

func suffixedColumn(column, marker string) (string, int, bool) {
	idx := strings.LastIndex(column, marker)
	if idx < 0 {
		return "", 0, false
	}
	digits := column[idx+len(marker):]
	if digits == "" {
		return "", 0, false
	}
	n := 0
	for _, r := range digits {
		if r < '0' || r > '9' {
			return "", 0, false
		}
		n = n*10 + int(r-'0')
	}
	if n < 1 {
		return "", 0, false
	}
	return column[:idx], n, true
}
