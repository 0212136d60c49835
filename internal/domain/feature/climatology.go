package feature

import (
	"math"
	"time"

	"heatwave-api/internal/domain/entity"
)

// climate holds the parametric seasonal normals for one city. There is no
// live weather feed, so lagged and meteorological columns are filled from
// these historical-climatology values, matching how the classifier's
// placeholder inputs were generated at training time.
type climate struct {
	tMaxMean float64 // °C annual mean of daily maximum temperature
	tMaxAmp  float64 // °C seasonal amplitude around the mean
	tMinMean float64
	tMinAmp  float64
	rhMean   float64 // % relative humidity annual mean
	rhAmp    float64 // % seasonal swing, dry at peak heat
	windMean float64 // m/s at 10m
	solMean  float64 // MJ/m²/day all-sky surface shortwave
	solAmp   float64
	wetRate  float64 // mm/day during the monsoon months
	dryRate  float64 // mm/day outside them
	peakDOY  float64 // day of year of peak heat
}

var climates = map[string]climate{
	"Delhi":      {tMaxMean: 31.5, tMaxAmp: 9.5, tMinMean: 18.9, tMinAmp: 9.0, rhMean: 55, rhAmp: 20, windMean: 2.6, solMean: 18.5, solAmp: 5.0, wetRate: 7.1, dryRate: 0.6, peakDOY: 150},
	"Mumbai":     {tMaxMean: 31.9, tMaxAmp: 2.4, tMinMean: 23.3, tMinAmp: 3.6, rhMean: 74, rhAmp: 12, windMean: 3.1, solMean: 19.4, solAmp: 4.2, wetRate: 18.6, dryRate: 0.2, peakDOY: 135},
	"Kolkata":    {tMaxMean: 31.8, tMaxAmp: 4.6, tMinMean: 22.1, tMinAmp: 6.4, rhMean: 74, rhAmp: 14, windMean: 2.3, solMean: 17.6, solAmp: 4.1, wetRate: 11.3, dryRate: 0.7, peakDOY: 130},
	"Chennai":    {tMaxMean: 32.9, tMaxAmp: 3.4, tMinMean: 24.7, tMinAmp: 2.9, rhMean: 72, rhAmp: 10, windMean: 3.4, solMean: 19.8, solAmp: 3.6, wetRate: 8.4, dryRate: 0.9, peakDOY: 145},
	"Bengaluru":  {tMaxMean: 28.8, tMaxAmp: 3.1, tMinMean: 18.5, tMinAmp: 2.6, rhMean: 66, rhAmp: 13, windMean: 2.8, solMean: 19.1, solAmp: 3.3, wetRate: 4.9, dryRate: 0.5, peakDOY: 110},
	"Chandigarh": {tMaxMean: 29.9, tMaxAmp: 9.1, tMinMean: 17.6, tMinAmp: 8.6, rhMean: 58, rhAmp: 18, windMean: 2.2, solMean: 18.2, solAmp: 5.2, wetRate: 9.2, dryRate: 0.7, peakDOY: 152},
}

const daysPerYear = 365.25

// seasonal is 1 at the city's peak-heat day of year and -1 half a year away.
func seasonal(doy int, peakDOY float64) float64 {
	return math.Cos(2 * math.Pi * (float64(doy) - peakDOY) / daysPerYear)
}

func monsoonMonth(month time.Month) bool {
	return month >= time.June && month <= time.September
}

func (c climate) maxTemp(date time.Time) float64 {
	return c.tMaxMean + c.tMaxAmp*seasonal(date.YearDay(), c.peakDOY)
}

func (c climate) minTemp(date time.Time) float64 {
	return c.tMinMean + c.tMinAmp*seasonal(date.YearDay(), c.peakDOY)
}

// humidity swings opposite to temperature: the pre-monsoon heat peak is the
// dry season everywhere in this city set.
func (c climate) humidity(date time.Time) float64 {
	rh := c.rhMean - c.rhAmp*seasonal(date.YearDay(), c.peakDOY)
	if monsoonMonth(date.Month()) {
		rh += c.rhAmp / 2
	}
	return clamp(rh, 5, 100)
}

func (c climate) wind(_ time.Time) float64 {
	return c.windMean
}

func (c climate) solar(date time.Time) float64 {
	sol := c.solMean + c.solAmp*seasonal(date.YearDay(), c.peakDOY)
	if monsoonMonth(date.Month()) {
		sol *= 0.8
	}
	return math.Max(sol, 0)
}

func (c climate) precipitation(date time.Time) float64 {
	if monsoonMonth(date.Month()) {
		return c.wetRate
	}
	return c.dryRate
}

// heatIndex is the apparent temperature (Steadman): air temperature plus a
// vapour-pressure term minus a wind term.
func (c climate) heatIndex(date time.Time) float64 {
	t := c.maxTemp(date)
	rh := c.humidity(date)
	vp := rh / 100 * 6.105 * math.Exp(17.27*t/(237.7+t))
	return t + 0.33*vp - 0.70*c.wind(date) - 4.0
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// climateFor returns the seasonal normals for a supported city.
func climateFor(city entity.City) (climate, bool) {
	c, ok := climates[city.Name]
	return c, ok
}
