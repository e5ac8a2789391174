package engine

import "fmt"

// Frame size coefficients by bike type. Road and gravel frames are sized in
// centimeters, mountain frames in inches.
var frameSizing = map[string]struct {
	coeff float64
	unit  string
}{
	"road":   {coeff: 0.665, unit: "cm"},
	"mtb":    {coeff: 0.226, unit: "in"},
	"gravel": {coeff: 0.63, unit: "cm"},
}

// saddleHeightFactor is the LeMond method multiplier, independent of bike
// type.
const saddleHeightFactor = 0.883

// BikeFitResult holds the recommended frame size and saddle height for an
// inseam measurement.
type BikeFitResult struct {
	FrameSize      float64
	FrameUnit      string
	SaddleHeightCm float64
}

// BikeFit sizes a frame from inseam length using the bike-type coefficient
// and derives the LeMond saddle height.
func BikeFit(inseamCm float64, bikeType string) (BikeFitResult, error) {
	sizing, ok := frameSizing[bikeType]
	if !ok {
		return BikeFitResult{}, fmt.Errorf("unknown bike type %q", bikeType)
	}
	return BikeFitResult{
		FrameSize:      Round1(inseamCm * sizing.coeff),
		FrameUnit:      sizing.unit,
		SaddleHeightCm: Round1(inseamCm * saddleHeightFactor),
	}, nil
}

var bikeFitSchema = Schema{
	Numbers: []NumField{
		{Name: "inseam_cm", Min: 60, Max: 110, Unit: "cm"},
	},
	Categories: []CatField{
		{Name: "bike_type", Allowed: []string{"road", "mtb", "gravel"}},
	},
}

func computeBikeFit(rec Record) (*Envelope, error) {
	res, err := BikeFit(rec.Number("inseam_cm"), rec.Category("bike_type"))
	if err != nil {
		return nil, err
	}
	env := &Envelope{Value: res.FrameSize, Unit: res.FrameUnit}
	env.addMetric("Frame size", res.FrameSize, res.FrameUnit)
	env.addMetric("Saddle height", res.SaddleHeightCm, "cm")
	return env, nil
}
