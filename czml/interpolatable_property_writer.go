package czml

import "time"

const (
	interpolationAlgorithmPropertyName        = "interpolationAlgorithm"
	interpolationDegreePropertyName           = "interpolationDegree"
	forwardExtrapolationTypePropertyName      = "forwardExtrapolationType"
	forwardExtrapolationDurationPropertyName  = "forwardExtrapolationDuration"
	backwardExtrapolationTypePropertyName     = "backwardExtrapolationType"
	backwardExtrapolationDurationPropertyName = "backwardExtrapolationDuration"
)

// InterpolatablePropertyWriter is a PropertyWriter whose values may be
// sampled, with settings for how a client interpolates the samples.
type InterpolatablePropertyWriter struct {
	*PropertyWriter
}

// NewInterpolatablePropertyWriter returns an unopened writer for the named
// property.
func NewInterpolatablePropertyWriter(propertyName string) *InterpolatablePropertyWriter {
	return &InterpolatablePropertyWriter{PropertyWriter: NewPropertyWriter(propertyName)}
}

// WriteInterpolationAlgorithm writes the algorithm used between samples.
func (p *InterpolatablePropertyWriter) WriteInterpolationAlgorithm(a InterpolationAlgorithm) {
	p.OpenIntervalIfNecessary()
	p.WriteMemberName(interpolationAlgorithmPropertyName)
	p.out.WriteString(a.String())
}

// WriteInterpolationDegree writes the degree of the interpolating polynomial.
func (p *InterpolatablePropertyWriter) WriteInterpolationDegree(degree int) {
	p.OpenIntervalIfNecessary()
	p.WriteMemberName(interpolationDegreePropertyName)
	p.out.WriteInt(degree)
}

// WriteForwardExtrapolationType writes the behavior after the last sample.
func (p *InterpolatablePropertyWriter) WriteForwardExtrapolationType(t ExtrapolationType) {
	p.OpenIntervalIfNecessary()
	p.WriteMemberName(forwardExtrapolationTypePropertyName)
	p.out.WriteString(t.String())
}

// WriteForwardExtrapolationDuration writes how long after the last sample
// extrapolation applies.
func (p *InterpolatablePropertyWriter) WriteForwardExtrapolationDuration(d time.Duration) {
	p.OpenIntervalIfNecessary()
	p.WriteMemberName(forwardExtrapolationDurationPropertyName)
	p.out.WriteFloat(d.Seconds())
}

// WriteBackwardExtrapolationType writes the behavior before the first sample.
func (p *InterpolatablePropertyWriter) WriteBackwardExtrapolationType(t ExtrapolationType) {
	p.OpenIntervalIfNecessary()
	p.WriteMemberName(backwardExtrapolationTypePropertyName)
	p.out.WriteString(t.String())
}

// WriteBackwardExtrapolationDuration writes how long before the first sample
// extrapolation applies.
func (p *InterpolatablePropertyWriter) WriteBackwardExtrapolationDuration(d time.Duration) {
	p.OpenIntervalIfNecessary()
	p.WriteMemberName(backwardExtrapolationDurationPropertyName)
	p.out.WriteFloat(d.Seconds())
}
